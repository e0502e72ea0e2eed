package factory

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/DjordjeVuckovic/uplift-hunter/internal/storage"
	"github.com/DjordjeVuckovic/uplift-hunter/internal/storage/es"
	"github.com/DjordjeVuckovic/uplift-hunter/internal/storage/pg"
	"github.com/DjordjeVuckovic/uplift-hunter/internal/uplift/spec"
	"github.com/DjordjeVuckovic/uplift-hunter/pkg/utils"
)

const DefaultReportsDir = "reports"

type StorageConfig struct {
	storage.Type
	Pg  *pg.PoolConfig
	Es  *es.ClientConfig
	Dir string
}

// LoadEnv reads the storage configuration from STORAGE_TYPE and the backend
// specific variables. An unset STORAGE_TYPE selects in-memory storage.
func LoadEnv() (*StorageConfig, error) {
	storageType := storage.Type(os.Getenv("STORAGE_TYPE"))
	if storageType == "" {
		slog.Info("STORAGE_TYPE is not set, using in-memory storage")
		storageType = storage.InMem
	}
	if err := storageType.Validate(); err != nil {
		slog.Error("Invalid STORAGE_TYPE environment variable value", "value", storageType)
		return nil, fmt.Errorf(
			"invalid STORAGE_TYPE environment variable value: %s, expected one of %v",
			storageType,
			[]storage.Type{storage.ES, storage.PG, storage.InMem, storage.JSON})
	}

	cfg := &StorageConfig{Type: storageType}
	switch storageType {
	case storage.ES:
		cfg.Es = &es.ClientConfig{
			Addresses: utils.SplitList(os.Getenv("ES_ADDRESSES"), ","),
			IndexName: os.Getenv("ES_INDEX_NAME"),
			Username:  os.Getenv("ES_USERNAME"),
			Password:  os.Getenv("ES_PASSWORD"),
		}
	case storage.PG:
		cfg.Pg = &pg.PoolConfig{ConnStr: os.Getenv("PG_CONNECTION_STRING")}
		if v := os.Getenv("PG_MAX_CONNS"); v != "" {
			n, err := strconv.ParseInt(v, 10, 32)
			if err != nil {
				return nil, fmt.Errorf("invalid PG_MAX_CONNS %q: %w", v, err)
			}
			cfg.Pg.MaxConns = int32(n)
		}
	case storage.JSON:
		cfg.Dir = os.Getenv("REPORTS_DIR")
	}

	if err := cfg.Validate(); err != nil {
		slog.Error("Storage configuration is incomplete", "type", storageType, "error", err)
		return nil, err
	}
	return cfg, nil
}

// FromSpec builds the configuration declared in an evaluation spec.
func FromSpec(sc spec.StorageConfig) (*StorageConfig, error) {
	cfg := &StorageConfig{Type: storage.Type(sc.Type)}
	switch cfg.Type {
	case "":
		cfg.Type = storage.InMem
	case storage.ES:
		cfg.Es = &es.ClientConfig{
			Addresses: utils.SplitList(sc.Connection, ","),
			IndexName: sc.Index,
		}
	case storage.PG:
		cfg.Pg = &pg.PoolConfig{ConnStr: sc.Connection}
	case storage.JSON:
		cfg.Dir = sc.Path
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *StorageConfig) Validate() error {
	if err := c.Type.Validate(); err != nil {
		return err
	}
	switch c.Type {
	case storage.ES:
		if c.Es == nil || len(c.Es.Addresses) == 0 {
			return fmt.Errorf("elasticsearch configuration is incomplete: addresses are missing")
		}
	case storage.PG:
		if c.Pg == nil || c.Pg.ConnStr == "" {
			return fmt.Errorf("PostgreSQL connection string is not set")
		}
	case storage.JSON:
		if c.Dir == "" {
			c.Dir = DefaultReportsDir
		}
	}
	return nil
}
