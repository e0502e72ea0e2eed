package factory

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/uplift-hunter/internal/storage"
	"github.com/DjordjeVuckovic/uplift-hunter/internal/storage/es"
	"github.com/DjordjeVuckovic/uplift-hunter/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/uplift-hunter/internal/storage/pg"
	pkgserver "github.com/DjordjeVuckovic/uplift-hunter/pkg/server"
)

// Backend is a ready storer with the health checker of its backing service
// and a cleanup releasing its connections.
type Backend struct {
	Storer storage.Storer
	Health pkgserver.HealthChecker
	Close  func()
}

// NewStorer creates a storage.Storer based on the storage type
func NewStorer(ctx context.Context, cfg *StorageConfig) (*Backend, error) {
	if cfg == nil {
		return nil, fmt.Errorf("storage config is nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	noop := func() {}

	switch cfg.Type {
	case storage.PG:
		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}
		storer, err := pg.NewStorer(pool)
		if err != nil {
			pool.Close()
			return nil, err
		}
		return &Backend{Storer: storer, Health: pg.NewHealthChecker(pool), Close: pool.Close}, nil

	case storage.ES:
		storer, err := es.NewStorer(ctx, *cfg.Es)
		if err != nil {
			return nil, err
		}
		return &Backend{Storer: storer, Health: es.NewHealthChecker(storer), Close: noop}, nil

	case storage.JSON:
		storer, err := storage.NewJsonFileStorer(cfg.Dir)
		if err != nil {
			return nil, err
		}
		return &Backend{Storer: storer, Health: pkgserver.NewOkHealthChecker(), Close: noop}, nil

	case storage.InMem:
		return &Backend{Storer: in_mem.NewInMemStorer(), Health: pkgserver.NewOkHealthChecker(), Close: noop}, nil

	default:
		return nil, fmt.Errorf(string(storage.ErrUnsupportedStorer), cfg.Type)
	}
}
