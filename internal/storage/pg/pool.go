package pg

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultPingTimeout = 3 * time.Second

// PoolConfig configures the evaluation store pool. Zero values keep the
// pgx defaults.
type PoolConfig struct {
	ConnStr     string
	MaxConns    int32
	PingTimeout time.Duration
}

type ConnectionPool struct {
	conn        *pgxpool.Pool
	pingTimeout time.Duration
}

func NewConnectionPool(ctx context.Context, cfg PoolConfig) (*ConnectionPool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.ConnStr)
	if err != nil {
		return nil, fmt.Errorf("parse pg connection string: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}

	db, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("open pg pool: %w", err)
	}

	p := &ConnectionPool{conn: db, pingTimeout: cfg.PingTimeout}
	if p.pingTimeout <= 0 {
		p.pingTimeout = defaultPingTimeout
	}

	if err := p.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping pg: %w", err)
	}
	if err := p.checkSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}

	slog.Info("Connected to PostgreSQL", "max_conns", poolCfg.MaxConns)
	return p, nil
}

// checkSchema fails fast when the evaluations migration was not applied.
func (p *ConnectionPool) checkSchema(ctx context.Context) error {
	var exists bool
	err := p.conn.QueryRow(ctx, `SELECT to_regclass('evaluations') IS NOT NULL`).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check pg schema: %w", err)
	}
	if !exists {
		return fmt.Errorf("table evaluations not found, run migrations first")
	}
	return nil
}

func (p *ConnectionPool) Close() {
	p.conn.Close()
}

// Ping bounds the round trip by the configured ping timeout.
func (p *ConnectionPool) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, p.pingTimeout)
	defer cancel()
	return p.conn.Ping(ctx)
}
