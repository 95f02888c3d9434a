package postgres

import (
	"context"
	"time"

	"github.com/Gunvolt24/agent_orders/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPool — пул соединений к Postgres из конфига.
// MaxConns > 0 переопределяет размер пула; Ping в конце — fail-fast при недоступной БД.
func NewPool(ctx context.Context, cfg config.Postgres) (*pgxpool.Pool, error) {
	pcfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, err
	}
	if cfg.MaxConns > 0 {
		pcfg.MaxConns = cfg.MaxConns
	}
	pcfg.MaxConnLifetime = time.Hour
	pcfg.MaxConnIdleTime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, err
	}

	if connErr := pool.Ping(ctx); connErr != nil {
		pool.Close()
		return nil, connErr
	}

	return pool, nil
}
