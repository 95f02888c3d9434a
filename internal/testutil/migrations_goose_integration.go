//go:build integration

package testutil

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	pgrepo "github.com/Gunvolt24/agent_orders/internal/repo/postgres"
	"github.com/Gunvolt24/agent_orders/migrations"
)

// ApplyMigrations — применяет встроенные миграции к базе контейнера.
func ApplyMigrations(ctx context.Context, dsn string) error {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return fmt.Errorf("open pool: %w", err)
	}
	defer pool.Close()

	return pgrepo.Migrate(ctx, pool, migrations.FS)
}
