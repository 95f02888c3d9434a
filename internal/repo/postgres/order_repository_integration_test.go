//go:build integration

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/agent_orders/internal/domain"
	pgrepo "github.com/Gunvolt24/agent_orders/internal/repo/postgres"
	"github.com/Gunvolt24/agent_orders/internal/testutil"
	"github.com/Gunvolt24/agent_orders/migrations"
)

// newRepo — Postgres в контейнере с применёнными миграциями.
func newRepo(t *testing.T) (*pgrepo.OrderRepository, context.Context) {
	t.Helper()

	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	pg, stopPG, err := testutil.StartPostgresTC(ctxStart)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stopPG(context.Background()) })

	require.NoError(t, pgrepo.Migrate(ctxStart, pg.Pool, migrations.FS))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)

	return pgrepo.NewOrderRepository(pg.Pool), ctx
}

func TestRepo_CreateAndGet_TC(t *testing.T) {
	t.Parallel()
	repo, ctx := newRepo(t)

	req := testutil.MakeCreateRequest(testutil.WithItem("Matcha Latte"))
	created, err := repo.Create(ctx, req)
	require.NoError(t, err)
	require.Positive(t, created.ID)
	require.Equal(t, req.AgentID, created.AgentID)
	require.Equal(t, "Matcha Latte", created.Item)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created, got)

	missing, err := repo.GetByID(ctx, created.ID+1000)
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestRepo_ListAndListByAgent_TC(t *testing.T) {
	t.Parallel()
	repo, ctx := newRepo(t)

	empty, err := repo.List(ctx)
	require.NoError(t, err)
	require.NotNil(t, empty)
	require.Empty(t, empty)

	a1, err := repo.Create(ctx, testutil.MakeCreateRequest(testutil.WithAgent("agent-a")))
	require.NoError(t, err)
	_, err = repo.Create(ctx, testutil.MakeCreateRequest(testutil.WithAgent("agent-b")))
	require.NoError(t, err)
	a2, err := repo.Create(ctx, testutil.MakeCreateRequest(testutil.WithAgent("agent-a")))
	require.NoError(t, err)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)

	byAgent, err := repo.ListByAgent(ctx, "agent-a")
	require.NoError(t, err)
	require.Equal(t, []domain.Order{*a1, *a2}, byAgent)

	none, err := repo.ListByAgent(ctx, "agent-z")
	require.NoError(t, err)
	require.NotNil(t, none)
	require.Empty(t, none)
}

func TestRepo_UpdatePartial_TC(t *testing.T) {
	t.Parallel()
	repo, ctx := newRepo(t)

	created, err := repo.Create(ctx, testutil.MakeCreateRequest(testutil.WithItem("Espresso")))
	require.NoError(t, err)

	item := "Flat White"
	updated, err := repo.Update(ctx, created.ID, domain.UpdateOrderRequest{Item: &item})
	require.NoError(t, err)
	require.Equal(t, "Flat White", updated.Item)
	require.Equal(t, created.AgentID, updated.AgentID)

	agent := "tea-house"
	updated, err = repo.Update(ctx, created.ID, domain.UpdateOrderRequest{AgentID: &agent})
	require.NoError(t, err)
	require.Equal(t, "Flat White", updated.Item)
	require.Equal(t, "tea-house", updated.AgentID)

	missing, err := repo.Update(ctx, created.ID+1000, domain.UpdateOrderRequest{Item: &item})
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestRepo_Delete_TC(t *testing.T) {
	t.Parallel()
	repo, ctx := newRepo(t)

	created, err := repo.Create(ctx, testutil.MakeCreateRequest())
	require.NoError(t, err)

	deleted, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	deleted, err = repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	require.False(t, deleted)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestMigrate_Idempotent_TC(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pg, stopPG, err := testutil.StartPostgresTC(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stopPG(context.Background()) })

	require.NoError(t, pgrepo.Migrate(ctx, pg.Pool, migrations.FS))
	require.NoError(t, pgrepo.Migrate(ctx, pg.Pool, migrations.FS))
}
