//go:build integration

package stats_test

import (
	"context"
	"testing"
	"time"

	"aoe4-sync/core/database"
	"aoe4-sync/feature/stats"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

func newPostgresStore(t *testing.T) *stats.Store {
	t.Helper()
	ctx := context.Background()

	container, err := tcPostgres.Run(ctx,
		"postgres:16-alpine",
		tcPostgres.WithDatabase("aoe4_stats"),
		tcPostgres.WithUsername("test"),
		tcPostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(container) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := database.Connect(database.Config{Driver: database.DriverPostgres, DSN: dsn})
	require.NoError(t, err)

	store := stats.NewStore(db, zap.NewNop())
	require.NoError(t, store.AutoMigrate(ctx, true))
	require.NoError(t, db.Create(&knownCivs).Error)
	return store
}

func TestPostgres_UpsertRoundTrip(t *testing.T) {
	store := newPostgresStore(t)
	ctx := context.Background()

	rows := metaRows("english", "French", "Holy Roman Empire", "atlanteans", "english")
	res, err := store.UpsertCivMetaStats(ctx, rows)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Written)
	assert.Equal(t, 1, res.Dropped)

	res, err = store.UpsertCivMetaStats(ctx, rows)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Written)

	all, err := store.CivMetaStats(ctx, "rm_solo", "all")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	n, err := store.UpsertLeaderboardPlayers(ctx, []stats.LeaderboardPlayer{
		{PlayerID: 1, PlayerName: "a", Rank: 1, Rating: 2000, Leaderboard: "rm_solo"},
		{PlayerID: 1, PlayerName: "a", Rank: 1, Rating: 2010, Leaderboard: "rm_solo"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	players, err := store.LeaderboardPlayers(ctx, "rm_solo", 10)
	require.NoError(t, err)
	require.Len(t, players, 1)
	assert.Equal(t, 2010, players[0].Rating)

	columns, err := database.GetTableColumns(store.DB(), "civilization_meta_stats")
	require.NoError(t, err)
	assert.NotEmpty(t, columns)
}
