package sync_test

import (
	"testing"

	"aoe4-sync/core/database"
	"aoe4-sync/core/storage"
	"aoe4-sync/feature/aoe4world"
	syncer "aoe4-sync/feature/sync"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewFromConfig(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	t.Run("requires a database", func(t *testing.T) {
		_, err := syncer.NewFromConfig(aoe4world.DefaultConfig(), syncer.Config{}, storage.Config{}, nil, zap.NewNop())
		assert.Error(t, err)
	})

	t.Run("archive disabled", func(t *testing.T) {
		svc, err := syncer.NewFromConfig(aoe4world.DefaultConfig(), syncer.Config{}, storage.Config{}, db, nil)
		require.NoError(t, err)
		assert.Nil(t, svc.Archive())
	})

	t.Run("archive enabled", func(t *testing.T) {
		cfg := storage.Config{Enabled: true, Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "b", Bucket: "snaps"}
		svc, err := syncer.NewFromConfig(aoe4world.DefaultConfig(), syncer.Config{}, cfg, db, zap.NewNop())
		require.NoError(t, err)
		require.NotNil(t, svc.Archive())
		assert.Equal(t, "snaps", svc.Archive().Bucket())
	})

	t.Run("archive enabled without endpoint", func(t *testing.T) {
		_, err := syncer.NewFromConfig(aoe4world.DefaultConfig(), syncer.Config{}, storage.Config{Enabled: true}, db, zap.NewNop())
		assert.Error(t, err)
	})
}
