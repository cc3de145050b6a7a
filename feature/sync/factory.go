package sync

import (
	"fmt"

	"aoe4-sync/core/storage"
	"aoe4-sync/feature/aoe4world"
	"aoe4-sync/feature/stats"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NewFromConfig builds a Service with the default AoE4 World client, a stats store on db
// and, when storageCfg.Enabled, the snapshot archive.
func NewFromConfig(apiCfg aoe4world.Config, syncCfg Config, storageCfg storage.Config, db *gorm.DB, logger *zap.Logger) (*Service, error) {
	if db == nil {
		return nil, fmt.Errorf("sync requires a database connection")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	opts := []Option{WithConfig(syncCfg)}
	if storageCfg.Enabled {
		client, err := storage.NewClient(storageCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create snapshot storage: %w", err)
		}
		opts = append(opts, WithArchive(NewArchive(client, storageCfg.Bucket, logger.Named("archive"))))
	}

	source := aoe4world.NewClient(apiCfg, logger.Named("aoe4world"))
	store := stats.NewStore(db, logger.Named("stats"))
	return NewService(source, store, logger.Named("sync"), opts...), nil
}
