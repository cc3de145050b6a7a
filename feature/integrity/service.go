package integrity

import (
	"context"
	"fmt"

	"aoe4-sync/feature/integrity/checks"
	"aoe4-sync/feature/stats"
	syncer "aoe4-sync/feature/sync"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles integrity checks.
type Service struct {
	db      *gorm.DB
	archive checks.Bucketer
	logger  *zap.Logger
}

// NewService creates a new integrity service. archive may be nil when snapshots are disabled.
func NewService(db *gorm.DB, archive *syncer.Archive, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{db: db, logger: logger}
	if archive != nil {
		s.archive = archive
	}
	return s
}

// CheckSchema compares the sync and reference tables with their models.
func (s *Service) CheckSchema(ctx context.Context) (*checks.SchemaReport, error) {
	if s.db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	models := append(stats.ReferenceModels(), stats.LiveModels()...)
	return checks.CheckSchema(s.db.WithContext(ctx), models...)
}

// FixSchema migrates the sync tables and checks again. Reference tables are never migrated.
func (s *Service) FixSchema(ctx context.Context) (*checks.SchemaReport, error) {
	if s.db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	s.logger.Info("Migrating sync tables")
	if err := stats.NewStore(s.db, s.logger).AutoMigrate(ctx, false); err != nil {
		return nil, err
	}
	return s.CheckSchema(ctx)
}

// CheckArchive reports on the snapshot bucket, creating it when fix is set.
func (s *Service) CheckArchive(ctx context.Context, fix bool) (*checks.ArchiveReport, error) {
	report, err := checks.CheckArchive(ctx, s.archive, fix)
	if err != nil {
		return nil, err
	}
	if report.Created {
		s.logger.Info("Created snapshot bucket", zap.String("bucket", report.Bucket))
	}
	return report, nil
}
