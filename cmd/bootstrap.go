package cmd

import (
	"fmt"

	"aoe4-sync/core/config"
	"aoe4-sync/core/database"
	"aoe4-sync/core/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// bootstrap loads and validates configuration and builds the logger.
func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return cfg, logg, nil
}

// connect opens the destination database.
func connect(cfg *config.Config, logg *zap.Logger) (*gorm.DB, error) {
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("database connection required: %w", err)
	}
	logg.Info("Connected to database", zap.String("driver", cfg.Database.Driver))
	return db, nil
}
