package integrity

import (
	syncer "aoe4-sync/feature/sync"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	handler *Handler
}

// NewFeature creates the integrity feature. It is disabled without a database.
func NewFeature(db *gorm.DB, archive *syncer.Archive, logger *zap.Logger) *Feature {
	if db == nil {
		return &Feature{}
	}
	return &Feature{handler: NewHandler(NewService(db, archive, logger))}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "integrity"
}

// IsEnabled reports whether the feature can run.
func (f *Feature) IsEnabled() bool {
	return f.handler != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
