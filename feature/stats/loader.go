package stats

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	handler *Handler
}

// NewFeature creates the stats feature. A nil store disables it.
func NewFeature(store *Store, logger *zap.Logger) *Feature {
	if store == nil {
		return &Feature{}
	}
	return &Feature{handler: NewHandler(store, logger)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "stats"
}

// IsEnabled reports whether a database is available.
func (f *Feature) IsEnabled() bool {
	return f.handler != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
