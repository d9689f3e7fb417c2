package wiki

import (
	"github.com/gofiber/fiber/v2"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Wiki feature around an existing service.
func NewFeature(service *Service) *Feature {
	return &Feature{service: service, handler: NewHandler(service)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "wiki"
}

// IsEnabled reports whether anyone may export. Without owners, guilds or
// users every request would be rejected, so the routes are not mounted.
func (f *Feature) IsEnabled() bool {
	cfg := f.service.cfg
	return len(cfg.Owners)+len(cfg.Guilds)+len(cfg.Users) > 0
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
