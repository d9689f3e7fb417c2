package crew

import (
	"pss-assistant/core/entity"
	"pss-assistant/core/server"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Crew feature.
func NewFeature(characters, collections *entity.Retriever, srv server.Config, logger *zap.Logger) *Feature {
	svc := NewService(characters, collections, logger)
	return &Feature{service: svc, handler: NewHandler(svc, srv)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "crew"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Service returns the feature's service.
func (f *Feature) Service() *Service {
	return f.service
}
