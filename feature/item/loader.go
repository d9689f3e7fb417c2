package item

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

// NewFeature creates a new Item feature.
func NewFeature(items *entity.Retriever, srv server.Config, logger *zap.Logger) *Feature {
	svc := NewService(items, logger)
	return &Feature{service: svc, handler: NewHandler(svc, srv)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "items"
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
