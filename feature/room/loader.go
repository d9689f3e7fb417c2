package room

import (
	"fmt"

	"pss-assistant/core/entity"
	"pss-assistant/core/gameapi"
	"pss-assistant/core/server"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Room feature. It fails when the embedded
// display name table does not cover the layout.
func NewFeature(rooms, items *entity.Retriever, api gameapi.Config, srv server.Config, logger *zap.Logger) (*Feature, error) {
	names, err := DisplayNames()
	if err != nil {
		return nil, fmt.Errorf("failed to load room display names: %w", err)
	}
	layout, err := NewLayout(names, api.WikiBaseURL, gameapi.NewLinkChecker(api))
	if err != nil {
		return nil, err
	}
	svc := NewService(rooms, items, layout, logger)
	return &Feature{service: svc, handler: NewHandler(svc, srv)}, nil
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "rooms"
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
