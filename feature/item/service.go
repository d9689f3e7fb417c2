package item

import (
	"context"
	"fmt"

	"pss-assistant/core/entity"

	"go.uber.org/zap"
)

// Service answers item queries.
type Service struct {
	items  *entity.Retriever
	layout *entity.Layout
	logger *zap.Logger
}

// NewService creates a new item service.
func NewService(items *entity.Retriever, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		items:  items,
		layout: Layout(),
		logger: logger,
	}
}

// Retriever returns the item designs retriever.
func (s *Service) Retriever() *entity.Retriever {
	return s.items
}

// GetItemDetailsByName renders every item matching name.
func (s *Service) GetItemDetailsByName(ctx context.Context, name string, asEmbed bool) (entity.Result, error) {
	if err := entity.ValidateEntityName(name, nil); err != nil {
		return entity.Result{}, err
	}

	infos, err := s.items.InfosByName(ctx, name)
	if err != nil {
		return entity.Result{}, err
	}
	if len(infos) == 0 {
		return entity.NotFound(fmt.Sprintf("Could not find an item named **%s**.", name)), nil
	}

	collection := entity.Collection{
		Items:           s.layout.BuildAll(ctx, infos, nil),
		BigSetThreshold: bigSetThreshold,
	}
	return collection.Render(asEmbed), nil
}
