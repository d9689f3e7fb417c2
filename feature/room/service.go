package room

import (
	"context"
	"fmt"
	"strings"

	"pss-assistant/core/entity"
	"pss-assistant/feature/item"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Service answers room queries.
type Service struct {
	rooms  *entity.Retriever
	items  *entity.Retriever
	layout *entity.Layout
	logger *zap.Logger
}

// NewService creates a new room service.
func NewService(rooms, items *entity.Retriever, layout *entity.Layout, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		rooms:  rooms,
		items:  items,
		layout: layout,
		logger: logger,
	}
}

// Retriever returns the room designs retriever.
func (s *Service) Retriever() *entity.Retriever {
	return s.rooms
}

// datasets fetches room and item designs concurrently.
func (s *Service) datasets(ctx context.Context) (entity.DesignsData, entity.DesignsData, error) {
	var rooms, items entity.DesignsData
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rooms, err = s.rooms.Data(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		items, err = s.items.Data(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return rooms, items, nil
}

// validateName checks name before any room is searched. Only names below
// the minimum length need the room short names, so only they fetch rooms.
func (s *Service) validateName(ctx context.Context, name string) error {
	err := entity.ValidateEntityName(name, nil)
	if err == nil || strings.TrimSpace(name) == "" {
		return err
	}
	rooms, ferr := s.rooms.Data(ctx)
	if ferr != nil {
		return ferr
	}
	return entity.ValidateEntityName(name, AllowedShortNames(rooms))
}

// GetRoomDetailsByName renders every room matching name, ordered along
// upgrade chains. Room short names such as "AA" are accepted even though
// they are below the minimum name length.
func (s *Service) GetRoomDetailsByName(ctx context.Context, name string, asEmbed bool) (entity.Result, error) {
	if err := s.validateName(ctx, name); err != nil {
		return entity.Result{}, err
	}

	rooms, err := s.rooms.Data(ctx)
	if err != nil {
		return entity.Result{}, err
	}
	infos := s.rooms.Find(rooms, name)
	if len(infos) == 0 {
		return entity.NotFound(fmt.Sprintf("Could not find a room named **%s**.", name)), nil
	}

	items, err := s.items.Data(ctx)
	if err != nil {
		return entity.Result{}, err
	}
	related := entity.Related{item.RelatedName: items}
	collection := entity.Collection{
		Items:           s.layout.BuildAll(ctx, infos, related),
		BigSetThreshold: bigSetThreshold,
	}
	s.logger.Debug("Rooms found", zap.String("name", name), zap.Int("count", len(infos)))
	return collection.Render(asEmbed), nil
}

// GetRoomDetailsByID renders a single room design.
func (s *Service) GetRoomDetailsByID(ctx context.Context, id string) (entity.Details, bool, error) {
	rooms, items, err := s.datasets(ctx)
	if err != nil {
		return entity.Details{}, false, err
	}
	info, ok := rooms[id]
	if !ok {
		return entity.Details{}, false, nil
	}
	return s.layout.Build(ctx, info, entity.Related{item.RelatedName: items}), true, nil
}
