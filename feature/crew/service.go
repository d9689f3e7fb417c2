package crew

import (
	"context"
	"fmt"

	"pss-assistant/core/entity"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Service answers crew queries.
type Service struct {
	characters  *entity.Retriever
	collections *entity.Retriever
	layout      *entity.Layout
	logger      *zap.Logger
}

// NewService creates a new crew service.
func NewService(characters, collections *entity.Retriever, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		characters:  characters,
		collections: collections,
		layout:      Layout(),
		logger:      logger,
	}
}

// Retriever returns the character designs retriever.
func (s *Service) Retriever() *entity.Retriever {
	return s.characters
}

// CollectionsRetriever returns the collection designs retriever.
func (s *Service) CollectionsRetriever() *entity.Retriever {
	return s.collections
}

// GetCharacterDetailsByName renders every character matching name.
func (s *Service) GetCharacterDetailsByName(ctx context.Context, name string, asEmbed bool) (entity.Result, error) {
	if err := entity.ValidateEntityName(name, nil); err != nil {
		return entity.Result{}, err
	}

	var characters, collections entity.DesignsData
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		characters, err = s.characters.Data(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		collections, err = s.collections.Data(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return entity.Result{}, err
	}

	infos := s.characters.Find(characters, name)
	if len(infos) == 0 {
		return entity.NotFound(fmt.Sprintf("Could not find a crew named **%s**.", name)), nil
	}

	collection := entity.Collection{
		Items:           s.layout.BuildAll(ctx, infos, entity.Related{RelatedCollections: collections}),
		BigSetThreshold: bigSetThreshold,
	}
	return collection.Render(asEmbed), nil
}
