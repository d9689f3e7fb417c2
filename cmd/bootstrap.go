package cmd

import (
	"fmt"
	"time"

	"pss-assistant/core/config"
	"pss-assistant/core/database"
	"pss-assistant/core/entity"
	"pss-assistant/core/gameapi"
	"pss-assistant/core/logger"
	"pss-assistant/core/storage"
	"pss-assistant/feature/crew"
	"pss-assistant/feature/integrity"
	"pss-assistant/feature/item"
	"pss-assistant/feature/room"
	"pss-assistant/feature/wiki"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// runtime bundles what every command needs: configuration, logger, the
// bucket client and one retriever per design dataset.
type runtime struct {
	cfg    *config.Config
	logg   *zap.Logger
	client storage.Client
	db     *gorm.DB

	rooms         *entity.Retriever
	roomPurchases *entity.Retriever
	items         *entity.Retriever
	characters    *entity.Retriever
	collections   *entity.Retriever
}

func newRuntime() (*runtime, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	source, err := gameapi.NewSource(cfg.API, client, cfg.Storage.Bucket)
	if err != nil {
		return nil, err
	}

	ttl := cfg.API.CacheTTL
	return &runtime{
		cfg:           cfg,
		logg:          logg,
		client:        client,
		rooms:         room.NewRetriever(source, ttl, logg),
		roomPurchases: room.NewPurchasesRetriever(source, ttl, logg),
		items:         item.NewRetriever(source, ttl, logg),
		characters:    crew.NewRetriever(source, ttl, logg),
		collections:   crew.NewCollectionsRetriever(source, ttl, logg),
	}, nil
}

// connectDB opens the optional database. Failure only disables the
// export history.
func (r *runtime) connectDB() {
	conn, err := database.Connect(r.cfg.Database)
	if err != nil {
		r.logg.Warn("Optional database connection failed", zap.Error(err))
		return
	}
	r.db = conn
	r.logg.Info("Connected to database", zap.String("driver", r.cfg.Database.Driver))
}

func (r *runtime) allRetrievers() []*entity.Retriever {
	return []*entity.Retriever{r.rooms, r.roomPurchases, r.items, r.characters, r.collections}
}

func (r *runtime) roomFeature() (*room.Feature, error) {
	return room.NewFeature(r.rooms, r.items, r.cfg.API, r.cfg.Server, r.logg)
}

func (r *runtime) wikiService() (*wiki.Service, error) {
	var store *wiki.Store
	if r.db != nil {
		store = wiki.NewStore(r.db)
		if err := store.Migrate(); err != nil {
			return nil, err
		}
	}
	retrievers := map[string]*entity.Retriever{
		"rooms":          r.rooms,
		"room_purchases": r.roomPurchases,
		"items":          r.items,
		"crew":           r.characters,
		"collections":    r.collections,
	}
	return wiki.NewService(r.cfg.Wiki, retrievers, store, r.client, r.cfg.Storage.Bucket, r.logg), nil
}

// integrityService compares snapshots with the live game API, whichever
// source the retrievers read from. With a database it also checks the
// export history table.
func (r *runtime) integrityService() *integrity.Service {
	live := gameapi.NewHTTPSource(r.cfg.API.BaseURL, time.Duration(r.cfg.API.TimeoutSeconds)*time.Second)
	svc := integrity.NewService(r.client, r.cfg.Storage.Bucket, r.cfg.API.SnapshotPrefix, live, r.allRetrievers(), r.rooms, r.logg)
	if r.db != nil {
		svc.WithDatabase(r.db, &wiki.Export{})
	}
	return svc
}

func commandTimeout(cfg *config.Config) time.Duration {
	return time.Duration(cfg.API.TimeoutSeconds+5) * time.Second
}
