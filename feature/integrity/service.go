package integrity

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"pss-assistant/core/entity"
	"pss-assistant/core/gameapi"
	"pss-assistant/core/storage"
	"pss-assistant/feature/integrity/checks"
	"pss-assistant/feature/room"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// ErrNoLiveSource is returned by drift checks and snapshot fixes when no
// live game API source is configured.
var ErrNoLiveSource = errors.New("no live design source configured")

// ErrNoDatabase is returned by schema checks when no database is connected.
var ErrNoDatabase = errors.New("no database connected")

// Service handles integrity checks.
type Service struct {
	client     storage.Client
	bucket     string
	prefix     string
	live       entity.Source
	retrievers []*entity.Retriever
	rooms      *entity.Retriever
	db         *gorm.DB
	models     []interface{}
	logger     *zap.Logger
}

// NewService creates a new integrity service. retrievers are the datasets
// whose snapshots must exist; rooms is checked for broken upgrade chains.
// live is the game API the snapshots are compared with and refreshed from;
// it may be nil.
func NewService(client storage.Client, bucket, prefix string, live entity.Source, retrievers []*entity.Retriever, rooms *entity.Retriever, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		client:     client,
		bucket:     bucket,
		prefix:     prefix,
		live:       live,
		retrievers: retrievers,
		rooms:      rooms,
		logger:     logger,
	}
}

// WithDatabase enables the schema check of the tables behind models.
func (s *Service) WithDatabase(db *gorm.DB, models ...interface{}) *Service {
	s.db = db
	s.models = models
	return s
}

// HasDatabase reports whether a schema check can run.
func (s *Service) HasDatabase() bool {
	return s.db != nil
}

// CheckSchema compares the owned tables with their models.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	if s.db == nil {
		return nil, ErrNoDatabase
	}
	report, err := checks.CheckSchema(s.db, s.models...)
	if err != nil {
		return nil, err
	}
	if !report.Matched {
		s.logger.Warn("Schema mismatches found", zap.Int("tables", len(report.Tables)), zap.Strings("errors", report.Errors))
	}
	return report, nil
}

// FixSchema migrates the owned tables to their models.
func (s *Service) FixSchema() error {
	if s.db == nil {
		return ErrNoDatabase
	}
	if err := s.db.AutoMigrate(s.models...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// CheckSnapshots returns the snapshot object keys missing from the bucket.
func (s *Service) CheckSnapshots(ctx context.Context) ([]string, error) {
	return checks.CheckSnapshots(ctx, s.client, s.bucket, s.prefix, s.endpoints())
}

// FixSnapshots fetches the datasets behind the given snapshot keys from the
// live source and stores them in the bucket.
func (s *Service) FixSnapshots(ctx context.Context, keys []string) error {
	if s.live == nil {
		return ErrNoLiveSource
	}
	if err := storage.EnsureBucket(ctx, s.client, s.bucket); err != nil {
		return err
	}

	wanted := make(map[string]bool, len(keys))
	for _, k := range keys {
		wanted[k] = true
	}

	for _, r := range s.retrievers {
		key := gameapi.SnapshotKey(s.prefix, r.Endpoint())
		if !wanted[key] {
			continue
		}
		payload, err := s.live.Fetch(ctx, r.Endpoint())
		if err != nil {
			return err
		}
		// Never store a payload the storage source could not parse back.
		if _, err := entity.ParseDesigns(payload, r.KeyProperty()); err != nil {
			return fmt.Errorf("refusing to store %s: %w", key, err)
		}
		_, err = s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(payload), int64(len(payload)),
			minio.PutObjectOptions{ContentType: "application/json"})
		if err != nil {
			s.logger.Error("Failed to store snapshot", zap.String("key", key), zap.Error(err))
			return err
		}
		s.logger.Info("Stored snapshot", zap.String("key", key), zap.Int("bytes", len(payload)))
	}
	return nil
}

// CheckDrift compares every dataset served live with its bucket snapshot.
func (s *Service) CheckDrift(ctx context.Context) ([]checks.DriftResult, error) {
	if s.live == nil {
		return nil, ErrNoLiveSource
	}
	stored := gameapi.NewStorageSource(s.client, s.bucket, s.prefix)

	results := make([]checks.DriftResult, len(s.retrievers))
	g, gctx := errgroup.WithContext(ctx)
	for i, r := range s.retrievers {
		i, r := i, r
		g.Go(func() error {
			endpoint := r.Endpoint()
			live, err := fetchDesigns(gctx, s.live, endpoint, r.KeyProperty())
			if err != nil {
				return err
			}
			snapshot, err := fetchDesigns(gctx, stored, endpoint, r.KeyProperty())
			if err != nil && !storage.IsNotFound(err) {
				return err
			}
			results[i] = checks.CompareDatasets(endpoint.Name, stored.SnapshotKey(endpoint), live, snapshot)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func fetchDesigns(ctx context.Context, source entity.Source, endpoint entity.Endpoint, keyProperty string) (entity.DesignsData, error) {
	payload, err := source.Fetch(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	return entity.ParseDesigns(payload, keyProperty)
}

// CheckRoomChains reports room designs whose upgrade chain does not resolve.
func (s *Service) CheckRoomChains(ctx context.Context) (*checks.ChainReport, error) {
	data, err := s.rooms.Data(ctx)
	if err != nil {
		return nil, err
	}
	report := checks.CheckChains(data, room.KeyProperty, room.NameProperty, room.ParentProperty)
	if !report.OK() {
		s.logger.Warn("Broken room upgrade chains",
			zap.Int("missing_parents", len(report.MissingParents)),
			zap.Int("cycles", len(report.Cycles)))
	}
	return &report, nil
}

func (s *Service) endpoints() []entity.Endpoint {
	endpoints := make([]entity.Endpoint, 0, len(s.retrievers))
	for _, r := range s.retrievers {
		endpoints = append(endpoints, r.Endpoint())
	}
	return endpoints
}
