package wiki

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"time"

	"pss-assistant/core/entity"
	"pss-assistant/core/metrics"
	"pss-assistant/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

const timestampLayout = "20060102-150405"

// Service exports design datasets as Lua data files for the wiki.
type Service struct {
	cfg        Config
	retrievers map[string]*entity.Retriever
	store      *Store
	client     storage.Client
	bucket     string
	logger     *zap.Logger
	now        func() time.Time
}

// NewService creates a new wiki service. retrievers maps export entity
// names (rooms, items) to their datasets. store and client are optional.
func NewService(cfg Config, retrievers map[string]*entity.Retriever, store *Store, client storage.Client, bucket string, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		cfg:        cfg,
		retrievers: retrievers,
		store:      store,
		client:     client,
		bucket:     bucket,
		logger:     logger,
		now:        time.Now,
	}
}

// Entities returns the exportable entity names, sorted.
func (s *Service) Entities() []string {
	names := make([]string, 0, len(s.retrievers))
	for name := range s.retrievers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FileName returns the export file name for entityName at t (UTC).
func FileName(entityName string, t time.Time) string {
	return fmt.Sprintf("wiki_%s_data_%s.lua", entityName, t.UTC().Format(timestampLayout))
}

// Export exports the dataset registered as entityName.
func (s *Service) Export(ctx context.Context, entityName string) (*Export, error) {
	retriever, ok := s.retrievers[entityName]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEntity, entityName)
	}
	return s.CreateDataLuaFile(ctx, retriever, entityName)
}

// CreateDataLuaFile writes the retriever's dataset to a timestamped Lua file
// in the output directory, validates it, and optionally uploads and
// records it.
func (s *Service) CreateDataLuaFile(ctx context.Context, retriever *entity.Retriever, entityName string) (export *Export, err error) {
	defer func() {
		metrics.WikiExports.WithLabelValues(entityName, metrics.ResultLabel(err)).Inc()
	}()

	data, err := retriever.Data(ctx)
	if err != nil {
		return nil, err
	}
	src := EncodeLua(data)
	if err := ValidateLua(src, len(data)); err != nil {
		return nil, fmt.Errorf("generated invalid lua for %s: %w", entityName, err)
	}

	fileName := FileName(entityName, s.now())
	if err := os.MkdirAll(s.cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	filePath := filepath.Join(s.cfg.OutputDir, fileName)
	if err := os.WriteFile(filePath, []byte(src), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", filePath, err)
	}

	export = &Export{
		Entity:   entityName,
		FileName: filePath,
		Records:  len(data),
		Bytes:    len(src),
	}

	if s.cfg.Upload && s.client != nil {
		key, err := s.upload(ctx, fileName, src)
		if err != nil {
			return nil, err
		}
		export.ObjectKey = key
	}

	if s.store != nil {
		if err := s.store.Create(ctx, export); err != nil {
			return nil, err
		}
	}

	s.logger.Info("Wiki data exported",
		zap.String("entity", entityName),
		zap.String("file", filePath),
		zap.Int("records", export.Records))
	return export, nil
}

func (s *Service) upload(ctx context.Context, fileName, src string) (string, error) {
	if err := storage.EnsureBucket(ctx, s.client, s.bucket); err != nil {
		return "", err
	}
	key := path.Join(s.cfg.UploadPrefix, fileName)
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader([]byte(src)), int64(len(src)),
		minio.PutObjectOptions{ContentType: "text/x-lua"})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return key, nil
}

// History lists recorded exports. It fails when no database is configured.
func (s *Service) History(ctx context.Context, entityName string, limit int) ([]Export, error) {
	if s.store == nil {
		return nil, fmt.Errorf("export history requires a database")
	}
	return s.store.List(ctx, entityName, limit)
}
