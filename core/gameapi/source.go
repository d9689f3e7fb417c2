package gameapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"pss-assistant/core/entity"
	"pss-assistant/core/storage"

	"github.com/minio/minio-go/v7"
)

// HTTPSource fetches design payloads from the game API.
type HTTPSource struct {
	baseURL string
	client  *http.Client
}

// NewHTTPSource creates a source reading from baseURL.
func NewHTTPSource(baseURL string, timeout time.Duration) *HTTPSource {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPSource{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// Fetch implements entity.Source.
func (s *HTTPSource) Fetch(ctx context.Context, endpoint entity.Endpoint) ([]byte, error) {
	url := s.baseURL + "/" + strings.TrimPrefix(endpoint.Path, "/")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", endpoint.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request to %s returned status %d", endpoint.Path, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", endpoint.Path, err)
	}
	return body, nil
}

// StorageSource reads design snapshots ({prefix}/{name}.json) from the bucket.
type StorageSource struct {
	client storage.Client
	bucket string
	prefix string
}

// NewStorageSource creates a source reading snapshots from bucket.
func NewStorageSource(client storage.Client, bucket, prefix string) *StorageSource {
	return &StorageSource{client: client, bucket: bucket, prefix: strings.Trim(prefix, "/")}
}

// SnapshotKey returns the object name of the endpoint's snapshot.
func (s *StorageSource) SnapshotKey(endpoint entity.Endpoint) string {
	return SnapshotKey(s.prefix, endpoint)
}

// Fetch implements entity.Source.
func (s *StorageSource) Fetch(ctx context.Context, endpoint entity.Endpoint) ([]byte, error) {
	key := s.SnapshotKey(endpoint)
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot %s: %w", key, err)
	}
	defer obj.Close()

	body, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", key, err)
	}
	return body, nil
}

// SnapshotKey joins prefix and the endpoint's cache name into an object name.
func SnapshotKey(prefix string, endpoint entity.Endpoint) string {
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return endpoint.Name + ".json"
	}
	return prefix + "/" + endpoint.Name + ".json"
}

// NewSource builds the design source selected by cfg.Source.
func NewSource(cfg Config, client storage.Client, bucket string) (entity.Source, error) {
	switch cfg.Source {
	case SourceHTTP, "":
		return NewHTTPSource(cfg.BaseURL, time.Duration(cfg.TimeoutSeconds)*time.Second), nil
	case SourceStorage:
		if client == nil {
			return nil, fmt.Errorf("source %q requires a storage client", SourceStorage)
		}
		return NewStorageSource(client, bucket, cfg.SnapshotPrefix), nil
	default:
		return nil, fmt.Errorf("unknown design source %q", cfg.Source)
	}
}
