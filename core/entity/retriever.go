package entity

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"pss-assistant/core/metrics"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Endpoint identifies one design dataset at its source.
type Endpoint struct {
	// Name is the cache name, also used as snapshot object name (RoomDesigns).
	Name string
	// Path is the game API path (RoomService/ListRoomDesigns2?languageKey=en).
	Path string
}

// Source fetches the raw payload of a design dataset.
type Source interface {
	Fetch(ctx context.Context, endpoint Endpoint) ([]byte, error)
}

// RetrieverConfig describes one design dataset.
type RetrieverConfig struct {
	Endpoint
	// KeyProperty names the design id field (RoomDesignId).
	KeyProperty string
	// NameProperty names the display name field (RoomName).
	NameProperty string
	// SearchProperties are extra fields matched by name searches; only the
	// text before the first colon is compared.
	SearchProperties []string
	// SortKey orders search results. Defaults to the numeric id.
	SortKey SortKeyFunc
	// TTL is how long a snapshot stays fresh. Zero disables caching.
	TTL time.Duration
}

// snapshot is an immutable, fully fetched dataset.
type snapshot struct {
	data  DesignsData
	built time.Time
	ttl   time.Duration
}

func (s *snapshot) isExpired() bool {
	if s.ttl == 0 {
		return true
	}
	return time.Since(s.built) > s.ttl
}

// Retriever fetches and caches one design dataset.
type Retriever struct {
	cfg    RetrieverConfig
	source Source
	logger *zap.Logger

	mu   sync.RWMutex
	snap *snapshot
	sf   singleflight.Group
}

// NewRetriever creates a retriever reading cfg's endpoint from source.
func NewRetriever(cfg RetrieverConfig, source Source, logger *zap.Logger) *Retriever {
	if cfg.SortKey == nil {
		cfg.SortKey = IDSortKeyFunc(cfg.KeyProperty)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Retriever{
		cfg:    cfg,
		source: source,
		logger: logger.With(zap.String("retriever", cfg.Name)),
	}
}

// Name returns the dataset's cache name.
func (r *Retriever) Name() string {
	return r.cfg.Name
}

// Endpoint returns where the dataset is fetched from.
func (r *Retriever) Endpoint() Endpoint {
	return r.cfg.Endpoint
}

// KeyProperty returns the design id field.
func (r *Retriever) KeyProperty() string {
	return r.cfg.KeyProperty
}

// NameProperty returns the display name field.
func (r *Retriever) NameProperty() string {
	return r.cfg.NameProperty
}

// Data returns the cached dataset, fetching it when missing or expired.
// Concurrent callers share a single fetch.
func (r *Retriever) Data(ctx context.Context) (DesignsData, error) {
	r.mu.RLock()
	snap := r.snap
	r.mu.RUnlock()

	if snap != nil && !snap.isExpired() {
		metrics.RetrieverCacheHits.WithLabelValues(r.cfg.Name).Inc()
		return snap.data, nil
	}

	result, err, _ := r.sf.Do(r.cfg.Name, func() (any, error) {
		r.mu.RLock()
		snap := r.snap
		r.mu.RUnlock()
		if snap != nil && !snap.isExpired() {
			return snap, nil
		}

		fresh, err := r.fetch(ctx)
		if err != nil {
			return nil, err
		}

		r.mu.Lock()
		r.snap = fresh
		r.mu.Unlock()
		return fresh, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*snapshot).data, nil
}

func (r *Retriever) fetch(ctx context.Context) (*snapshot, error) {
	start := time.Now()
	payload, err := r.source.Fetch(ctx, r.cfg.Endpoint)
	if err != nil {
		metrics.RetrieverFetches.WithLabelValues(r.cfg.Name, metrics.ResultError).Inc()
		return nil, fmt.Errorf("failed to fetch %s: %w", r.cfg.Name, err)
	}

	data, err := ParseDesigns(payload, r.cfg.KeyProperty)
	if err != nil {
		metrics.RetrieverFetches.WithLabelValues(r.cfg.Name, metrics.ResultError).Inc()
		return nil, fmt.Errorf("failed to parse %s: %w", r.cfg.Name, err)
	}

	metrics.RetrieverFetches.WithLabelValues(r.cfg.Name, metrics.ResultOK).Inc()
	metrics.RetrieverRecords.WithLabelValues(r.cfg.Name).Set(float64(len(data)))
	r.logger.Debug("Designs fetched",
		zap.Int("records", len(data)),
		zap.Duration("took", time.Since(start)))

	return &snapshot{data: data, built: time.Now(), ttl: r.cfg.TTL}, nil
}

// Invalidate drops the cached snapshot so the next read refetches.
func (r *Retriever) Invalidate() {
	r.mu.Lock()
	r.snap = nil
	r.mu.Unlock()
}

// InfoByID returns the record with design id id.
func (r *Retriever) InfoByID(ctx context.Context, id string) (DesignInfo, bool, error) {
	data, err := r.Data(ctx)
	if err != nil {
		return nil, false, err
	}
	info, ok := data[id]
	return info, ok, nil
}

// InfosByName searches the dataset by name.
func (r *Retriever) InfosByName(ctx context.Context, name string) ([]DesignInfo, error) {
	data, err := r.Data(ctx)
	if err != nil {
		return nil, err
	}
	return r.Find(data, name), nil
}

// Find searches data case-insensitively. Exact matches on the name or a
// search property win over substring matches. Results are ordered by the
// configured sort key.
func (r *Retriever) Find(data DesignsData, name string) []DesignInfo {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return nil
	}

	var exact, partial []DesignInfo
	for _, info := range data {
		isExact, isPartial := false, false
		for _, candidate := range r.searchValues(info) {
			c := strings.ToLower(candidate)
			if c == needle {
				isExact = true
				break
			}
			if strings.Contains(c, needle) {
				isPartial = true
			}
		}
		switch {
		case isExact:
			exact = append(exact, info)
		case isPartial:
			partial = append(partial, info)
		}
	}

	found := exact
	if len(found) == 0 {
		found = partial
	}
	r.sortInfos(found, data)
	return found
}

func (r *Retriever) searchValues(info DesignInfo) []string {
	values := make([]string, 0, 1+len(r.cfg.SearchProperties))
	if v, ok := info.Lookup(r.cfg.NameProperty); ok {
		values = append(values, v)
	}
	for _, p := range r.cfg.SearchProperties {
		if v, ok := info.Lookup(p); ok {
			if sv := SearchValue(v); sv != "" {
				values = append(values, sv)
			}
		}
	}
	return values
}

func (r *Retriever) sortInfos(infos []DesignInfo, data DesignsData) {
	keys := make(map[string]string, len(infos))
	for _, info := range infos {
		keys[info.Get(r.cfg.KeyProperty)] = r.cfg.SortKey(info, data)
	}
	sort.SliceStable(infos, func(i, j int) bool {
		a, b := infos[i].Get(r.cfg.KeyProperty), infos[j].Get(r.cfg.KeyProperty)
		if keys[a] != keys[b] {
			return keys[a] < keys[b]
		}
		return a < b
	})
}

// Sorted returns every record of data ordered by the configured sort key.
func (r *Retriever) Sorted(data DesignsData) []DesignInfo {
	infos := make([]DesignInfo, 0, len(data))
	for _, info := range data {
		infos = append(infos, info)
	}
	r.sortInfos(infos, data)
	return infos
}
