package gameapi

import "time"

const (
	// SourceHTTP reads designs from the live game API.
	SourceHTTP = "http"
	// SourceStorage reads designs from snapshot objects in the bucket.
	SourceStorage = "storage"
)

// Config holds game API and design cache configuration.
type Config struct {
	// BaseURL is the game API root.
	BaseURL string `mapstructure:"base_url" default:"https://api.pixelstarships.com"`
	// Source selects where designs are read from: http or storage.
	Source string `mapstructure:"source" default:"http"`
	// SnapshotPrefix is the bucket folder holding design snapshots.
	SnapshotPrefix string `mapstructure:"snapshot_prefix" default:"designs"`
	// CacheTTL is how long fetched designs stay fresh.
	CacheTTL time.Duration `mapstructure:"cache_ttl" default:"15m"`
	// TimeoutSeconds bounds each API request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// WikiBaseURL is prepended to wiki page names.
	WikiBaseURL string `mapstructure:"wiki_base_url" default:"https://pixelstarships.fandom.com/wiki/"`
	// CheckLinks verifies wiki links with a HEAD request before showing them.
	CheckLinks bool `mapstructure:"check_links" default:"true"`
}
