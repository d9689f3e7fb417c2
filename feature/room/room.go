package room

import (
	"sort"
	"time"

	"pss-assistant/core/entity"

	"go.uber.org/zap"
)

const (
	// DesignsPath is the game API path listing all room designs.
	DesignsPath = "RoomService/ListRoomDesigns2?languageKey=en"
	// CacheName names the room designs dataset.
	CacheName = "RoomDesigns"
	// KeyProperty is the room design id field.
	KeyProperty = "RoomDesignId"
	// NameProperty is the room display name field.
	NameProperty = "RoomName"
	// ShortNameProperty holds "SHORT:Long" names such as "ION:Ion Cannon".
	ShortNameProperty = "RoomShortName"
	// TypeProperty is the room subtype field.
	TypeProperty = "RoomType"
	// ParentProperty links a room to the design it upgrades from.
	ParentProperty = "UpgradeFromRoomDesignId"

	// PurchasesPath is the game API path listing room purchase options.
	PurchasesPath = "RoomService/ListRoomDesignPurchase?languageKey=en"
	// PurchasesCacheName names the room purchases dataset.
	PurchasesCacheName = "RoomDesignPurchases"
	// PurchaseKeyProperty is the room purchase id field.
	PurchaseKeyProperty = "RoomDesignPurchaseId"
)

// capacityPerTickUnits maps room types to the unit of their capacity value.
var capacityPerTickUnits = map[string]string{
	"Lift":    " pixel/s",
	"Radar":   "s",
	"Stealth": "s",
}

// RetrieverConfig describes the room designs dataset. Results are ordered
// along upgrade chains.
func RetrieverConfig(ttl time.Duration) entity.RetrieverConfig {
	return entity.RetrieverConfig{
		Endpoint:         entity.Endpoint{Name: CacheName, Path: DesignsPath},
		KeyProperty:      KeyProperty,
		NameProperty:     NameProperty,
		SearchProperties: []string{ShortNameProperty},
		SortKey:          entity.ChainSortKeyFunc(KeyProperty, ParentProperty),
		TTL:              ttl,
	}
}

// PurchasesRetrieverConfig describes the room purchases dataset.
func PurchasesRetrieverConfig(ttl time.Duration) entity.RetrieverConfig {
	return entity.RetrieverConfig{
		Endpoint:     entity.Endpoint{Name: PurchasesCacheName, Path: PurchasesPath},
		KeyProperty:  PurchaseKeyProperty,
		NameProperty: NameProperty,
		TTL:          ttl,
	}
}

// NewRetriever creates the room designs retriever.
func NewRetriever(source entity.Source, ttl time.Duration, logger *zap.Logger) *entity.Retriever {
	return entity.NewRetriever(RetrieverConfig(ttl), source, logger)
}

// NewPurchasesRetriever creates the room purchases retriever.
func NewPurchasesRetriever(source entity.Source, ttl time.Duration, logger *zap.Logger) *entity.Retriever {
	return entity.NewRetriever(PurchasesRetrieverConfig(ttl), source, logger)
}

// AllowedShortNames returns the distinct room short names in data, sorted.
// Short names may be searched even though they are shorter than the
// usual minimum name length.
func AllowedShortNames(data entity.DesignsData) []string {
	seen := make(map[string]bool)
	var names []string
	for _, info := range data {
		raw, ok := info.Lookup(ShortNameProperty)
		if !ok {
			continue
		}
		short := entity.SearchValue(raw)
		if short == "" || seen[short] {
			continue
		}
		seen[short] = true
		names = append(names, short)
	}
	sort.Strings(names)
	return names
}
