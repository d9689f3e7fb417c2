package item

import (
	"time"

	"pss-assistant/core/entity"

	"go.uber.org/zap"
)

const (
	// DesignsPath is the game API path listing all item designs.
	DesignsPath = "ItemService/ListItemDesigns2?languageKey=en"
	// CacheName names the item designs dataset.
	CacheName = "ItemDesigns"
	// KeyProperty is the item design id field.
	KeyProperty = "ItemDesignId"
	// NameProperty is the item display name field.
	NameProperty = "ItemDesignName"
	// DescriptionProperty is the item description field.
	DescriptionProperty = "ItemDesignDescription"
)

// RelatedName is the key under which item designs are handed to other
// entities' transforms.
const RelatedName = "items"

// RetrieverConfig describes the item designs dataset.
func RetrieverConfig(ttl time.Duration) entity.RetrieverConfig {
	return entity.RetrieverConfig{
		Endpoint:     entity.Endpoint{Name: CacheName, Path: DesignsPath},
		KeyProperty:  KeyProperty,
		NameProperty: NameProperty,
		TTL:          ttl,
	}
}

// NewRetriever creates the item designs retriever.
func NewRetriever(source entity.Source, ttl time.Duration, logger *zap.Logger) *entity.Retriever {
	return entity.NewRetriever(RetrieverConfig(ttl), source, logger)
}
