package crew

import (
	"time"

	"pss-assistant/core/entity"

	"go.uber.org/zap"
)

const (
	// DesignsPath is the game API path listing all character designs.
	DesignsPath = "CharacterService/ListAllCharacterDesigns2?languageKey=en"
	// CacheName names the character designs dataset.
	CacheName = "CharacterDesigns"
	// KeyProperty is the character design id field.
	KeyProperty = "CharacterDesignId"
	// NameProperty is the character display name field.
	NameProperty = "CharacterDesignName"

	// CollectionsPath is the game API path listing all collection designs.
	CollectionsPath = "CollectionService/ListAllCollectionDesigns?languageKey=en"
	// CollectionsCacheName names the collection designs dataset.
	CollectionsCacheName = "CollectionDesigns"
	// CollectionKeyProperty is the collection design id field.
	CollectionKeyProperty = "CollectionDesignId"
	// CollectionNameProperty is the collection display name field.
	CollectionNameProperty = "CollectionName"
)

// RelatedCollections is the key under which collection designs are handed
// to character transforms.
const RelatedCollections = "collections"

// RetrieverConfig describes the character designs dataset.
func RetrieverConfig(ttl time.Duration) entity.RetrieverConfig {
	return entity.RetrieverConfig{
		Endpoint:     entity.Endpoint{Name: CacheName, Path: DesignsPath},
		KeyProperty:  KeyProperty,
		NameProperty: NameProperty,
		TTL:          ttl,
	}
}

// CollectionsRetrieverConfig describes the collection designs dataset.
func CollectionsRetrieverConfig(ttl time.Duration) entity.RetrieverConfig {
	return entity.RetrieverConfig{
		Endpoint:     entity.Endpoint{Name: CollectionsCacheName, Path: CollectionsPath},
		KeyProperty:  CollectionKeyProperty,
		NameProperty: CollectionNameProperty,
		TTL:          ttl,
	}
}

// NewRetriever creates the character designs retriever.
func NewRetriever(source entity.Source, ttl time.Duration, logger *zap.Logger) *entity.Retriever {
	return entity.NewRetriever(RetrieverConfig(ttl), source, logger)
}

// NewCollectionsRetriever creates the collection designs retriever.
func NewCollectionsRetriever(source entity.Source, ttl time.Duration, logger *zap.Logger) *entity.Retriever {
	return entity.NewRetriever(CollectionsRetrieverConfig(ttl), source, logger)
}
