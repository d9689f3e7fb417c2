// Package entity provides the generic design-record pipeline shared by all
// entity kinds: retrieval, caching, searching and rendering.
//
// # Records
//
// A DesignInfo is one flat record of string values keyed by property name.
// DesignsData holds a whole dataset keyed by design id. Datasets are
// fetched through a Source (game API or snapshot bucket) and cached by a
// Retriever until their TTL runs out; concurrent readers share one fetch.
//
// # Rendering
//
// A Layout is a declarative list of DetailProperty values. Each property
// resolves a label (possibly per subtype through a DisplayName table),
// runs its TransformFunc and is dropped when the value is absent and
// OmitIfNone is set, or when its AllowedTypes exclude the record subtype.
// The resulting Details render as chat text lines or embeds; a Collection
// switches to a one-line form above its big-set threshold.
//
// # Ordering
//
// ChainSortKey groups upgrade chains: the key of a record is the
// concatenation of the zero-padded ids from its root ancestor down to
// itself, so every chain sorts contiguously from root to leaf.
package entity
