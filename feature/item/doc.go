// Package item renders item designs.
//
// Item designs are also the cross-reference dataset for room build
// requirements, so the retriever created here is shared with the room
// feature.
package item
