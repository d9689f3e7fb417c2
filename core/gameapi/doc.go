// Package gameapi connects the design retrievers to their data sources.
//
// Designs are read either from the live game API (HTTPSource) or from JSON
// snapshot objects stored in the bucket (StorageSource); NewSource picks one
// based on configuration. The package also builds and checks wiki links.
package gameapi
