package entity

import (
	"sort"
	"strconv"
)

// DesignInfo is a single entity design record: a flat mapping of property
// names to raw string values. Nested objects are flattened with dots
// (MissileDesign.Volley).
type DesignInfo map[string]string

// Get returns the raw value of key, or an empty string.
func (d DesignInfo) Get(key string) string {
	return d[key]
}

// Lookup returns the value of key and whether it is present and non-empty.
func (d DesignInfo) Lookup(key string) (string, bool) {
	v, ok := d[key]
	return v, ok && v != ""
}

// DesignsData holds all design records of one kind keyed by design id.
type DesignsData map[string]DesignInfo

// SortedIDs returns the ids ordered numerically, non-numeric ids last.
func (d DesignsData) SortedIDs() []string {
	ids := make([]string, 0, len(d))
	for id := range d {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, errA := strconv.Atoi(ids[i])
		b, errB := strconv.Atoi(ids[j])
		switch {
		case errA == nil && errB == nil:
			return a < b
		case errA == nil:
			return true
		case errB == nil:
			return false
		default:
			return ids[i] < ids[j]
		}
	})
	return ids
}

// Related carries sibling datasets that transforms use to resolve
// cross-references, keyed by dataset name.
type Related map[string]DesignsData

// Info returns the record id of dataset name.
func (r Related) Info(name, id string) (DesignInfo, bool) {
	data, ok := r[name]
	if !ok {
		return nil, false
	}
	info, ok := data[id]
	return info, ok
}
