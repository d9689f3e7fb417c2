package checks

import (
	"fmt"
	"sort"

	"pss-assistant/core/entity"
)

// DriftResult compares the live dataset with its bucket snapshot.
type DriftResult struct {
	// Dataset is the cache name (RoomDesigns).
	Dataset string `json:"dataset"`
	// Key is the snapshot object key.
	Key             string `json:"key"`
	SnapshotPresent bool   `json:"snapshot_present"`
	LiveRecords     int    `json:"live_records"`
	SnapshotRecords int    `json:"snapshot_records"`
	// LiveOnly lists ids the snapshot lacks.
	LiveOnly []string `json:"live_only"`
	// SnapshotOnly lists ids no longer served live.
	SnapshotOnly []string `json:"snapshot_only"`
	// Mismatch describes differing fields, e.g. "12 RoomName: live=Lift snapshot=Lyft".
	Mismatch []string `json:"mismatch"`
}

// InSync reports whether the snapshot matches the live dataset.
func (r DriftResult) InSync() bool {
	return r.SnapshotPresent && len(r.LiveOnly) == 0 && len(r.SnapshotOnly) == 0 && len(r.Mismatch) == 0
}

// CompareDatasets builds the drift result of one dataset. A nil snapshot
// means the snapshot object does not exist.
func CompareDatasets(dataset, key string, live, snapshot entity.DesignsData) DriftResult {
	result := DriftResult{
		Dataset:         dataset,
		Key:             key,
		SnapshotPresent: snapshot != nil,
		LiveRecords:     len(live),
		SnapshotRecords: len(snapshot),
		LiveOnly:        []string{},
		SnapshotOnly:    []string{},
		Mismatch:        []string{},
	}

	for _, id := range live.SortedIDs() {
		stored, ok := snapshot[id]
		if !ok {
			result.LiveOnly = append(result.LiveOnly, id)
			continue
		}
		result.Mismatch = append(result.Mismatch, compareRecords(id, live[id], stored)...)
	}
	for _, id := range snapshot.SortedIDs() {
		if _, ok := live[id]; !ok {
			result.SnapshotOnly = append(result.SnapshotOnly, id)
		}
	}

	return result
}

func compareRecords(id string, live, stored entity.DesignInfo) []string {
	fields := make(map[string]bool, len(live))
	for k := range live {
		fields[k] = true
	}
	for k := range stored {
		fields[k] = true
	}
	names := make([]string, 0, len(fields))
	for k := range fields {
		names = append(names, k)
	}
	sort.Strings(names)

	var mismatch []string
	for _, name := range names {
		if live[name] != stored[name] {
			mismatch = append(mismatch, fmt.Sprintf("%s %s: live=%s snapshot=%s", id, name, live[name], stored[name]))
		}
	}
	return mismatch
}
