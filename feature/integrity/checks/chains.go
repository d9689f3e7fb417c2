package checks

import (
	"slices"
	"strings"

	"pss-assistant/core/entity"
)

// MissingParent is a record whose parent id names no record.
type MissingParent struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ParentID string `json:"parent_id"`
}

// ChainReport lists broken upgrade chains of one dataset.
type ChainReport struct {
	Records        int             `json:"records"`
	MissingParents []MissingParent `json:"missing_parents"`
	// Cycles holds each cycle once, as ids starting from the smallest.
	Cycles [][]string `json:"cycles"`
}

// OK reports whether every chain resolves.
func (r ChainReport) OK() bool {
	return len(r.MissingParents) == 0 && len(r.Cycles) == 0
}

// CheckChains walks the parent links of every record in data.
func CheckChains(data entity.DesignsData, keyProperty, nameProperty, parentProperty string) ChainReport {
	report := ChainReport{
		Records:        len(data),
		MissingParents: []MissingParent{},
		Cycles:         [][]string{},
	}
	seenCycles := make(map[string]bool)

	for _, id := range data.SortedIDs() {
		info := data[id]
		parentID := info.Get(parentProperty)
		if parentID != "" && parentID != "0" {
			if _, ok := data[parentID]; !ok {
				report.MissingParents = append(report.MissingParents, MissingParent{
					ID:       id,
					Name:     info.Get(nameProperty),
					ParentID: parentID,
				})
			}
		}

		cycle := cycleFrom(id, data, parentProperty)
		if cycle == nil {
			continue
		}
		sig := cycleSignature(cycle)
		if !seenCycles[sig] {
			seenCycles[sig] = true
			report.Cycles = append(report.Cycles, cycle)
		}
	}

	return report
}

// cycleFrom returns the cycle reached from id, or nil when the chain ends.
func cycleFrom(id string, data entity.DesignsData, parentProperty string) []string {
	var path []string
	index := make(map[string]int)

	current := id
	for {
		if at, ok := index[current]; ok {
			return rotateToMin(path[at:])
		}
		index[current] = len(path)
		path = append(path, current)

		info, ok := data[current]
		if !ok {
			return nil
		}
		parentID := info.Get(parentProperty)
		if parentID == "" || parentID == "0" {
			return nil
		}
		if _, ok := data[parentID]; !ok {
			return nil
		}
		current = parentID
	}
}

func rotateToMin(cycle []string) []string {
	minAt := 0
	for i, id := range cycle {
		if compareIDs(id, cycle[minAt]) < 0 {
			minAt = i
		}
	}
	out := make([]string, 0, len(cycle))
	out = append(out, cycle[minAt:]...)
	return append(out, cycle[:minAt]...)
}

func cycleSignature(cycle []string) string {
	sorted := slices.Clone(cycle)
	slices.SortFunc(sorted, compareIDs)
	return strings.Join(sorted, ",")
}

// compareIDs orders numeric ids numerically.
func compareIDs(a, b string) int {
	if len(a) != len(b) {
		return len(a) - len(b)
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
