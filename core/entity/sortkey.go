package entity

import (
	"strings"

	"pss-assistant/core/utils"
)

// chainIDWidth is the zero-padded width of each id in a chain sort key.
const chainIDWidth = 4

// SortKeyFunc computes the ordering key of a record within its dataset.
type SortKeyFunc func(info DesignInfo, data DesignsData) string

// Parents returns the ancestors of info ordered from the root down to the
// direct parent. A parent id of "0" or "" ends the chain, as do a missing
// parent record and a repeated id.
func Parents(info DesignInfo, data DesignsData, keyProperty, parentProperty string) []DesignInfo {
	var chain []DesignInfo
	seen := map[string]bool{info.Get(keyProperty): true}

	current := info
	for {
		parentID := current.Get(parentProperty)
		if parentID == "" || parentID == "0" || seen[parentID] {
			break
		}
		parent, ok := data[parentID]
		if !ok {
			break
		}
		seen[parentID] = true
		chain = append(chain, parent)
		current = parent
	}

	// Walked child to root; flip to root first.
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// ChainSortKey concatenates the zero-padded ids from the root ancestor down
// to info itself. A record's key always starts with its parent's key.
func ChainSortKey(info DesignInfo, data DesignsData, keyProperty, parentProperty string) string {
	var b strings.Builder
	for _, parent := range Parents(info, data, keyProperty, parentProperty) {
		b.WriteString(utils.ZeroPad(parent.Get(keyProperty), chainIDWidth))
	}
	b.WriteString(utils.ZeroPad(info.Get(keyProperty), chainIDWidth))
	return b.String()
}

// ChainSortKeyFunc binds ChainSortKey to the given id and parent properties.
func ChainSortKeyFunc(keyProperty, parentProperty string) SortKeyFunc {
	return func(info DesignInfo, data DesignsData) string {
		return ChainSortKey(info, data, keyProperty, parentProperty)
	}
}

// IDSortKeyFunc orders records by their numeric id.
func IDSortKeyFunc(keyProperty string) SortKeyFunc {
	return func(info DesignInfo, _ DesignsData) string {
		return utils.ZeroPad(info.Get(keyProperty), 10)
	}
}
