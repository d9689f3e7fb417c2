package room

import (
	_ "embed"

	"pss-assistant/core/entity"
)

//go:embed display_names.yaml
var displayNamesYAML []byte

// DisplayNames parses the embedded room property display names.
func DisplayNames() (entity.DisplayNames, error) {
	return entity.ParseDisplayNames(displayNamesYAML)
}
