package entity

import "errors"

var (
	// ErrUnknownDisplayName is returned when a layout references a display
	// name key missing from its table.
	ErrUnknownDisplayName = errors.New("unknown display name key")
	// ErrInvalidName is returned for entity names that cannot be searched.
	ErrInvalidName = errors.New("invalid entity name")
	// ErrMalformedPayload is returned when a design payload cannot be decoded.
	ErrMalformedPayload = errors.New("malformed design payload")
)
