package wiki

import (
	"errors"
	"slices"
)

// NotAllowedMessage is shown to callers rejected by AssertAllowed.
const NotAllowedMessage = "You are not allowed to use this command."

var (
	// ErrNotAllowed is returned when a caller may not run an export.
	ErrNotAllowed = errors.New("caller is not allowed to export wiki data")
	// ErrUnknownEntity is returned for export requests naming no dataset.
	ErrUnknownEntity = errors.New("unknown wiki entity")
)

// Caller identifies who asks for an export.
type Caller struct {
	UserID  string
	GuildID string
}

// AssertAllowed permits owners, members of allow-listed guilds and
// allow-listed users.
func AssertAllowed(cfg Config, caller Caller) error {
	if caller.UserID != "" && slices.Contains(cfg.Owners, caller.UserID) {
		return nil
	}
	if caller.GuildID != "" && slices.Contains(cfg.Guilds, caller.GuildID) {
		return nil
	}
	if caller.UserID != "" && slices.Contains(cfg.Users, caller.UserID) {
		return nil
	}
	return ErrNotAllowed
}
