package server

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// Format is the default response format (text, embed).
	Format string `mapstructure:"format" default:"embed"`
}

const (
	FormatText  = "text"
	FormatEmbed = "embed"
)

// IsValidFormat checks if the configured response format is valid.
func (c Config) IsValidFormat() bool {
	return IsValidFormat(c.Format)
}

// IsValidFormat reports whether format names a supported response format.
func IsValidFormat(format string) bool {
	switch strings.ToLower(format) {
	case FormatText, FormatEmbed:
		return true
	default:
		return false
	}
}

// UseEmbeds resolves the requested format against the configured default.
// An empty or unknown request falls back to the server default.
func (c Config) UseEmbeds(requested string) bool {
	if IsValidFormat(requested) {
		return strings.ToLower(requested) == FormatEmbed
	}
	return strings.ToLower(c.Format) == FormatEmbed
}

// AppConfig returns the fiber settings shared by the server and handler tests.
// Path parameters are unescaped so "/rooms/Ion%20Cannon" matches "Ion Cannon".
func AppConfig() fiber.Config {
	return fiber.Config{
		DisableStartupMessage: true,
		UnescapePath:          true,
	}
}
