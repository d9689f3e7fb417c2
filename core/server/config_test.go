package server_test

import (
	"testing"

	"pss-assistant/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_IsValidFormat(t *testing.T) {
	tests := []struct {
		name   string
		format string
		want   bool
	}{
		{"Text", server.FormatText, true},
		{"Embed", server.FormatEmbed, true},
		{"UpperCase", "EMBED", true},
		{"Invalid", "xml", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{Format: tt.format}
			assert.Equal(t, tt.want, c.IsValidFormat())
		})
	}
}

func TestConfig_UseEmbeds(t *testing.T) {
	embedDefault := server.Config{Format: server.FormatEmbed}
	textDefault := server.Config{Format: server.FormatText}

	assert.True(t, embedDefault.UseEmbeds(""))
	assert.False(t, embedDefault.UseEmbeds("text"))
	assert.False(t, textDefault.UseEmbeds("bogus"))
	assert.True(t, textDefault.UseEmbeds("embed"))
}

func TestAppConfig(t *testing.T) {
	cfg := server.AppConfig()

	assert.True(t, cfg.UnescapePath)
	assert.True(t, cfg.DisableStartupMessage)
}
