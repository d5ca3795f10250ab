package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/brand-styleguide/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_ValidJSON(t *testing.T) {
	path := writeConfig(t, `{
		"url": "https://acme.com",
		"out": "acme.html",
		"max_repair_attempts": 3,
		"quality_threshold": 90,
		"use_browser": true,
		"redis_url": "redis://localhost:6379/0",
		"personality": {"formality": 4, "tone": "measured"}
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "https://acme.com", cfg.URL)
	assert.Equal(t, "acme.html", cfg.Out)
	assert.Equal(t, 3, cfg.MaxRepairAttempts)
	assert.Equal(t, 90, cfg.QualityThreshold)
	assert.True(t, cfg.UseBrowser)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	require.NotNil(t, cfg.Personality)
	assert.Equal(t, 4, *cfg.Personality.Formality)
	assert.Nil(t, cfg.Personality.Energy)
	assert.Equal(t, "measured", *cfg.Personality.Tone)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig("")
	assert.ErrorContains(t, err, "config path is empty")

	_, err = LoadConfig("/nonexistent/path/config.json")
	assert.ErrorContains(t, err, "failed to read config file")

	_, err = LoadConfig(writeConfig(t, `{ invalid json }`))
	assert.ErrorContains(t, err, "failed to parse config JSON")
}

func TestValidate(t *testing.T) {
	htmlFile := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(htmlFile, []byte("<html></html>"), 0o644))
	tooFormal := 7

	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"empty", Config{}, ""},
		{"url", Config{URL: "https://acme.com"}, ""},
		{"existing file", Config{HTMLFile: htmlFile}, ""},
		{"both inputs", Config{URL: "https://acme.com", HTMLFile: htmlFile}, "mutually exclusive"},
		{"missing file", Config{HTMLFile: "/nonexistent/page.html"}, "html file not found"},
		{"negative attempts", Config{MaxRepairAttempts: -1}, "max_repair_attempts"},
		{"threshold range", Config{QualityThreshold: 101}, "quality_threshold"},
		{"bad personality", Config{Personality: &types.PersonalityOverride{Formality: &tooFormal}}, "invalid personality"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := &Config{URL: "https://acme.com", QualityThreshold: 70}
	merged := cfg.MergeWithDefaults(Config{
		URL:         "https://other.com",
		APIKey:      "key",
		DatabaseURL: "postgres://localhost/sg",
	})

	assert.Equal(t, "https://acme.com", merged.URL)
	assert.Equal(t, "key", merged.APIKey)
	assert.Equal(t, "postgres://localhost/sg", merged.DatabaseURL)
	assert.Equal(t, 70, merged.QualityThreshold)
	assert.Equal(t, DefaultMaxRepairAttempts, merged.MaxRepairAttempts)
	assert.Equal(t, DefaultOutput, merged.Out)
	assert.Equal(t, "", cfg.APIKey, "receiver is not modified")
}

func TestFromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "gk")
	t.Setenv("DATABASE_URL", "postgres://db")
	t.Setenv("REDIS_URL", "redis://cache")

	env := FromEnv()
	assert.Equal(t, "gk", env.APIKey)
	assert.Equal(t, "postgres://db", env.DatabaseURL)
	assert.Equal(t, "redis://cache", env.RedisURL)
}
