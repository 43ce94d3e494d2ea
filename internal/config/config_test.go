package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		path := writeConfigFile(t, `{
			"port": 9090,
			"context_window": 80,
			"parallelism": 8,
			"rate_limit_rps": 10,
			"log_json": true
		}`)

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, 9090, cfg.Port)
		assert.Equal(t, 80, cfg.ContextWindow)
		assert.Equal(t, 8, cfg.Parallelism)
		assert.Equal(t, 10.0, cfg.RateLimitRPS)
		assert.True(t, cfg.LogJSON)
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := LoadConfig("")
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})

	t.Run("invalid json", func(t *testing.T) {
		path := writeConfigFile(t, `{"port": `)

		_, err := LoadConfig(path)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config JSON")
	})
}

func TestFromEnv(t *testing.T) {
	t.Run("environment fills unset fields", func(t *testing.T) {
		t.Setenv("PORT", "7070")
		t.Setenv("LEXICON_PATH", "/tmp/lexicon.json")
		t.Setenv("BATCH_PARALLELISM", "16")
		t.Setenv("RATE_LIMIT_RPS", "2.5")

		var cfg Config
		cfg.FromEnv()

		assert.Equal(t, 7070, cfg.Port)
		assert.Equal(t, "/tmp/lexicon.json", cfg.LexiconPath)
		assert.Equal(t, 16, cfg.Parallelism)
		assert.Equal(t, 2.5, cfg.RateLimitRPS)
	})

	t.Run("explicit values win over environment", func(t *testing.T) {
		t.Setenv("PORT", "7070")

		cfg := Config{Port: 9090}
		cfg.FromEnv()

		assert.Equal(t, 9090, cfg.Port)
	})

	t.Run("invalid values are ignored", func(t *testing.T) {
		t.Setenv("PORT", "not-a-number")

		var cfg Config
		cfg.FromEnv()

		assert.Zero(t, cfg.Port)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"zero config is valid", Config{}, ""},
		{"typical config is valid", Config{Port: 8080, ContextWindow: 50, Parallelism: 4}, ""},
		{"port too large", Config{Port: 70000}, "port"},
		{"negative port", Config{Port: -1}, "port"},
		{"negative context window", Config{ContextWindow: -1}, "context_window"},
		{"negative context tokens", Config{ContextTokens: -5}, "context_tokens"},
		{"negative parallelism", Config{Parallelism: -2}, "parallelism"},
		{"negative rate limit", Config{RateLimitRPS: -1}, "rate_limit_rps"},
		{"negative burst", Config{RateLimitBurst: -1}, "rate_limit_burst"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}

	t.Run("lexicon path must exist", func(t *testing.T) {
		cfg := Config{LexiconPath: filepath.Join(t.TempDir(), "absent.json")}
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "lexicon file not found")
	})

	t.Run("existing lexicon path is valid", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "lexicon.json")
		require.NoError(t, os.WriteFile(path, []byte(`[]`), 0o644))

		cfg := Config{LexiconPath: path}
		assert.NoError(t, cfg.Validate())
	})
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		Port:          8080,
		ContextWindow: 50,
		ContextTokens: 5,
		Parallelism:   4,
		EntityLabels:  []string{"product", "organization"},
	}

	t.Run("unset fields take defaults", func(t *testing.T) {
		var cfg Config
		merged := cfg.MergeWithDefaults(defaults)

		assert.Equal(t, 8080, merged.Port)
		assert.Equal(t, 50, merged.ContextWindow)
		assert.Equal(t, 4, merged.Parallelism)
		assert.Equal(t, defaults.EntityLabels, merged.EntityLabels)
	})

	t.Run("set fields are kept", func(t *testing.T) {
		cfg := Config{Port: 9090, ContextWindow: 100}
		merged := cfg.MergeWithDefaults(defaults)

		assert.Equal(t, 9090, merged.Port)
		assert.Equal(t, 100, merged.ContextWindow)
		assert.Equal(t, 5, merged.ContextTokens)
	})
}
