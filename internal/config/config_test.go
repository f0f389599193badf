package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "UTF-8", cfg.Encoding)
	assert.Equal(t, 10, cfg.Take)
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, "", cfg.Store)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, slog.LevelWarn, cfg.SlogLevel())
}

func TestParse(t *testing.T) {
	src := []byte(`
encoding:  "US-ASCII"
take:      3
format:    "json"
store:     "runs.db"
log_level: "debug"
`)
	cfg, err := Parse(src, "numeric.cue")
	require.NoError(t, err)
	assert.Equal(t, "US-ASCII", cfg.Encoding)
	assert.Equal(t, 3, cfg.Take)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "runs.db", cfg.Store)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())

	enc, err := cfg.TextEncoding()
	require.NoError(t, err)
	assert.Equal(t, "US-ASCII", enc.Name())
}

func TestParsePartial(t *testing.T) {
	cfg, err := Parse([]byte(`take: 25`), "numeric.cue")
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.Take)
	assert.Equal(t, "UTF-8", cfg.Encoding)
	assert.Equal(t, "text", cfg.Format)
}

func TestParseMaximumTake(t *testing.T) {
	cfg, err := Parse([]byte(`take: 1000000`), "numeric.cue")
	require.NoError(t, err)
	assert.Equal(t, MaxTake, cfg.Take)
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"non-positive take", `take: 0`},
		{"take above maximum", `take: 1000001`},
		{"take type", `take: "ten"`},
		{"unknown format", `format: "xml"`},
		{"unknown level", `log_level: "trace"`},
		{"syntax", `take: `},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src), "numeric.cue")
			require.Error(t, err)
			var cfgErr *Error
			assert.True(t, errors.As(err, &cfgErr), "got %T", err)
			assert.NotEmpty(t, err.Error())
		})
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.cue"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "numeric.cue")
	require.NoError(t, os.WriteFile(path, []byte(`format: "json"`+"\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Format)
}

func TestUnknownEncoding(t *testing.T) {
	cfg, err := Parse([]byte(`encoding: "no-such-charset"`), "numeric.cue")
	require.NoError(t, err)
	_, err = cfg.TextEncoding()
	assert.Error(t, err)
}
