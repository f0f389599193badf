// Package config loads the numeric tool configuration from an optional CUE
// file, validated against an embedded #Config schema.
//
// Example numeric.cue:
//
//	encoding:  "US-ASCII"
//	take:      20
//	format:    "json"
//	store:     "runs.db"
//	log_level: "debug"
//
// Every field is optional; the schema supplies defaults.
package config

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"

	"github.com/roach88/numeric/internal/textenc"
)

// DefaultPath is the file Load reads when no path is given.
const DefaultPath = "numeric.cue"

// MaxTake is the largest take the schema accepts.
const MaxTake = 1_000_000

//go:embed schema.cue
var schemaSource []byte

// Config is the decoded configuration.
type Config struct {
	Encoding string `json:"encoding"`
	Take     int    `json:"take"`
	Format   string `json:"format"`
	Store    string `json:"store"`
	LogLevel string `json:"log_level"`
}

// Error is a configuration error, positioned in the CUE source when the
// position is known.
type Error struct {
	Message string
	Pos     token.Pos
}

func (e *Error) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Message)
	}
	return e.Message
}

// Default returns the schema defaults.
func Default() *Config {
	cfg, err := Parse(nil, "default.cue")
	if err != nil {
		// The embedded schema is valid on its own.
		panic(err)
	}
	return cfg
}

// Load reads and validates the CUE file at path. An empty path means
// DefaultPath; a missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data, path)
}

// Parse validates CUE source against #Config and decodes it. filename is
// used for error positions.
func Parse(data []byte, filename string) (*Config, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileBytes(schemaSource, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("config schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Config"))

	v := ctx.CompileBytes(data, cue.Filename(filename))
	if err := v.Err(); err != nil {
		return nil, cueError(err)
	}

	merged := def.Unify(v)
	if err := merged.Validate(cue.Concrete(true)); err != nil {
		return nil, cueError(err)
	}

	var cfg Config
	if err := merged.Decode(&cfg); err != nil {
		return nil, cueError(err)
	}
	return &cfg, nil
}

// cueError keeps the first CUE error and its position.
func cueError(err error) error {
	errs := errors.Errors(err)
	if len(errs) == 0 {
		return &Error{Message: err.Error()}
	}
	first := errs[0]
	e := &Error{Message: first.Error()}
	if positions := errors.Positions(first); len(positions) > 0 {
		e.Pos = positions[0]
	}
	return e
}

// TextEncoding resolves the configured encoding.
func (c *Config) TextEncoding() (*textenc.Encoding, error) {
	return textenc.Lookup(c.Encoding)
}

// SlogLevel maps log_level onto slog.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	}
	return slog.LevelWarn
}
