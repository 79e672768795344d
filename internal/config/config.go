// Package config loads the CLI configuration from a CUE file.
//
// The file is unified with an embedded #Config schema, so omitted fields
// take their defaults and unknown fields are rejected:
//
//	input_dir: "inputs"
//	ledger:    ".aoc/ledger.db"
//	log_level: "debug"
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

//go:embed schema.cue
var schemaSrc string

// DefaultPath is read when no --config flag is given.
const DefaultPath = "aoc.cue"

// Config holds the settings shared by every command.
type Config struct {
	InputDir string `json:"input_dir"`
	Ledger   string `json:"ledger"`
	LogLevel string `json:"log_level"`
}

// InputPath returns the conventional input file for a day.
func (c Config) InputPath(day int) string {
	return filepath.Join(c.InputDir, fmt.Sprintf("day%d.txt", day))
}

// SlogLevel converts LogLevel. Unknown values fall back to info.
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// Defaults returns the schema defaults.
func Defaults() (Config, error) {
	ctx := cuecontext.New()
	def, err := schema(ctx)
	if err != nil {
		return Config{}, err
	}
	return decode(def)
}

// Load reads the config at path. A missing file yields the defaults unless
// required is set, in which case it is an error.
func Load(path string, required bool) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !required {
		return Defaults()
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data, path)
}

// Parse compiles src as CUE and unifies it with the schema.
func Parse(src []byte, filename string) (Config, error) {
	ctx := cuecontext.New()
	def, err := schema(ctx)
	if err != nil {
		return Config{}, err
	}

	file := ctx.CompileBytes(src, cue.Filename(filename))
	if err := file.Err(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", filename, err)
	}

	iter, err := file.Fields()
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", filename, err)
	}
	for iter.Next() {
		if !def.LookupPath(cue.MakePath(iter.Selector())).Exists() {
			return Config{}, fmt.Errorf("config %s: unknown field %q", filename, iter.Selector().String())
		}
	}

	return decode(def.Unify(file))
}

func schema(ctx *cue.Context) (cue.Value, error) {
	v := ctx.CompileString(schemaSrc, cue.Filename("schema.cue"))
	if err := v.Err(); err != nil {
		return cue.Value{}, fmt.Errorf("config schema: %w", err)
	}
	return v.LookupPath(cue.ParsePath("#Config")), nil
}

func decode(v cue.Value) (Config, error) {
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	var cfg Config
	if err := v.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}
