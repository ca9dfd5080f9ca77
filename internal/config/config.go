// Package config resolves run defaults from the environment and an optional
// .env file. Process environment variables win over values in the file;
// command-line flags, applied later by the cli package, win over both.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/joho/godotenv"
)

// DefaultEnvFile is the .env file read from the working directory.
const DefaultEnvFile = ".env"

// Environment keys.
const (
	KeyMark      = "MAZE_MARK"
	KeyLogLevel  = "MAZE_LOG_LEVEL"
	KeyLogFormat = "MAZE_LOG_FORMAT"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config holds the defaults a run starts from.
type Config struct {
	Mark      byte   // Marker written onto path cells
	LogLevel  string // debug, info, warn or error
	LogFormat string // text or json
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Mark:      '*',
		LogLevel:  "warn",
		LogFormat: "text",
	}
}

// Load reads envFile if it exists, overlays the process environment and
// validates the result. A missing file is not an error.
func Load(envFile string) (Config, error) {
	fileVals := map[string]string{}
	if envFile != "" {
		vals, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			fileVals = vals
		case errors.Is(err, fs.ErrNotExist):
			slog.Debug("env file not found, using environment only", "file", envFile)
		default:
			return Config{}, fmt.Errorf("config: reading %s: %w", envFile, err)
		}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileVals[key]
		return v, ok
	}

	cfg := Defaults()
	if v, ok := lookup(KeyMark); ok {
		mark, err := ParseMark(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", KeyMark, err)
		}
		cfg.Mark = mark
	}
	if v, ok := lookup(KeyLogLevel); ok {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := lookup(KeyLogFormat); ok {
		cfg.LogFormat = strings.ToLower(strings.TrimSpace(v))
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the log level and format.
func (c Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level %q: must be 'debug', 'info', 'warn', or 'error'", ErrInvalid, c.LogLevel)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("%w: log format %q: must be 'text' or 'json'", ErrInvalid, c.LogFormat)
	}

	return nil
}

// ParseMark accepts exactly one ASCII character that is neither a wall, a
// marker nor an empty-passage byte. Cells are single bytes, so a multi-byte
// character cannot fill one.
func ParseMark(s string) (byte, error) {
	if len(s) != 1 || s[0] >= utf8.RuneSelf {
		return 0, fmt.Errorf("%w: mark %q: must be a single ASCII character", ErrInvalid, s)
	}
	switch b := s[0]; b {
	case '#', 'S', 'E', ' ', '.', '\n', '\r':
		return 0, fmt.Errorf("%w: mark %q: reserved maze character", ErrInvalid, s)
	default:
		return b, nil
	}
}
