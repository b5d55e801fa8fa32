package nurbs

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/hsiuhsiu/opennurbs-go/pkg/nurbs/logging"
)

// Config describes how curve documents are located and loaded. It is usually
// read from a JSON file with LoadConfig:
//
//	{"search_dirs": ["assets", "assets/fallback"], "strict": true, "log_level": "debug"}
type Config struct {
	// SearchDirs are consulted in order after the scope passed to Load.
	SearchDirs []string `json:"search_dirs"`

	// Strict enables Descriptor.Validate on the selected record.
	Strict bool `json:"strict"`

	// LogLevel is a log/slog level name. Empty means info.
	LogLevel string `json:"log_level"`
}

// LoadConfig reads and validates a JSON configuration file.
func LoadConfig(path string) (*Config, error) {
	absPath, err := SecurePath(path)
	if err != nil {
		return nil, fmt.Errorf("secure path: %w", err)
	}
	data, err := os.ReadFile(absPath) // #nosec G304 -- absPath validated by SecurePath
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal JSON: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that every search directory stays inside the working
// directory and that the log level parses.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("nil config")
	}
	for i, dir := range c.SearchDirs {
		if dir == "" {
			return fmt.Errorf("search_dirs[%d]: empty path", i)
		}
		if _, err := SecurePath(dir); err != nil {
			return fmt.Errorf("search_dirs[%d]: %w", i, err)
		}
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the configured slog level.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if c == nil || c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level: %w", err)
	}
	return level, nil
}

// NewLoader returns a Loader that searches the configured directories after
// the scope it is given.
func (c *Config) NewLoader(logger logging.Logger) *Loader {
	l := &Loader{Logger: logger}
	if c == nil {
		return l
	}
	l.Strict = c.Strict
	if len(c.SearchDirs) > 0 {
		fallbacks := make([]Scope, len(c.SearchDirs))
		for i, dir := range c.SearchDirs {
			fallbacks[i] = DirScope(dir)
		}
		l.Resolver = SearchPathResolver{Fallbacks: fallbacks}
	}
	return l
}

// SecurePath validates that a file path doesn't escape the working directory
// and returns its absolute form.
func SecurePath(path string) (string, error) {
	clean := filepath.Clean(path)
	absPath, err := filepath.Abs(clean)
	if err != nil {
		return "", fmt.Errorf("absolute path: %w", err)
	}
	base, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	rel, err := filepath.Rel(base, absPath)
	if err != nil {
		return "", fmt.Errorf("relative path: %w", err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return "", fmt.Errorf("path %q escapes working directory", path)
	}
	return absPath, nil
}
