package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds jlv's viewer settings.
type Config struct {
	Tick         time.Duration
	MaxLineBytes int
	Fields       Fields
}

// Fields lists candidate record keys for each rendered column. The first key
// present with a string value wins.
type Fields struct {
	Level   []string
	Time    []string
	Message []string
	Context []string
}

const (
	defaultConfigPath   = "~/.config/jlv/config.toml"
	defaultTick         = 250 * time.Millisecond
	defaultMaxLineBytes = 1 << 20
	minTick             = 10 * time.Millisecond
)

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return defaultConfigPath
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Tick:         defaultTick,
		MaxLineBytes: defaultMaxLineBytes,
		Fields:       DefaultFields(),
	}
}

// DefaultFields returns the stock candidate keys.
func DefaultFields() Fields {
	return Fields{
		Level:   []string{"level_name", "level", "severity"},
		Time:    []string{"datetime", "time", "timestamp", "ts"},
		Message: []string{"message", "msg"},
		Context: []string{"context", "extra"},
	}
}

// Load locates and parses the jlv config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		TickMS       int `toml:"tick_ms"`
		MaxLineBytes int `toml:"max_line_bytes"`
		Fields       struct {
			Level   []string `toml:"level"`
			Time    []string `toml:"time"`
			Message []string `toml:"message"`
			Context []string `toml:"context"`
		} `toml:"fields"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	switch {
	case raw.TickMS < 0:
		return Config{}, fmt.Errorf("tick_ms must be positive, got %d", raw.TickMS)
	case raw.TickMS > 0:
		cfg.Tick = max(time.Duration(raw.TickMS)*time.Millisecond, minTick)
	}

	switch {
	case raw.MaxLineBytes < 0:
		return Config{}, fmt.Errorf("max_line_bytes must be positive, got %d", raw.MaxLineBytes)
	case raw.MaxLineBytes > 0:
		cfg.MaxLineBytes = raw.MaxLineBytes
	}

	cfg.Fields.Level = keysOr(raw.Fields.Level, cfg.Fields.Level)
	cfg.Fields.Time = keysOr(raw.Fields.Time, cfg.Fields.Time)
	cfg.Fields.Message = keysOr(raw.Fields.Message, cfg.Fields.Message)
	cfg.Fields.Context = keysOr(raw.Fields.Context, cfg.Fields.Context)

	return cfg, nil
}

// keysOr returns the trimmed, non-empty entries of keys, or fallback when
// none remain.
func keysOr(keys, fallback []string) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return ExpandPath(defaultConfigPath)
	}
	return ExpandPath(path)
}

// ExpandPath resolves a leading ~ to the home directory and makes the result
// absolute.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
