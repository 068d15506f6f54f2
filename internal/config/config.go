// Package config loads layered runtime configuration: built-in defaults, a
// YAML file, a .env file, then AUTOMAC_* environment variables. Command-line
// flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Transport selects how the tool server is exposed.
type Transport string

const (
	TransportStdio          Transport = "stdio"
	TransportStreamableHTTP Transport = "streamable-http"
	TransportSSE            Transport = "sse"
)

// Config holds the runtime configuration.
type Config struct {
	Transport     Transport     `yaml:"transport"`
	Addr          string        `yaml:"addr"`
	LogLevel      string        `yaml:"log_level"`
	LogFormat     string        `yaml:"log_format"`
	Backend       string        `yaml:"backend"`
	PollInterval  time.Duration `yaml:"poll_interval"`
	ScriptTimeout time.Duration `yaml:"script_timeout"`
	OCRLanguages  []string      `yaml:"ocr_languages"`
	OSAScriptPath string        `yaml:"osascript_path"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Transport:     TransportStdio,
		Addr:          ":8080",
		LogLevel:      "info",
		LogFormat:     "text",
		Backend:       "auto",
		PollInterval:  500 * time.Millisecond,
		ScriptTimeout: 30 * time.Second,
		OCRLanguages:  []string{"eng"},
		OSAScriptPath: "osascript",
	}
}

// DefaultPath returns ~/.config/automac/config.yaml, or "" when the home
// directory is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "automac", "config.yaml")
}

// Load builds a Config. path names the YAML file; when empty,
// $AUTOMAC_CONFIG and then DefaultPath are tried, and a missing file is not
// an error. An explicit path that does not exist is an error.
func Load(path string) (*Config, error) {
	// .env only fills variables that are not already set, so the real
	// environment still wins over it.
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = os.Getenv("AUTOMAC_CONFIG")
		explicit = path != ""
	}
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		if err := cfg.loadFile(path, explicit); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	c.Transport = Transport(getEnv("AUTOMAC_TRANSPORT", string(c.Transport)))
	c.Addr = getEnv("AUTOMAC_ADDR", c.Addr)
	c.LogLevel = getEnv("AUTOMAC_LOG_LEVEL", c.LogLevel)
	c.LogFormat = getEnv("AUTOMAC_LOG_FORMAT", c.LogFormat)
	c.Backend = getEnv("AUTOMAC_BACKEND", c.Backend)
	c.OSAScriptPath = getEnv("AUTOMAC_OSASCRIPT", c.OSAScriptPath)
	c.OCRLanguages = getEnvAsList("AUTOMAC_OCR_LANGUAGES", c.OCRLanguages)

	var err error
	if c.PollInterval, err = getEnvAsDuration("AUTOMAC_POLL_INTERVAL", c.PollInterval); err != nil {
		return err
	}
	if c.ScriptTimeout, err = getEnvAsDuration("AUTOMAC_SCRIPT_TIMEOUT", c.ScriptTimeout); err != nil {
		return err
	}
	return nil
}

// Validate checks every field.
func (c *Config) Validate() error {
	switch c.Transport {
	case TransportStdio, TransportStreamableHTTP, TransportSSE:
	default:
		return fmt.Errorf("invalid transport: %q (must be stdio, streamable-http, or sse)", c.Transport)
	}
	if c.Transport != TransportStdio && c.Addr == "" {
		return fmt.Errorf("addr is required for the %s transport", c.Transport)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log_format: %q (must be text or json)", c.LogFormat)
	}
	switch strings.ToLower(c.Backend) {
	case "", "auto", "native", "applescript":
	default:
		return fmt.Errorf("invalid backend: %q (must be auto, native, or applescript)", c.Backend)
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("poll_interval must be positive, got %s", c.PollInterval)
	}
	if c.ScriptTimeout <= 0 {
		return fmt.Errorf("script_timeout must be positive, got %s", c.ScriptTimeout)
	}
	if len(c.OCRLanguages) == 0 {
		return fmt.Errorf("ocr_languages must name at least one language")
	}
	if c.OSAScriptPath == "" {
		return fmt.Errorf("osascript_path cannot be empty")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %q (expected duration, e.g., '500ms', '30s')", key, value)
	}
	return d, nil
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
