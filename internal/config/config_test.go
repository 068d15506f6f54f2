package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"AUTOMAC_CONFIG", "AUTOMAC_TRANSPORT", "AUTOMAC_ADDR", "AUTOMAC_LOG_LEVEL",
	"AUTOMAC_LOG_FORMAT", "AUTOMAC_BACKEND", "AUTOMAC_OSASCRIPT",
	"AUTOMAC_OCR_LANGUAGES", "AUTOMAC_POLL_INTERVAL", "AUTOMAC_SCRIPT_TIMEOUT",
}

// isolate clears AUTOMAC_* variables, points HOME at an empty directory and
// runs the test from an empty working directory.
func isolate(t *testing.T) string {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	dir := t.TempDir()
	t.Setenv("HOME", filepath.Join(dir, "home"))
	t.Chdir(dir)
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "automac.yaml")
	writeFile(t, path, `
transport: streamable-http
addr: 127.0.0.1:9000
poll_interval: 250ms
ocr_languages: [eng, deu]
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, TransportStreamableHTTP, cfg.Transport)
	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.Equal(t, 250*time.Millisecond, cfg.PollInterval)
	assert.Equal(t, []string{"eng", "deu"}, cfg.OCRLanguages)
	assert.Equal(t, 30*time.Second, cfg.ScriptTimeout, "unset keys keep defaults")
}

func TestLoad_DefaultPathUnderHome(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "home", ".config", "automac", "config.yaml"), "backend: applescript\n")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "applescript", cfg.Backend)
}

func TestLoad_ConfigFromEnv(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	writeFile(t, path, "log_level: debug\n")
	t.Setenv("AUTOMAC_CONFIG", path)
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	dir := isolate(t)
	_, err := Load(filepath.Join(dir, "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "automac.yaml")
	writeFile(t, path, "transport: sse\nscript_timeout: 10s\n")
	t.Setenv("AUTOMAC_TRANSPORT", "stdio")
	t.Setenv("AUTOMAC_OCR_LANGUAGES", "eng, jpn")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, TransportStdio, cfg.Transport)
	assert.Equal(t, 10*time.Second, cfg.ScriptTimeout)
	assert.Equal(t, []string{"eng", "jpn"}, cfg.OCRLanguages)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, ".env"), "AUTOMAC_LOG_FORMAT=json\nAUTOMAC_BACKEND=native\n")
	t.Setenv("AUTOMAC_BACKEND", "applescript")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "applescript", cfg.Backend, "real environment wins over .env")
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"transport", "AUTOMAC_TRANSPORT", "websocket"},
		{"log format", "AUTOMAC_LOG_FORMAT", "xml"},
		{"backend", "AUTOMAC_BACKEND", "x11"},
		{"poll interval", "AUTOMAC_POLL_INTERVAL", "soon"},
		{"negative timeout", "AUTOMAC_SCRIPT_TIMEOUT", "-1s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			t.Setenv(tt.key, tt.val)
			_, err := Load("")
			assert.Error(t, err)
		})
	}
}

func TestLoad_BadYAML(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "bad.yaml")
	writeFile(t, path, "transport: [unterminated\n")
	_, err := Load(path)
	assert.Error(t, err)
}
