package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automac-mcp/automac/internal/model"
	"github.com/automac-mcp/automac/internal/platform"
	"github.com/automac-mcp/automac/internal/service"
	"github.com/automac-mcp/automac/internal/shortcut"
)

type fakeInput struct {
	clicks [][4]int
	typed  []string
	vs, hs []int
}

func (f *fakeInput) MoveMouse(x, y int) error { return nil }

func (f *fakeInput) Click(x, y int, b platform.MouseButton, count int) error {
	f.clicks = append(f.clicks, [4]int{x, y, int(b), count})
	return nil
}

func (f *fakeInput) TypeText(text string) error {
	f.typed = append(f.typed, text)
	return nil
}

func (f *fakeInput) ScrollVertical(n int) error {
	f.vs = append(f.vs, n)
	return nil
}

func (f *fakeInput) ScrollHorizontal(n int) error {
	f.hs = append(f.hs, n)
	return nil
}

type fakeDisplay struct{}

func (fakeDisplay) ScreenSize() (int, int, error) { return 40, 20, nil }

func (fakeDisplay) Capture() (image.Image, error) {
	return image.NewRGBA(image.Rect(0, 0, 80, 40)), nil
}

type fakeInspector struct{}

func (fakeInspector) Name() string { return "fake" }

func (fakeInspector) ActiveApp(context.Context) (*model.AppInfo, error) {
	return &model.AppInfo{Name: "Finder"}, nil
}

func (fakeInspector) ListWindows(context.Context) ([]model.Window, error) { return nil, nil }

func (fakeInspector) ScreenSize(context.Context) (model.Size, error) {
	return model.Size{Width: 80, Height: 40}, nil
}

type fakeScripts struct {
	ran []string
	out string
}

func (f *fakeScripts) Run(_ context.Context, script string) (string, error) {
	f.ran = append(f.ran, script)
	return f.out, nil
}

type harness struct {
	input   *fakeInput
	scripts *fakeScripts
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	for _, k := range []string{"AUTOMAC_CONFIG", "AUTOMAC_BACKEND", "AUTOMAC_LOG_LEVEL", "AUTOMAC_TRANSPORT"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	t.Setenv("HOME", t.TempDir())

	h := &harness{input: &fakeInput{}, scripts: &fakeScripts{}}
	log, _ := test.NewNullLogger()
	prev := newService
	newService = func() (*service.Service, error) {
		p := &platform.Provider{Inputter: h.input, Display: fakeDisplay{}, Inspector: fakeInspector{}}
		return service.Assemble(p, h.scripts, nil, nil, log), nil
	}
	t.Cleanup(func() { newService = prev })
	return h
}

func execute(t *testing.T, args ...string) (map[string]interface{}, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(append([]string{"--format", "json"}, args...))
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()

	var decoded map[string]interface{}
	if out.Len() > 0 && out.Bytes()[0] == '{' {
		require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	}
	return decoded, err
}

func TestClickCommand(t *testing.T) {
	h := newHarness(t)
	out, err := execute(t, "click", "--x", "20", "--y", "10", "--button", "right", "--double")
	require.NoError(t, err)
	assert.Equal(t, "Double clicked right at (20, 10)", out["message"])
	require.Len(t, h.input.clicks, 1)
	assert.Equal(t, [4]int{10, 5, int(platform.MouseRight), 2}, h.input.clicks[0])
}

func TestTypeCommand_PositionalWins(t *testing.T) {
	h := newHarness(t)
	out, err := execute(t, "type", "--text", "ignored", "hello")
	require.NoError(t, err)
	assert.Equal(t, "Typed: hello", out["message"])
	assert.Equal(t, []string{"hello"}, h.input.typed)
}

func TestScrollCommand(t *testing.T) {
	h := newHarness(t)
	_, err := execute(t, "scroll", "--dx", "-5", "--dy", "0")
	require.NoError(t, err)
	assert.Equal(t, []int{-5}, h.input.hs)
	assert.Empty(t, h.input.vs)
}

func TestShortcutCommand(t *testing.T) {
	h := newHarness(t)
	out, err := execute(t, "shortcut", shortcut.SelectAll.ToolName())
	require.NoError(t, err)
	assert.Equal(t, true, out["success"])
	assert.Equal(t, []string{shortcut.Script(shortcut.SelectAll)}, h.scripts.ran)

	_, err = execute(t, "shortcut", "no_such_shortcut")
	assert.Error(t, err)
}

func TestAppsCommand(t *testing.T) {
	h := newHarness(t)
	h.scripts.out = "Finder, Mail"
	out, err := execute(t, "apps")
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"Finder", "Mail"}, out["apps"])
}

func TestFocusCommand_AlreadyActive(t *testing.T) {
	newHarness(t)
	out, err := execute(t, "focus", "finder", "--timeout", "1")
	require.NoError(t, err)
	assert.Equal(t, true, out["success"])
}

func TestScreenshotCommand_WritesFile(t *testing.T) {
	newHarness(t)
	path := filepath.Join(t.TempDir(), "shot.png")
	_, err := execute(t, "screenshot", "--output", path, "--scale", "0.5")
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, format, err := image.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 40, cfg.Width)
}

func TestFailedEnvelopeExitsNonZero(t *testing.T) {
	newHarness(t)
	prev := newService
	newService = func() (*service.Service, error) {
		log, _ := test.NewNullLogger()
		log.SetLevel(logrus.PanicLevel)
		return service.Assemble(&platform.Provider{}, &fakeScripts{}, nil, nil, log), nil
	}
	defer func() { newService = prev }()

	out, err := execute(t, "layout")
	assert.ErrorIs(t, err, errFailed)
	assert.Equal(t, false, out["success"])
}
