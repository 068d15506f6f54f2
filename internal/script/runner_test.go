package script

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/automac-mcp/automac/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeInterpreter writes a shell script standing in for osascript.
func fakeInterpreter(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script interpreter not available on windows")
	}
	path := filepath.Join(t.TempDir(), "osascript")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return path
}

func TestRunner_ReturnsTrimmedStdout(t *testing.T) {
	bin := fakeInterpreter(t, `echo "  Finder  "`)
	out, err := NewRunner(bin, time.Second).Run(context.Background(), "beep")
	require.NoError(t, err)
	assert.Equal(t, "Finder", out)
}

func TestRunner_PassesScriptAsArgument(t *testing.T) {
	bin := fakeInterpreter(t, `printf '%s|' "$@"`)
	r := NewRunner(bin, time.Second)

	out, err := r.Run(context.Background(), `tell application "Finder" to activate`)
	require.NoError(t, err)
	assert.Equal(t, `-e|tell application "Finder" to activate|`, out)

	out, err = r.RunJS(context.Background(), "1+1")
	require.NoError(t, err)
	assert.Equal(t, "-l|JavaScript|-e|1+1|", out)
}

func TestRunner_NonZeroExitCarriesStderr(t *testing.T) {
	bin := fakeInterpreter(t, `echo "execution error: Not authorised (-1743)" >&2; exit 1`)
	_, err := NewRunner(bin, time.Second).Run(context.Background(), "x")
	require.Error(t, err)
	assert.Equal(t, apperr.ScriptExecutionFailed, apperr.KindOf(err))
	assert.Equal(t, "execution error: Not authorised (-1743)", apperr.Detail(err))
}

func TestRunner_Timeout(t *testing.T) {
	bin := fakeInterpreter(t, `sleep 5`)
	_, err := NewRunner(bin, 50*time.Millisecond).Run(context.Background(), "x")
	require.Error(t, err)
	assert.Equal(t, apperr.Timeout, apperr.KindOf(err))
}

func TestRunner_MissingBinary(t *testing.T) {
	bin := filepath.Join(t.TempDir(), "does-not-exist")
	_, err := NewRunner(bin, time.Second).Run(context.Background(), "x")
	require.Error(t, err)
	assert.Equal(t, apperr.BackendUnavailable, apperr.KindOf(err))
}

func TestNewRunner_Defaults(t *testing.T) {
	r := NewRunner("", 0)
	assert.Equal(t, "osascript", r.Binary)
	assert.Equal(t, DefaultTimeout, r.Timeout)
}

func TestQuote(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Safari", `"Safari"`},
		{`Say "hi"`, `"Say \"hi\""`},
		{`back\slash`, `"back\\slash"`},
		{`x" to quit --`, `"x\" to quit --"`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Quote(tt.in), "Quote(%q)", tt.in)
	}
}

func TestSystemEvents(t *testing.T) {
	assert.Equal(t,
		"tell application \"System Events\"\n    keystroke return\nend tell",
		SystemEvents("keystroke return"))
}
