package focus

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automac-mcp/automac/internal/apperr"
)

func TestAvailableApps(t *testing.T) {
	r := &fakeRunner{out: "Finder, Safari, Visual Studio Code, Terminal"}
	c, _ := newTestController(r, nil)

	res := c.AvailableApps(context.Background())
	require.True(t, res.Success)
	assert.Equal(t, []string{"Finder", "Safari", "Visual Studio Code", "Terminal"}, res.Apps)
	assert.Equal(t, "Found 4 applications", res.Message)
	require.Len(t, r.scripts, 1)
	assert.Contains(t, r.scripts[0], "background only is false")
}

func TestAvailableApps_Failure(t *testing.T) {
	r := &fakeRunner{err: apperr.ScriptFailed("osascript", "System Events got an error", errors.New("exit status 1"))}
	c, _ := newTestController(r, nil)

	res := c.AvailableApps(context.Background())
	assert.False(t, res.Success)
	assert.Equal(t, "ScriptExecutionFailed", res.ErrorKind)
	assert.Equal(t, "Failed to get apps: System Events got an error", res.Message)
	assert.NotNil(t, res.Apps)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{}, SplitList(""))
	assert.Equal(t, []string{"Finder"}, SplitList("Finder"))
	assert.Equal(t, []string{"A", "B"}, SplitList(" A, B "))
}
