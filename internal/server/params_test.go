package server

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/automac-mcp/automac/internal/apperr"
)

func TestParamHelpers(t *testing.T) {
	params := map[string]interface{}{
		"s":   "hello",
		"n":   float64(7.9),
		"i":   3,
		"b":   true,
		"num": 12,
	}

	assert.Equal(t, "hello", stringParam(params, "s", ""))
	assert.Equal(t, "12", stringParam(params, "num", ""))
	assert.Equal(t, "def", stringParam(params, "missing", "def"))

	assert.Equal(t, 7, intParam(params, "n", 0))
	assert.Equal(t, 3, intParam(params, "i", 0))
	assert.Equal(t, 30, intParam(params, "s", 30))

	assert.InDelta(t, 7.9, floatParam(params, "n", 0), 1e-9)
	assert.InDelta(t, 0.5, floatParam(params, "missing", 0.5), 1e-9)

	assert.True(t, boolParam(params, "b", false))
	assert.False(t, boolParam(params, "s", false))
}

func TestRequirePoint(t *testing.T) {
	x, y, err := requirePoint(map[string]interface{}{"x": 1.0, "y": 2.0}, "mouse_move")
	assert.NoError(t, err)
	assert.Equal(t, 1, x)
	assert.Equal(t, 2, y)

	_, _, err = requirePoint(map[string]interface{}{"y": 2.0}, "mouse_move")
	assert.Equal(t, apperr.InvalidArgument, apperr.KindOf(err))
}
