package server

import (
	"fmt"

	"github.com/automac-mcp/automac/internal/apperr"
)

// Parameter extraction helpers for tool arguments. JSON numbers arrive as
// float64.

func stringParam(params map[string]interface{}, key, defaultVal string) string {
	if v, ok := params[key]; ok && v != nil {
		if s, ok := v.(string); ok {
			return s
		}
		return fmt.Sprintf("%v", v)
	}
	return defaultVal
}

func numberParam(params map[string]interface{}, key string) (float64, bool) {
	switch n := params[key].(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func intParam(params map[string]interface{}, key string, defaultVal int) int {
	if n, ok := numberParam(params, key); ok {
		return int(n)
	}
	return defaultVal
}

func floatParam(params map[string]interface{}, key string, defaultVal float64) float64 {
	if n, ok := numberParam(params, key); ok {
		return n
	}
	return defaultVal
}

func boolParam(params map[string]interface{}, key string, defaultVal bool) bool {
	if v, ok := params[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return defaultVal
}

// requirePoint reads the x and y arguments of a pointer tool.
func requirePoint(params map[string]interface{}, op string) (int, int, error) {
	x, okX := numberParam(params, "x")
	y, okY := numberParam(params, "y")
	if !okX || !okY {
		return 0, 0, apperr.Invalid(op, "x and y coordinates are required")
	}
	return int(x), int(y), nil
}
