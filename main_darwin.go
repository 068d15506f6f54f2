//go:build darwin

package main

import _ "github.com/automac-mcp/automac/internal/platform/darwin"
