//go:build darwin && !cgo

package darwin

import "github.com/automac-mcp/automac/internal/platform"

// Without cgo there is no input injection or capture; the provider is empty
// and NewProvider fills the Inspector with the scripting-bridge fallback.
func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		return &platform.Provider{}, nil
	}
}
