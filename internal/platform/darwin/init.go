//go:build darwin && cgo

package darwin

import "github.com/automac-mcp/automac/internal/platform"

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		return &platform.Provider{
			Inputter:  NewInputter(),
			Display:   NewDisplay(),
			Inspector: NewInspector(),
		}, nil
	}
	platform.PermissionCheckFunc = missingPermissions
}
