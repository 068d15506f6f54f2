//go:build !cgo

package ocr

import "github.com/automac-mcp/automac/internal/apperr"

func newDefaultEngine(Options) (Engine, error) {
	return nil, apperr.Unavailable("ocr", "text recognition requires a cgo build with libtesseract")
}
