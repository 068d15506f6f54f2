package screen

import (
	"bytes"
	"context"
	"fmt"
	"image/png"

	"github.com/disintegration/imaging"

	"github.com/automac-mcp/automac/internal/apperr"
)

// DefaultScreenshotScale is the downscale applied when the caller gives none.
const DefaultScreenshotScale = 0.5

// Screenshot is an encoded capture.
type Screenshot struct {
	PNG    []byte
	Width  int
	Height int
	// Labels is the number of OCR boxes drawn, zero unless annotated.
	Labels int
}

// Screenshot captures the main display, optionally overlays OCR boxes with
// their center coordinates, and scales the result. Labels always show
// full-resolution capture coordinates, the space pointer tools accept.
func (a *Aggregator) Screenshot(ctx context.Context, scale float64, annotate bool) (*Screenshot, error) {
	if scale <= 0 || scale > 1 {
		return nil, apperr.Invalid("take_screenshot", "scale must be in (0, 1], got %g", scale)
	}
	img, err := a.capture()
	if err != nil {
		return nil, err
	}

	labels := 0
	if annotate {
		info, err := a.recognize(ctx, img)
		if err != nil {
			return nil, err
		}
		img = Annotate(img, info.TextElements)
		labels = len(info.TextElements)
	}

	if scale < 1 {
		w := int(float64(img.Bounds().Dx()) * scale)
		if w < 1 {
			w = 1
		}
		img = imaging.Resize(img, w, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode screenshot: %w", err)
	}
	b := img.Bounds()
	return &Screenshot{PNG: buf.Bytes(), Width: b.Dx(), Height: b.Dy(), Labels: labels}, nil
}
