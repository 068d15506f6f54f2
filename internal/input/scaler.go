package input

import (
	"github.com/automac-mcp/automac/internal/platform"
)

// Scaler maps coordinates from the screen-capture pixel space, which is what
// callers see in screenshots and OCR output, to the input-injection space.
// On HiDPI displays the two differ by the backing scale factor.
type Scaler struct {
	display platform.Display
}

// NewScaler returns a Scaler reading geometry from display.
func NewScaler(display platform.Display) *Scaler {
	return &Scaler{display: display}
}

// Scale converts (x, y). Any failure to read either size returns the input
// unchanged.
func (s *Scaler) Scale(x, y int) (int, int) {
	if s == nil || s.display == nil {
		return x, y
	}
	screenW, screenH, err := s.display.ScreenSize()
	if err != nil || screenW <= 0 || screenH <= 0 {
		return x, y
	}
	img, err := s.display.Capture()
	if err != nil || img == nil {
		return x, y
	}
	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return x, y
	}
	scaleX := float64(screenW) / float64(bounds.Dx())
	scaleY := float64(screenH) / float64(bounds.Dy())
	return int(float64(x) * scaleX), int(float64(y) * scaleY)
}
