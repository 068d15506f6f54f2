// Package input issues pointer, scroll and text-entry actions against the OS
// input subsystem.
package input

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/automac-mcp/automac/internal/apperr"
	"github.com/automac-mcp/automac/internal/model"
	"github.com/automac-mcp/automac/internal/platform"
)

// Dispatcher turns tool calls into synthetic input events. Every OS failure is
// folded into the returned envelope; only argument errors are returned as Go
// errors.
type Dispatcher struct {
	inputter platform.Inputter
	display  platform.Display
	scaler   *Scaler
	log      logrus.FieldLogger
}

// NewDispatcher returns a Dispatcher. inputter and display may be nil when
// the build has no native backend; calls then report BackendUnavailable.
func NewDispatcher(inputter platform.Inputter, display platform.Display, log logrus.FieldLogger) *Dispatcher {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Dispatcher{
		inputter: inputter,
		display:  display,
		scaler:   NewScaler(display),
		log:      log,
	}
}

func unavailable(op, what string) error {
	return apperr.Unavailable(op, "%s not available in this build", what)
}

// ScreenSize reports the input-injection screen size.
func (d *Dispatcher) ScreenSize() model.ScreenSizeResult {
	if d.display == nil {
		return model.ScreenSizeResult{Result: model.Failure("Failed to get screen size", unavailable("get_screen_size", "display"))}
	}
	w, h, err := d.display.ScreenSize()
	if err != nil {
		return model.ScreenSizeResult{Result: model.Failure("Failed to get screen size", apperr.Wrap(apperr.Unknown, "get_screen_size", err))}
	}
	return model.ScreenSizeResult{
		Result: model.OK(fmt.Sprintf("Screen size = (%d, %d)", w, h)),
		Width:  w,
		Height: h,
	}
}

// Move moves the pointer to (x, y) in capture coordinates.
func (d *Dispatcher) Move(x, y int) model.Result {
	if d.inputter == nil {
		return model.Failure("Failed to move mouse", unavailable("mouse_move", "input injection"))
	}
	sx, sy := d.scaler.Scale(x, y)
	if err := d.inputter.MoveMouse(sx, sy); err != nil {
		return model.Failure("Failed to move mouse", apperr.Wrap(apperr.Unknown, "mouse_move", err))
	}
	return model.OK(fmt.Sprintf("Moved mouse pointer to (%d, %d)", x, y))
}

// SingleClick clicks the left button once at (x, y).
func (d *Dispatcher) SingleClick(x, y int) model.Result {
	return d.Click(x, y, platform.MouseLeft, 1)
}

// DoubleClick clicks the left button twice at (x, y).
func (d *Dispatcher) DoubleClick(x, y int) model.Result {
	return d.Click(x, y, platform.MouseLeft, 2)
}

// Click clicks button count times at (x, y).
func (d *Dispatcher) Click(x, y int, button platform.MouseButton, count int) model.Result {
	kind := "Single clicked"
	op := "mouse_single_click"
	if count >= 2 {
		kind = "Double clicked"
		op = "mouse_double_click"
	}
	if d.inputter == nil {
		return model.Failure("Failed to click", unavailable(op, "input injection"))
	}
	sx, sy := d.scaler.Scale(x, y)
	if err := d.inputter.Click(sx, sy, button, count); err != nil {
		return model.Failure("Failed to click", apperr.Wrap(apperr.Unknown, op, err))
	}
	msg := fmt.Sprintf("%s at (%d, %d)", kind, x, y)
	if button != platform.MouseLeft {
		msg = fmt.Sprintf("%s %s at (%d, %d)", kind, button, x, y)
	}
	return model.OK(msg)
}

// TypeText types text into the focused element. Empty text is rejected.
func (d *Dispatcher) TypeText(text string) (model.Result, error) {
	if text == "" {
		return model.Result{}, apperr.Invalid("type_text", "text is required")
	}
	if d.inputter == nil {
		return model.Failure("Failed to type text", unavailable("type_text", "input injection")), nil
	}
	if err := d.inputter.TypeText(text); err != nil {
		return model.Failure("Failed to type text", apperr.Wrap(apperr.Unknown, "type_text", err)), nil
	}
	return model.OK("Typed: " + text), nil
}

// Scroll scrolls by dy (positive scrolls down) and dx. A zero axis posts no
// event for that axis.
func (d *Dispatcher) Scroll(dx, dy int) model.Result {
	if dx == 0 && dy == 0 {
		return model.OK(fmt.Sprintf("Scrolled dx=%d, dy=%d", dx, dy))
	}
	if d.inputter == nil {
		return model.Failure("Failed to scroll", unavailable("scroll", "input injection"))
	}
	if dy != 0 {
		// Scroll-wheel events treat positive as up.
		if err := d.inputter.ScrollVertical(-dy); err != nil {
			return model.Failure("Failed to scroll", apperr.Wrap(apperr.Unknown, "scroll", err))
		}
	}
	if dx != 0 {
		if err := d.inputter.ScrollHorizontal(dx); err != nil {
			return model.Failure("Failed to scroll", apperr.Wrap(apperr.Unknown, "scroll", err))
		}
	}
	d.log.WithFields(logrus.Fields{"dx": dx, "dy": dy}).Debug("scrolled")
	return model.OK(fmt.Sprintf("Scrolled dx=%d, dy=%d", dx, dy))
}
