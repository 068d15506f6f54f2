package platform

import (
	"context"
	"image"

	"github.com/automac-mcp/automac/internal/model"
)

// Inputter injects synthetic mouse and keyboard events. Coordinates are in
// the input-injection (point) space.
type Inputter interface {
	MoveMouse(x, y int) error
	Click(x, y int, button MouseButton, count int) error
	TypeText(text string) error

	// ScrollVertical posts one scroll-wheel event. Positive amounts scroll
	// the content up, following the OS event convention.
	ScrollVertical(amount int) error

	// ScrollHorizontal posts one horizontal scroll event.
	ScrollHorizontal(amount int) error
}

// Display reports the screen geometry used for input injection and captures
// the main display.
type Display interface {
	// ScreenSize returns the main display size in input-injection points.
	ScreenSize() (width, height int, err error)

	// Capture grabs the main display at full pixel resolution.
	Capture() (image.Image, error)
}

// Inspector reads window-server and process metadata.
type Inspector interface {
	// Name identifies the backend, for logging.
	Name() string

	// ActiveApp returns the application currently receiving keyboard focus.
	ActiveApp(ctx context.Context) (*model.AppInfo, error)

	// ListWindows returns every on-screen window, unfiltered, in the order
	// the window server reports them.
	ListWindows(ctx context.Context) ([]model.Window, error)

	// ScreenSize returns the main display size in capture pixels.
	ScreenSize(ctx context.Context) (model.Size, error)
}

// ScriptRunner executes AppleScript source and returns its trimmed stdout.
type ScriptRunner interface {
	Run(ctx context.Context, script string) (string, error)
}
