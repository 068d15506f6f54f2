package input

import (
	"errors"
	"fmt"
	"image"

	"github.com/automac-mcp/automac/internal/platform"
)

type call struct {
	op     string
	x, y   int
	button platform.MouseButton
	count  int
	text   string
	amount int
}

type fakeInputter struct {
	calls []call
	err   error
}

func (f *fakeInputter) MoveMouse(x, y int) error {
	f.calls = append(f.calls, call{op: "move", x: x, y: y})
	return f.err
}

func (f *fakeInputter) Click(x, y int, button platform.MouseButton, count int) error {
	f.calls = append(f.calls, call{op: "click", x: x, y: y, button: button, count: count})
	return f.err
}

func (f *fakeInputter) TypeText(text string) error {
	f.calls = append(f.calls, call{op: "type", text: text})
	return f.err
}

func (f *fakeInputter) ScrollVertical(amount int) error {
	f.calls = append(f.calls, call{op: "vscroll", amount: amount})
	return f.err
}

func (f *fakeInputter) ScrollHorizontal(amount int) error {
	f.calls = append(f.calls, call{op: "hscroll", amount: amount})
	return f.err
}

func (f *fakeInputter) ops(op string) []call {
	var out []call
	for _, c := range f.calls {
		if c.op == op {
			out = append(out, c)
		}
	}
	return out
}

// fakeDisplay reports a point size and captures at a pixel size.
type fakeDisplay struct {
	pointW, pointH int
	pixelW, pixelH int
	sizeErr        error
	captureErr     error
}

func (d *fakeDisplay) ScreenSize() (int, int, error) {
	return d.pointW, d.pointH, d.sizeErr
}

func (d *fakeDisplay) Capture() (image.Image, error) {
	if d.captureErr != nil {
		return nil, d.captureErr
	}
	return image.NewRGBA(image.Rect(0, 0, d.pixelW, d.pixelH)), nil
}

func retina() *fakeDisplay {
	return &fakeDisplay{pointW: 1440, pointH: 900, pixelW: 2880, pixelH: 1800}
}

func identity() *fakeDisplay {
	return &fakeDisplay{pointW: 1920, pointH: 1080, pixelW: 1920, pixelH: 1080}
}

var errInjected = errors.New("CGEventPost failed")

func (c call) String() string {
	return fmt.Sprintf("%s(%d,%d)", c.op, c.x, c.y)
}
