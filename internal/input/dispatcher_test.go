package input

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automac-mcp/automac/internal/apperr"
	"github.com/automac-mcp/automac/internal/platform"
)

func newTestDispatcher(inp platform.Inputter, disp platform.Display) *Dispatcher {
	log, _ := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	return NewDispatcher(inp, disp, log)
}

func TestDispatcher_ScreenSizeIdempotent(t *testing.T) {
	d := newTestDispatcher(&fakeInputter{}, retina())
	first := d.ScreenSize()
	second := d.ScreenSize()
	require.True(t, first.Success)
	assert.Equal(t, "Screen size = (1440, 900)", first.Message)
	assert.Equal(t, first, second)
}

func TestDispatcher_MoveScalesCoordinates(t *testing.T) {
	inp := &fakeInputter{}
	r := newTestDispatcher(inp, retina()).Move(1000, 600)
	require.True(t, r.Success)
	assert.Equal(t, "Moved mouse pointer to (1000, 600)", r.Message)
	require.Len(t, inp.calls, 1)
	assert.Equal(t, 500, inp.calls[0].x)
	assert.Equal(t, 300, inp.calls[0].y)
}

func TestDispatcher_Clicks(t *testing.T) {
	inp := &fakeInputter{}
	d := newTestDispatcher(inp, identity())

	r := d.SingleClick(10, 20)
	assert.True(t, r.Success)
	assert.Equal(t, "Single clicked at (10, 20)", r.Message)

	r = d.DoubleClick(30, 40)
	assert.True(t, r.Success)
	assert.Equal(t, "Double clicked at (30, 40)", r.Message)

	clicks := inp.ops("click")
	require.Len(t, clicks, 2)
	assert.Equal(t, 1, clicks[0].count)
	assert.Equal(t, 2, clicks[1].count)
	assert.Equal(t, platform.MouseLeft, clicks[1].button)
}

func TestDispatcher_RightClickMessage(t *testing.T) {
	r := newTestDispatcher(&fakeInputter{}, identity()).Click(5, 6, platform.MouseRight, 1)
	assert.Equal(t, "Single clicked right at (5, 6)", r.Message)
}

func TestDispatcher_OSFailureBecomesEnvelope(t *testing.T) {
	inp := &fakeInputter{err: errInjected}
	r := newTestDispatcher(inp, identity()).SingleClick(1, 2)
	assert.False(t, r.Success)
	assert.Equal(t, "Failed to click", r.Message)
	assert.Contains(t, r.Error, "CGEventPost failed")
}

func TestDispatcher_NoBackend(t *testing.T) {
	d := newTestDispatcher(nil, nil)
	r := d.Move(1, 2)
	assert.False(t, r.Success)
	assert.Equal(t, "BackendUnavailable", r.ErrorKind)

	s := d.ScreenSize()
	assert.False(t, s.Success)
	assert.Equal(t, "BackendUnavailable", s.ErrorKind)
}

func TestDispatcher_TypeText(t *testing.T) {
	inp := &fakeInputter{}
	d := newTestDispatcher(inp, identity())

	_, err := d.TypeText("")
	require.Error(t, err)
	assert.Equal(t, apperr.InvalidArgument, apperr.KindOf(err))
	assert.Empty(t, inp.calls, "empty text must not reach the OS")

	r, err := d.TypeText("hello")
	require.NoError(t, err)
	assert.True(t, r.Success)
	assert.Contains(t, r.Message, "hello")
	require.Len(t, inp.calls, 1)
	assert.Equal(t, "hello", inp.calls[0].text)
}

func TestDispatcher_Scroll(t *testing.T) {
	tests := []struct {
		name        string
		dx, dy      int
		wantVScroll []int
		wantHScroll []int
	}{
		{name: "down", dx: 0, dy: 10, wantVScroll: []int{-10}},
		{name: "up", dx: 0, dy: -3, wantVScroll: []int{3}},
		{name: "left", dx: -5, dy: 0, wantHScroll: []int{-5}},
		{name: "both", dx: 4, dy: 2, wantVScroll: []int{-2}, wantHScroll: []int{4}},
		{name: "none", dx: 0, dy: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inp := &fakeInputter{}
			r := newTestDispatcher(inp, identity()).Scroll(tt.dx, tt.dy)
			require.True(t, r.Success)

			var v, h []int
			for _, c := range inp.ops("vscroll") {
				v = append(v, c.amount)
			}
			for _, c := range inp.ops("hscroll") {
				h = append(h, c.amount)
			}
			assert.Equal(t, tt.wantVScroll, v)
			assert.Equal(t, tt.wantHScroll, h)
		})
	}
}

func TestDispatcher_ScrollNoBackendStillSucceedsWhenIdle(t *testing.T) {
	r := newTestDispatcher(nil, nil).Scroll(0, 0)
	assert.True(t, r.Success)
}
