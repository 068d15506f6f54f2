package script

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/automac-mcp/automac/internal/model"
)

// Interpreter runs scripting-bridge sources. *Runner implements it.
type Interpreter interface {
	Run(ctx context.Context, src string) (string, error)
	RunJS(ctx context.Context, src string) (string, error)
}

const frontmostScript = `tell application "System Events"
    set p to first application process whose frontmost is true
    return (name of p) & linefeed & (bundle identifier of p) & linefeed & (unix id of p)
end tell`

const windowsScript = `(() => {
  const se = Application("System Events");
  const out = [];
  se.processes.whose({ backgroundOnly: false })().forEach((p) => {
    let wins = [];
    try { wins = p.windows(); } catch (e) { return; }
    const app = p.name();
    const pid = p.unixId();
    wins.forEach((w) => {
      try {
        const pos = w.position();
        const size = w.size();
        out.push({ title: w.name() || "", app: app, pid: pid,
          x: pos[0], y: pos[1], width: size[0], height: size[1] });
      } catch (e) {}
    });
  });
  return JSON.stringify(out);
})()`

const screenSizeScript = `ObjC.import("AppKit");
(() => {
  const screen = $.NSScreen.mainScreen;
  const frame = screen.frame;
  const scale = screen.backingScaleFactor;
  return JSON.stringify({ width: Math.round(frame.size.width * scale),
    height: Math.round(frame.size.height * scale) });
})()`

// Inspector implements platform.Inspector through System Events and JXA.
// It is slower than the native inspector but needs no cgo.
type Inspector struct {
	interp Interpreter
}

// NewInspector returns a scripting-bridge Inspector.
func NewInspector(interp Interpreter) *Inspector {
	return &Inspector{interp: interp}
}

func (i *Inspector) Name() string { return "applescript" }

// ActiveApp returns the frontmost System Events process.
func (i *Inspector) ActiveApp(ctx context.Context) (*model.AppInfo, error) {
	out, err := i.interp.Run(ctx, frontmostScript)
	if err != nil {
		return nil, err
	}
	lines := strings.Split(out, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
		return nil, fmt.Errorf("no frontmost application")
	}
	app := &model.AppInfo{Name: strings.TrimSpace(lines[0])}
	if len(lines) > 1 {
		if id := strings.TrimSpace(lines[1]); id != "missing value" {
			app.BundleID = id
		}
	}
	if len(lines) > 2 {
		if pid, err := strconv.Atoi(strings.TrimSpace(lines[2])); err == nil {
			app.PID = pid
		}
	}
	return app, nil
}

type jxaWindow struct {
	Title  string  `json:"title"`
	App    string  `json:"app"`
	PID    int     `json:"pid"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ListWindows returns the windows of every foreground process. System Events
// does not expose window-server layers, so every window reports layer 0.
func (i *Inspector) ListWindows(ctx context.Context) ([]model.Window, error) {
	out, err := i.interp.RunJS(ctx, windowsScript)
	if err != nil {
		return nil, err
	}
	var raw []jxaWindow
	if err := json.Unmarshal([]byte(out), &raw); err != nil {
		return nil, fmt.Errorf("decode window list: %w", err)
	}
	windows := make([]model.Window, 0, len(raw))
	for _, w := range raw {
		windows = append(windows, model.Window{
			Title: w.Title,
			App:   w.App,
			PID:   w.PID,
			Bounds: model.Bounds{
				X:      int(w.X),
				Y:      int(w.Y),
				Width:  int(w.Width),
				Height: int(w.Height),
			},
		})
	}
	return windows, nil
}

// ScreenSize returns the main screen frame scaled to backing pixels.
func (i *Inspector) ScreenSize(ctx context.Context) (model.Size, error) {
	out, err := i.interp.RunJS(ctx, screenSizeScript)
	if err != nil {
		return model.Size{}, err
	}
	var size model.Size
	if err := json.Unmarshal([]byte(out), &size); err != nil {
		return model.Size{}, fmt.Errorf("decode screen size: %w", err)
	}
	if size.Width <= 0 || size.Height <= 0 {
		return model.Size{}, fmt.Errorf("main screen reported empty frame")
	}
	return size, nil
}
