// Package screen describes what is currently visible on screen, from window
// server metadata or from OCR over a capture.
package screen

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/automac-mcp/automac/internal/apperr"
	"github.com/automac-mcp/automac/internal/model"
	"github.com/automac-mcp/automac/internal/ocr"
	"github.com/automac-mcp/automac/internal/platform"
)

// Aggregator builds screen snapshots. Any dependency may be nil; the
// affected snapshot then reports BackendUnavailable.
type Aggregator struct {
	inspector platform.Inspector
	display   platform.Display
	engine    ocr.Engine
	log       logrus.FieldLogger
	now       func() time.Time
}

// NewAggregator returns an Aggregator.
func NewAggregator(inspector platform.Inspector, display platform.Display, engine ocr.Engine, log logrus.FieldLogger) *Aggregator {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Aggregator{
		inspector: inspector,
		display:   display,
		engine:    engine,
		log:       log,
		now:       time.Now,
	}
}

func (a *Aggregator) timestamp() string {
	return a.now().Format(time.UnixDate)
}

// Layout returns the accessibility snapshot: the active application and the
// titled, non-trivial windows ordered by layer. A failed sub-query is
// recorded in its field and the rest of the snapshot is still returned.
func (a *Aggregator) Layout(ctx context.Context) model.LayoutResult {
	if a.inspector == nil {
		return model.LayoutResult{Result: model.Failure(
			"Failed to get screen content using accessibility",
			apperr.Unavailable("get_screen_layout", "macOS accessibility frameworks not available"),
		)}
	}
	log := a.log.WithField("backend", a.inspector.Name())

	info := &model.ScreenLayout{
		Mode:      model.ModeAccessibility,
		Timestamp: a.timestamp(),
		Windows:   []model.Window{},
	}

	if app, err := a.inspector.ActiveApp(ctx); err != nil {
		info.ActiveAppError = err.Error()
		log.WithError(err).Warn("active application query failed")
	} else {
		info.ActiveApp = app
	}

	if windows, err := a.inspector.ListWindows(ctx); err != nil {
		info.WindowsError = err.Error()
		log.WithError(err).Warn("window list query failed")
	} else {
		info.Windows = model.VisibleWindows(windows)
	}

	if size, err := a.inspector.ScreenSize(ctx); err != nil {
		info.ScreenSizeError = err.Error()
		log.WithError(err).Warn("screen size query failed")
	} else {
		info.ScreenSize = &size
	}

	res := model.OK(fmt.Sprintf("Found %d visible windows", len(info.Windows)))
	if info.Partial() {
		res.ErrorKind = apperr.PartialFailure.String()
	}
	return model.LayoutResult{Result: res, ScreenInfo: info}
}

// Text returns the OCR snapshot of the main display.
func (a *Aggregator) Text(ctx context.Context) model.TextResult {
	img, err := a.capture()
	if err != nil {
		return model.TextResult{Result: model.Failure("Failed to get screen content using OCR", err)}
	}
	info, err := a.recognize(ctx, img)
	if err != nil {
		return model.TextResult{Result: model.Failure("Failed to get screen content using OCR", err)}
	}
	return model.TextResult{
		Result:     model.OK(fmt.Sprintf("Found %d text elements on screen", len(info.TextElements))),
		ScreenInfo: info,
	}
}

func (a *Aggregator) capture() (image.Image, error) {
	if a.display == nil {
		return nil, apperr.Unavailable("capture", "screen capture not available in this build")
	}
	img, err := a.display.Capture()
	if err != nil {
		return nil, apperr.Wrap(apperr.Unknown, "capture", err)
	}
	return img, nil
}

func (a *Aggregator) recognize(ctx context.Context, img image.Image) (*model.ScreenText, error) {
	if a.engine == nil {
		return nil, apperr.Unavailable("ocr", "no OCR engine configured")
	}
	detections, err := a.engine.Recognize(ctx, img)
	if err != nil {
		return nil, err
	}

	elements := make([]model.TextElement, 0, len(detections))
	for _, d := range detections {
		elements = append(elements, textElement(d))
	}
	elements = model.ReadingOrder(elements)

	b := img.Bounds()
	return &model.ScreenText{
		Mode:         model.ModeOCR,
		Timestamp:    a.timestamp(),
		ScreenSize:   model.Size{Width: b.Dx(), Height: b.Dy()},
		TextElements: elements,
		FullText:     model.JoinText(elements),
	}, nil
}

func textElement(d ocr.Detection) model.TextElement {
	center := d.Center()
	var bbox [4][2]int
	for i, p := range d.Box {
		bbox[i] = [2]int{p.X, p.Y}
	}
	return model.TextElement{
		Text:       d.Text,
		Confidence: model.RoundConfidence(d.Confidence),
		Position: model.TextPosition{
			CenterX: center.X,
			CenterY: center.Y,
			BBox:    bbox,
		},
	}
}
