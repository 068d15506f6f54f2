// Package ocr recognizes text in screen captures.
package ocr

import (
	"context"
	"image"
	"sync"

	"github.com/sirupsen/logrus"
)

// Detection is one recognized text run. Box holds the corners of the
// detection polygon clockwise from top-left. Confidence is in [0, 1].
type Detection struct {
	Text       string
	Confidence float64
	Box        [4]image.Point
}

// Center returns the midpoint of the diagonal from the top-left to the
// bottom-right corner.
func (d Detection) Center() image.Point {
	return image.Point{
		X: (d.Box[0].X + d.Box[2].X) / 2,
		Y: (d.Box[0].Y + d.Box[2].Y) / 2,
	}
}

// Corners returns the four corners of r clockwise from top-left.
func Corners(r image.Rectangle) [4]image.Point {
	return [4]image.Point{
		{X: r.Min.X, Y: r.Min.Y},
		{X: r.Max.X, Y: r.Min.Y},
		{X: r.Max.X, Y: r.Max.Y},
		{X: r.Min.X, Y: r.Max.Y},
	}
}

// Engine recognizes text in an image.
type Engine interface {
	Recognize(ctx context.Context, img image.Image) ([]Detection, error)
}

// Options configures engine construction.
type Options struct {
	Languages []string
}

// Shared is a process-wide Engine. The underlying engine is built on first
// use and reused for every later call; concurrent first calls build it once.
type Shared struct {
	opts Options
	log  logrus.FieldLogger
	open func(Options) (Engine, error)

	once   sync.Once
	engine Engine
	err    error
}

// NewShared returns a Shared engine using the build's default backend.
func NewShared(opts Options, log logrus.FieldLogger) *Shared {
	return newShared(opts, log, newDefaultEngine)
}

func newShared(opts Options, log logrus.FieldLogger, open func(Options) (Engine, error)) *Shared {
	if len(opts.Languages) == 0 {
		opts.Languages = []string{"eng"}
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Shared{opts: opts, log: log, open: open}
}

func (s *Shared) init() {
	s.engine, s.err = s.open(s.opts)
	if s.err != nil {
		s.log.WithError(s.err).Warn("OCR engine unavailable")
		return
	}
	s.log.WithField("languages", s.opts.Languages).Info("OCR engine initialised")
}

// Recognize initializes the engine if needed and runs it on img.
func (s *Shared) Recognize(ctx context.Context, img image.Image) ([]Detection, error) {
	s.once.Do(s.init)
	if s.err != nil {
		return nil, s.err
	}
	return s.engine.Recognize(ctx, img)
}
