//go:build cgo

package ocr

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/otiai10/gosseract/v2"
)

// Tesseract recognizes text lines with libtesseract. A gosseract client is
// not safe for concurrent use, so calls are serialized.
type Tesseract struct {
	mu     sync.Mutex
	client *gosseract.Client
}

// NewTesseract returns a Tesseract engine for the given languages.
func NewTesseract(opts Options) (*Tesseract, error) {
	client := gosseract.NewClient()
	if err := client.SetLanguage(opts.Languages...); err != nil {
		client.Close()
		return nil, fmt.Errorf("set OCR languages %v: %w", opts.Languages, err)
	}
	return &Tesseract{client: client}, nil
}

func newDefaultEngine(opts Options) (Engine, error) {
	return NewTesseract(opts)
}

// Recognize returns one detection per text line.
func (t *Tesseract) Recognize(ctx context.Context, img image.Image) ([]Detection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, imaging.Grayscale(img)); err != nil {
		return nil, fmt.Errorf("encode capture for OCR: %w", err)
	}
	offset := img.Bounds().Min

	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.client.SetImageFromBytes(buf.Bytes()); err != nil {
		return nil, fmt.Errorf("load capture into OCR: %w", err)
	}
	boxes, err := t.client.GetBoundingBoxes(gosseract.RIL_TEXTLINE)
	if err != nil {
		return nil, fmt.Errorf("recognize text: %w", err)
	}

	detections := make([]Detection, 0, len(boxes))
	for _, b := range boxes {
		text := strings.TrimSpace(b.Word)
		if text == "" {
			continue
		}
		detections = append(detections, Detection{
			Text:       text,
			Confidence: b.Confidence / 100,
			Box:        Corners(b.Box.Add(offset)),
		})
	}
	return detections, nil
}
