package model

import (
	"math"
	"sort"
	"strings"
)

// MinWindowSize is the smallest width and height, exclusive, of a window
// kept in a layout snapshot.
const MinWindowSize = 50

// MinTextConfidence is the exclusive lower bound on OCR confidence.
const MinTextConfidence = 0.3

// VisibleWindows drops untitled and tiny windows and orders the rest by
// layer, lowest first. Windows on the same layer keep their input order,
// which the window server reports front to back.
func VisibleWindows(windows []Window) []Window {
	result := make([]Window, 0, len(windows))
	for _, w := range windows {
		if w.Title == "" {
			continue
		}
		if w.Bounds.Width <= MinWindowSize || w.Bounds.Height <= MinWindowSize {
			continue
		}
		result = append(result, w)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Layer < result[j].Layer
	})
	return result
}

// RoundConfidence rounds c to three decimal places.
func RoundConfidence(c float64) float64 {
	return math.Round(c*1000) / 1000
}

// ReadingOrder keeps non-blank elements whose confidence exceeds
// MinTextConfidence and sorts them top-to-bottom, then left-to-right by
// center point.
func ReadingOrder(elements []TextElement) []TextElement {
	result := make([]TextElement, 0, len(elements))
	for _, el := range elements {
		if el.Confidence <= MinTextConfidence || strings.TrimSpace(el.Text) == "" {
			continue
		}
		result = append(result, el)
	}
	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i].Position, result[j].Position
		if a.CenterY != b.CenterY {
			return a.CenterY < b.CenterY
		}
		return a.CenterX < b.CenterX
	})
	return result
}

// JoinText joins element texts with newlines in slice order.
func JoinText(elements []TextElement) string {
	lines := make([]string, len(elements))
	for i, el := range elements {
		lines[i] = el.Text
	}
	return strings.Join(lines, "\n")
}
