package screen

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/automac-mcp/automac/internal/model"
)

var (
	boxColor     = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	textColor    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	outlineColor = color.RGBA{R: 0, G: 0, B: 0, A: 200}
)

// Annotate draws each element's bounding box and a "(x,y)" label of its
// center on a copy of img.
func Annotate(img image.Image, elements []model.TextElement) *image.RGBA {
	rgba := toRGBA(img)
	for _, el := range elements {
		p := el.Position
		drawRectangle(rgba, p.BBox[0][0], p.BBox[0][1], p.BBox[2][0], p.BBox[2][1], boxColor)
		label := fmt.Sprintf("(%d,%d)", p.CenterX, p.CenterY)
		drawTextWithOutline(rgba, label, p.CenterX, p.CenterY, textColor, outlineColor)
	}
	return rgba
}

func toRGBA(img image.Image) *image.RGBA {
	bounds := img.Bounds()
	rgba := image.NewRGBA(bounds)
	draw.Draw(rgba, bounds, img, bounds.Min, draw.Src)
	return rgba
}

// drawRectangle draws the outline of [x1,x2)x[y1,y2) clamped to the image.
func drawRectangle(img *image.RGBA, x1, y1, x2, y2 int, c color.Color) {
	r := image.Rect(x1, y1, x2, y2).Intersect(img.Bounds())
	if r.Empty() {
		return
	}
	for x := r.Min.X; x < r.Max.X; x++ {
		img.Set(x, r.Min.Y, c)
		img.Set(x, r.Max.Y-1, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		img.Set(r.Min.X, y, c)
		img.Set(r.Max.X-1, y, c)
	}
}

// drawTextWithOutline centers text on (x, y) with a one-pixel outline.
func drawTextWithOutline(img *image.RGBA, text string, x, y int, fg, outline color.Color) {
	// basicfont.Face7x13 glyphs are 7 pixels wide and 13 high.
	offsetX := x - len(text)*7/2
	offsetY := y + 13/2

	stamp := func(dx, dy int, c color.Color) {
		d := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(c),
			Face: basicfont.Face7x13,
			Dot:  fixed.P(offsetX+dx, offsetY+dy),
		}
		d.DrawString(text)
	}
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx != 0 || dy != 0 {
				stamp(dx, dy, outline)
			}
		}
	}
	stamp(0, 0, fg)
}
