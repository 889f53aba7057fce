package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/uitrail/uitrail/pkg/model"
)

// labelMode controls what text is drawn inside each element box.
type labelMode int

const (
	// labelIDs draws "[id]" element IDs.
	labelIDs labelMode = iota
	// labelText draws the element's cleaned text.
	labelText
	// labelNone draws boxes only.
	labelNone
)

// renderOptions configure a layout rendering.
type renderOptions struct {
	Mode        labelMode
	Highlight   int // element ID drawn in the highlight color, 0 for none
	VisibleOnly bool
}

// renderMargin pads the canvas beyond the tree's extent.
const renderMargin = 16

// maxLabelRunes caps drawn text labels so wide elements stay readable.
const maxLabelRunes = 24

// renderSnapshot draws every element box at its absolute position on a
// blank canvas sized to the tree's extent. Returns the image and the
// number of boxes drawn.
func renderSnapshot(snap *model.Snapshot, opts renderOptions) (*image.RGBA, int) {
	flat := snap.Flatten(model.FlattenOptions{VisibleOnly: opts.VisibleOnly})

	maxX, maxY := 0, 0
	for _, el := range flat {
		if r := el.Abs.X + el.Bounds[2]; r > maxX {
			maxX = r
		}
		if b := el.Abs.Y + el.Bounds[3]; b > maxY {
			maxY = b
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, maxX+renderMargin, maxY+renderMargin))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	boxColor := color.RGBA{R: 70, G: 130, B: 220, A: 255}
	highlightColor := color.RGBA{R: 220, G: 30, B: 30, A: 255}
	textColor := color.RGBA{R: 30, G: 30, B: 30, A: 255}
	outlineColor := color.RGBA{R: 255, G: 255, B: 255, A: 255}

	for _, el := range flat {
		x, y := el.Abs.X, el.Abs.Y
		w, h := el.Bounds[2], el.Bounds[3]

		c := boxColor
		if opts.Highlight != 0 && el.ID == opts.Highlight {
			c = highlightColor
			// Double border so the highlight stands out
			drawRectangle(img, x-1, y-1, x+w+1, y+h+1, c)
		}
		drawRectangle(img, x, y, x+w, y+h, c)

		var label string
		switch opts.Mode {
		case labelIDs:
			label = fmt.Sprintf("[%d]", el.ID)
		case labelText:
			label = truncateLabel(el.Text, maxLabelRunes)
		case labelNone:
		}
		if label != "" {
			drawTextWithOutline(img, label, x+w/2, y+h/2, textColor, outlineColor)
		}
	}

	return img, len(flat)
}

// truncateLabel shortens a label to max runes for drawing.
func truncateLabel(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// isWithinBounds checks if a point is within the image bounds
func isWithinBounds(bounds image.Rectangle, x, y int) bool {
	return x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y
}

// drawRectangle draws a rectangle outline on the image
func drawRectangle(img *image.RGBA, x1, y1, x2, y2 int, c color.Color) {
	bounds := img.Bounds()

	// Clamp to image bounds
	if x1 < bounds.Min.X {
		x1 = bounds.Min.X
	}
	if y1 < bounds.Min.Y {
		y1 = bounds.Min.Y
	}
	if x2 > bounds.Max.X {
		x2 = bounds.Max.X
	}
	if y2 > bounds.Max.Y {
		y2 = bounds.Max.Y
	}

	if x2 <= x1 || y2 <= y1 {
		return // Empty rectangle
	}

	// Draw top and bottom lines
	for x := x1; x < x2; x++ {
		if isWithinBounds(bounds, x, y1) {
			img.Set(x, y1, c)
		}
		if isWithinBounds(bounds, x, y2-1) {
			img.Set(x, y2-1, c)
		}
	}

	// Draw left and right lines
	for y := y1; y < y2; y++ {
		if isWithinBounds(bounds, x1, y) {
			img.Set(x1, y, c)
		}
		if isWithinBounds(bounds, x2-1, y) {
			img.Set(x2-1, y, c)
		}
	}
}

// drawTextWithOutline draws text centered at (x, y) with an outline for
// visibility on any background.
func drawTextWithOutline(img *image.RGBA, text string, x, y int, textColor, outlineColor color.Color) {
	// basicfont.Face7x13: ~7px per character, 13px line height
	textWidth := len(text) * 7
	textHeight := 13

	offsetX := x - textWidth/2
	offsetY := y - textHeight/2

	// Draw outline (8 directions around the text)
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue // Skip center, we'll draw it as main text
			}
			p := fixed.Point26_6{
				X: fixed.Int26_6((offsetX + dx) * 64),
				Y: fixed.Int26_6((offsetY + dy) * 64),
			}
			d := &font.Drawer{
				Dst:  img,
				Src:  image.NewUniform(outlineColor),
				Face: basicfont.Face7x13,
				Dot:  p,
			}
			d.DrawString(text)
		}
	}

	// Draw main text
	point := fixed.Point26_6{
		X: fixed.Int26_6(offsetX * 64),
		Y: fixed.Int26_6(offsetY * 64),
	}
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(textColor),
		Face: basicfont.Face7x13,
		Dot:  point,
	}
	d.DrawString(text)
}
