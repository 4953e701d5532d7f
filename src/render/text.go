package render

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/pinto-org/CultivationCharts/src/scenario"
)

const captionLineHeight = 16

var (
	captionText   = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	captionBoxBG  = color.RGBA{R: 255, G: 255, B: 255, A: 204}
	captionBorder = color.RGBA{R: 160, G: 160, B: 160, A: 255}
)

// captionLines flattens the catalog into the description panel text: each
// scenario's title, its description lines, and a blank line between entries.
func captionLines(scenarios []scenario.Scenario) []string {
	var lines []string
	for i, sc := range scenarios {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, sc.Title+":")
		for _, l := range strings.Split(sc.Description, "\n") {
			lines = append(lines, "  "+l)
		}
	}
	return lines
}

// drawString draws text at (x, y baseline) with a one pixel shadow for
// contrast on varying backgrounds.
func drawString(dst *image.RGBA, x, y int, text string, col color.Color) {
	face := basicfont.Face7x13
	shadow := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.RGBA{R: 235, G: 235, B: 235, A: 120}),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(x + 1), Y: fixed.I(y + 1)},
	}
	shadow.DrawString(text)
	dr := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	dr.DrawString(text)
}

// drawCenteredString centers text horizontally within rect, baseline at y.
func drawCenteredString(dst *image.RGBA, rect image.Rectangle, y int, text string, col color.Color) {
	face := basicfont.Face7x13
	dr := &font.Drawer{Face: face}
	tw := dr.MeasureString(text).Ceil()
	x := rect.Min.X + (rect.Dx()-tw)/2
	if x < rect.Min.X {
		x = rect.Min.X
	}
	drawString(dst, x, y, text, col)
}

// drawCaptionPanel fills rect with the bordered translucent description box
// and writes the caption lines into it.
func drawCaptionPanel(dst *image.RGBA, rect image.Rectangle, lines []string) {
	pad := 12
	box := image.Rect(rect.Min.X+pad, rect.Min.Y+pad/2, rect.Max.X-pad, rect.Max.Y-pad/2)
	draw.Draw(dst, box, image.NewUniform(captionBoxBG), image.Point{}, draw.Over)
	// border: four one-pixel edges
	bc := image.NewUniform(captionBorder)
	draw.Draw(dst, image.Rect(box.Min.X, box.Min.Y, box.Max.X, box.Min.Y+1), bc, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(box.Min.X, box.Max.Y-1, box.Max.X, box.Max.Y), bc, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(box.Min.X, box.Min.Y, box.Min.X+1, box.Max.Y), bc, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(box.Max.X-1, box.Min.Y, box.Max.X, box.Max.Y), bc, image.Point{}, draw.Src)

	face := basicfont.Face7x13
	y := box.Min.Y + pad + face.Metrics().Ascent.Ceil()
	for _, line := range lines {
		if y > box.Max.Y-4 {
			break
		}
		if line != "" {
			drawString(dst, box.Min.X+pad, y, line, captionText)
		}
		y += captionLineHeight
	}
}

// captionPanelHeight sizes the panel to its content.
func captionPanelHeight(lines []string) int {
	h := len(lines)*captionLineHeight + 48
	if h < 120 {
		h = 120
	}
	return h
}
