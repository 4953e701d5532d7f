package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"golang.org/x/image/font/basicfont"

	"github.com/pinto-org/CultivationCharts/src/dataset"
	"github.com/pinto-org/CultivationCharts/src/scenario"
)

// SuperTitle is drawn centered in the band above the chart grid.
const SuperTitle = "Cultivation Factor and Temperature Scenarios"

const (
	gridColumns     = 2
	titleBandHeight = 48
)

// Layout controls per-chart cell geometry; the composite size follows from
// it and the number of scenarios.
type Layout struct {
	CellWidth  int
	CellHeight int
}

// DefaultLayout matches the original 15x14in figure at print resolution.
func DefaultLayout() Layout {
	return Layout{CellWidth: 1125, CellHeight: 820}
}

// Composite renders every scenario chart and assembles the final image:
// title band, chart grid (two columns), caption panel. series must be
// index-aligned with scenarios and fully loaded; any render failure aborts
// the whole composite.
func Composite(scenarios []scenario.Scenario, series []*dataset.Series, ly Layout) (image.Image, error) {
	if len(scenarios) == 0 {
		return nil, fmt.Errorf("no scenarios to render")
	}
	if len(scenarios) != len(series) {
		return nil, fmt.Errorf("scenario/series mismatch: %d vs %d", len(scenarios), len(series))
	}
	if ly.CellWidth <= 0 || ly.CellHeight <= 0 {
		ly = DefaultLayout()
	}

	lines := captionLines(scenarios)
	captionH := captionPanelHeight(lines)
	gridRows := (len(scenarios) + gridColumns - 1) / gridColumns
	totalW := gridColumns * ly.CellWidth
	totalH := titleBandHeight + gridRows*ly.CellHeight + captionH

	canvas := image.NewRGBA(image.Rect(0, 0, totalW, totalH))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	titleBand := image.Rect(0, 0, totalW, titleBandHeight)
	baseline := titleBandHeight/2 + basicfont.Face7x13.Metrics().Ascent.Ceil()/2
	drawCenteredString(canvas, titleBand, baseline, SuperTitle, color.RGBA{A: 255})

	for i, sc := range scenarios {
		img, err := ScenarioChart(sc, series[i], ly.CellWidth, ly.CellHeight)
		if err != nil {
			return nil, err
		}
		col := i % gridColumns
		row := i / gridColumns
		origin := image.Pt(col*ly.CellWidth, titleBandHeight+row*ly.CellHeight)
		dst := image.Rectangle{Min: origin, Max: origin.Add(img.Bounds().Size())}
		draw.Draw(canvas, dst, img, img.Bounds().Min, draw.Src)
		scenario.Debugf("composited %q at cell (%d,%d)", sc.Title, row, col)
	}

	captionRect := image.Rect(0, totalH-captionH, totalW, totalH)
	drawCaptionPanel(canvas, captionRect, lines)
	return canvas, nil
}

// WritePNG encodes img fully in memory, then writes path in one shot so a
// failed render never leaves a partial file behind.
func WritePNG(path string, img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("png encode: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
