// Package render turns scenario series into the composite PNG: one dual-axis
// line chart per scenario, a caption panel, and a super-title, composed into
// a single image.
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/pinto-org/CultivationCharts/src/dataset"
	"github.com/pinto-org/CultivationCharts/src/scenario"
)

// lineStyle returns a solid line with visible dots at each sample.
func lineStyle(st chart.Style) chart.Style {
	st.StrokeWidth = 2
	st.DotWidth = 4
	return st
}

// ScenarioChart renders one scenario as a w x h chart image: cultivation
// factor on the primary Y axis (solid, dotted markers), temperature on the
// secondary Y axis (dashed), both axes percent-formatted.
func ScenarioChart(sc scenario.Scenario, s *dataset.Series, w, h int) (image.Image, error) {
	if s == nil || s.Len() == 0 {
		return nil, fmt.Errorf("scenario %s: empty series", sc.Title)
	}
	xs := s.Iterations
	cf := s.CF
	temp := s.PrevTemp
	// go-chart cannot render a single-point series; pad with a duplicate one
	// season later.
	if len(xs) == 1 {
		xs = []float64{xs[0], xs[0] + 1}
		cf = []float64{cf[0], cf[0]}
		temp = []float64{temp[0], temp[0]}
	}

	_, cfMax := dataset.Range(cf)
	tMin, tMax := dataset.Range(temp)
	cfRange := CFAxisRange(cfMax)
	tRange := TempAxisRange(tMin, tMax)

	cfSeries := chart.ContinuousSeries{
		Name:    "Cultivation Factor",
		XValues: xs,
		YValues: cf,
		Style: lineStyle(chart.Style{
			StrokeColor: chart.ColorBlue,
			DotColor:    chart.ColorBlue,
		}),
	}
	tempSeries := chart.ContinuousSeries{
		Name:    "Temperature",
		YAxis:   chart.YAxisSecondary,
		XValues: xs,
		YValues: temp,
		Style: chart.Style{
			StrokeColor:     chart.ColorRed,
			StrokeWidth:     2,
			StrokeDashArray: []float64{5.0, 5.0},
		},
	}

	ch := chart.Chart{
		Title:      sc.Title,
		Width:      w,
		Height:     h,
		Background: chart.Style{Padding: chart.Box{Top: 28, Left: 16, Right: 16, Bottom: 28}},
		XAxis: chart.XAxis{
			Name:           "Season",
			ValueFormatter: seasonLabel,
		},
		YAxis: chart.YAxis{
			Name:  "Cultivation Factor",
			Range: cfRange,
			Ticks: percentTicks(cfRange.Min, cfRange.Max, 6),
			GridMajorStyle: chart.Style{
				StrokeColor: chart.ColorAlternateGray.WithAlpha(80),
				StrokeWidth: 1,
			},
		},
		YAxisSecondary: chart.YAxis{
			Name:  "Temperature",
			Range: tRange,
			Ticks: percentTicks(tRange.Min, tRange.Max, 6),
		},
		Series: []chart.Series{cfSeries, tempSeries},
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", sc.Title, err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", sc.Title, err)
	}
	return img, nil
}
