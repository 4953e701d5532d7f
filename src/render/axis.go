package render

import (
	"fmt"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
)

// Raw series values are stored scaled by 1e6; axes display them as percent
// with one decimal, so raw 500000 reads "0.5%".
const percentScale = 1e6

// PercentLabel formats a raw axis value for display.
func PercentLabel(v float64) string {
	return fmt.Sprintf("%.1f%%", v/percentScale)
}

// CFAxisRange is the cultivation factor axis: baseline 0 with 10% headroom
// above the series maximum.
func CFAxisRange(maxCF float64) *chart.ContinuousRange {
	if maxCF <= 0 {
		maxCF = 1
	}
	return &chart.ContinuousRange{Min: 0, Max: maxCF * 1.1}
}

// TempAxisRange is the temperature axis: a tight band of 1% padding around
// the observed min and max.
func TempAxisRange(minT, maxT float64) *chart.ContinuousRange {
	lo := minT * 0.99
	hi := maxT * 1.01
	if hi <= lo {
		hi = lo + 1
	}
	return &chart.ContinuousRange{Min: lo, Max: hi}
}

// percentTicks generates up to n tick marks inside [min, max] using nice raw
// increments, labeled as percent.
func percentTicks(min, max float64, n int) []chart.Tick {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) {
		return nil
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	// Preferred tick steps: 1, 2, 2.5, 5, 10 ... scaled by power of 10
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(n-1))))
	candidates := []float64{1, 2, 2.5, 5, 10}
	bestStep := mag
	bestScore := math.MaxFloat64
	for _, c := range candidates {
		step := c * mag
		count := math.Ceil(span / step)
		if count < 2 {
			count = 2
		}
		score := math.Abs(count - float64(n))
		if score < bestScore {
			bestScore = score
			bestStep = step
		}
	}
	// Ticks outside the fixed axis range would stretch it, so clamp to the
	// first multiple at or above min and stop at max.
	ticks := []chart.Tick{}
	for v := math.Ceil(min/bestStep) * bestStep; v <= max+bestStep/1e6; v += bestStep {
		ticks = append(ticks, chart.Tick{Value: v, Label: PercentLabel(v)})
		if len(ticks) > n+2 {
			break
		}
	}
	return ticks
}

// seasonLabel formats X axis values; iterations are integral.
func seasonLabel(v interface{}) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%.0f", f)
	}
	return fmt.Sprint(v)
}
