// Scenario plot entrypoint.
//
// Loads the scenario catalog (built-in four scenarios or -catalog override),
// reads every scenario's CSV series, and writes one composite PNG: a grid of
// dual-axis cultivation factor / temperature charts plus a description panel.
// All inputs are loaded before any rendering starts, so a missing or
// malformed file never leaves a partial output behind.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pinto-org/CultivationCharts/src/dataset"
	"github.com/pinto-org/CultivationCharts/src/render"
	"github.com/pinto-org/CultivationCharts/src/scenario"
)

type options struct {
	catalogPath string
	dataDir     string
	outPath     string
	cellWidth   int
	cellHeight  int
}

// runPlot renders the composite chart headlessly and writes it to
// opts.outPath.
func runPlot(opts options) error {
	defer scenario.TimeTrack(time.Now(), "runPlot")

	scenarios := scenario.DefaultCatalog()
	if opts.catalogPath != "" {
		var err error
		scenarios, err = scenario.LoadCatalog(opts.catalogPath)
		if err != nil {
			return err
		}
	}

	// Load everything up front; any bad input aborts before rendering.
	series := make([]*dataset.Series, len(scenarios))
	for i, sc := range scenarios {
		s, err := dataset.Load(filepath.Join(opts.dataDir, sc.File))
		if err != nil {
			return fmt.Errorf("scenario %q: %w", sc.Title, err)
		}
		cfMin, cfMax := dataset.Range(s.CF)
		tMin, tMax := dataset.Range(s.PrevTemp)
		scenario.Debugf("%s: rows=%d cf=[%s %s] temp=[%s %s]", sc.File, s.Len(),
			render.PercentLabel(cfMin), render.PercentLabel(cfMax),
			render.PercentLabel(tMin), render.PercentLabel(tMax))
		series[i] = s
	}

	img, err := render.Composite(scenarios, series, render.Layout{
		CellWidth:  opts.cellWidth,
		CellHeight: opts.cellHeight,
	})
	if err != nil {
		return err
	}
	if err := render.WritePNG(opts.outPath, img); err != nil {
		return err
	}
	scenario.Infof("wrote %s (%d scenarios)", opts.outPath, len(scenarios))
	return nil
}

func main() {
	var opts options
	var logLevel string
	flag.StringVar(&opts.catalogPath, "catalog", "", "Optional YAML scenario catalog (default: built-in four scenarios)")
	flag.StringVar(&opts.dataDir, "data-dir", ".", "Directory containing the scenario CSV files")
	flag.StringVar(&opts.outPath, "out", "cultivation_scenarios.png", "Output PNG path")
	flag.IntVar(&opts.cellWidth, "cell-width", render.DefaultLayout().CellWidth, "Per-chart cell width in pixels")
	flag.IntVar(&opts.cellHeight, "cell-height", render.DefaultLayout().CellHeight, "Per-chart cell height in pixels")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug|info|warn|error)")
	flag.Parse()

	scenario.SetLogLevel(logLevel)

	if err := runPlot(opts); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
