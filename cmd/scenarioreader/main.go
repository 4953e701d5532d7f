// scenarioreader prints a quick summary of the scenario CSVs without
// rendering anything: row counts and the cultivation factor / temperature
// ranges as they would appear on the chart axes.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pinto-org/CultivationCharts/src/dataset"
	"github.com/pinto-org/CultivationCharts/src/render"
	"github.com/pinto-org/CultivationCharts/src/scenario"
)

func main() {
	var catalogPath string
	var dataDir string
	flag.StringVar(&catalogPath, "catalog", "", "Optional YAML scenario catalog")
	flag.StringVar(&dataDir, "data-dir", ".", "Directory containing the scenario CSV files")
	flag.Parse()

	scenarios := scenario.DefaultCatalog()
	if catalogPath != "" {
		var err error
		scenarios, err = scenario.LoadCatalog(catalogPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Printf("Scenarios: %d\n", len(scenarios))
	for _, sc := range scenarios {
		s, err := dataset.Load(filepath.Join(dataDir, sc.File))
		if err != nil {
			fmt.Printf("%s: %v\n", sc.File, err)
			continue
		}
		cfMin, cfMax := dataset.Range(s.CF)
		tMin, tMax := dataset.Range(s.PrevTemp)
		fmt.Printf("%s: rows=%d cf=[%s .. %s] temp=[%s .. %s]\n",
			sc.File, s.Len(),
			render.PercentLabel(cfMin), render.PercentLabel(cfMax),
			render.PercentLabel(tMin), render.PercentLabel(tMax))
	}
}
