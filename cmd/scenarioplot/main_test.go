package main

import (
	"fmt"
	"image"
	_ "image/png" // register PNG decoder
	"os"
	"path/filepath"
	"testing"

	"github.com/pinto-org/CultivationCharts/src/scenario"
)

// writeScenarioCSV writes a minimal well-formed scenario series file.
func writeScenarioCSV(t *testing.T, dir, name string, rows int) {
	t.Helper()
	body := "iteration,cultivation_factor,prev_temp\n"
	for i := 1; i <= rows; i++ {
		body += fmt.Sprintf("%d,%d,%d\n", i, i*100000, 900000+i*10000)
	}
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestRunPlot_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	for _, sc := range scenario.DefaultCatalog() {
		writeScenarioCSV(t, dir, sc.File, 8)
	}
	out := filepath.Join(dir, "cultivation_scenarios.png")
	opts := options{dataDir: dir, outPath: out, cellWidth: 400, cellHeight: 300}
	if err := runPlot(opts); err != nil {
		t.Fatalf("runPlot: %v", err)
	}
	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer f.Close()
	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if format != "png" {
		t.Fatalf("output format %q, want png", format)
	}
	if cfg.Width != 2*400 {
		t.Fatalf("output width %d, want %d", cfg.Width, 2*400)
	}
}

func TestRunPlot_MissingInputProducesNoOutput(t *testing.T) {
	dir := t.TempDir()
	cat := scenario.DefaultCatalog()
	// write all but the last scenario's file
	for _, sc := range cat[:len(cat)-1] {
		writeScenarioCSV(t, dir, sc.File, 4)
	}
	out := filepath.Join(dir, "cultivation_scenarios.png")
	opts := options{dataDir: dir, outPath: out, cellWidth: 400, cellHeight: 300}
	if err := runPlot(opts); err == nil {
		t.Fatal("expected error for missing scenario file")
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Fatalf("no output file may exist after failure, stat err=%v", err)
	}
}

func TestRunPlot_CatalogOverride(t *testing.T) {
	dir := t.TempDir()
	writeScenarioCSV(t, dir, "only.csv", 5)
	catalog := filepath.Join(dir, "catalog.yaml")
	doc := "- file: only.csv\n  title: \"Only Run\"\n  description: \"one scenario\"\n"
	if err := os.WriteFile(catalog, []byte(doc), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	out := filepath.Join(dir, "out.png")
	opts := options{catalogPath: catalog, dataDir: dir, outPath: out, cellWidth: 400, cellHeight: 300}
	if err := runPlot(opts); err != nil {
		t.Fatalf("runPlot with catalog: %v", err)
	}
	if fi, err := os.Stat(out); err != nil || fi.Size() == 0 {
		t.Fatalf("output missing or empty: %v", err)
	}
}
