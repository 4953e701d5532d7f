package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// helper to write a small CSV fixture
func writeCSV(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return p
}

func TestLoad_WellFormed(t *testing.T) {
	p := writeCSV(t, "scenario.csv",
		"iteration,cultivation_factor,prev_temp\n"+
			"1,0,900000\n"+
			"2,500000,950000\n"+
			"3,1000000,1000000\n")
	s, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Len() != 3 {
		t.Fatalf("expected 3 rows got %d", s.Len())
	}
	// row order is iteration order
	if s.Iterations[0] != 1 || s.Iterations[2] != 3 {
		t.Fatalf("iteration order not preserved: %v", s.Iterations)
	}
	if s.CF[1] != 500000 {
		t.Fatalf("cf mid row wrong: %v", s.CF)
	}
	if s.PrevTemp[2] != 1000000 {
		t.Fatalf("temp last row wrong: %v", s.PrevTemp)
	}
}

func TestLoad_ColumnOrderAndExtras(t *testing.T) {
	p := writeCSV(t, "reordered.csv",
		"prev_temp,season_note,cultivation_factor,iteration\n"+
			"900000,harvest,100,7\n"+
			"910000,sow,200,8\n")
	s, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Iterations[0] != 7 || s.CF[0] != 100 || s.PrevTemp[0] != 900000 {
		t.Fatalf("header-name lookup failed: %+v", s)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.csv")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoad_MissingColumn(t *testing.T) {
	p := writeCSV(t, "bad.csv", "iteration,cultivation_factor\n1,2\n")
	_, err := Load(p)
	if err == nil {
		t.Fatal("expected error for missing prev_temp column")
	}
	if !strings.Contains(err.Error(), "prev_temp") {
		t.Fatalf("error should name the missing column: %v", err)
	}
}

func TestLoad_NonNumericCell(t *testing.T) {
	p := writeCSV(t, "bad.csv",
		"iteration,cultivation_factor,prev_temp\n1,abc,900000\n")
	if _, err := Load(p); err == nil {
		t.Fatal("expected error for non-numeric cultivation_factor")
	}
}

func TestLoad_EmptyBody(t *testing.T) {
	p := writeCSV(t, "empty.csv", "iteration,cultivation_factor,prev_temp\n")
	if _, err := Load(p); err == nil {
		t.Fatal("expected error for header-only file")
	}
}

func TestRange(t *testing.T) {
	min, max := Range([]float64{3, 1, 2})
	if min != 1 || max != 3 {
		t.Fatalf("range wrong: [%v,%v]", min, max)
	}
	min, max = Range(nil)
	if min != 0 || max != 0 {
		t.Fatalf("empty range should be [0,0], got [%v,%v]", min, max)
	}
}
