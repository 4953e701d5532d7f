// Package dataset loads the per-scenario CSV time series. Columns are looked
// up by header name so extra columns and reordered files load fine; rows keep
// file order, which is iteration order.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Column names expected in every scenario CSV.
const (
	ColIteration = "iteration"
	ColCF        = "cultivation_factor"
	ColPrevTemp  = "prev_temp"
)

// Series holds one scenario's time series. Slices are the same length and
// index-aligned; Iterations carries the CSV's own iteration values.
type Series struct {
	Iterations []float64
	CF         []float64
	PrevTemp   []float64
}

// Len returns the number of rows.
func (s *Series) Len() int { return len(s.Iterations) }

// Load reads path and extracts the iteration, cultivation_factor and
// prev_temp columns. A missing file, missing column or non-numeric cell is a
// fatal, wrapped error.
func Load(path string) (*Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open series: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header %s: %w", path, err)
	}
	idx := map[string]int{}
	for i, name := range header {
		idx[strings.TrimSpace(strings.ToLower(name))] = i
	}
	cols := [3]int{}
	for i, name := range []string{ColIteration, ColCF, ColPrevTemp} {
		j, ok := idx[name]
		if !ok {
			return nil, fmt.Errorf("%s: missing column %q", path, name)
		}
		cols[i] = j
	}

	s := &Series{}
	for line := 2; ; line++ {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s line %d: %w", path, line, err)
		}
		vals := [3]float64{}
		for i, j := range cols {
			v, err := strconv.ParseFloat(strings.TrimSpace(rec[j]), 64)
			if err != nil {
				return nil, fmt.Errorf("%s line %d column %q: %w", path, line, header[j], err)
			}
			vals[i] = v
		}
		s.Iterations = append(s.Iterations, vals[0])
		s.CF = append(s.CF, vals[1])
		s.PrevTemp = append(s.PrevTemp, vals[2])
	}
	if s.Len() == 0 {
		return nil, fmt.Errorf("%s: no data rows", path)
	}
	return s, nil
}

// Range returns the min and max of vs, skipping NaNs.
func Range(vs []float64) (min, max float64) {
	min = math.MaxFloat64
	max = -math.MaxFloat64
	for _, v := range vs {
		if math.IsNaN(v) {
			continue
		}
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if min == math.MaxFloat64 {
		return 0, 0
	}
	return min, max
}
