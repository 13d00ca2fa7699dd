// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"fmt"
	"io"
	"math"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/vec"

	"github.com/biocanvas/scplot/scdata"
)

// MetricHist writes an SVG histogram of the named metric on log-spaced
// bins. Metrics are resolved or derived as in MetricValues.
func MetricHist(w io.Writer, ds *scdata.Dataset, metric string, subject Subject, bins int, width, height int) error {
	vals, err := MetricValues(ds, metric, subject)
	if err != nil {
		return err
	}
	return LogHist(w, vals, bins, width, height)
}

// LogHist writes an SVG histogram of xs on log-spaced bins. The bin
// edges span the positive range of the data; non-positive values are
// dropped. bins defaults to 100 when zero.
func LogHist(w io.Writer, xs []float64, bins int, width, height int) error {
	if bins == 0 {
		bins = 100
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range xs {
		if v <= 0 {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if math.IsInf(lo, 1) {
		return fmt.Errorf("no positive values to bin")
	}
	if lo == hi {
		// Widen a degenerate range so every value lands in a bin.
		hi = lo * 10
	}

	edges := vec.Logspace(math.Log10(lo), math.Log10(hi), bins+1, 10)
	counts := make([]float64, bins)
	for _, v := range xs {
		if v <= 0 {
			continue
		}
		counts[binIndex(edges, v)]++
	}

	// Plot against geometric bin centers.
	centers := make([]float64, bins)
	for i := range centers {
		centers[i] = math.Sqrt(edges[i] * edges[i+1])
	}
	tab := new(table.Builder).Add("value", centers).Add("count", counts).Done()

	plot := gg.NewPlot(tab)
	plot.Add(gg.LayerPaths{X: "value", Y: "count"})
	return plot.WriteSVG(w, sizeOr(width), sizeOr(height))
}

// binIndex returns the bin of v given ascending edges. The last bin is
// closed on both sides.
func binIndex(edges []float64, v float64) int {
	n := len(edges) - 1
	for i := 1; i < n; i++ {
		if v < edges[i] {
			return i - 1
		}
	}
	return n - 1
}
