// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"

	"github.com/biocanvas/scplot/scdata"
)

// Subject selects whether a metric describes observations or features.
type Subject int

const (
	SubjectObs Subject = iota
	SubjectVar
)

// RankOptions configures MetricByRank.
type RankOptions struct {
	Subject Subject

	// LogX and LogY apply a log10 transform to the corresponding
	// axis. Non-positive values are dropped.
	LogX, LogY bool

	// SwapAxis puts the rank on the y axis.
	SwapAxis bool

	// Width and Height give the output size in pixels. Zero means
	// 400.
	Width, Height int
}

// MetricValues returns the per-observation or per-feature values of
// the named metric. Metrics stored on the dataset win; otherwise
// n_counts, n_genes (per observation), and n_cells (per feature) are
// derived from the expression matrix.
func MetricValues(ds *scdata.Dataset, metric string, subject Subject) ([]float64, error) {
	if subject == SubjectObs {
		if col, ok := ds.Obs(metric); ok {
			return col, nil
		}
	}
	switch {
	case subject == SubjectObs && metric == "n_counts":
		vals := make([]float64, ds.NumObs())
		for i := range vals {
			for j := 0; j < ds.NumVars(); j++ {
				vals[i] += ds.Value(i, j)
			}
		}
		return vals, nil
	case subject == SubjectObs && metric == "n_genes":
		vals := make([]float64, ds.NumObs())
		for i := range vals {
			for j := 0; j < ds.NumVars(); j++ {
				if ds.Value(i, j) > 0 {
					vals[i]++
				}
			}
		}
		return vals, nil
	case subject == SubjectVar && metric == "n_counts":
		vals := make([]float64, ds.NumVars())
		for j := range vals {
			for i := 0; i < ds.NumObs(); i++ {
				vals[j] += ds.Value(i, j)
			}
		}
		return vals, nil
	case subject == SubjectVar && metric == "n_cells":
		vals := make([]float64, ds.NumVars())
		for j := range vals {
			for i := 0; i < ds.NumObs(); i++ {
				if ds.Value(i, j) > 0 {
					vals[j]++
				}
			}
		}
		return vals, nil
	}
	return nil, fmt.Errorf("metric %q not found", metric)
}

// MetricByRank writes an SVG of the named metric against the rank of
// each observation or feature, sorted descending.
func MetricByRank(w io.Writer, ds *scdata.Dataset, metric string, opt *RankOptions) error {
	if opt == nil {
		opt = &RankOptions{}
	}
	vals, err := MetricValues(ds, metric, opt.Subject)
	if err != nil {
		return err
	}
	vals = append([]float64(nil), vals...)
	sort.Sort(sort.Reverse(sort.Float64Slice(vals)))

	var xs, ys []float64
	for i, v := range vals {
		// Rank is always positive; only the metric can fall out
		// of a log domain.
		if opt.LogY && v <= 0 {
			continue
		}
		rank := float64(i + 1)
		if opt.LogX {
			rank = math.Log10(rank)
		}
		if opt.LogY {
			v = math.Log10(v)
		}
		xs = append(xs, rank)
		ys = append(ys, v)
	}

	xName, yName := "rank", metric
	if opt.LogX {
		xName = "log10 rank"
	}
	if opt.LogY {
		yName = "log10 " + metric
	}
	if opt.SwapAxis {
		xs, ys = ys, xs
		xName, yName = yName, xName
	}
	tab := new(table.Builder).Add(xName, xs).Add(yName, ys).Done()

	plot := gg.NewPlot(tab)
	plot.Add(gg.LayerPaths{X: xName, Y: yName})
	return plot.WriteSVG(w, sizeOr(opt.Width), sizeOr(opt.Height))
}
