// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"fmt"
	"io"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"

	"github.com/biocanvas/scplot/scdata"
)

// DefaultQCMetrics lists the per-observation metrics QC plots when
// none are given.
var DefaultQCMetrics = []string{"n_counts", "n_genes", "percent_mito"}

// QC writes an SVG of density estimates for per-observation quality
// metrics, one facet per metric. If groupBy names a categorical
// annotation, each group gets its own curve. metrics defaults to
// DefaultQCMetrics. Metrics not recorded on ds are derived when
// possible (see MetricValues).
func QC(w io.Writer, ds *scdata.Dataset, metrics []string, groupBy string, opt *EmbeddingOptions) error {
	if opt == nil {
		opt = &EmbeddingOptions{}
	}
	if len(metrics) == 0 {
		metrics = DefaultQCMetrics
	}

	var groupCol []string
	if groupBy != "" {
		f, ok := ds.ObsFactor(groupBy)
		if !ok {
			return fmt.Errorf("%q is not a categorical annotation", groupBy)
		}
		groupCol = make([]string, f.Len())
		for i := range groupCol {
			groupCol[i] = f.Value(i)
		}
	}

	// Long form: one row per (observation, metric).
	var names []string
	var values []float64
	var groups []string
	for _, m := range metrics {
		col, err := MetricValues(ds, m, SubjectObs)
		if err != nil {
			return err
		}
		for i, v := range col {
			names = append(names, m)
			values = append(values, v)
			if groupCol != nil {
				groups = append(groups, groupCol[i])
			}
		}
	}

	b := new(table.Builder).Add("metric", names).Add("value", values)
	if groupCol != nil {
		b.Add(groupBy, groups)
	}
	tab := b.Done()

	plot := gg.NewPlot(tab)
	plot.GroupBy("metric")
	if groupCol != nil {
		plot.GroupBy(groupBy)
	}
	// The data is already grouped by metric (and group), so each
	// density is estimated within its own table.
	plot.Stat(ggstat.Density{X: "value"})
	data := table.Ungroup(plot.Data())
	if groupCol != nil {
		data = table.Ungroup(data)
	}
	plot.SetData(data)
	plot.Add(gg.FacetX{Col: "metric"})
	layer := gg.LayerPaths{X: "value", Y: "probability density"}
	if groupCol != nil {
		layer.Color = groupBy
	}
	plot.Add(layer)

	return plot.WriteSVG(w, sizeOr(opt.Width), sizeOr(opt.Height))
}
