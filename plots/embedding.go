// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plots renders scatter, density, and rank views of a dataset
// using go-gg.
package plots

import (
	"fmt"
	"image/color"
	"io"
	"strconv"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"

	"github.com/biocanvas/scplot/scdata"
)

// AnnotMode controls how embedding groups are labeled.
type AnnotMode int

const (
	// AnnotFull labels the legend and places a numeric tag at each
	// group's centroid.
	AnnotFull AnnotMode = iota

	// AnnotLegend labels the legend only.
	AnnotLegend

	// AnnotNone leaves the plain level names.
	AnnotNone
)

// EmbeddingOptions configures Embedding.
type EmbeddingOptions struct {
	Annot AnnotMode

	// Width and Height give the output size in pixels. Zero means
	// 400.
	Width, Height int
}

const restColor = 0xd3 // light grey for de-emphasized points

// Embedding writes an SVG scatter plot of the named two-dimensional
// embedding of ds, colored by the categorical annotation groupBy.
//
// Unless opt.Annot is AnnotNone, legend entries are annotated as
// "<i>: <level> (n=<count>)" for the duration of the plot; the
// dataset's level names are restored before returning.
func Embedding(w io.Writer, ds *scdata.Dataset, basis, groupBy string, opt *EmbeddingOptions) error {
	if opt == nil {
		opt = &EmbeddingOptions{}
	}
	coords, ok := ds.Embedding(basis)
	if !ok {
		return fmt.Errorf("embedding %q not found", basis)
	}
	f, ok := ds.ObsFactor(groupBy)
	if !ok {
		return fmt.Errorf("%q is not a categorical annotation", groupBy)
	}
	if len(coords) != f.Len() {
		return fmt.Errorf("embedding %q has %d points, want %d", basis, len(coords), f.Len())
	}

	if opt.Annot != AnnotNone {
		counts := f.Counts()
		mapping := make(map[string]string)
		for i, level := range f.Levels() {
			mapping[level] = fmt.Sprintf("%d: %s (n=%d)", i, level, counts[i])
		}
		restore := f.RenameLevels(mapping)
		defer restore()
	}

	xs := make([]float64, len(coords))
	ys := make([]float64, len(coords))
	groups := make([]string, len(coords))
	for i, pt := range coords {
		xs[i], ys[i] = pt[0], pt[1]
		groups[i] = f.Value(i)
	}
	tab := new(table.Builder).
		Add("x", xs).
		Add("y", ys).
		Add(groupBy, groups).
		Done()

	plot := gg.NewPlot(tab)
	plot.Add(gg.LayerPoints{X: "x", Y: "y", Color: groupBy})

	if opt.Annot == AnnotFull {
		cx, cy, labels := centroids(f, xs, ys)
		ctab := new(table.Builder).
			Add("cx", cx).
			Add("cy", cy).
			Add("tag", labels).
			Done()
		plot.SetData(ctab)
		plot.Add(gg.LayerTags{X: "cx", Y: "cy", Label: "tag"})
	}

	return plot.WriteSVG(w, sizeOr(opt.Width), sizeOr(opt.Height))
}

// Highlight writes an SVG scatter plot of the embedding with the named
// groups colored and the rest drawn grey, or omitted if hideRest is
// set.
func Highlight(w io.Writer, ds *scdata.Dataset, basis, groupBy string, groups []string, hideRest bool, opt *EmbeddingOptions) error {
	if opt == nil {
		opt = &EmbeddingOptions{}
	}
	coords, ok := ds.Embedding(basis)
	if !ok {
		return fmt.Errorf("embedding %q not found", basis)
	}
	f, ok := ds.ObsFactor(groupBy)
	if !ok {
		return fmt.Errorf("%q is not a categorical annotation", groupBy)
	}
	want := make(map[string]bool)
	for _, g := range groups {
		found := false
		for _, level := range f.Levels() {
			if level == g {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("group %q not found in %q", g, groupBy)
		}
		want[g] = true
	}

	var hx, hy []float64
	var hg []string
	var rx, ry []float64
	for i, pt := range coords {
		if want[f.Value(i)] {
			hx, hy = append(hx, pt[0]), append(hy, pt[1])
			hg = append(hg, f.Value(i))
		} else {
			rx, ry = append(rx, pt[0]), append(ry, pt[1])
		}
	}

	var plot *gg.Plot
	if !hideRest && len(rx) > 0 {
		rest := new(table.Builder).Add("x", rx).Add("y", ry).Done()
		plot = gg.NewPlot(rest)
		plot.Add(gg.LayerPoints{
			X: "x", Y: "y",
			Color: plot.Const(color.RGBA{restColor, restColor, restColor, 255}),
		})
		hl := new(table.Builder).Add("x", hx).Add("y", hy).Add(groupBy, hg).Done()
		plot.SetData(hl)
	} else {
		hl := new(table.Builder).Add("x", hx).Add("y", hy).Add(groupBy, hg).Done()
		plot = gg.NewPlot(hl)
	}
	plot.Add(gg.LayerPoints{X: "x", Y: "y", Color: groupBy})

	return plot.WriteSVG(w, sizeOr(opt.Width), sizeOr(opt.Height))
}

// centroids returns the median position and numeric tag of each level.
// Levels with no observations are skipped.
func centroids(f *scdata.Factor, xs, ys []float64) (cx, cy []float64, labels []string) {
	byLevel := make([][]int, f.NumLevels())
	for i := 0; i < f.Len(); i++ {
		c := f.Code(i)
		byLevel[c] = append(byLevel[c], i)
	}
	for c, idx := range byLevel {
		if len(idx) == 0 {
			continue
		}
		gx := make([]float64, len(idx))
		gy := make([]float64, len(idx))
		for k, i := range idx {
			gx[k], gy[k] = xs[i], ys[i]
		}
		cx = append(cx, stats.Sample{Xs: gx}.Quantile(0.5))
		cy = append(cy, stats.Sample{Xs: gy}.Quantile(0.5))
		labels = append(labels, strconv.Itoa(c))
	}
	return
}

func sizeOr(px int) int {
	if px == 0 {
		return 400
	}
	return px
}
