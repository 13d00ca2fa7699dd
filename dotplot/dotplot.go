// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dotplot renders dot-matrix summaries of how named features
// behave across groups of observations.
//
// For every (group, feature) pair the package derives the fraction of
// observations with a non-zero value and an average magnitude, then
// draws the pair as a dot whose area encodes the fraction and whose
// color encodes the magnitude. A size legend with adaptive tick
// spacing is placed beside or below the grid.
//
// Each call is a single linear pipeline — aggregate, scale, lay out,
// build legend, render — with no state retained between calls.
package dotplot

import (
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/aclements/go-gg/palette"

	"github.com/biocanvas/scplot/colormap"
	"github.com/biocanvas/scplot/scdata"
)

// Source selects which value matrix feature keys resolve against.
type Source int

const (
	// SourceAuto uses the raw matrix if the dataset has one and
	// the processed matrix otherwise.
	SourceAuto Source = iota

	// SourceRaw requires and uses the raw matrix.
	SourceRaw

	// SourceProcessed always uses the processed matrix.
	SourceProcessed
)

// Options configures a dot-matrix plot. The zero value renders all
// observations as a single group with default encoding and a legend on
// the right.
type Options struct {
	// GroupBy names the categorical annotation that partitions the
	// observations. If empty, all observations form one group.
	GroupBy string

	// MinGroupSize drops groups with fewer observations from the
	// plot entirely.
	MinGroupSize int

	// MinPresence zeroes the fraction and mean of cells whose
	// expressed-observation count is below it.
	MinPresence int

	// Source selects the raw or processed value matrix.
	Source Source

	// MeanOnlyExpressed colors dots by the mean over expressed
	// observations only, rather than over the whole group.
	MeanOnlyExpressed bool

	// JointFraction computes a single co-occurrence fraction from
	// exactly two keys: the fraction of observations where both
	// are non-zero. Means come from the first key.
	JointFraction bool

	// VMin and VMax bound the color domain. If both are zero the
	// domain is [0, 1].
	VMin, VMax float64

	// DotMin and DotMax bound the fraction range mapped onto the
	// size scale; fractions outside are clipped. Both must be in
	// [0, 1]. A zero DotMax means "derive from the data": the
	// smallest multiple of 0.1 covering the largest fraction.
	DotMin, DotMax float64

	// ColorMap maps normalized means to colors. Nil means
	// colormap.Reds.
	ColorMap palette.Continuous

	// SwapAxis transposes the grid: features along the width and
	// groups along the height.
	SwapAxis bool

	// Legend places the size legend.
	Legend LegendLoc

	// Title, if non-empty, is drawn at TitleLoc.
	Title    string
	TitleLoc TitleLoc

	// OmitXLabels and OmitYLabels suppress the tick labels of the
	// corresponding axis.
	OmitXLabels, OmitYLabels bool

	// Canvas, if non-nil, renders into the supplied canvas region
	// instead of creating a figure. The legend is omitted and the
	// Result carries the figure dimensions the panel would want,
	// so callers composing several panels can plan their layout.
	Canvas Canvas

	// SavePath writes the rendered figure to a file; ".svg"
	// selects SVG output, anything else PNG.
	SavePath string

	// DPI is the output resolution in pixels per inch. Zero means
	// 80.
	DPI int
}

// A Result reports a finished plot: the figure dimensions in inches
// and, in standalone mode, the canvas that was drawn.
type Result struct {
	Width  float64
	Height float64
	Canvas Canvas
	Matrix *StatMatrix
}

// Plot aggregates the named keys over ds and renders the dot matrix.
func Plot(ds *scdata.Dataset, keys []string, opt *Options) (*Result, error) {
	if opt == nil {
		opt = &Options{}
	}
	m, err := Aggregate(ds, keys, opt)
	if err != nil {
		return nil, err
	}

	cmap := opt.ColorMap
	if cmap == nil {
		cmap = colormap.Reds
	}
	dots, err := scaleDots(m, opt, cmap)
	if err != nil {
		return nil, err
	}

	legLoc := opt.Legend
	if opt.Canvas != nil {
		legLoc = LegendNone
	}
	geom := computeLayout(m.NumGroups(), m.NumKeys(), opt.SwapAxis, legLoc)

	var leg *Legend
	if legLoc != LegendNone {
		leg = buildLegend(dots.DotMin, dots.DotMax)
	}

	r := &renderer{m: m, dots: dots, geom: geom, leg: leg, opt: opt, cmap: cmap}
	res := &Result{Width: geom.FigWidth, Height: geom.FigHeight, Matrix: m}

	if opt.Canvas != nil {
		r.draw(opt.Canvas)
		res.Canvas = opt.Canvas
		return res, nil
	}

	dpi := opt.DPI
	if dpi <= 0 {
		dpi = 80
	}
	wpx := int(math.Round(geom.FigWidth * float64(dpi)))
	hpx := int(math.Round(geom.FigHeight * float64(dpi)))

	if opt.SavePath != "" && strings.EqualFold(filepath.Ext(opt.SavePath), ".svg") {
		f, err := os.Create(opt.SavePath)
		if err != nil {
			return nil, err
		}
		cv := NewSVGCanvas(f, wpx, hpx)
		r.draw(cv)
		cv.Close()
		if err := f.Close(); err != nil {
			return nil, err
		}
		res.Canvas = cv
		return res, nil
	}

	cv := NewImageCanvas(wpx, hpx)
	r.draw(cv)
	if opt.SavePath != "" {
		f, err := os.Create(opt.SavePath)
		if err != nil {
			return nil, err
		}
		if err := cv.EncodePNG(f); err != nil {
			f.Close()
			return nil, err
		}
		if err := f.Close(); err != nil {
			return nil, err
		}
	}
	res.Canvas = cv
	return res, nil
}
