// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dotplot

import (
	"math"

	"github.com/aclements/go-gg/palette"
)

// Font sizes in points. Floats so that baseline offsets derived from
// them (size/3) stay fractional.
const (
	tickFontSize   = 10.0
	legendFontSize = 8.0
	titleFontSize  = 15.0
)

// Label gutters around the dot grid, in inches. Together they fill the
// fixed 0.5in label margin of each figure dimension.
const (
	labelGutter = 0.4
	edgeGutter  = 0.1
	tickPad     = 0.04
)

// A renderer draws one aggregated, scaled dot matrix onto a Canvas.
type renderer struct {
	m    *StatMatrix
	dots *Dots
	geom geometry
	leg  *Legend
	opt  *Options
	cmap palette.Continuous
}

func (r *renderer) draw(cv Canvas) {
	cw, ch := cv.Size()
	// Pixels per inch for this canvas; preserves aspect when the
	// canvas region does not match the figure's aspect ratio.
	scale := math.Min(cw/r.geom.FigWidth, ch/r.geom.FigHeight)
	px := func(in float64) float64 { return in * scale }

	// With a bottom legend the group labels move to the top edge,
	// so the tall gutter flips with them.
	labelsOnTop := r.geom.Legend == LegendBottom
	topGutter, bottomGutter := edgeGutter, labelGutter
	if labelsOnTop {
		topGutter, bottomGutter = labelGutter, edgeGutter
	}

	gridW := float64(r.geom.Cols) * colStep
	gridH := float64(r.geom.Rows) * rowStep

	// Dot grid.
	for g := range r.m.Cells {
		for k := range r.m.Cells[g] {
			size := r.dots.Sizes[g][k]
			if size <= 0 {
				continue
			}
			col, row := r.geom.gridPos(g, k)
			cx := px(labelGutter + (float64(col)+0.5)*colStep)
			cy := px(topGutter + (float64(row)+0.5)*rowStep)
			cv.Circle(cx, cy, px(dotRadius(size)), r.dots.Colors[g][k])
		}
	}

	xLabels, yLabels := r.m.Groups, r.m.Keys
	if r.geom.Swap {
		xLabels, yLabels = r.m.Keys, r.m.Groups
	}

	// Column labels, rotated to read downward.
	if !r.opt.OmitXLabels {
		for i, lab := range xLabels {
			cx := px(labelGutter + (float64(i)+0.5)*colStep)
			if labelsOnTop {
				cv.Text(cx, px(topGutter-tickPad), lab, tickFontSize, AnchorEnd, 90)
			} else {
				cv.Text(cx, px(topGutter+gridH+tickPad), lab, tickFontSize, AnchorStart, 90)
			}
		}
	}

	// Row labels.
	if !r.opt.OmitYLabels {
		for i, lab := range yLabels {
			cy := px(topGutter+(float64(i)+0.5)*rowStep) + tickFontSize/3
			cv.Text(px(labelGutter-tickPad), cy, lab, tickFontSize, AnchorEnd, 0)
		}
	}

	if r.opt.Title != "" {
		switch r.opt.TitleLoc {
		case TitleTop:
			cv.Text(px(labelGutter+gridW/2), px(topGutter)-4, r.opt.Title, titleFontSize, AnchorMiddle, 0)
		case TitleRight:
			size := math.Min(titleFontSize, 100*r.geom.FigHeight/float64(len(r.opt.Title)))
			cv.Text(px(r.geom.FigWidth)-2, px(topGutter+gridH/2), r.opt.Title, size, AnchorMiddle, 90)
		}
	}

	if r.leg != nil && r.geom.Legend != LegendNone {
		r.drawLegend(cv, px, topGutter, bottomGutter)
	}
}

// drawLegend draws the size legend into its panel. Legend dots use the
// color of the top of the color domain. Ticks ascend toward the top
// (right legend) or the right (bottom legend), so the largest value
// sits furthest from the origin, with its label beside each dot. When
// there are more ticks than the grid is long, the tick spacing
// compresses so the whole run stays inside the panel.
func (r *renderer) drawLegend(cv Canvas, px func(float64) float64, topGutter, bottomGutter float64) {
	fill := r.cmap.Map(1)
	mainW, mainH := r.geom.mainSize()
	n := len(r.leg.Ticks)

	switch r.geom.Legend {
	case LegendRight:
		cx := px(mainW + r.geom.Gap + legendSize/2)
		extent := float64(r.geom.Rows) * rowStep
		step := legendStepSize(rowStep, extent, n)
		bottom := topGutter + extent
		for i := range r.leg.Ticks {
			cy := px(bottom - (float64(i)+0.5)*step)
			cv.Circle(cx, cy, px(dotRadius(r.leg.Sizes[i])), fill)
			cv.Text(cx+px(legendSize/2), cy+legendFontSize/3, r.leg.Labels[i], legendFontSize, AnchorStart, 0)
		}
	case LegendBottom:
		cy := px(mainH + r.geom.Gap + legendSize/2)
		extent := float64(r.geom.Cols) * colStep
		step := legendStepSize(colStep, extent, n)
		right := labelGutter + extent
		for i := range r.leg.Ticks {
			cx := px(right - (float64(n-1-i)+0.5)*step)
			cv.Circle(cx, cy, px(dotRadius(r.leg.Sizes[i])), fill)
			cv.Text(cx, cy+px(legendSize/2), r.leg.Labels[i], legendFontSize, AnchorStart, 90)
		}
	}
}

// legendStepSize returns the tick spacing for a legend run of n dots:
// the grid step where the panel is long enough, compressed otherwise.
func legendStepSize(gridStep, extent float64, n int) float64 {
	if float64(n)*gridStep > extent {
		return extent / float64(n)
	}
	return gridStep
}

// dotRadius converts a display size (the square of ten times a
// rescaled fraction, matching a point-area size convention) to a
// radius in inches.
func dotRadius(size float64) float64 {
	return math.Sqrt(size/math.Pi) / 72
}
