// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dotplot

// LegendLoc places the size legend relative to the main panel.
type LegendLoc int

const (
	// LegendRight puts the legend in a panel to the right of the
	// dot grid.
	LegendRight LegendLoc = iota

	// LegendBottom puts the legend in a panel below the dot grid.
	LegendBottom

	// LegendNone omits the legend.
	LegendNone
)

// TitleLoc places the plot title.
type TitleLoc int

const (
	// TitleTop centers the title above the dot grid.
	TitleTop TitleLoc = iota

	// TitleRight draws the title rotated along the right edge.
	TitleRight
)

// Cell spacing of the dot grid, in inches.
const (
	colStep = 0.25
	rowStep = 0.2
)

// legendSize is the extent of the legend panel along the split axis,
// in inches.
const legendSize = 0.25

// A geometry describes the figure dimensions and grid shape of one
// plot, in inches. Columns always run along the width and rows along
// the height; an axis swap is already folded in.
type geometry struct {
	Cols, Rows int
	Swap       bool
	Legend     LegendLoc

	FigWidth  float64
	FigHeight float64

	// Gap separates the main panel from the legend panel, along
	// the split axis.
	Gap float64
}

// computeLayout derives the figure geometry for nGroups groups and
// nKeys feature columns. Without a swap, groups run along the width
// and features along the height; swap transposes this. The legend, if
// present, claims a fixed-size panel on its side of the figure.
func computeLayout(nGroups, nKeys int, swap bool, legend LegendLoc) geometry {
	g := geometry{Swap: swap, Legend: legend}
	if swap {
		g.Cols, g.Rows = nKeys, nGroups
	} else {
		g.Cols, g.Rows = nGroups, nKeys
	}

	g.FigWidth = 0.5 + float64(g.Cols)*colStep
	g.FigHeight = 0.5 + float64(g.Rows)*rowStep
	switch legend {
	case LegendRight:
		g.FigWidth += legendSize
		if g.Cols > 0 {
			g.Gap = legendSize / float64(g.Cols)
		}
	case LegendBottom:
		g.FigHeight += legendSize
		if g.Rows > 0 {
			g.Gap = legendSize / float64(g.Rows)
		}
	}
	return g
}

// gridPos returns the grid cell of the dot for the group-th group and
// key-th feature. Swapping the axes transposes the position exactly.
func (g geometry) gridPos(group, key int) (col, row int) {
	if g.Swap {
		return key, group
	}
	return group, key
}

// mainSize returns the dimensions of the main panel, excluding the
// legend panel and the gap.
func (g geometry) mainSize() (w, h float64) {
	w, h = g.FigWidth, g.FigHeight
	switch g.Legend {
	case LegendRight:
		w -= legendSize + g.Gap
	case LegendBottom:
		h -= legendSize + g.Gap
	}
	return
}
