// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dotplot

import (
	"fmt"
	"math"
)

// A Legend is the value set of a size legend: one tick per legend dot,
// its display size, and its label. Ticks are in ascending order and
// the last tick always equals the upper clip bound.
type Legend struct {
	Ticks  []float64
	Sizes  []float64
	Labels []string
}

// legendStep returns the tick increment for a legend spanning diff.
func legendStep(diff float64) float64 {
	switch {
	case diff <= 0.03:
		return 0.01
	case diff <= 0.06:
		return 0.02
	case diff <= 0.2:
		return 0.05
	case diff <= 0.6:
		return 0.1
	}
	return 0.2
}

// legendTicks returns the legend's tick values. Ticks are generated
// stepping downward from dotMax and then reversed, which guarantees
// that dotMax itself is a tick even when the span is not an exact
// multiple of the step; dotMin is excluded unless the span lands on
// it exactly short of a step.
func legendTicks(dotMin, dotMax float64) []float64 {
	step := legendStep(dotMax - dotMin)
	n := int(math.Ceil((dotMax-dotMin)/step - 1e-9))
	if n <= 0 {
		return nil
	}
	ticks := make([]float64, n)
	for i := 0; i < n; i++ {
		ticks[n-1-i] = dotMax - float64(i)*step
	}
	return ticks
}

// buildLegend derives the legend for the given clip bounds. Tick sizes
// pass through the same clip-and-rescale transform as the plotted
// dots, so legend dots are visually consistent with the grid. When
// dotMax is below 1 the top label is open-ended to indicate clipping.
func buildLegend(dotMin, dotMax float64) *Legend {
	ticks := legendTicks(dotMin, dotMax)
	l := &Legend{Ticks: ticks}
	for i, t := range ticks {
		l.Sizes = append(l.Sizes, dotSize(t, dotMin, dotMax))
		label := fmt.Sprintf("%.0f%%", t*100)
		if dotMax < 1 && i == len(ticks)-1 {
			label = ">=" + label
		}
		l.Labels = append(l.Labels, label)
	}
	return l
}
