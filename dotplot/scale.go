// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dotplot

import (
	"fmt"
	"image/color"
	"math"

	"github.com/aclements/go-gg/palette"
)

// Dots holds the display encoding of a StatMatrix: one size and one
// color per cell, plus the resolved fraction clip bounds.
type Dots struct {
	Sizes  [][]float64   // indexed by [group][key], each in [0, 100]
	Colors [][]color.Color
	DotMin float64
	DotMax float64
}

// scaleDots maps each cell's fraction to a dot size and its selected
// mean to a color.
//
// Fractions are clipped to [DotMin, DotMax] and rescaled to [0, 1]
// when the bounds differ from (0, 1); the size is the square of ten
// times the rescaled fraction, so dot area grows linearly with the
// fraction. Means are normalized linearly from [vmin, vmax] to [0, 1],
// clamped, and passed to cmap.
func scaleDots(m *StatMatrix, opt *Options, cmap palette.Continuous) (*Dots, error) {
	dotMax := opt.DotMax
	if dotMax == 0 {
		// Smallest multiple of 0.1 covering the observed maximum.
		dotMax = math.Ceil(m.MaxFraction()*10) / 10
	} else if dotMax < 0 || dotMax > 1 {
		return nil, fmt.Errorf("dot max %v must be between 0 and 1", opt.DotMax)
	}
	dotMin := opt.DotMin
	if dotMin < 0 || dotMin > 1 {
		return nil, fmt.Errorf("dot min %v must be between 0 and 1", opt.DotMin)
	}

	vmin, vmax := opt.VMin, opt.VMax
	if vmin == 0 && vmax == 0 {
		vmax = 1
	}

	d := &Dots{DotMin: dotMin, DotMax: dotMax}
	for _, row := range m.Cells {
		sizes := make([]float64, len(row))
		colors := make([]color.Color, len(row))
		for j, c := range row {
			sizes[j] = dotSize(c.Fraction, dotMin, dotMax)
			colors[j] = cmap.Map(normalize(c.Mean(opt.MeanOnlyExpressed), vmin, vmax))
		}
		d.Sizes = append(d.Sizes, sizes)
		d.Colors = append(d.Colors, colors)
	}
	return d, nil
}

// dotSize returns the display size for a raw fraction under the given
// clip bounds.
func dotSize(frac, dotMin, dotMax float64) float64 {
	f := rescaleFraction(frac, dotMin, dotMax)
	return (f * 10) * (f * 10)
}

// rescaleFraction clips frac to [dotMin, dotMax] and rescales the
// result linearly to [0, 1]. Bounds of exactly (0, 1) pass the
// fraction through unchanged.
func rescaleFraction(frac, dotMin, dotMax float64) float64 {
	if dotMin == 0 && dotMax == 1 {
		return frac
	}
	f := math.Min(math.Max(frac, dotMin), dotMax)
	if dotMax == dotMin {
		return 0
	}
	return (f - dotMin) / (dotMax - dotMin)
}

// normalize maps v from [vmin, vmax] to [0, 1], clamping outside the
// range.
func normalize(v, vmin, vmax float64) float64 {
	if vmax == vmin {
		return 0
	}
	t := (v - vmin) / (vmax - vmin)
	return math.Min(math.Max(t, 0), 1)
}
