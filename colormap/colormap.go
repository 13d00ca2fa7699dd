// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colormap provides the continuous color maps and discrete
// palettes used by the plotting packages of this module.
//
// Continuous maps satisfy palette.Continuous from go-gg: a function
// from [0, 1] to a color.
package colormap

import (
	"image/color"

	"github.com/aclements/go-gg/palette"
	"github.com/aclements/go-moremath/vec"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Reds is a white-to-dark-red sequential map.
var Reds = gradient(
	"#fff5f0", "#fee0d2", "#fcbba1", "#fc9272", "#fb6a4a",
	"#ef3b2c", "#cb181d", "#a50f15", "#67000d",
)

// Greys is a white-to-black sequential map.
var Greys = gradient(
	"#ffffff", "#f0f0f0", "#d9d9d9", "#bdbdbd", "#969696",
	"#737373", "#525252", "#252525", "#000000",
)

// Viridis is a perceptually uniform purple-to-yellow map.
var Viridis = gradient(
	"#440154", "#482878", "#3e4989", "#31688e", "#26828e",
	"#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725",
)

// ByName returns a named continuous map.
func ByName(name string) (palette.Continuous, bool) {
	switch name {
	case "Reds":
		return Reds, true
	case "Greys":
		return Greys, true
	case "viridis", "Viridis":
		return Viridis, true
	}
	return nil, false
}

// Expression returns a map for highlighting feature expression: the
// lowest backgroundLevel of the range renders as light grey so that
// unexpressed observations recede, and the rest ramps through Reds.
func Expression(backgroundLevel float64) palette.Continuous {
	const nbin = 100
	bg := int(nbin * backgroundLevel)
	if bg < 0 {
		bg = 0
	} else if bg > nbin {
		bg = nbin
	}
	var colors []color.RGBA
	if bg > 0 {
		// A narrow band of light greys, darker first.
		for _, t := range vec.Linspace(0.3, 0.2, bg) {
			colors = append(colors, toRGBA(Greys.Map(t)))
		}
	}
	for _, t := range vec.Linspace(0, 1, nbin-bg) {
		colors = append(colors, toRGBA(Reds.Map(t)))
	}
	return palette.RGBGradient{Colors: colors}
}

// Make returns a discrete palette of n colors. With a nil cmap the
// colors come from the qualitative sets sized 10, 26, and 64 (grey
// above 64); otherwise they are evenly spaced samples of cmap. When
// hideLast is set the final color is a pale grey, for de-emphasizing
// a residual category.
func Make(n int, cmap palette.Continuous, hideLast bool) []color.Color {
	reserve := 0
	if hideLast {
		reserve = 1
	}
	want := n - reserve
	var out []color.Color
	switch {
	case cmap != nil:
		for j := 0; j < want; j++ {
			t := 0.0
			if want > 1 {
				t = float64(j) / float64(want-1)
			}
			out = append(out, cmap.Map(t))
		}
	case want <= len(default10):
		out = hexColors(default10[:want])
	case want <= len(default26):
		out = hexColors(default26[:want])
	case want <= len(default64):
		out = hexColors(default64[:want])
	default:
		grey := mustHex("#808080")
		for j := 0; j < want; j++ {
			out = append(out, grey)
		}
	}
	if hideLast {
		out = append(out, mustHex("#e9e9e9"))
	}
	return out
}

func gradient(hexes ...string) palette.RGBGradient {
	colors := make([]color.RGBA, len(hexes))
	for i, h := range hexes {
		colors[i] = mustHex(h)
	}
	return palette.RGBGradient{Colors: colors}
}

func hexColors(hexes []string) []color.Color {
	out := make([]color.Color, len(hexes))
	for i, h := range hexes {
		out[i] = mustHex(h)
	}
	return out
}

func mustHex(h string) color.RGBA {
	c, err := colorful.Hex(h)
	if err != nil {
		panic("bad hex color " + h)
	}
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 0xff}
}

func toRGBA(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}
