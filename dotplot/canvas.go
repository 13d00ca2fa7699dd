// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dotplot

import (
	"fmt"
	"image/color"
	"io"

	svg "github.com/ajstarks/svgo"
)

// An Anchor positions text horizontally relative to its anchor point.
type Anchor int

const (
	AnchorStart Anchor = iota
	AnchorMiddle
	AnchorEnd
)

// A Canvas is a minimal drawing surface. Coordinates are in pixels
// with the origin at the top left and y growing downward.
//
// Renderers draw complete panels through this interface, so a caller
// composing several panels can pass one Canvas (or distinct regions of
// one) to successive rendering calls.
type Canvas interface {
	// Size returns the canvas dimensions in pixels.
	Size() (w, h float64)

	// Circle fills a circle of radius r centered at (x, y).
	Circle(x, y, r float64, fill color.Color)

	// Rect fills the axis-aligned rectangle with top-left corner
	// (x, y).
	Rect(x, y, w, h float64, fill color.Color)

	// Text draws s with the given font size in points, anchored at
	// (x, y) and rotated clockwise by rot degrees about the anchor.
	// The anchor point is on the text baseline.
	Text(x, y float64, s string, size float64, anchor Anchor, rot float64)
}

// An SVGCanvas renders to an SVG document. Close must be called to
// terminate the document.
type SVGCanvas struct {
	svg  *svg.SVG
	w, h int
}

// NewSVGCanvas starts an SVG document of the given pixel dimensions on
// w.
func NewSVGCanvas(w io.Writer, width, height int) *SVGCanvas {
	c := &SVGCanvas{svg: svg.New(w), w: width, h: height}
	c.svg.Start(width, height)
	return c
}

// Close terminates the SVG document.
func (c *SVGCanvas) Close() error {
	c.svg.End()
	return nil
}

func (c *SVGCanvas) Size() (w, h float64) {
	return float64(c.w), float64(c.h)
}

func (c *SVGCanvas) Circle(x, y, r float64, fill color.Color) {
	c.svg.Circle(round(x), round(y), round(r), "stroke:none;fill:"+svgColor(fill))
}

func (c *SVGCanvas) Rect(x, y, w, h float64, fill color.Color) {
	c.svg.Rect(round(x), round(y), round(w), round(h), "stroke:none;fill:"+svgColor(fill))
}

func (c *SVGCanvas) Text(x, y float64, s string, size float64, anchor Anchor, rot float64) {
	style := fmt.Sprintf("font-family:sans-serif;font-size:%gpx;text-anchor:%s;fill:black",
		size, svgAnchor(anchor))
	if rot != 0 {
		c.svg.TranslateRotate(round(x), round(y), rot)
		c.svg.Text(0, 0, s, style)
		c.svg.Gend()
		return
	}
	c.svg.Text(round(x), round(y), s, style)
}

func svgAnchor(a Anchor) string {
	switch a {
	case AnchorMiddle:
		return "middle"
	case AnchorEnd:
		return "end"
	}
	return "start"
}

func svgColor(c color.Color) string {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return "none"
	}
	// Un-premultiply to 8-bit components.
	r8 := uint8((r * 0xff) / a)
	g8 := uint8((g * 0xff) / a)
	b8 := uint8((b * 0xff) / a)
	if a == 0xffff {
		return fmt.Sprintf("rgb(%d,%d,%d)", r8, g8, b8)
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%.3f)", r8, g8, b8, float64(a)/0xffff)
}

func round(v float64) int {
	if v < 0 {
		return -int(-v + 0.5)
	}
	return int(v + 0.5)
}
