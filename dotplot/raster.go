// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dotplot

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

var (
	fontOnce sync.Once
	fontTTF  *sfnt.Font
	fontErr  error
)

func regularFont() (*sfnt.Font, error) {
	fontOnce.Do(func() {
		fontTTF, fontErr = opentype.Parse(goregular.TTF)
	})
	return fontTTF, fontErr
}

// An ImageCanvas renders to an in-memory RGBA image.
type ImageCanvas struct {
	img   *image.RGBA
	faces map[float64]font.Face
}

// NewImageCanvas returns a white canvas of the given pixel dimensions.
func NewImageCanvas(width, height int) *ImageCanvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	return &ImageCanvas{img: img, faces: make(map[float64]font.Face)}
}

// Image returns the underlying image.
func (c *ImageCanvas) Image() *image.RGBA { return c.img }

// EncodePNG writes the canvas as a PNG to w.
func (c *ImageCanvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

func (c *ImageCanvas) Size() (w, h float64) {
	b := c.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (c *ImageCanvas) Circle(x, y, r float64, fill color.Color) {
	if r <= 0 {
		return
	}
	for dy := -int(r); dy <= int(r); dy++ {
		fy := float64(dy)
		half := math.Sqrt(r*r - fy*fy)
		for dx := -int(half); dx <= int(half); dx++ {
			c.img.Set(round(x)+dx, round(y)+dy, fill)
		}
	}
}

func (c *ImageCanvas) Rect(x, y, w, h float64, fill color.Color) {
	r := image.Rect(round(x), round(y), round(x+w), round(y+h))
	draw.Draw(c.img, r, image.NewUniform(fill), image.Point{}, draw.Over)
}

func (c *ImageCanvas) Text(x, y float64, s string, size float64, anchor Anchor, rot float64) {
	face := c.face(size)
	if face == nil {
		return
	}
	d := &font.Drawer{Src: image.NewUniform(color.Black), Face: face}
	width := d.MeasureString(s).Ceil()
	metrics := face.Metrics()
	ascent, descent := metrics.Ascent.Ceil(), metrics.Descent.Ceil()

	if rot == 0 {
		d.Dst = c.img
		d.Dot = fixed.P(round(x)-anchorShift(anchor, width), round(y))
		d.DrawString(s)
		return
	}

	// Draw into a scratch image and copy it with a quarter turn.
	// Only right-angle rotations occur in these plots.
	tmp := image.NewRGBA(image.Rect(0, 0, width, ascent+descent))
	d.Dst = tmp
	d.Dot = fixed.P(0, ascent)
	d.DrawString(s)
	c.blitRotated(tmp, round(x), round(y), anchor, rot, ascent)
}

// blitRotated copies a horizontally rendered text image onto the
// canvas rotated clockwise (90) or counter-clockwise (270) about the
// anchor point.
func (c *ImageCanvas) blitRotated(tmp *image.RGBA, x, y int, anchor Anchor, rot float64, ascent int) {
	b := tmp.Bounds()
	shift := anchorShift(anchor, b.Dx())
	for ty := b.Min.Y; ty < b.Max.Y; ty++ {
		for tx := b.Min.X; tx < b.Max.X; tx++ {
			_, _, _, a := tmp.At(tx, ty).RGBA()
			if a == 0 {
				continue
			}
			// Source pixel relative to the baseline anchor.
			rx, ry := tx-shift, ty-ascent
			var px, py int
			if rot == 270 || rot == -90 {
				px, py = x+ry, y-rx
			} else {
				px, py = x-ry, y+rx
			}
			c.img.Set(px, py, tmp.At(tx, ty))
		}
	}
}

func anchorShift(a Anchor, width int) int {
	switch a {
	case AnchorMiddle:
		return width / 2
	case AnchorEnd:
		return width
	}
	return 0
}

func (c *ImageCanvas) face(size float64) font.Face {
	if f, ok := c.faces[size]; ok {
		return f
	}
	ttf, err := regularFont()
	if err != nil {
		return nil
	}
	f, err := opentype.NewFace(ttf, &opentype.FaceOptions{
		Size:    size,
		DPI:     96,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil
	}
	c.faces[size] = f
	return f
}
