// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dotplot

import (
	"image/color"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/biocanvas/scplot/scdata"
)

func TestPlotStandalone(t *testing.T) {
	ds := groupedDataset(t, []int{5, 5}, func(i, j int) float64 {
		return float64(i % 3)
	})
	res, err := Plot(ds, []string{"f1", "f2"}, &Options{GroupBy: "cluster"})
	if err != nil {
		t.Fatal(err)
	}
	if res.Canvas == nil {
		t.Fatal("standalone plot returned no canvas")
	}
	img, ok := res.Canvas.(*ImageCanvas)
	if !ok {
		t.Fatalf("canvas is %T, want *ImageCanvas", res.Canvas)
	}
	if img.Image().Bounds().Empty() {
		t.Error("rendered image is empty")
	}
	if res.Width <= 0 || res.Height <= 0 {
		t.Errorf("figure size = (%v, %v), want positive", res.Width, res.Height)
	}
}

func TestPlotEmbedded(t *testing.T) {
	ds := groupedDataset(t, []int{5, 5}, func(i, j int) float64 {
		return float64(i % 3)
	})
	cv := NewImageCanvas(200, 120)
	res, err := Plot(ds, []string{"f1", "f2"}, &Options{
		GroupBy: "cluster",
		Legend:  LegendRight, // ignored in embedded mode
		Canvas:  cv,
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.Canvas != Canvas(cv) {
		t.Error("embedded plot did not draw on the supplied canvas")
	}
	// Embedded layout must not reserve a legend panel.
	if want := 0.5 + 2*0.25; res.Width != want {
		t.Errorf("embedded width = %v, want %v", res.Width, want)
	}
}

func TestPlotSaveSVG(t *testing.T) {
	ds := groupedDataset(t, []int{5}, func(i, j int) float64 { return 1 })
	path := filepath.Join(t.TempDir(), "dots.svg")
	_, err := Plot(ds, []string{"f1", "f2"}, &Options{
		GroupBy:  "cluster",
		Title:    "markers",
		SavePath: path,
	})
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	s := string(data)
	if !strings.Contains(s, "<circle") {
		t.Error("SVG output contains no circles")
	}
	if !strings.Contains(s, "markers") {
		t.Error("SVG output is missing the title")
	}
	if !strings.Contains(s, "</svg>") {
		t.Error("SVG output is not terminated")
	}
}

func TestPlotSavePNG(t *testing.T) {
	ds := groupedDataset(t, []int{5}, func(i, j int) float64 { return 1 })
	path := filepath.Join(t.TempDir(), "dots.png")
	_, err := Plot(ds, []string{"f1", "f2"}, &Options{
		GroupBy:  "cluster",
		Legend:   LegendBottom,
		SwapAxis: true,
		SavePath: path,
		DPI:      120,
	})
	if err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("PNG output is empty")
	}
}

var (
	svgSizeRe   = regexp.MustCompile(`<svg width="(\d+)" height="(\d+)"`)
	svgCircleRe = regexp.MustCompile(`<circle cx="(-?\d+)" cy="(-?\d+)" r="(\d+)"`)
)

// renderSVG plots ds to an SVG file and returns its contents.
func renderSVG(t *testing.T, ds *scdata.Dataset, opt *Options) string {
	t.Helper()
	opt.SavePath = filepath.Join(t.TempDir(), "dots.svg")
	if _, err := Plot(ds, []string{"f1", "f2"}, opt); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(opt.SavePath)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

// checkCirclesOnCanvas asserts that every circle in the SVG, legend
// dots included, lies fully inside the canvas.
func checkCirclesOnCanvas(t *testing.T, s string) {
	t.Helper()
	size := svgSizeRe.FindStringSubmatch(s)
	if size == nil {
		t.Fatal("no <svg> dimensions found")
	}
	w, _ := strconv.Atoi(size[1])
	h, _ := strconv.Atoi(size[2])
	circles := svgCircleRe.FindAllStringSubmatch(s, -1)
	if len(circles) == 0 {
		t.Fatal("no circles found")
	}
	for _, m := range circles {
		cx, _ := strconv.Atoi(m[1])
		cy, _ := strconv.Atoi(m[2])
		r, _ := strconv.Atoi(m[3])
		if cx-r < 0 || cx+r > w || cy-r < 0 || cy+r > h {
			t.Errorf("circle at (%d, %d) r=%d clipped by %dx%d canvas", cx, cy, r, w, h)
		}
	}
}

// A full-range size scale yields five legend ticks, more than a
// two-row grid is long; the tick run must compress to stay on canvas.
func TestLegendFitsRight(t *testing.T) {
	ds := groupedDataset(t, []int{5, 5}, func(i, j int) float64 {
		return float64(i % 3)
	})
	s := renderSVG(t, ds, &Options{
		GroupBy: "cluster",
		Legend:  LegendRight,
		DotMax:  1,
	})
	checkCirclesOnCanvas(t, s)
}

func TestLegendFitsBottom(t *testing.T) {
	ds := groupedDataset(t, []int{5, 5}, func(i, j int) float64 {
		return float64(i % 3)
	})
	s := renderSVG(t, ds, &Options{
		GroupBy:  "cluster",
		Legend:   LegendBottom,
		SwapAxis: true,
		DotMax:   1,
	})
	checkCirclesOnCanvas(t, s)
}

func TestLegendStepSize(t *testing.T) {
	// Panel long enough: grid spacing is kept.
	if got := legendStepSize(0.2, 2.0, 5); got != 0.2 {
		t.Errorf("legendStepSize(0.2, 2.0, 5) = %v, want 0.2", got)
	}
	// Five ticks against a two-row grid: spacing compresses.
	if got := legendStepSize(0.2, 0.4, 5); got != 0.4/5 {
		t.Errorf("legendStepSize(0.2, 0.4, 5) = %v, want %v", got, 0.4/5)
	}
}

// Baseline offsets derived from the font sizes must stay fractional;
// integer constant division would shift label baselines.
func TestLabelBaselineOffsets(t *testing.T) {
	if tickFontSize/3 == 3 {
		t.Error("tick label baseline offset truncated to an integer")
	}
	if legendFontSize/3 == 2 {
		t.Error("legend label baseline offset truncated to an integer")
	}
}

func TestImageCanvasPrimitives(t *testing.T) {
	cv := NewImageCanvas(50, 50)
	cv.Circle(25, 25, 10, color.RGBA{255, 0, 0, 255})
	if got := cv.Image().RGBAAt(25, 25); got.R != 255 || got.G != 0 {
		t.Errorf("center pixel = %v, want red", got)
	}
	// Outside the radius stays white.
	if got := cv.Image().RGBAAt(2, 2); got.R != 255 || got.G != 255 || got.B != 255 {
		t.Errorf("corner pixel = %v, want white", got)
	}
	cv.Text(5, 45, "abc", 10, AnchorStart, 0)
	cv.Text(45, 45, "abc", 10, AnchorEnd, 90)
}
