// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"fmt"
	"math"

	"github.com/aclements/go-gg/palette"
	"github.com/aclements/go-gg/table"

	"github.com/biocanvas/scplot/colormap"
	"github.com/biocanvas/scplot/dotplot"
)

// HeatmapTable draws tab as a heatmap. The labelCol column gives the
// row labels; every other column must be []float64 and becomes one
// column of tiles.
func HeatmapTable(cv dotplot.Canvas, tab *table.Table, labelCol string, cmap palette.Continuous, title string) error {
	rows, ok := tab.Column(labelCol).([]string)
	if !ok {
		return fmt.Errorf("column %q is not a label column", labelCol)
	}
	var cols []string
	values := make([][]float64, len(rows))
	for _, name := range tab.Columns() {
		if name == labelCol {
			continue
		}
		col, ok := tab.Column(name).([]float64)
		if !ok {
			return fmt.Errorf("column %q is not numeric", name)
		}
		cols = append(cols, name)
		for i, v := range col {
			values[i] = append(values[i], v)
		}
	}
	return Heatmap(cv, rows, cols, values, cmap, title)
}

const (
	hmLabelGutter = 0.4  // inches reserved for row/column labels
	hmTitlePad    = 0.3  // inches reserved above the grid for a title
	hmBarWidth    = 0.15 // inches, colorbar strip
	hmFontSize    = 10.0
	hmBarSteps    = 50
)

// Heatmap draws values as a grid of colored tiles on cv, with row
// labels on the left, column labels below, and a vertical colorbar on
// the right. cmap defaults to a viridis ramp.
func Heatmap(cv dotplot.Canvas, rows, cols []string, values [][]float64, cmap palette.Continuous, title string) error {
	if len(values) != len(rows) {
		return fmt.Errorf("got %d value rows, want %d", len(values), len(rows))
	}
	for i, row := range values {
		if len(row) != len(cols) {
			return fmt.Errorf("row %d has %d values, want %d", i, len(row), len(cols))
		}
	}
	if len(rows) == 0 || len(cols) == 0 {
		return fmt.Errorf("empty heatmap")
	}
	if cmap == nil {
		cmap = colormap.Viridis
	}

	vmin, vmax := values[0][0], values[0][0]
	for _, row := range values {
		for _, v := range row {
			vmin = math.Min(vmin, v)
			vmax = math.Max(vmax, v)
		}
	}
	if vmin == vmax {
		vmax = vmin + 1
	}

	cw, ch := cv.Size()
	figW := hmLabelGutter + float64(len(cols))*0.25 + hmBarWidth + hmLabelGutter
	figH := hmTitlePad + float64(len(rows))*0.25 + hmLabelGutter
	scale := math.Min(cw/figW, ch/figH)

	gridX := hmLabelGutter * scale
	gridY := hmTitlePad * scale
	cell := 0.25 * scale
	gridW := float64(len(cols)) * cell
	gridH := float64(len(rows)) * cell

	for i, row := range values {
		for j, v := range row {
			c := cmap.Map((v - vmin) / (vmax - vmin))
			cv.Rect(gridX+float64(j)*cell, gridY+float64(i)*cell, cell, cell, c)
		}
	}

	for i, label := range rows {
		cv.Text(gridX-0.04*scale, gridY+(float64(i)+0.5)*cell+hmFontSize/3, label, hmFontSize, dotplot.AnchorEnd, 0)
	}
	for j, label := range cols {
		cv.Text(gridX+(float64(j)+0.5)*cell, gridY+gridH+0.04*scale, label, hmFontSize, dotplot.AnchorEnd, 90)
	}
	if title != "" {
		cv.Text(gridX+gridW/2, gridY-0.1*scale, title, 15, dotplot.AnchorMiddle, 0)
	}

	// Colorbar, high values at the top.
	barX := gridX + gridW + hmLabelGutter*scale/2
	barW := hmBarWidth * scale
	step := gridH / hmBarSteps
	for k := 0; k < hmBarSteps; k++ {
		c := cmap.Map(1 - (float64(k)+0.5)/hmBarSteps)
		cv.Rect(barX, gridY+float64(k)*step, barW, step+0.5, c)
	}
	cv.Text(barX+barW+0.04*scale, gridY+hmFontSize/3, fmtTick(vmax), hmFontSize, dotplot.AnchorStart, 0)
	cv.Text(barX+barW+0.04*scale, gridY+gridH, fmtTick(vmin), hmFontSize, dotplot.AnchorStart, 0)
	return nil
}

func fmtTick(v float64) string {
	return fmt.Sprintf("%.3g", v)
}
