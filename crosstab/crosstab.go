// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package crosstab cross-tabulates two categorical annotations of a
// dataset.
package crosstab

import (
	"fmt"
	"math"

	"github.com/aclements/go-gg/table"

	"github.com/biocanvas/scplot/scdata"
)

// Normalize selects how counts are converted to percentages.
type Normalize int

const (
	// None leaves raw counts.
	None Normalize = iota

	// ByX normalizes each x level's row to percentages.
	ByX

	// ByY normalizes each y level's column to percentages.
	ByY

	// ByXY normalizes rows, then columns.
	ByXY

	// ByYX normalizes columns, then rows.
	ByYX
)

// Table cross-tabulates the categorical annotations x and y of ds. The
// result has one row per x level in level order: a label column named
// after x, and one numeric column per y level. If subset is non-nil,
// only observations with subset[i] true are counted.
func Table(ds *scdata.Dataset, x, y string, norm Normalize, subset []bool) (*table.Table, error) {
	fx, ok := ds.ObsFactor(x)
	if !ok {
		return nil, fmt.Errorf("%q is not a categorical annotation", x)
	}
	fy, ok := ds.ObsFactor(y)
	if !ok {
		return nil, fmt.Errorf("%q is not a categorical annotation", y)
	}
	if subset != nil && len(subset) != fx.Len() {
		return nil, fmt.Errorf("subset has %d values, want %d", len(subset), fx.Len())
	}

	counts := make([][]float64, fx.NumLevels())
	for i := range counts {
		counts[i] = make([]float64, fy.NumLevels())
	}
	for i := 0; i < fx.Len(); i++ {
		if subset != nil && !subset[i] {
			continue
		}
		counts[fx.Code(i)][fy.Code(i)]++
	}

	switch norm {
	case ByX:
		normalizeRows(counts, true)
	case ByY:
		normalizeCols(counts, true)
	case ByXY:
		normalizeRows(counts, false)
		normalizeCols(counts, true)
	case ByYX:
		normalizeCols(counts, true)
		normalizeRows(counts, true)
	}

	b := new(table.Builder).Add(x, append([]string(nil), fx.Levels()...))
	for j, level := range fy.Levels() {
		col := make([]float64, len(counts))
		for i := range counts {
			col[i] = counts[i][j]
		}
		b.Add(level, col)
	}
	return b.Done(), nil
}

// normalizeRows scales each row to percentages of its sum. Rows that
// sum to zero are left as zeros.
func normalizeRows(counts [][]float64, rounded bool) {
	for _, row := range counts {
		sum := 0.0
		for _, v := range row {
			sum += v
		}
		if sum == 0 {
			continue
		}
		for j, v := range row {
			row[j] = pct(v, sum, rounded)
		}
	}
}

func normalizeCols(counts [][]float64, rounded bool) {
	if len(counts) == 0 {
		return
	}
	for j := range counts[0] {
		sum := 0.0
		for i := range counts {
			sum += counts[i][j]
		}
		if sum == 0 {
			continue
		}
		for i := range counts {
			counts[i][j] = pct(counts[i][j], sum, rounded)
		}
	}
}

func pct(v, sum float64, rounded bool) float64 {
	p := v / sum * 100
	if rounded {
		return math.Round(p*100) / 100
	}
	return p
}
