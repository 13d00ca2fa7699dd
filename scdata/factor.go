// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scdata

import (
	"fmt"
	"sort"
	"strconv"
)

// A Factor is a categorical vector with a fixed level ordering. The
// level ordering is set when the Factor is created and is preserved by
// all operations, including subsetting and renames.
type Factor struct {
	levels []string
	index  map[string]int
	codes  []int
}

// NewFactor returns a Factor over values whose levels are the distinct
// values in lexicographic order.
func NewFactor(values []string) *Factor {
	seen := make(map[string]bool)
	var levels []string
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			levels = append(levels, v)
		}
	}
	sort.Strings(levels)
	f, _ := FactorWithLevels(values, levels)
	return f
}

// FactorWithLevels returns a Factor over values with the given level
// ordering. It returns an error if any value is not in levels.
func FactorWithLevels(values, levels []string) (*Factor, error) {
	index := make(map[string]int, len(levels))
	for i, l := range levels {
		if _, ok := index[l]; ok {
			return nil, fmt.Errorf("duplicate level %q", l)
		}
		index[l] = i
	}
	codes := make([]int, len(values))
	for i, v := range values {
		c, ok := index[v]
		if !ok {
			return nil, fmt.Errorf("value %q not in levels", v)
		}
		codes[i] = c
	}
	return &Factor{levels: levels, index: index, codes: codes}, nil
}

// FactorFromFloats returns a Factor over the string forms of values,
// with levels in ascending numeric order.
func FactorFromFloats(values []float64) *Factor {
	seen := make(map[float64]bool)
	var uniq []float64
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			uniq = append(uniq, v)
		}
	}
	sort.Float64s(uniq)
	levels := make([]string, len(uniq))
	for i, v := range uniq {
		levels[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	strs := make([]string, len(values))
	for i, v := range values {
		strs[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	f, _ := FactorWithLevels(strs, levels)
	return f
}

// Len returns the number of observations.
func (f *Factor) Len() int {
	return len(f.codes)
}

// Levels returns the ordered levels. The caller must not modify the
// returned slice.
func (f *Factor) Levels() []string {
	return f.levels
}

// NumLevels returns the number of levels.
func (f *Factor) NumLevels() int {
	return len(f.levels)
}

// Code returns the level index of observation i.
func (f *Factor) Code(i int) int {
	return f.codes[i]
}

// Value returns the level label of observation i.
func (f *Factor) Value(i int) string {
	return f.levels[f.codes[i]]
}

// Counts returns the number of observations of each level, in level
// order. Levels with no observations count zero.
func (f *Factor) Counts() []int {
	counts := make([]int, len(f.levels))
	for _, c := range f.codes {
		counts[c]++
	}
	return counts
}

// Subset returns a new Factor containing the observations for which
// keep is true. The level ordering is unchanged, even for levels that
// no longer have observations.
func (f *Factor) Subset(keep []bool) *Factor {
	var codes []int
	for i, c := range f.codes {
		if keep[i] {
			codes = append(codes, c)
		}
	}
	levels := append([]string(nil), f.levels...)
	index := make(map[string]int, len(levels))
	for i, l := range levels {
		index[l] = i
	}
	return &Factor{levels: levels, index: index, codes: codes}
}

// RenameLevels relabels levels in place for display purposes and
// returns a function that restores the original labels. Callers must
// arrange for the restore function to run on every exit path,
// typically with defer, so that renames never outlive the call that
// made them. Levels not in mapping keep their labels.
func (f *Factor) RenameLevels(mapping map[string]string) (restore func()) {
	old := append([]string(nil), f.levels...)
	for i, l := range f.levels {
		if nl, ok := mapping[l]; ok {
			f.levels[i] = nl
		}
	}
	f.reindex()
	return func() {
		copy(f.levels, old)
		f.reindex()
	}
}

func (f *Factor) reindex() {
	index := make(map[string]int, len(f.levels))
	for i, l := range f.levels {
		index[l] = i
	}
	f.index = index
}
