// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dotplot

import (
	"fmt"
	"log"

	"github.com/aclements/go-moremath/stats"

	"github.com/biocanvas/scplot/scdata"
)

// A StatCell holds the aggregates of one (group, feature) pair.
type StatCell struct {
	// CountExpressed is the number of observations in the group
	// with a value greater than zero (in joint-fraction mode,
	// greater than zero for both features).
	CountExpressed int

	// Fraction is CountExpressed divided by the group size.
	Fraction float64

	// MeanAll is the mean over all observations in the group.
	MeanAll float64

	// MeanExpressed is the mean over only the observations with a
	// value greater than zero, or 0 if there are none.
	MeanExpressed float64
}

// Mean returns MeanExpressed if onlyExpressed is set and MeanAll
// otherwise.
func (c StatCell) Mean(onlyExpressed bool) float64 {
	if onlyExpressed {
		return c.MeanExpressed
	}
	return c.MeanAll
}

// A StatMatrix is a group-by-feature matrix of StatCells. Groups
// follow the grouping factor's level order, with levels below the
// minimum group size dropped; features follow the caller's key order
// (a single joint column in joint-fraction mode).
type StatMatrix struct {
	Groups []string
	Sizes  []int
	Keys   []string
	Cells  [][]StatCell // indexed by [group][key]
}

// NumGroups returns the number of retained groups.
func (m *StatMatrix) NumGroups() int { return len(m.Groups) }

// NumKeys returns the number of feature columns.
func (m *StatMatrix) NumKeys() int { return len(m.Keys) }

// MaxFraction returns the largest Fraction in the matrix, or 0 if the
// matrix is empty.
func (m *StatMatrix) MaxFraction() float64 {
	max := 0.0
	for _, row := range m.Cells {
		for _, c := range row {
			if c.Fraction > max {
				max = c.Fraction
			}
		}
	}
	return max
}

// Aggregate partitions the observations of ds by opt.GroupBy and
// computes per-group statistics for each key. Keys resolve first to
// numeric annotation columns of ds and then to feature columns of the
// value source selected by opt.Source; a key that resolves to neither
// is reported via log and treated as all zeros.
func Aggregate(ds *scdata.Dataset, keys []string, opt *Options) (*StatMatrix, error) {
	if opt == nil {
		opt = &Options{}
	}
	if len(keys) == 0 {
		return nil, fmt.Errorf("keys must be a non-empty list of annotation or feature names")
	}
	if opt.JointFraction && len(keys) != 2 {
		return nil, fmt.Errorf("exactly two keys required in joint-fraction mode, got %d", len(keys))
	}

	src := ds
	switch opt.Source {
	case SourceAuto:
		if ds.Raw() != nil {
			src = ds.Raw()
		}
	case SourceRaw:
		if ds.Raw() == nil {
			return nil, fmt.Errorf("raw values requested but dataset has no raw companion")
		}
		src = ds.Raw()
	case SourceProcessed:
		// src is ds.
	default:
		return nil, fmt.Errorf("invalid value source %d", opt.Source)
	}

	groups, err := groupFactor(ds, opt.GroupBy)
	if err != nil {
		return nil, err
	}

	// Resolve each key against annotation columns first, then the
	// selected value matrix.
	vals := make([][]float64, len(keys))
	for i, key := range keys {
		if col, ok := ds.Obs(key); ok {
			vals[i] = col
		} else if col, ok := src.VarColumn(key); ok {
			vals[i] = col
		} else {
			log.Printf("scplot: %q not found", key)
			vals[i] = make([]float64, ds.NumObs())
		}
	}

	// Gather observation indices per group, dropping groups below
	// the minimum size. The level order of the remaining groups is
	// preserved.
	counts := groups.Counts()
	members := make([][]int, groups.NumLevels())
	for i := 0; i < groups.Len(); i++ {
		c := groups.Code(i)
		members[c] = append(members[c], i)
	}

	m := &StatMatrix{}
	if opt.JointFraction {
		m.Keys = []string{keys[0] + "+" + keys[1]}
	} else {
		m.Keys = append([]string(nil), keys...)
	}
	for li, level := range groups.Levels() {
		if counts[li] < opt.MinGroupSize {
			continue
		}
		if counts[li] == 0 {
			continue
		}
		row := make([]StatCell, len(m.Keys))
		if opt.JointFraction {
			row[0] = jointCell(vals[0], vals[1], members[li])
		} else {
			for j := range keys {
				row[j] = independentCell(vals[j], members[li])
			}
		}
		for j := range row {
			if row[j].CountExpressed < opt.MinPresence {
				row[j].Fraction = 0
				row[j].MeanAll = 0
				row[j].MeanExpressed = 0
			}
		}
		m.Groups = append(m.Groups, level)
		m.Sizes = append(m.Sizes, counts[li])
		m.Cells = append(m.Cells, row)
	}
	return m, nil
}

// groupFactor resolves the grouping key to an ordered categorical
// vector. An empty key places all observations in a single group.
func groupFactor(ds *scdata.Dataset, groupBy string) (*scdata.Factor, error) {
	if groupBy == "" {
		all := make([]string, ds.NumObs())
		for i := range all {
			all[i] = "all"
		}
		return scdata.NewFactor(all), nil
	}
	if f, ok := ds.ObsFactor(groupBy); ok {
		return f, nil
	}
	if col, ok := ds.Obs(groupBy); ok {
		return scdata.FactorFromFloats(col), nil
	}
	return nil, fmt.Errorf("%q not found", groupBy)
}

func independentCell(vals []float64, members []int) StatCell {
	xs := make([]float64, len(members))
	sumExpr, cnt := 0.0, 0
	for i, o := range members {
		v := vals[o]
		xs[i] = v
		if v > 0 {
			cnt++
			sumExpr += v
		}
	}
	c := StatCell{
		CountExpressed: cnt,
		Fraction:       float64(cnt) / float64(len(members)),
		MeanAll:        stats.Mean(xs),
	}
	if cnt > 0 {
		c.MeanExpressed = sumExpr / float64(cnt)
	}
	return c
}

// jointCell counts observations where both features are expressed.
// Means are computed from the first feature only.
func jointCell(first, second []float64, members []int) StatCell {
	xs := make([]float64, len(members))
	sumExpr, exprCnt, bothCnt := 0.0, 0, 0
	for i, o := range members {
		v := first[o]
		xs[i] = v
		if v > 0 {
			exprCnt++
			sumExpr += v
		}
		if v > 0 && second[o] > 0 {
			bothCnt++
		}
	}
	c := StatCell{
		CountExpressed: bothCnt,
		Fraction:       float64(bothCnt) / float64(len(members)),
		MeanAll:        stats.Mean(xs),
	}
	if exprCnt > 0 {
		c.MeanExpressed = sumExpr / float64(exprCnt)
	}
	return c
}
