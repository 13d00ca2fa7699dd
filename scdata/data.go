// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scdata provides an in-memory observation-by-feature dataset
// with per-observation annotations, in the shape expected by the
// plotting packages of this module.
//
// A Dataset holds a dense value matrix over named features, numeric
// and categorical annotation columns over observations, and optional
// companions: a raw (unprocessed) copy of the matrix, named neighbor
// graphs, and named 2-D embeddings.
package scdata

import "fmt"

// A Dataset is an observation-by-feature value table with
// per-observation annotations.
type Dataset struct {
	varNames []string
	varIndex map[string]int
	x        []float64 // row-major, nObs x nVar
	nObs     int

	obsNum map[string][]float64
	obsFac map[string]*Factor

	raw        *Dataset
	graphs     map[string][][]float64
	embeddings map[string][][2]float64
}

// New returns a Dataset over the row-major matrix x with one column
// per name in varNames.
func New(varNames []string, x []float64) (*Dataset, error) {
	if len(varNames) == 0 {
		return nil, fmt.Errorf("no feature names")
	}
	if len(x)%len(varNames) != 0 {
		return nil, fmt.Errorf("matrix size %d is not a multiple of feature count %d", len(x), len(varNames))
	}
	index := make(map[string]int, len(varNames))
	for i, n := range varNames {
		if _, ok := index[n]; ok {
			return nil, fmt.Errorf("duplicate feature name %q", n)
		}
		index[n] = i
	}
	return &Dataset{
		varNames: varNames,
		varIndex: index,
		x:        x,
		nObs:     len(x) / len(varNames),
		obsNum:   make(map[string][]float64),
		obsFac:   make(map[string]*Factor),
	}, nil
}

// NumObs returns the number of observations (matrix rows).
func (d *Dataset) NumObs() int { return d.nObs }

// NumVars returns the number of features (matrix columns).
func (d *Dataset) NumVars() int { return len(d.varNames) }

// VarNames returns the feature names in column order.
func (d *Dataset) VarNames() []string { return d.varNames }

// Value returns the matrix value for observation i and feature j.
func (d *Dataset) Value(i, j int) float64 {
	return d.x[i*len(d.varNames)+j]
}

// VarColumn returns a copy of the feature column named name, or false
// if no such feature exists.
func (d *Dataset) VarColumn(name string) ([]float64, bool) {
	j, ok := d.varIndex[name]
	if !ok {
		return nil, false
	}
	col := make([]float64, d.nObs)
	for i := range col {
		col[i] = d.Value(i, j)
	}
	return col, true
}

// SetRaw attaches raw as the unprocessed companion of d. The raw
// dataset must have the same number of observations.
func (d *Dataset) SetRaw(raw *Dataset) error {
	if raw.nObs != d.nObs {
		return fmt.Errorf("raw has %d observations, want %d", raw.nObs, d.nObs)
	}
	d.raw = raw
	return nil
}

// Raw returns the unprocessed companion dataset, or nil if none is
// attached.
func (d *Dataset) Raw() *Dataset { return d.raw }

// SetObs sets a numeric annotation column. The column length must
// equal the observation count.
func (d *Dataset) SetObs(name string, col []float64) error {
	if len(col) != d.nObs {
		return fmt.Errorf("column %q has %d values, want %d", name, len(col), d.nObs)
	}
	d.obsNum[name] = col
	return nil
}

// Obs returns the numeric annotation column named name.
func (d *Dataset) Obs(name string) ([]float64, bool) {
	col, ok := d.obsNum[name]
	return col, ok
}

// SetObsFactor sets a categorical annotation column. The factor length
// must equal the observation count.
func (d *Dataset) SetObsFactor(name string, f *Factor) error {
	if f.Len() != d.nObs {
		return fmt.Errorf("column %q has %d values, want %d", name, f.Len(), d.nObs)
	}
	d.obsFac[name] = f
	return nil
}

// ObsFactor returns the categorical annotation column named name.
func (d *Dataset) ObsFactor(name string) (*Factor, bool) {
	f, ok := d.obsFac[name]
	return f, ok
}

// SetGraph stores a named adjacency matrix over observations.
func (d *Dataset) SetGraph(name string, adj [][]float64) error {
	if len(adj) != d.nObs {
		return fmt.Errorf("graph %q has %d rows, want %d", name, len(adj), d.nObs)
	}
	if d.graphs == nil {
		d.graphs = make(map[string][][]float64)
	}
	d.graphs[name] = adj
	return nil
}

// Graph returns the named adjacency matrix.
func (d *Dataset) Graph(name string) ([][]float64, bool) {
	adj, ok := d.graphs[name]
	return adj, ok
}

// SetEmbedding stores named 2-D coordinates, one pair per observation.
func (d *Dataset) SetEmbedding(name string, coords [][2]float64) error {
	if len(coords) != d.nObs {
		return fmt.Errorf("embedding %q has %d rows, want %d", name, len(coords), d.nObs)
	}
	if d.embeddings == nil {
		d.embeddings = make(map[string][][2]float64)
	}
	d.embeddings[name] = coords
	return nil
}

// Embedding returns the named 2-D coordinates.
func (d *Dataset) Embedding(name string) ([][2]float64, bool) {
	coords, ok := d.embeddings[name]
	return coords, ok
}
