// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scdata

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewDataset(t *testing.T) {
	ds, err := New([]string{"f1", "f2"}, []float64{1, 2, 3, 4, 5, 6})
	if err != nil {
		t.Fatal(err)
	}
	if ds.NumObs() != 3 || ds.NumVars() != 2 {
		t.Errorf("dims = (%d, %d), want (3, 2)", ds.NumObs(), ds.NumVars())
	}
	if got := ds.Value(1, 1); got != 4 {
		t.Errorf("Value(1, 1) = %v, want 4", got)
	}
	col, ok := ds.VarColumn("f2")
	if !ok {
		t.Fatal("VarColumn(f2) not found")
	}
	if diff := cmp.Diff([]float64{2, 4, 6}, col); diff != "" {
		t.Errorf("column mismatch (-want +got):\n%s", diff)
	}
	if _, ok := ds.VarColumn("f3"); ok {
		t.Error("VarColumn(f3) unexpectedly found")
	}
}

func TestNewDatasetErrors(t *testing.T) {
	if _, err := New(nil, nil); err == nil {
		t.Error("expected error for no feature names")
	}
	if _, err := New([]string{"a", "b"}, []float64{1, 2, 3}); err == nil {
		t.Error("expected error for ragged matrix")
	}
	if _, err := New([]string{"a", "a"}, []float64{1, 2}); err == nil {
		t.Error("expected error for duplicate feature names")
	}
}

func TestObsColumns(t *testing.T) {
	ds, err := New([]string{"f1"}, []float64{0, 0})
	if err != nil {
		t.Fatal(err)
	}
	if err := ds.SetObs("n_counts", []float64{10, 20}); err != nil {
		t.Fatal(err)
	}
	if err := ds.SetObs("short", []float64{1}); err == nil {
		t.Error("expected error for short column")
	}
	col, ok := ds.Obs("n_counts")
	if !ok || col[1] != 20 {
		t.Errorf("Obs(n_counts) = %v, %v", col, ok)
	}

	f := NewFactor([]string{"x", "y"})
	if err := ds.SetObsFactor("cluster", f); err != nil {
		t.Fatal(err)
	}
	if got, ok := ds.ObsFactor("cluster"); !ok || got != f {
		t.Error("ObsFactor(cluster) did not round-trip")
	}
}

func TestRawCompanion(t *testing.T) {
	ds, _ := New([]string{"f1"}, []float64{1, 2})
	raw, _ := New([]string{"f1", "f2"}, []float64{1, 2, 3, 4})
	if err := ds.SetRaw(raw); err != nil {
		t.Fatal(err)
	}
	if ds.Raw() != raw {
		t.Error("Raw() did not return the companion")
	}
	bad, _ := New([]string{"f1"}, []float64{1})
	if err := ds.SetRaw(bad); err == nil {
		t.Error("expected error for mismatched raw size")
	}
}

func TestGraphAndEmbedding(t *testing.T) {
	ds, _ := New([]string{"f1"}, []float64{1, 2})
	adj := [][]float64{{0, 1}, {1, 0}}
	if err := ds.SetGraph("neighbors", adj); err != nil {
		t.Fatal(err)
	}
	if _, ok := ds.Graph("neighbors"); !ok {
		t.Error("Graph(neighbors) not found")
	}
	coords := [][2]float64{{0, 0}, {1, 1}}
	if err := ds.SetEmbedding("umap", coords); err != nil {
		t.Fatal(err)
	}
	if _, ok := ds.Embedding("umap"); !ok {
		t.Error("Embedding(umap) not found")
	}
	if err := ds.SetEmbedding("bad", coords[:1]); err == nil {
		t.Error("expected error for short embedding")
	}
}
