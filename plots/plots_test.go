// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/biocanvas/scplot/scdata"
)

// embeddingDataset builds a dataset with six observations in two
// groups and a 2-D embedding.
func embeddingDataset(t *testing.T) *scdata.Dataset {
	t.Helper()
	x := []float64{
		1, 0,
		2, 0,
		3, 0,
		0, 4,
		0, 5,
		0, 6,
	}
	ds, err := scdata.New([]string{"geneA", "geneB"}, x)
	if err != nil {
		t.Fatal(err)
	}
	f := scdata.NewFactor([]string{"a", "a", "a", "b", "b", "b"})
	ds.SetObsFactor("cluster", f)
	ds.SetEmbedding("umap", [][2]float64{
		{0, 0}, {1, 0}, {2, 0},
		{5, 5}, {6, 5}, {7, 5},
	})
	return ds
}

func TestEmbeddingSVG(t *testing.T) {
	ds := embeddingDataset(t)
	var buf bytes.Buffer
	if err := Embedding(&buf, ds, "umap", "cluster", nil); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "<svg") {
		t.Error("output is not an SVG document")
	}
}

func TestEmbeddingRestoresLevels(t *testing.T) {
	ds := embeddingDataset(t)
	var buf bytes.Buffer
	if err := Embedding(&buf, ds, "umap", "cluster", nil); err != nil {
		t.Fatal(err)
	}
	f, _ := ds.ObsFactor("cluster")
	if diff := cmp.Diff([]string{"a", "b"}, f.Levels()); diff != "" {
		t.Errorf("levels not restored (-want +got):\n%s", diff)
	}
}

func TestEmbeddingErrors(t *testing.T) {
	ds := embeddingDataset(t)
	var buf bytes.Buffer
	if err := Embedding(&buf, ds, "tsne", "cluster", nil); err == nil {
		t.Error("Embedding accepted an unknown basis")
	}
	if err := Embedding(&buf, ds, "umap", "nope", nil); err == nil {
		t.Error("Embedding accepted an unknown annotation")
	}
}

func TestHighlight(t *testing.T) {
	ds := embeddingDataset(t)
	var buf bytes.Buffer
	if err := Highlight(&buf, ds, "umap", "cluster", []string{"b"}, false, nil); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "<svg") {
		t.Error("output is not an SVG document")
	}
	if err := Highlight(&buf, ds, "umap", "cluster", []string{"z"}, false, nil); err == nil {
		t.Error("Highlight accepted an unknown group")
	}
}

func TestCentroids(t *testing.T) {
	ds := embeddingDataset(t)
	f, _ := ds.ObsFactor("cluster")
	xs := []float64{0, 1, 2, 5, 6, 7}
	ys := []float64{0, 0, 0, 5, 5, 5}
	cx, cy, labels := centroids(f, xs, ys)
	if diff := cmp.Diff([]float64{1, 6}, cx); diff != "" {
		t.Errorf("centroid x mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{0, 5}, cy); diff != "" {
		t.Errorf("centroid y mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"0", "1"}, labels); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}
}

func TestMetricValuesDerived(t *testing.T) {
	ds := embeddingDataset(t)

	counts, err := MetricValues(ds, "n_counts", SubjectObs)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]float64{1, 2, 3, 4, 5, 6}, counts); diff != "" {
		t.Errorf("n_counts mismatch (-want +got):\n%s", diff)
	}

	genes, err := MetricValues(ds, "n_genes", SubjectObs)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]float64{1, 1, 1, 1, 1, 1}, genes); diff != "" {
		t.Errorf("n_genes mismatch (-want +got):\n%s", diff)
	}

	cells, err := MetricValues(ds, "n_cells", SubjectVar)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]float64{3, 3}, cells); diff != "" {
		t.Errorf("n_cells mismatch (-want +got):\n%s", diff)
	}

	if _, err := MetricValues(ds, "percent_mito", SubjectObs); err == nil {
		t.Error("MetricValues derived an unknown metric")
	}
}

func TestMetricValuesStoredWins(t *testing.T) {
	ds := embeddingDataset(t)
	ds.SetObs("n_counts", []float64{9, 9, 9, 9, 9, 9})
	counts, err := MetricValues(ds, "n_counts", SubjectObs)
	if err != nil {
		t.Fatal(err)
	}
	if counts[0] != 9 {
		t.Errorf("got derived value %v, want stored 9", counts[0])
	}
}

func TestQCSVG(t *testing.T) {
	ds := embeddingDataset(t)
	var buf bytes.Buffer
	err := QC(&buf, ds, []string{"n_counts", "n_genes"}, "cluster", nil)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "<svg") {
		t.Error("output is not an SVG document")
	}
}

func TestMetricByRank(t *testing.T) {
	ds := embeddingDataset(t)
	var buf bytes.Buffer
	if err := MetricByRank(&buf, ds, "n_counts", nil); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "<svg") {
		t.Error("output is not an SVG document")
	}

	buf.Reset()
	err := MetricByRank(&buf, ds, "n_counts", &RankOptions{LogX: true, LogY: true})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "<svg") {
		t.Error("log-scaled output is not an SVG document")
	}
}

func TestLogHistBins(t *testing.T) {
	// All values in [1, 1000]; 0 must be dropped.
	xs := []float64{0, 1, 10, 10, 100, 1000}
	var buf bytes.Buffer
	if err := LogHist(&buf, xs, 3, 0, 0); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "<svg") {
		t.Error("output is not an SVG document")
	}
	if err := LogHist(&buf, []float64{0, -1}, 3, 0, 0); err == nil {
		t.Error("LogHist accepted data with no positive values")
	}
}

func TestMetricHist(t *testing.T) {
	ds := embeddingDataset(t)
	var buf bytes.Buffer
	if err := MetricHist(&buf, ds, "n_counts", SubjectObs, 10, 0, 0); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "<svg") {
		t.Error("output is not an SVG document")
	}
	if err := MetricHist(&buf, ds, "nope", SubjectObs, 10, 0, 0); err == nil {
		t.Error("MetricHist accepted an unknown metric")
	}
}

func TestBinIndex(t *testing.T) {
	edges := []float64{1, 10, 100, 1000}
	for _, tc := range []struct {
		v    float64
		want int
	}{
		{1, 0}, {9, 0}, {10, 1}, {99, 1}, {100, 2}, {1000, 2},
	} {
		if got := binIndex(edges, tc.v); got != tc.want {
			t.Errorf("binIndex(%v) = %d, want %d", tc.v, got, tc.want)
		}
	}
}
