// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cluster assigns graph-based cluster labels to a dataset.
//
// The partitioning itself is delegated to a Clusterer; this package
// handles running it at one or more resolutions, naming the resulting
// annotation keys, and storing the labels as categorical annotations.
package cluster

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/biocanvas/scplot/scdata"
)

// A Clusterer partitions the observations of a neighborhood graph.
// adj is a dense adjacency matrix; the result assigns a non-negative
// cluster ID to each observation.
type Clusterer interface {
	Cluster(adj [][]float64, resolution float64) ([]int, error)
}

// Options configures Leiden.
type Options struct {
	// Graph names the neighborhood graph of the dataset to
	// partition. It must be set.
	Graph string

	// KeyAdded names the annotation keys for the results. It may be
	// empty (derive keys automatically), hold a single prefix, or
	// hold exactly one key per resolution.
	KeyAdded []string

	// ExportPath, if non-empty, additionally writes the cluster
	// labels of all resolutions to a tab-separated file.
	ExportPath string
}

// Leiden partitions ds at each of the given resolutions and stores the
// labels as categorical annotations. It returns the annotation keys in
// resolution order.
//
// With a single resolution and no explicit key the annotation is named
// "leiden". With multiple resolutions each key carries an "_r<res>"
// suffix with dots replaced by underscores, so resolution 0.5 on graph
// "neighbors" yields "leiden_neighbors_r0_5".
func Leiden(ds *scdata.Dataset, c Clusterer, resolutions []float64, opt *Options) ([]string, error) {
	if opt == nil {
		opt = &Options{}
	}
	if len(resolutions) == 0 {
		return nil, fmt.Errorf("no resolutions given")
	}
	adj, ok := ds.Graph(opt.Graph)
	if !ok {
		return nil, fmt.Errorf("graph %q not found", opt.Graph)
	}
	keys, err := annotationKeys(opt.Graph, opt.KeyAdded, resolutions)
	if err != nil {
		return nil, err
	}

	for i, res := range resolutions {
		ids, err := c.Cluster(adj, res)
		if err != nil {
			return nil, fmt.Errorf("clustering at resolution %v: %v", res, err)
		}
		if len(ids) != ds.NumObs() {
			return nil, fmt.Errorf("clusterer returned %d labels, want %d", len(ids), ds.NumObs())
		}
		f, err := labelFactor(ids)
		if err != nil {
			return nil, err
		}
		if err := ds.SetObsFactor(keys[i], f); err != nil {
			return nil, err
		}
	}

	if opt.ExportPath != "" {
		if err := export(ds, keys, opt.ExportPath); err != nil {
			return nil, err
		}
	}
	return keys, nil
}

// annotationKeys derives the annotation key for each resolution.
func annotationKeys(graph string, keyAdded []string, resolutions []float64) ([]string, error) {
	if len(resolutions) == 1 {
		switch len(keyAdded) {
		case 0:
			return []string{"leiden"}, nil
		case 1:
			return []string{withPrefix(keyAdded[0])}, nil
		}
		return nil, fmt.Errorf("got %d keys for a single resolution", len(keyAdded))
	}

	if len(keyAdded) == len(resolutions) {
		return append([]string(nil), keyAdded...), nil
	}

	var prefix string
	switch len(keyAdded) {
	case 0:
		prefix = "leiden"
		if graph != "" {
			prefix += "_" + graph
		}
	case 1:
		prefix = withPrefix(keyAdded[0])
	default:
		return nil, fmt.Errorf("got %d keys for %d resolutions", len(keyAdded), len(resolutions))
	}

	keys := make([]string, len(resolutions))
	for i, res := range resolutions {
		tag := strings.ReplaceAll(strconv.FormatFloat(res, 'g', -1, 64), ".", "_")
		keys[i] = prefix + "_r" + tag
	}
	return keys, nil
}

func withPrefix(key string) string {
	if strings.HasPrefix(key, "leiden") {
		return key
	}
	return "leiden_" + key
}

// labelFactor converts cluster IDs to a categorical annotation with
// numerically ordered levels.
func labelFactor(ids []int) (*scdata.Factor, error) {
	max := -1
	for _, id := range ids {
		if id < 0 {
			return nil, fmt.Errorf("negative cluster ID %d", id)
		}
		if id > max {
			max = id
		}
	}
	levels := make([]string, max+1)
	for i := range levels {
		levels[i] = strconv.Itoa(i)
	}
	values := make([]string, len(ids))
	for i, id := range ids {
		values[i] = levels[id]
	}
	return scdata.FactorWithLevels(values, levels)
}

// export writes one row per observation with the labels of each key.
func export(ds *scdata.Dataset, keys []string, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)

	fmt.Fprintf(w, "index\t%s\n", strings.Join(keys, "\t"))
	factors := make([]*scdata.Factor, len(keys))
	for i, key := range keys {
		fac, ok := ds.ObsFactor(key)
		if !ok {
			return fmt.Errorf("annotation %q not found", key)
		}
		factors[i] = fac
	}
	for i := 0; i < ds.NumObs(); i++ {
		fmt.Fprint(w, i)
		for _, fac := range factors {
			fmt.Fprintf(w, "\t%s", fac.Value(i))
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}
