// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command scdot renders a dot matrix plot of grouped expression data.
//
// scdot takes a CSV file with a header row: one column named by -group
// holds the group of each row, and every other column holds numeric
// values for one feature. Each named key is plotted as a column of
// dots, one dot per group, sized by the fraction of the group's rows
// with a value above zero and colored by the mean value.
//
// With no keys, all feature columns are plotted.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/biocanvas/scplot/colormap"
	"github.com/biocanvas/scplot/dotplot"
	"github.com/biocanvas/scplot/scdata"
)

func main() {
	log.SetPrefix("scdot: ")
	log.SetFlags(0)

	var (
		flagGroup         = flag.String("group", "", "group rows by `column` (required)")
		flagOut           = flag.String("o", "dotplot.svg", "write output to `file` (.svg or .png)")
		flagMinGroupSize  = flag.Int("min-group-size", 0, "drop groups with fewer than `n` rows")
		flagMinPresence   = flag.Int("min-presence", 0, "zero out dots expressed in fewer than `n` rows of a group")
		flagMeanExpressed = flag.Bool("mean-expressed", false, "color by the mean of expressing rows only")
		flagJoint         = flag.Bool("joint", false, "plot the joint fraction of exactly two keys")
		flagVMin          = flag.Float64("vmin", 0, "lower bound of the color scale")
		flagVMax          = flag.Float64("vmax", 0, "upper bound of the color scale")
		flagDotMin        = flag.Float64("dot-min", 0, "fraction mapped to the smallest dot")
		flagDotMax        = flag.Float64("dot-max", 0, "fraction mapped to the largest dot (default: derived)")
		flagCmap          = flag.String("cmap", "Reds", "color `map` (Reds, Greys, or Viridis)")
		flagSwap          = flag.Bool("swap", false, "put keys on rows and groups on columns")
		flagLegend        = flag.String("legend", "right", "legend `position` (right, bottom, or none)")
		flagTitle         = flag.String("title", "", "plot `title`")
		flagTitleLoc      = flag.String("title-loc", "top", "title `position` (top or right)")
		flagDPI           = flag.Int("dpi", 0, "raster resolution in dots per inch (default 80)")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] data.csv [key...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() < 1 || *flagGroup == "" {
		flag.Usage()
		os.Exit(2)
	}

	ds, err := readCSV(flag.Arg(0), *flagGroup)
	if err != nil {
		log.Fatal(err)
	}
	keys := flag.Args()[1:]
	if len(keys) == 0 {
		keys = ds.VarNames()
	}

	opt := &dotplot.Options{
		GroupBy:           *flagGroup,
		MinGroupSize:      *flagMinGroupSize,
		MinPresence:       *flagMinPresence,
		MeanOnlyExpressed: *flagMeanExpressed,
		JointFraction:     *flagJoint,
		VMin:              *flagVMin,
		VMax:              *flagVMax,
		DotMin:            *flagDotMin,
		DotMax:            *flagDotMax,
		SwapAxis:          *flagSwap,
		Title:             *flagTitle,
		SavePath:          *flagOut,
		DPI:               *flagDPI,
	}
	if cmap, ok := colormap.ByName(*flagCmap); ok {
		opt.ColorMap = cmap
	} else {
		log.Fatalf("unknown color map %q", *flagCmap)
	}
	switch *flagLegend {
	case "right":
		opt.Legend = dotplot.LegendRight
	case "bottom":
		opt.Legend = dotplot.LegendBottom
	case "none":
		opt.Legend = dotplot.LegendNone
	default:
		log.Fatalf("unknown legend position %q", *flagLegend)
	}
	switch *flagTitleLoc {
	case "top":
		opt.TitleLoc = dotplot.TitleTop
	case "right":
		opt.TitleLoc = dotplot.TitleRight
	default:
		log.Fatalf("unknown title position %q", *flagTitleLoc)
	}

	if _, err := dotplot.Plot(ds, keys, opt); err != nil {
		log.Fatal(err)
	}
}

// readCSV loads a CSV file with a header row into a dataset. The
// groupCol column becomes a categorical annotation; all other columns
// must be numeric and become features.
func readCSV(path, groupCol string) (*scdata.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("%s: no data rows", path)
	}

	header := records[0]
	groupIdx := -1
	var varNames []string
	for i, name := range header {
		if name == groupCol {
			groupIdx = i
			continue
		}
		varNames = append(varNames, name)
	}
	if groupIdx < 0 {
		return nil, fmt.Errorf("%s: no column %q", path, groupCol)
	}

	rows := records[1:]
	x := make([]float64, 0, len(rows)*len(varNames))
	groups := make([]string, len(rows))
	for i, rec := range rows {
		for j, field := range rec {
			if j == groupIdx {
				groups[i] = field
				continue
			}
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("%s: row %d, column %q: %v", path, i+2, header[j], err)
			}
			x = append(x, v)
		}
	}

	ds, err := scdata.New(varNames, x)
	if err != nil {
		return nil, err
	}
	if err := ds.SetObsFactor(groupCol, scdata.NewFactor(groups)); err != nil {
		return nil, err
	}
	return ds, nil
}
