// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command obscurestat reads whitespace-separated numbers from input
// files and prints every statistic in the catalog. If no inputs are
// provided, it reads from stdin.
//
// By default each line holds one value and the univariate catalogue is
// reported. With -pairs each line holds two values and the bivariate
// catalogue is reported instead. "NaN" marks a missing value; missing
// values propagate to the results unless -drop-nan is given.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/aclements/go-moremath/stats"

	"github.com/aclements/go-obscurestats/catalog"
	"github.com/aclements/go-obscurestats/sample"
)

func main() {
	log.SetPrefix("obscurestat: ")
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), `Usage: %s [flags] [inputs...]

obscurestat reads whitespace-separated numbers from input files and
prints every statistic in the catalog. If no inputs are provided, it
reads from stdin. "NaN" marks a missing value.
`, os.Args[0])
		flag.PrintDefaults()
	}
	pairs := flag.Bool("pairs", false, "read two values per line and report bivariate measures")
	dropNaN := flag.Bool("drop-nan", false, "skip missing values instead of propagating them")
	flag.Parse()

	var xs, ys []float64
	files := FileArgs{Args: flag.Args()}
	for {
		f, err := files.Next()
		if err != nil {
			log.Fatal(err)
		}
		if f == nil {
			break
		}
		if err := readColumns(f, f.Name(), *pairs, &xs, &ys); err != nil {
			log.Fatal(err)
		}
	}

	x, err := sample.New(xs)
	if err != nil {
		log.Fatal(err)
	}
	opt := catalog.Options{DropNaN: *dropNaN}

	if !*pairs {
		summarize(os.Stdout, "x", x)
		fmt.Println()
		for _, e := range catalog.All() {
			if e.Arity != catalog.Univariate {
				continue
			}
			fmt.Printf("%-40s %.6g\n", e.Name, e.EvalUnivariate(x, opt))
		}
		return
	}

	y, err := sample.New(ys)
	if err != nil {
		log.Fatal(err)
	}
	summarize(os.Stdout, "x", x)
	summarize(os.Stdout, "y", y)
	fmt.Println()
	for _, e := range catalog.All() {
		if e.Arity != catalog.Bivariate {
			continue
		}
		v, err := e.EvalBivariate(x, y, opt)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%-40s %.6g\n", e.Name, v)
	}
}

// summarize writes a one-line description of the observed (non-NaN)
// values of s.
func summarize(w io.Writer, label string, s sample.Sample) {
	obs := stats.Sample{Xs: s.DropNaN().Xs}
	obs.Sort()
	fmt.Fprintf(w, "%s: N %d", label, len(obs.Xs))
	if len(obs.Xs) == 0 {
		fmt.Fprintln(w)
		return
	}
	fmt.Fprintf(w, "  mean %.6g  std dev %.6g", obs.Mean(), obs.StdDev())
	fmt.Fprintf(w, "  min %.6g  median %.6g  max %.6g\n",
		obs.Quantile(0), obs.Quantile(0.5), obs.Quantile(1))
}

func readColumns(r io.Reader, name string, pairs bool, xs, ys *[]float64) error {
	want := 1
	if pairs {
		want = 2
	}
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != want {
			return fmt.Errorf("%s:%d: want %d values, got %d", name, line, want, len(fields))
		}
		vals := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return fmt.Errorf("%s:%d: %v", name, line, err)
			}
			if math.IsInf(v, 0) {
				return fmt.Errorf("%s:%d: infinite value %v", name, line, v)
			}
			vals[i] = v
		}
		*xs = append(*xs, vals[0])
		if pairs {
			*ys = append(*ys, vals[1])
		}
	}
	return scanner.Err()
}

// FileArgs iterates over input file arguments, defaulting to stdin
// when there are none.
type FileArgs struct {
	Args []string

	next int
	f    *os.File
}

func (fa *FileArgs) Next() (*os.File, error) {
	if fa.f != nil {
		err := fa.f.Close()
		fa.f = nil
		if err != nil {
			return nil, err
		}
	}

	if fa.next >= len(fa.Args) {
		if fa.next == 0 {
			fa.next++
			return os.Stdin, nil
		}
		return nil, nil
	}

	f, err := os.Open(fa.Args[fa.next])
	if err != nil {
		return nil, err
	}
	fa.next++
	fa.f = f
	return f, nil
}
