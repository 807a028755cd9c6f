// Command jacobibench sweeps the Jacobi solvers across matrix sizes and
// worker counts, printing the classic speedup/efficiency table and optionally
// writing JSON and HTML chart reports.
//
// Usage:
//
//	jacobibench -sizes 100,500,1000,2000 -workers 1,2,4,8 -verify -html report.html
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/S-W-Leong/algorithm-parallelization/bench"
)

func main() {
	def := bench.DefaultConfig()

	var (
		sizesArg   = flag.String("sizes", csv(def.Sizes), "comma-separated matrix sizes")
		workersArg = flag.String("workers", csv(def.Workers), "comma-separated worker counts")
		tol        = flag.Float64("tol", def.Tolerance, "convergence tolerance on maxDiff")
		maxIter    = flag.Int("maxiter", def.MaxIterations, "iteration cap per solve")
		seed       = flag.Int64("seed", def.Seed, "generator seed, reused for every size")
		verify     = flag.Bool("verify", false, "check solutions against a direct solve")
		jsonPath   = flag.String("json", "", "write the JSON report to this file")
		htmlPath   = flag.String("html", "", "write the HTML chart report to this file")
		quiet      = flag.Bool("quiet", false, "suppress per-solve progress lines")
	)
	flag.Parse()

	sizes, err := parseInts(*sizesArg)
	if err != nil {
		fatalf("bad -sizes: %v", err)
	}
	workers, err := parseInts(*workersArg)
	if err != nil {
		fatalf("bad -workers: %v", err)
	}

	cfg := bench.Config{
		Sizes:         sizes,
		Workers:       workers,
		Tolerance:     *tol,
		MaxIterations: *maxIter,
		Seed:          *seed,
		Verify:        *verify,
		Verbose:       !*quiet,
	}

	rep, err := bench.Run(cfg)
	if err != nil {
		fatalf("%v", err)
	}

	fmt.Print(rep.Table())

	if *jsonPath != "" {
		if err := writeFile(*jsonPath, rep.WriteJSON); err != nil {
			fatalf("write JSON report: %v", err)
		}
	}
	if *htmlPath != "" {
		if err := writeFile(*htmlPath, rep.RenderHTML); err != nil {
			fatalf("write HTML report: %v", err)
		}
	}
}

// csv renders an int slice back into flag-default form, e.g. "1,2,4,8".
func csv(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, ",")
}

// parseInts splits a comma-separated list into ints, rejecting empty fields.
func parseInts(s string) ([]int, error) {
	var xs []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, fmt.Errorf("empty entry in %q", s)
		}
		x, err := strconv.Atoi(part)
		if err != nil {
			return nil, err
		}
		xs = append(xs, x)
	}
	return xs, nil
}

// writeFile creates path and streams render into it, surfacing close errors.
func writeFile(path string, render func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "jacobibench: "+format+"\n", args...)
	os.Exit(1)
}
