package bench

import (
	"fmt"
	"math"
	"runtime"
	"time"

	"github.com/S-W-Leong/algorithm-parallelization/jacobi"
	"github.com/S-W-Leong/algorithm-parallelization/linsys"
)

// Operation tags used in wrapped errors.
const (
	opRun = "Run"
)

// benchErrorf wraps err with an operation tag, preserving errors.Is matching.
func benchErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// maxAbsDiff returns ‖a − b‖∞ for equal-length vectors.
func maxAbsDiff(a, b []float64) float64 {
	maxDiff := 0.0
	var i int
	var d float64
	for i = range a {
		d = math.Abs(a[i] - b[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff
}

// Run executes the full sweep described by cfg and returns the session Report.
//
// Per size:
//  1. generate one strictly dominant System from (size, cfg.Seed) — the same
//     inputs for every variant, keeping the comparison fair;
//  2. when cfg.Verify is set, solve it once directly (linsys.Exact) as the
//     forward-error oracle;
//  3. time the Sequential solve from a fresh zero guess — the baseline;
//  4. per worker count, time a Parallel solve from a fresh zero guess and
//     derive Speedup = seqTime/parTime and Efficiency = Speedup/workers×100%.
//
// Every sample records its iteration count, convergence flag, and the
// post-hoc residual ‖Ax − b‖₂. Timing covers the solve call only, never
// generation or verification. Non-convergence does not stop the sweep; it is
// visible in the samples.
//
// Errors: configuration failures wrap the bench/jacobi sentinels; generation
// or verification failures wrap the linsys sentinels.
// Complexity: dominated by the solves, O(Σ sizes² · iterations).
func Run(cfg Config) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, benchErrorf(opRun, err)
	}

	rep := &Report{
		Config:    cfg,
		MaxProcs:  runtime.GOMAXPROCS(0),
		StartedAt: time.Now(),
		Samples:   make([]Sample, 0, len(cfg.Sizes)*(1+len(cfg.Workers))),
	}
	solverOpts := jacobi.Options{Tolerance: cfg.Tolerance, MaxIterations: cfg.MaxIterations}

	for _, n := range cfg.Sizes {
		sys, err := linsys.NewDominant(n, cfg.Seed)
		if err != nil {
			return nil, benchErrorf(opRun, err)
		}

		var exact []float64
		if cfg.Verify {
			if exact, err = sys.Exact(); err != nil {
				return nil, benchErrorf(opRun, err)
			}
		}

		// Sequential baseline.
		start := time.Now()
		res, err := jacobi.Sequential(sys, nil, solverOpts)
		seqElapsed := time.Since(start)
		if err != nil {
			return nil, benchErrorf(opRun, err)
		}
		sample, err := newSample(sys, n, 1, false, res, seqElapsed, exact)
		if err != nil {
			return nil, benchErrorf(opRun, err)
		}
		sample.Speedup = 1
		sample.Efficiency = 100
		rep.Samples = append(rep.Samples, sample)
		if cfg.Verbose {
			fmt.Printf("bench: n=%d sequential iters=%d time=%s residual=%.3e\n",
				n, res.Iterations, seqElapsed, sample.Residual)
		}
		// Clock floor keeps the speedup ratios finite and positive on
		// degenerate tiny solves; samples keep the raw measurement.
		if seqElapsed <= 0 {
			seqElapsed = time.Nanosecond
		}

		// Parallel sweep against the same system.
		for _, w := range cfg.Workers {
			opts := solverOpts
			opts.Workers = w

			start = time.Now()
			pres, perr := jacobi.Parallel(sys, nil, opts)
			parElapsed := time.Since(start)
			if perr != nil {
				return nil, benchErrorf(opRun, perr)
			}
			sample, err = newSample(sys, n, w, true, pres, parElapsed, exact)
			if err != nil {
				return nil, benchErrorf(opRun, err)
			}
			if parElapsed <= 0 {
				parElapsed = time.Nanosecond
			}
			sample.Speedup = seqElapsed.Seconds() / parElapsed.Seconds()
			sample.Efficiency = sample.Speedup / float64(w) * 100
			rep.Samples = append(rep.Samples, sample)
			if cfg.Verbose {
				fmt.Printf("bench: n=%d workers=%d iters=%d time=%s speedup=%.2f\n",
					n, w, pres.Iterations, parElapsed, sample.Speedup)
			}
		}
	}

	rep.Elapsed = time.Since(rep.StartedAt)
	return rep, nil
}

// newSample assembles the measurement record shared by both variants,
// including the post-hoc residual and the optional forward error.
func newSample(sys *linsys.System, size, workers int, parallel bool,
	res *jacobi.Result, elapsed time.Duration, exact []float64) (Sample, error) {
	residual, err := sys.ResidualNorm(res.X)
	if err != nil {
		return Sample{}, err
	}
	s := Sample{
		Size:       size,
		Workers:    workers,
		Parallel:   parallel,
		Iterations: res.Iterations,
		Converged:  res.Converged,
		Residual:   residual,
		Elapsed:    elapsed,
	}
	if exact != nil {
		s.ForwardErr = maxAbsDiff(res.X, exact)
	}
	return s, nil
}
