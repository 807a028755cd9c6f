// Package bench drives both Jacobi solver variants across a size × worker
// grid, times each solve, and reports speedup and efficiency as a text
// table, an indented JSON document, or an HTML chart page. One System per
// size is generated deterministically and shared by every variant, so the
// numbers compare like against like.
package bench

import (
	"errors"
	"math"
	"time"

	"github.com/S-W-Leong/algorithm-parallelization/jacobi"
)

// Defaults - the canonical benchmark grid.
const (
	// DefaultSeed feeds linsys.NewDominant once per size, so every size sees
	// the same system on every run.
	DefaultSeed = 42
)

var (
	// ErrNoSizes indicates an empty Config.Sizes grid.
	ErrNoSizes = errors.New("bench: sizes must not be empty")

	// ErrNoWorkers indicates an empty Config.Workers grid.
	ErrNoWorkers = errors.New("bench: workers must not be empty")

	// ErrBadSize indicates a non-positive entry in Config.Sizes.
	ErrBadSize = errors.New("bench: sizes must be positive")

	// ErrBadWorkers indicates a non-positive entry in Config.Workers.
	ErrBadWorkers = errors.New("bench: worker counts must be positive")
)

// Config describes one benchmark session.
//
// Fields:
//   - Sizes         — system sizes to sweep, one generated System per entry.
//   - Workers       — worker counts for the parallel solver, swept per size.
//   - Tolerance     — convergence threshold handed to both solver variants.
//   - MaxIterations — iteration cap handed to both solver variants.
//   - Seed          — generator seed, fixed per size for reproducibility.
//   - Verify        — also solve each system directly (LU) and record every
//     sample's forward error ‖x − x*‖∞ against that oracle.
//   - Verbose       — print one progress line per solve via fmt.Printf.
type Config struct {
	Sizes         []int   `json:"sizes"`
	Workers       []int   `json:"workers"`
	Tolerance     float64 `json:"tolerance"`
	MaxIterations int     `json:"max_iterations"`
	Seed          int64   `json:"seed"`
	Verify        bool    `json:"verify"`
	Verbose       bool    `json:"-"`
}

// DefaultConfig returns the canonical grid: sizes 100/500/1000/2000 crossed
// with 1/2/4/8 workers at the solvers' default tolerance and cap.
func DefaultConfig() Config {
	return Config{
		Sizes:         []int{100, 500, 1000, 2000},
		Workers:       []int{1, 2, 4, 8},
		Tolerance:     jacobi.DefaultTolerance,
		MaxIterations: jacobi.DefaultMaxIterations,
		Seed:          DefaultSeed,
	}
}

// Validate rejects unusable grids and solver parameters before any work.
// Solver parameters reuse the jacobi sentinels since they bind the same
// fields. Returns bare sentinels; Run wraps them with its operation tag.
func (c Config) Validate() error {
	if len(c.Sizes) == 0 {
		return ErrNoSizes
	}
	if len(c.Workers) == 0 {
		return ErrNoWorkers
	}
	for _, n := range c.Sizes {
		if n <= 0 {
			return ErrBadSize
		}
	}
	for _, w := range c.Workers {
		if w <= 0 {
			return ErrBadWorkers
		}
	}
	if c.Tolerance <= 0 || math.IsNaN(c.Tolerance) {
		return jacobi.ErrInvalidTolerance
	}
	if c.MaxIterations <= 0 {
		return jacobi.ErrInvalidMaxIterations
	}
	return nil
}

// Sample is one timed solve. The sequential baseline of each size carries
// Parallel=false, Workers=1, Speedup=1, Efficiency=100; parallel samples
// measure Speedup = seqTime/parTime and Efficiency = Speedup/Workers×100%.
type Sample struct {
	Size       int           `json:"size"`
	Workers    int           `json:"workers"`
	Parallel   bool          `json:"parallel"`
	Iterations int           `json:"iterations"`
	Converged  bool          `json:"converged"`
	Residual   float64       `json:"residual"`
	ForwardErr float64       `json:"forward_err,omitempty"`
	Elapsed    time.Duration `json:"elapsed_ns"`
	Speedup    float64       `json:"speedup"`
	Efficiency float64       `json:"efficiency"`
}

// Report is a finished benchmark session: the configuration it ran, the
// host's scheduler width for context, and one Sample per solve in sweep
// order (per size: sequential first, then each worker count).
type Report struct {
	Config    Config        `json:"config"`
	MaxProcs  int           `json:"max_procs"`
	StartedAt time.Time     `json:"started_at"`
	Elapsed   time.Duration `json:"elapsed_ns"`
	Samples   []Sample      `json:"samples"`
}

// seq returns the sequential baseline sample for a size, nil if absent.
func (r *Report) seq(size int) *Sample {
	var i int
	for i = range r.Samples {
		if r.Samples[i].Size == size && !r.Samples[i].Parallel {
			return &r.Samples[i]
		}
	}
	return nil
}

// par returns the parallel sample for a (size, workers) cell, nil if absent.
func (r *Report) par(size, workers int) *Sample {
	var i int
	for i = range r.Samples {
		if r.Samples[i].Size == size && r.Samples[i].Parallel && r.Samples[i].Workers == workers {
			return &r.Samples[i]
		}
	}
	return nil
}
