package jacobi

import (
	"fmt"

	"github.com/S-W-Leong/algorithm-parallelization/linsys"
)

// combineMax is the single-threaded reduction over the per-worker maxima.
// Runs strictly after the update-phase barrier, so every slot is final.
func combineMax(slots []float64) float64 {
	maxDiff := 0.0
	var k int
	for k = 0; k < len(slots); k++ {
		if slots[k] > maxDiff {
			maxDiff = slots[k]
		}
	}
	return maxDiff
}

// Parallel — multi-worker Jacobi iteration
//
// Description:
//
//	Identical contract and update rule as Sequential plus Options.Workers:
//	a data-parallel fork-join repeated once per iteration. Row updates are
//	independent, so the row range is split statically into contiguous
//	blocks, one per worker; dominance-convergence behavior, termination
//	policy, and the silent-cap contract match Sequential exactly.
//
// Decomposition and reduction, per iteration:
//  1. Update phase (parallel): worker k runs the shared row kernel over its
//     block and writes the block-local maximum change into slots[k] — its
//     private accumulator slot, no shared mutable scalar, no locks.
//  2. Join barrier: all update workers must finish before anything reads
//     the slots.
//  3. Combine (single-threaded): global maxDiff = max over slots.
//  4. Commit phase (parallel): copy xNew into x, partitioned by the same
//     blocks — element assignments are independent.
//  5. Second barrier: the commit must complete everywhere before the next
//     update phase reads x. Then count, report, test convergence.
//
// Both barriers are correctness requirements, not tuning: dropping either
// races the next phase against unfinished writes to x or the slots.
//
// Numerical note: each row's inner sum runs through the same kernel in the
// same fixed j order as Sequential, so per-row results are bit-identical;
// the per-worker maxima combine through exact max, so iteration counts and
// final iterates match Sequential bit-for-bit on the same inputs.
//
// Inputs: as Sequential, plus opts.Workers > 0 (else ErrInvalidWorkers).
// Workers beyond the row count stay idle; Workers == 1 degenerates to the
// sequential schedule on one pooled worker.
//
// Returns (*Result, error): as Sequential.
//
// Concurrency: A and b are shared read-only; x and xNew are partitioned by
// block ownership during a phase; slots[k] is written by exactly one worker
// per iteration and read only after the barrier. No other communication.
// Complexity: Time O(MaxIterations·n²/Workers) plus two barriers per
// iteration, Space O(n + Workers).
func Parallel(sys *linsys.System, x []float64, opts Options) (*Result, error) {
	if err := linsys.ValidateNotNil(sys); err != nil {
		return nil, jacobiErrorf(opParallel, err)
	}
	if err := opts.validate(true); err != nil {
		return nil, jacobiErrorf(opParallel, err)
	}
	x, err := prepareGuess(sys, x)
	if err != nil {
		return nil, jacobiErrorf(opParallel, err)
	}

	n := sys.N()
	xNew := make([]float64, n) // scratch iterate, shared by block ownership

	// Fixed pool for the whole solve; chunk k covers the same rows every
	// iteration, so slot k always has exactly one writer per phase.
	p := newPool(opts.Workers)
	defer p.close()
	slots := make([]float64, p.numChunks(n)) // per-worker local maxima

	var iterations int
	var maxDiff float64
	for iter := 0; iter < opts.MaxIterations; iter++ {
		// 1+2) Parallel update into xNew; run blocks until every chunk is done.
		p.run(n, func(k, start, end int) {
			slots[k] = updateRange(sys, x, xNew, start, end)
		})

		// 3) Single-threaded reduction of the per-worker maxima.
		maxDiff = combineMax(slots)

		// 4+5) Parallel partitioned commit xNew → x, second full barrier.
		p.run(n, func(_, start, end int) {
			copy(x[start:end], xNew[start:end])
		})

		iterations++
		if opts.Verbose {
			fmt.Printf("Parallel: workers=%d iter=%d maxDiff=%.3e\n", opts.Workers, iterations, maxDiff)
		}
		if maxDiff < opts.Tolerance {
			break
		}
	}

	return &Result{
		X:          x,
		Iterations: iterations,
		Converged:  maxDiff < opts.Tolerance,
		MaxDiff:    maxDiff,
	}, nil
}
