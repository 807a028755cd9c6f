package bench

import (
	"fmt"
	"strings"
)

// Fixed table furniture, mirroring the classic harness layout.
const (
	tableBanner  = "============================================="
	tableRule    = "====================================================="
	tableDivider = "-----------------------------------------------------"
)

// Table renders the session as a fixed-width text report: a session header,
// then per size the sequential baseline block followed by one row per worker
// count with time, speedup, and efficiency.
func (r *Report) Table() string {
	var sb strings.Builder

	fmt.Fprintln(&sb, tableBanner)
	fmt.Fprintln(&sb, "  Jacobi Iterative Method - Parallel Benchmark")
	fmt.Fprintln(&sb, tableBanner)
	fmt.Fprintf(&sb, "Max procs: %d\n", r.MaxProcs)
	fmt.Fprintf(&sb, "Tolerance: %.1e   Max iterations: %d   Seed: %d\n",
		r.Config.Tolerance, r.Config.MaxIterations, r.Config.Seed)

	for _, n := range r.Config.Sizes {
		seq := r.seq(n)
		if seq == nil {
			continue
		}

		fmt.Fprintf(&sb, "\n%s\n", tableRule)
		fmt.Fprintf(&sb, "Matrix size: %d x %d\n", n, n)
		fmt.Fprintln(&sb, tableRule)

		fmt.Fprintln(&sb, "\nSequential:")
		fmt.Fprintf(&sb, "  Iterations: %d\n", seq.Iterations)
		fmt.Fprintf(&sb, "  Time: %.3f ms\n", ms(seq))
		fmt.Fprintf(&sb, "  Residual: %e\n", seq.Residual)
		if !seq.Converged {
			fmt.Fprintln(&sb, "  (iteration cap reached without convergence)")
		}
		if r.Config.Verify {
			fmt.Fprintf(&sb, "  Forward error: %e\n", seq.ForwardErr)
		}

		fmt.Fprintln(&sb, "\nParallel:")
		fmt.Fprintln(&sb, tableDivider)
		fmt.Fprintf(&sb, "%10s%15s%12s%15s\n", "Workers", "Time (ms)", "Speedup", "Efficiency")
		fmt.Fprintln(&sb, tableDivider)
		for _, w := range r.Config.Workers {
			p := r.par(n, w)
			if p == nil {
				continue
			}
			fmt.Fprintf(&sb, "%10d%15.3f%12.2f%14.2f%%\n", w, ms(p), p.Speedup, p.Efficiency)
		}
	}

	return sb.String()
}

// ms converts a sample's elapsed time to milliseconds for display.
func ms(s *Sample) float64 {
	return float64(s.Elapsed.Nanoseconds()) / 1e6
}
