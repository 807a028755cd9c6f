// Package jacobi: shared row-update kernel.
// Both solver variants run this exact code, so for a fixed row the
// floating-point result is bit-identical between Sequential and Parallel:
// the inner sum always walks j in ascending order over the same values.

package jacobi

import (
	"math"

	"github.com/S-W-Leong/algorithm-parallelization/linsys"
)

// updateRange applies one Jacobi update to rows [start, end):
//
//	xNew[i] = (b[i] − Σ_{j≠i} A[i][j]·x[j]) / A[i][i]
//
// reading only the previous iterate x, and returns the block-local maximum
// |xNew[i] − x[i]|. The caller owns the [start, end) partition: no two
// concurrent calls may overlap, and x must not change while any call runs.
// Complexity: O((end-start)·n).
func updateRange(sys *linsys.System, x, xNew []float64, start, end int) float64 {
	b := sys.B()
	localMax := 0.0

	var i, j int
	var row []float64
	var sigma, next, diff float64
	for i = start; i < end; i++ {
		row = sys.Row(i) // flat view of A's row i
		sigma = 0.0
		for j = 0; j < len(row); j++ { // fixed ascending j order
			if j != i {
				sigma += row[j] * x[j]
			}
		}
		next = (b[i] - sigma) / row[i] // dominance keeps row[i] away from zero
		xNew[i] = next

		diff = math.Abs(next - x[i])
		if diff > localMax {
			localMax = diff
		}
	}

	return localMax
}
