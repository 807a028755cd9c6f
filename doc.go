// Package parallelization is your in-memory playground for iterative linear
// solvers — from dense diagonally dominant systems to a worker-pool Jacobi
// method with reproducible speedup benchmarks.
//
// 🚀 What is algorithm-parallelization?
//
//	A small, deterministic numerical library that brings together:
//		• Dense systems: flat row-major storage, validation, residual checks
//		• Generators: seeded diagonally dominant matrices for fair benchmarks
//		• Solvers: sequential Jacobi and a block-parallel twin, bit-identical
//		• Verification: direct-solve oracle & forward-error reporting
//		• Benchmarks: speedup/efficiency tables, JSON reports, HTML charts
//
// ✨ Why choose it?
//
//   - Deterministic by construction – any worker count reproduces the
//     sequential iterates exactly, down to the last bit
//   - Honest parallelism – static row blocks, two barriers per sweep,
//     no locks or atomics on the hot path
//   - Practical tooling – a CLI harness and chart reports built in
//
// Under the hood, everything is organized under these subpackages:
//
//	linsys/          — dense system storage, dominant generator, residual & exact solve
//	jacobi/          — the sequential and parallel solvers
//	bench/           — timing harness, tables, JSON, charts
//	cmd/jacobibench/ — command-line sweep
//	examples/        — runnable scenarios
//
// One Jacobi sweep, two barriers:
//
//	x ──► [update rows, per block] ──barrier──► max diff ──► [commit copy] ──barrier──► next sweep
//
// Dive into examples/ for runnable scenarios and bench/ for the measurement
// methodology.
//
//	go get github.com/S-W-Leong/algorithm-parallelization
package parallelization
