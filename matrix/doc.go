// Package matrix offers the dense numeric storage shared by the QUBO packages.
//
// The matrix package provides:
//
//   - Matrix, a small bounds-checked interface over two-dimensional float64 data.
//   - Dense, a row-major implementation with an explicit finite-value policy.
//   - Central validators (square, finite, symmetric) returning sentinel errors.
//   - Thin facades (FromRows, Symmetrize, FoldUpper, AllClose) used by
//     the cost model and the Ising encoder.
//
// Every public operation validates its input and returns one of the sentinels
// from errors.go; nothing panics on user data. Loops always run in fixed
// i→j order, so identical inputs produce bit-identical outputs.
package matrix
