// SPDX-License-Identifier: MIT

// Package matrix - fixed-store value type & safe accessors.
//
// Purpose:
//   - Keep every matrix in a [4][4]float64 with the declared order alongside.
//   - Guarantee safety at the public surface: At/Set return errors.
//   - Keep loops bounded by the declared order; padding cells stay zero.
//
// Complexity quicksheet:
//   - New2/New3/New4/Identity: O(1); At/Set: O(1); String: O(n²).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt   = "At"  // method tag used in error wrappers
	ctxSet  = "Set" // method tag used in error wrappers
	ctxMul  = "Mul"
	ctxZero = "Zero"
)

// ---------- formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Supported orders.
const (
	minOrder = 2
	maxOrder = 4
)

// matrixErrorf wraps a sentinel with the method tag and call-site indices.
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is a square matrix of order 2, 3 or 4 on a fixed 4×4 store.
// The zero value has order 0 and is only useful as a Set/At target that
// always fails; build matrices with New2/New3/New4/Identity/Zero.
type Matrix struct {
	cells [maxOrder][maxOrder]float64 // row-major; cells beyond order are zero
	order int                         // declared order: 2, 3 or 4
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = Matrix{}

// New2 builds an order-2 matrix from its rows.
func New2(r0, r1 [2]float64) Matrix {
	var m Matrix
	m.order = 2
	copy(m.cells[0][:], r0[:])
	copy(m.cells[1][:], r1[:])

	return m
}

// New3 builds an order-3 matrix from its rows.
func New3(r0, r1, r2 [3]float64) Matrix {
	var m Matrix
	m.order = 3
	copy(m.cells[0][:], r0[:])
	copy(m.cells[1][:], r1[:])
	copy(m.cells[2][:], r2[:])

	return m
}

// New4 builds an order-4 matrix from its rows.
func New4(r0, r1, r2, r3 [4]float64) Matrix {
	return Matrix{
		cells: [maxOrder][maxOrder]float64{r0, r1, r2, r3},
		order: 4,
	}
}

// Identity returns the order-4 identity matrix I, with M×I == I×M == M for
// every order-4 M.
func Identity() Matrix {
	return New4(
		[4]float64{1, 0, 0, 0},
		[4]float64{0, 1, 0, 0},
		[4]float64{0, 0, 1, 0},
		[4]float64{0, 0, 0, 1},
	)
}

// Zero returns the all-zero matrix of the given order.
// Returns ErrBadOrder unless order is 2, 3 or 4.
func Zero(order int) (Matrix, error) {
	if err := validateOrder(order); err != nil {
		return Matrix{}, fmt.Errorf("Matrix.%s(%d): %w", ctxZero, order, err)
	}

	return Matrix{order: order}, nil
}

// empty returns a zero matrix with the same order as m.
// Panics with ErrBadOrder when m's order is unsupported; only the zero value
// (or a hand-built struct) can reach that state.
func (m Matrix) empty() Matrix {
	z, err := Zero(m.order)
	if err != nil {
		panic(err)
	}

	return z
}

// Order returns the declared order (0 for the zero value).
func (m Matrix) Order() int {
	return m.order
}

// At returns the cell at (row, col).
// Returns ErrOutOfRange if either index is negative or ≥ Order().
func (m Matrix) At(row, col int) (float64, error) {
	if err := validateIndex(m.order, row, col); err != nil {
		return 0, matrixErrorf(ctxAt, row, col, err)
	}

	return m.cells[row][col], nil
}

// Set assigns v to the cell at (row, col).
// Returns ErrOutOfRange if either index is negative or ≥ Order(); the matrix
// is left unchanged in that case.
func (m *Matrix) Set(row, col int, v float64) error {
	if err := validateIndex(m.order, row, col); err != nil {
		return matrixErrorf(ctxSet, row, col, err)
	}
	m.cells[row][col] = v

	return nil
}

// String formats the live cells one row per line, e.g. "[1, 2]\n[3, 4]\n".
func (m Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.order; i++ { // iterate over rows
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.order; j++ { // iterate over columns
			fmt.Fprintf(&sb, "%g", m.cells[i][j])
			if j < m.order-1 {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
