// SPDX-License-Identifier: MIT

// Package matrix - transpose, products and tolerance equality.
//
// Determinism:
//   - Fixed i→j→k loop orders bounded by the declared order; padding cells
//     are never read or written.
//   - Equality is delegated to package approx, the same policy tuple and
//     color use.

package matrix

import (
	"fmt"

	"github.com/benjaminhirsch/raytracer/approx"
	"github.com/benjaminhirsch/raytracer/tuple"
)

// Transpose returns a new matrix of the same order with cell (i, j) equal
// to m's cell (j, i).
// Panics with ErrBadOrder on the zero value.
// Complexity: O(n²).
func (m Matrix) Transpose() Matrix {
	out := m.empty()
	n := m.order
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out.cells[j][i] = m.cells[i][j]
		}
	}

	return out
}

// Mul returns the product m × o, out(i,j) = Σ_k m(i,k)·o(k,j) over the
// declared order.
// Returns ErrDimensionMismatch when the orders differ; panics with
// ErrBadOrder when both operands are zero values.
// Complexity: O(n³).
func (m Matrix) Mul(o Matrix) (Matrix, error) {
	if err := validateSameOrder(m, o); err != nil {
		return Matrix{}, matrixErrorf(ctxMul, m.order, o.order, err)
	}
	out := m.empty()
	n := m.order
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var sum float64
			for k := 0; k < n; k++ {
				sum += m.cells[i][k] * o.cells[k][j]
			}
			out.cells[i][j] = sum
		}
	}

	return out, nil
}

// row returns row i of an order-4 matrix as a Tuple (x, y, z, w).
func (m Matrix) row(i int) tuple.Tuple {
	r := m.cells[i]

	return tuple.New(r[0], r[1], r[2], r[3])
}

// Apply returns the linear map m applied to t: component i of the result is
// the dot product of row i (read as a tuple) with t.
// Returns ErrDimensionMismatch unless m has order 4.
// Complexity: O(16).
func (m Matrix) Apply(t tuple.Tuple) (tuple.Tuple, error) {
	if m.order != maxOrder {
		return tuple.Tuple{}, fmt.Errorf("Matrix.Apply(order=%d, %v): %w", m.order, t, ErrDimensionMismatch)
	}

	return tuple.New(
		m.row(0).Dot(t),
		m.row(1).Dot(t),
		m.row(2).Dot(t),
		m.row(3).Dot(t),
	), nil
}

// Equal reports whether m and o declare the same order and every cell within
// that order is equal within the tolerance resolved from opts.
// Complexity: O(n²).
func (m Matrix) Equal(o Matrix, opts ...approx.Option) bool {
	if m.order != o.order {
		return false
	}
	eps := approx.Resolve(opts...)
	for i := 0; i < m.order; i++ {
		for j := 0; j < m.order; j++ {
			if !approx.Within(m.cells[i][j], o.cells[i][j], eps) {
				return false
			}
		}
	}

	return true
}
