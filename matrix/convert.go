// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"golang.org/x/image/math/f64"
)

// Mat4 returns m as an x/image row-major 4×4 matrix (element r*4+c is row r,
// column c).
// Returns ErrDimensionMismatch unless m has order 4.
func (m Matrix) Mat4() (f64.Mat4, error) {
	var out f64.Mat4
	if m.order != maxOrder {
		return out, fmt.Errorf("Matrix.Mat4(order=%d): %w", m.order, ErrDimensionMismatch)
	}
	for r := 0; r < maxOrder; r++ {
		copy(out[r*maxOrder:(r+1)*maxOrder], m.cells[r][:])
	}

	return out, nil
}

// FromMat4 builds an order-4 matrix from an x/image row-major 4×4 matrix.
func FromMat4(a f64.Mat4) Matrix {
	m := Matrix{order: maxOrder}
	for r := 0; r < maxOrder; r++ {
		copy(m.cells[r][:], a[r*maxOrder:(r+1)*maxOrder])
	}

	return m
}

// Mat3 returns m as an x/image row-major 3×3 matrix.
// Returns ErrDimensionMismatch unless m has order 3.
func (m Matrix) Mat3() (f64.Mat3, error) {
	const n = 3
	var out f64.Mat3
	if m.order != n {
		return out, fmt.Errorf("Matrix.Mat3(order=%d): %w", m.order, ErrDimensionMismatch)
	}
	for r := 0; r < n; r++ {
		copy(out[r*n:(r+1)*n], m.cells[r][:n])
	}

	return out, nil
}
