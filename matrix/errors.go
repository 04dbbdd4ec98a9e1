// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All public operations return these sentinels, wrapped with call-site
// context; tests match them with errors.Is. Panics are reserved for the
// private order-preserving constructor (programmer error).

package matrix

import "errors"

var (
	// ErrOutOfRange indicates that a row or column index is negative or not
	// below the declared order. At/Set return this, they never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates operands of incompatible order, e.g.
	// Mul of an order-3 by an order-4 matrix, or Apply on a non-order-4 matrix.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrBadOrder indicates a declared order outside {2, 3, 4}.
	ErrBadOrder = errors.New("matrix: unsupported order")
)
