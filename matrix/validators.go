// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Single source of truth for order and index checks.
//   - Return plain sentinel errors (no wrapping) so call sites wrap uniformly.
//
// All checks are pure, allocate nothing and run in O(1).

package matrix

// validateOrder ensures order ∈ [minOrder, maxOrder].
func validateOrder(order int) error {
	if order < minOrder || order > maxOrder {
		return ErrBadOrder
	}

	return nil
}

// validateIndex ensures 0 ≤ row, col < order.
// An unsupported order has no valid index, so the zero value rejects all.
func validateIndex(order, row, col int) error {
	if row < 0 || row >= order {
		return ErrOutOfRange
	}
	if col < 0 || col >= order {
		return ErrOutOfRange
	}

	return nil
}

// validateSameOrder ensures a and b declare the same order.
func validateSameOrder(a, b Matrix) error {
	if a.order != b.order {
		return ErrDimensionMismatch
	}

	return nil
}
