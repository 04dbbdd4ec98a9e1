// SPDX-License-Identifier: MIT

package approx

import "math"

// Epsilon is the default absolute tolerance: the difference between 1.0 and
// the next representable float64 (2.220446049250313e-16).
const Epsilon = 0x1p-52

// Within reports whether |a-b| <= eps.
// NaN never compares equal, not even to itself.
// Complexity: O(1).
func Within(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps // NaN makes the comparison false
}

// Equal reports whether a and b are equal within the tolerance resolved
// from opts (Epsilon when no option is given).
// Complexity: O(len(opts)).
func Equal(a, b float64, opts ...Option) bool {
	return Within(a, b, Resolve(opts...))
}

// All reports whether every pair (a[i], b[i]) is equal within eps.
// Slices of different length are never equal.
// Complexity: O(n).
func All(a, b []float64, eps float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Within(a[i], b[i], eps) {
			return false
		}
	}

	return true
}
