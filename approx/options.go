// SPDX-License-Identifier: MIT

// Package approx: functional options for the tolerance policy.
//
// Contract:
//   - Option constructors validate eagerly and panic on nonsensical values
//     (programmer error), comparisons themselves never panic.
//   - Options apply in order; the last WithEpsilon wins.
package approx

import "math"

// panicEpsilonInvalid is the stable panic message for WithEpsilon.
const panicEpsilonInvalid = "approx: WithEpsilon: eps must be finite, non-negative"

// Option mutates the resolved comparison policy.
type Option func(*options)

// options is the effective comparison policy after applying Option setters.
type options struct {
	eps float64 // >= 0; Epsilon by default
}

// WithEpsilon overrides the absolute tolerance.
// Panics when eps is NaN, ±Inf or negative.
// Complexity: O(1).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *options) { o.eps = eps }
}

// Resolve applies opts over the defaults and returns the tolerance to use.
// Nil options are skipped.
// Complexity: O(len(opts)).
func Resolve(opts ...Option) float64 {
	o := options{eps: Epsilon}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o.eps
}
