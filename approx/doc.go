// Package approx provides the absolute-tolerance float comparison shared by
// tuple, color and matrix equality.
//
// What & Why:
//
//	Every value in the kernel is float64 and is produced by chained
//	arithmetic, so bitwise equality is useless for tests and invariants.
//	Two numbers are considered equal when |a-b| <= eps. The default eps is
//	the double-precision machine epsilon (2^-52).
//
// Configuration:
//
//	Callers that need a looser check pass WithEpsilon to any Equal method
//	that accepts ...approx.Option.
//
// Complexity:
//
//	All checks are O(1) and allocation-free.
package approx
