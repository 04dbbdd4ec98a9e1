// Package tuple implements the homogeneous (x, y, z, w) coordinate used for
// points and free vectors.
//
// A Tuple with W == 1 is a point (a position), W == 0 is a vector (a
// direction with no position). Point and Vector only ever produce those two
// values of W; New accepts anything.
//
// Tuples are plain values: every operation returns a new Tuple and nothing
// is mutated in place, so they can be shared and copied freely.
//
// Equality is absolute-tolerance equality (see package approx) over all four
// components.
package tuple
