// SPDX-License-Identifier: MIT

// Package tuple - value type, constructors and arithmetic.
//
// Contract:
//   - All methods have value receivers and return fresh values.
//   - IsPoint is w > 0 and IsVector is w == 0; a negative w is neither.
//   - Normalize is the only fallible operation (ErrZeroMagnitude).
//
// Complexity quicksheet:
//   - every operation is O(1) and allocation-free.
package tuple

import (
	"fmt"
	"math"

	"golang.org/x/image/math/f64"

	"github.com/benjaminhirsch/raytracer/approx"
)

// Role values of the W component.
const (
	wVector = 0.0 // free vector
	wPoint  = 1.0 // positioned point
)

// Tuple is a 4-component homogeneous coordinate.
type Tuple struct {
	X, Y, Z, W float64
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = Tuple{}

// New returns the tuple (x, y, z, w) as given.
func New(x, y, z, w float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: w}
}

// Point returns a position (w = 1).
func Point(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: wPoint}
}

// Vector returns a direction (w = 0).
func Vector(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: wVector}
}

// IsPoint reports whether w > 0.
func (t Tuple) IsPoint() bool {
	return t.W > wVector
}

// IsVector reports whether w == 0.
func (t Tuple) IsVector() bool {
	return t.W == wVector
}

// Add returns t + o componentwise. Point + vector is a point,
// vector + vector is a vector; point + point yields w = 2.
func (t Tuple) Add(o Tuple) Tuple {
	return Tuple{X: t.X + o.X, Y: t.Y + o.Y, Z: t.Z + o.Z, W: t.W + o.W}
}

// Sub returns t - o componentwise. Point - point is the vector between them.
func (t Tuple) Sub(o Tuple) Tuple {
	return Tuple{X: t.X - o.X, Y: t.Y - o.Y, Z: t.Z - o.Z, W: t.W - o.W}
}

// Negate returns -t, including w.
func (t Tuple) Negate() Tuple {
	return Tuple{X: -t.X, Y: -t.Y, Z: -t.Z, W: -t.W}
}

// Mul scales every component by f.
func (t Tuple) Mul(f float64) Tuple {
	return Tuple{X: t.X * f, Y: t.Y * f, Z: t.Z * f, W: t.W * f}
}

// Div divides every component by f. Dividing by zero follows IEEE-754
// (±Inf or NaN components); it is not reported as an error.
func (t Tuple) Div(f float64) Tuple {
	return Tuple{X: t.X / f, Y: t.Y / f, Z: t.Z / f, W: t.W / f}
}

// Magnitude returns sqrt(x² + y² + z² + w²).
func (t Tuple) Magnitude() float64 {
	return math.Sqrt(t.Dot(t))
}

// Normalize returns t scaled to unit magnitude.
// Returns ErrZeroMagnitude when the magnitude is exactly zero.
func (t Tuple) Normalize() (Tuple, error) {
	m := t.Magnitude()
	if m == 0 {
		return Tuple{}, fmt.Errorf("Tuple.Normalize(%v): %w", t, ErrZeroMagnitude)
	}

	return t.Div(m), nil
}

// Dot returns the sum of the componentwise products, w included.
func (t Tuple) Dot(o Tuple) float64 {
	return t.X*o.X + t.Y*o.Y + t.Z*o.Z + t.W*o.W
}

// Cross returns the 3D cross product t × o as a vector. The w components of
// the operands are ignored; the operation is meaningful for vectors only.
func (t Tuple) Cross(o Tuple) Tuple {
	return Vector(
		t.Y*o.Z-t.Z*o.Y,
		t.Z*o.X-t.X*o.Z,
		t.X*o.Y-t.Y*o.X,
	)
}

// Equal reports whether all four components are equal within the tolerance
// resolved from opts.
func (t Tuple) Equal(o Tuple, opts ...approx.Option) bool {
	eps := approx.Resolve(opts...)

	return approx.Within(t.X, o.X, eps) &&
		approx.Within(t.Y, o.Y, eps) &&
		approx.Within(t.Z, o.Z, eps) &&
		approx.Within(t.W, o.W, eps)
}

// Vec4 returns the tuple as an x/image column vector {x, y, z, w}.
func (t Tuple) Vec4() f64.Vec4 {
	return f64.Vec4{t.X, t.Y, t.Z, t.W}
}

// FromVec4 is the inverse of Vec4.
func FromVec4(v f64.Vec4) Tuple {
	return Tuple{X: v[0], Y: v[1], Z: v[2], W: v[3]}
}

// String implements fmt.Stringer, e.g. "point(1, 2, 3)" or "tuple(1, 2, 3, 0.5)".
func (t Tuple) String() string {
	switch t.W {
	case wPoint:
		return fmt.Sprintf("point(%g, %g, %g)", t.X, t.Y, t.Z)
	case wVector:
		return fmt.Sprintf("vector(%g, %g, %g)", t.X, t.Y, t.Z)
	}

	return fmt.Sprintf("tuple(%g, %g, %g, %g)", t.X, t.Y, t.Z, t.W)
}
