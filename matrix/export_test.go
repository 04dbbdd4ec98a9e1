package matrix

import "github.com/benjaminhirsch/raytracer/tuple"

// Test bridges for unexported helpers.
var (
	ValidateOrder     = validateOrder
	ValidateIndex     = validateIndex
	ValidateSameOrder = validateSameOrder
)

// Row exposes the private row-as-tuple view for white-box tests.
func Row(m Matrix, i int) tuple.Tuple { return m.row(i) }
