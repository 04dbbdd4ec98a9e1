// Package matrix implements the small square matrices used for 2D, 3D and
// homogeneous transforms: order 2, 3 or 4, nothing larger.
//
// What & Why:
//
//	A Matrix is a value type: a fixed 4×4 backing array plus the declared
//	order. Cells outside the order are zero and never take part in equality,
//	multiplication or transposition. Keeping the storage fixed means no
//	allocations and no variable-length bookkeeping; the order tag keeps the
//	algorithms honest about which cells are live.
//
// Safety:
//
//	At and Set return ErrOutOfRange instead of panicking. Mul and Apply
//	return ErrDimensionMismatch for incompatible orders. The zero Matrix has
//	order 0, and using it where an order-preserving result must be built
//	(Transpose, Mul) is a programming error that panics with ErrBadOrder.
//
// Complexity:
//
//	At/Set/Equal O(1) per cell; Transpose O(n²); Mul O(n³); Apply O(16).
package matrix
