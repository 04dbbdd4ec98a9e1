// SPDX-License-Identifier: MIT

package canvas

import "errors"

var (
	// ErrBadShape is returned when a requested width or height is not positive.
	ErrBadShape = errors.New("canvas: invalid shape")

	// ErrOutOfRange indicates a pixel coordinate outside [0,W)×[0,H).
	ErrOutOfRange = errors.New("canvas: pixel out of range")
)
