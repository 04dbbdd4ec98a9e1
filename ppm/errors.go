// SPDX-License-Identifier: MIT

package ppm

import "errors"

var (
	// ErrBadMagic is returned when the input does not start with "P3".
	ErrBadMagic = errors.New("ppm: not a plain PPM (P3) image")

	// ErrBadHeader is returned for a malformed width, height or maxval.
	ErrBadHeader = errors.New("ppm: invalid header")

	// ErrBadPixel is returned for a missing, malformed or out-of-range sample.
	ErrBadPixel = errors.New("ppm: invalid pixel data")
)
