// SPDX-License-Identifier: MIT

// Package canvas - dense row-major framebuffer & safe accessors.
//
// Purpose:
//   - Keep pixels in one flat slice with offset = y*width + x.
//   - Guarantee safety at the public surface: WritePixel/PixelAt return
//     ErrOutOfRange instead of panicking.
//
// Complexity quicksheet:
//   - New: O(W*H); WritePixel/PixelAt: O(1); Fill: O(W*H).

package canvas

import (
	"fmt"

	"github.com/benjaminhirsch/raytracer/color"
)

// ---------- error context tags ----------

const (
	ctxNew   = "New"
	ctxWrite = "WritePixel"
	ctxPixel = "PixelAt"
)

// canvasErrorf wraps a sentinel with the method tag and coordinates.
func canvasErrorf(method string, x, y int, err error) error {
	return fmt.Errorf("Canvas.%s(%d,%d): %w", method, x, y, err)
}

// Canvas is a width×height grid of colors.
type Canvas struct {
	width, height int           // both > 0
	pixels        []color.Color // row-major, len == width*height
}

// New allocates a width×height canvas with every pixel black.
// Returns ErrBadShape if width or height is not positive.
func New(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, canvasErrorf(ctxNew, width, height, ErrBadShape)
	}

	// make() zero-fills, and the zero Color is black.
	return &Canvas{
		width:  width,
		height: height,
		pixels: make([]color.Color, width*height),
	}, nil
}

// Width returns the number of columns.
func (c *Canvas) Width() int { return c.width }

// Height returns the number of rows.
func (c *Canvas) Height() int { return c.height }

// offset returns the flat index of (x, y) or ErrOutOfRange.
func (c *Canvas) offset(x, y int) (int, error) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return 0, ErrOutOfRange
	}

	return y*c.width + x, nil
}

// WritePixel replaces the color at (x, y).
// Returns ErrOutOfRange unless 0 ≤ x < Width() and 0 ≤ y < Height(); the
// canvas is unchanged in that case.
func (c *Canvas) WritePixel(x, y int, col color.Color) error {
	i, err := c.offset(x, y)
	if err != nil {
		return canvasErrorf(ctxWrite, x, y, err)
	}
	c.pixels[i] = col

	return nil
}

// PixelAt returns the color stored at (x, y).
// Returns ErrOutOfRange under the same conditions as WritePixel.
func (c *Canvas) PixelAt(x, y int) (color.Color, error) {
	i, err := c.offset(x, y)
	if err != nil {
		return color.Color{}, canvasErrorf(ctxPixel, x, y, err)
	}

	return c.pixels[i], nil
}

// Fill sets every pixel to col.
func (c *Canvas) Fill(col color.Color) {
	for i := range c.pixels {
		c.pixels[i] = col
	}
}

// Row returns a copy of row y, or ErrOutOfRange.
func (c *Canvas) Row(y int) ([]color.Color, error) {
	if y < 0 || y >= c.height {
		return nil, canvasErrorf("Row", 0, y, ErrOutOfRange)
	}
	out := make([]color.Color, c.width)
	copy(out, c.pixels[y*c.width:(y+1)*c.width])

	return out, nil
}

// Each calls fn for every pixel in row-major order (y outer, x inner) and
// stops at the first error, which it returns.
func (c *Canvas) Each(fn func(x, y int, col color.Color) error) error {
	for y := 0; y < c.height; y++ {
		base := y * c.width
		for x := 0; x < c.width; x++ {
			if err := fn(x, y, c.pixels[base+x]); err != nil {
				return err
			}
		}
	}

	return nil
}
