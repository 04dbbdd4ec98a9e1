// SPDX-License-Identifier: MIT

package canvas

import (
	"fmt"
	"image"
	stdcolor "image/color"

	"golang.org/x/image/draw"

	"github.com/benjaminhirsch/raytracer/color"
)

// Compile-time assertion: *Canvas is an image.Image.
var _ image.Image = (*Canvas)(nil)

// ColorModel implements image.Image. Pixels convert through color.Color's
// RGBA, i.e. quantized and opaque.
func (c *Canvas) ColorModel() stdcolor.Model {
	return stdcolor.RGBAModel
}

// Bounds implements image.Image: the rectangle (0,0)-(W,H).
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// At implements image.Image. Points outside the bounds are transparent
// black, as the image.Image contract requires.
func (c *Canvas) At(x, y int) stdcolor.Color {
	i, err := c.offset(x, y)
	if err != nil {
		return stdcolor.RGBA{}
	}

	return c.pixels[i]
}

// FromImage copies img into a new canvas of the same size. The image's
// bounds origin maps to (0, 0).
// Returns ErrBadShape for an empty image.
func FromImage(img image.Image) (*Canvas, error) {
	b := img.Bounds()
	c, err := New(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			c.pixels[y*c.width+x] = color.FromStd(img.At(b.Min.X+x, b.Min.Y+y))
		}
	}

	return c, nil
}

// Scale returns a new canvas enlarged by an integer factor using
// nearest-neighbour sampling, so every source pixel becomes a
// factor×factor block. Pixels pass through quantization on the way.
// Returns ErrBadShape if factor < 1.
func (c *Canvas) Scale(factor int) (*Canvas, error) {
	if factor < 1 {
		return nil, fmt.Errorf("Canvas.Scale(%d): %w", factor, ErrBadShape)
	}
	dst := image.NewRGBA(image.Rect(0, 0, c.width*factor, c.height*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), c, c.Bounds(), draw.Src, nil)

	return FromImage(dst)
}
