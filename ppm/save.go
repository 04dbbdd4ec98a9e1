// SPDX-License-Identifier: MIT

package ppm

import (
	"io"

	"github.com/benjaminhirsch/raytracer/canvas"
	"github.com/benjaminhirsch/raytracer/outfile"
)

// Save encodes c into a newly named ".ppm" file and returns its path.
// Naming and placement follow outfile's defaults (ten random alphanumeric
// characters under "ppm/") unless overridden by opts.
func Save(c *canvas.Canvas, opts ...outfile.Option) (string, error) {
	opts = append([]outfile.Option{outfile.WithExt(outfile.DefaultExt)}, opts...)

	return outfile.WriteFunc(func(w io.Writer) error {
		return Encode(w, c)
	}, opts...)
}
