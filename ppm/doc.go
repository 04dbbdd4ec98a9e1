// Package ppm reads and writes canvases in the plain-text Portable Pixmap
// format (magic "P3").
//
// Encoder output is byte-exact and deterministic:
//
//	P3
//	<width> <height>
//	255
//	<pixel data>
//
// Pixels are emitted row-major (y outer, x inner) as quantized "R G B"
// triples. Values are separated by single spaces, except that after every
// fifth triple a newline is written instead. Line breaks follow that running
// count only, not canvas rows. The output always ends with exactly one
// newline.
//
// The decoder accepts any P3 file: '#' comments, arbitrary whitespace and
// any maxval in [1, 65535].
package ppm
