// SPDX-License-Identifier: MIT

package ppm

import (
	"bufio"
	"bytes"
	"io"
	"strconv"

	"github.com/benjaminhirsch/raytracer/canvas"
	"github.com/benjaminhirsch/raytracer/color"
)

// Format constants.
const (
	Magic          = "P3"
	TriplesPerLine = 5 // line break after this many triples
)

// Encode writes c to w in P3 format.
func Encode(w io.Writer, c *canvas.Canvas) error {
	bw := bufio.NewWriter(w)
	if err := encode(bw, c); err != nil {
		return err
	}

	return bw.Flush()
}

// Marshal returns the P3 encoding of c.
func Marshal(c *canvas.Canvas) []byte {
	var buf bytes.Buffer
	buf.Grow(headerLen + c.Width()*c.Height()*len("255 255 255 "))
	_ = encode(&buf, c) // bytes.Buffer writes never fail

	return buf.Bytes()
}

// headerLen is a capacity hint for the three header lines.
const headerLen = len("P3\n65535 65535\n255\n")

// encode writes header and pixel rows through the small io.Writer surface
// shared by bufio.Writer and bytes.Buffer.
func encode(w io.Writer, c *canvas.Canvas) error {
	line := make([]byte, 0, 64)
	line = append(line, Magic...)
	line = append(line, '\n')
	line = strconv.AppendInt(line, int64(c.Width()), 10)
	line = append(line, ' ')
	line = strconv.AppendInt(line, int64(c.Height()), 10)
	line = append(line, '\n')
	line = strconv.AppendInt(line, color.MaxChannel, 10)
	line = append(line, '\n')
	if _, err := w.Write(line); err != nil {
		return err
	}

	emitted := 0
	return c.Each(func(_, _ int, px color.Color) error {
		line = px.Quantize().Append(line[:0])
		emitted++
		if emitted%TriplesPerLine == 0 || emitted == c.Width()*c.Height() {
			line = append(line, '\n')
		} else {
			line = append(line, ' ')
		}
		_, err := w.Write(line)
		return err
	})
}
