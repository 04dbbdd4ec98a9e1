// SPDX-License-Identifier: MIT

package ppm

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/benjaminhirsch/raytracer/canvas"
	"github.com/benjaminhirsch/raytracer/color"
)

// Decoder limits.
const (
	MaxMaxval = 65535   // largest maxval the format allows
	MaxPixels = 1 << 24 // refuse to allocate canvases larger than this
)

// scanner tokenizes P3 input: whitespace separated words, '#' comments
// running to the end of the line.
type scanner struct {
	r *bufio.Reader
}

// next returns the next token, or io.EOF when the input is exhausted.
func (s *scanner) next() (string, error) {
	var tok []byte
	for {
		b, err := s.r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) && len(tok) > 0 {
				return string(tok), nil
			}
			return "", err
		}
		switch {
		case b == '#':
			if len(tok) > 0 {
				_ = s.r.UnreadByte()
				return string(tok), nil
			}
			if err := s.skipLine(); err != nil {
				return "", err
			}
		case isSpace(b):
			if len(tok) > 0 {
				return string(tok), nil
			}
		default:
			tok = append(tok, b)
		}
	}
}

// skipLine discards input up to and including the next newline.
func (s *scanner) skipLine() error {
	for {
		b, err := s.r.ReadByte()
		if err != nil {
			return err
		}
		if b == '\n' {
			return nil
		}
	}
}

// isSpace reports whether b is PPM whitespace.
func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}

	return false
}

// number reads the next token as a decimal in [lo, hi]; failures wrap sentinel.
func (s *scanner) number(what string, lo, hi int, sentinel error) (int, error) {
	tok, err := s.next()
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return 0, fmt.Errorf("ppm: %s: %w", what, errors.Join(sentinel, err))
	}
	v, err := strconv.Atoi(tok)
	if err != nil || v < lo || v > hi {
		return 0, fmt.Errorf("ppm: %s %q: %w", what, tok, sentinel)
	}

	return v, nil
}

// Decode parses a P3 image into a new canvas. Samples are rescaled from
// [0, maxval] to [0, 1], so for maxval 255 re-encoding reproduces the input
// values exactly.
func Decode(r io.Reader) (*canvas.Canvas, error) {
	s := &scanner{r: bufio.NewReader(r)}

	magic, err := s.next()
	if err != nil || magic != Magic {
		return nil, fmt.Errorf("ppm: magic %q: %w", magic, ErrBadMagic)
	}
	w, err := s.number("width", 1, MaxPixels, ErrBadHeader)
	if err != nil {
		return nil, err
	}
	h, err := s.number("height", 1, MaxPixels, ErrBadHeader)
	if err != nil {
		return nil, err
	}
	if w*h > MaxPixels {
		return nil, fmt.Errorf("ppm: %dx%d exceeds %d pixels: %w", w, h, MaxPixels, ErrBadHeader)
	}
	maxval, err := s.number("maxval", 1, MaxMaxval, ErrBadHeader)
	if err != nil {
		return nil, err
	}

	c, err := canvas.New(w, h)
	if err != nil {
		return nil, err
	}
	scale := float64(maxval)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var rgb [3]int
			for i := range rgb {
				v, err := s.number(fmt.Sprintf("pixel (%d,%d)", x, y), 0, maxval, ErrBadPixel)
				if err != nil {
					return nil, err
				}
				rgb[i] = v
			}
			px := color.New(float64(rgb[0])/scale, float64(rgb[1])/scale, float64(rgb[2])/scale)
			if err := c.WritePixel(x, y, px); err != nil {
				return nil, err
			}
		}
	}

	return c, nil
}

// Unmarshal parses P3 data held in memory.
func Unmarshal(data []byte) (*canvas.Canvas, error) {
	return Decode(bytes.NewReader(data))
}
