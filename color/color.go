// SPDX-License-Identifier: MIT

// Package color - value type, arithmetic and quantization.
//
// Quantization policy (the one rule reference images depend on):
//   - q = round(c * 255), half away from zero;
//   - q < 0 saturates to 0, q > 255 saturates to 255 (never wraps).
package color

import (
	"fmt"
	stdcolor "image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/benjaminhirsch/raytracer/approx"
)

// MaxChannel is the largest quantized channel value (and the PPM maxval).
const MaxChannel = 255

// Color is an RGB triple of real-valued channels, nominally in [0, 1].
type Color struct {
	R, G, B float64
}

// Common colors.
var (
	Black = Color{}
	White = Color{R: 1, G: 1, B: 1}
)

// Compile-time assertions.
var (
	_ stdcolor.Color = Color{}
	_ fmt.Stringer   = Quantized{}
)

// New returns the color (r, g, b).
func New(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Add returns c + o per channel.
func (c Color) Add(o Color) Color {
	return Color{R: c.R + o.R, G: c.G + o.G, B: c.B + o.B}
}

// Sub returns c - o per channel.
func (c Color) Sub(o Color) Color {
	return Color{R: c.R - o.R, G: c.G - o.G, B: c.B - o.B}
}

// Mul returns the Hadamard (per-channel) product c ∘ o, used to blend a
// light color with a surface color.
func (c Color) Mul(o Color) Color {
	return Color{R: c.R * o.R, G: c.G * o.G, B: c.B * o.B}
}

// Scale multiplies every channel by f.
func (c Color) Scale(f float64) Color {
	return Color{R: c.R * f, G: c.G * f, B: c.B * f}
}

// Equal reports whether all channels are equal within the tolerance
// resolved from opts.
func (c Color) Equal(o Color, opts ...approx.Option) bool {
	eps := approx.Resolve(opts...)

	return approx.Within(c.R, o.R, eps) &&
		approx.Within(c.G, o.G, eps) &&
		approx.Within(c.B, o.B, eps)
}

// Quantized is a color mapped to 8-bit channels.
type Quantized struct {
	R, G, B uint8
}

// Quantize maps each channel through clamp(round(c*255), 0, 255).
// NaN channels quantize to 0.
func (c Color) Quantize() Quantized {
	return Quantized{R: quantize(c.R), G: quantize(c.G), B: quantize(c.B)}
}

// quantize maps one channel to [0, MaxChannel], saturating.
func quantize(v float64) uint8 {
	q := math.Round(v * MaxChannel)
	switch {
	case q > MaxChannel:
		return MaxChannel
	case q > 0:
		return uint8(q)
	}

	return 0 // negatives and NaN
}

// String renders the quantized channels space separated, e.g. "255 0 0".
func (q Quantized) String() string {
	return string(q.Append(make([]byte, 0, len("255 255 255"))))
}

// Append appends "R G B" (decimal, single spaces, no terminator) to dst and
// returns the extended buffer.
func (q Quantized) Append(dst []byte) []byte {
	dst = strconv.AppendUint(dst, uint64(q.R), 10)
	dst = append(dst, ' ')
	dst = strconv.AppendUint(dst, uint64(q.G), 10)
	dst = append(dst, ' ')

	return strconv.AppendUint(dst, uint64(q.B), 10)
}

// Color returns the real-valued color whose quantization is q.
// Quantize(q.Color()) == q for every q.
func (q Quantized) Color() Color {
	return Color{
		R: float64(q.R) / MaxChannel,
		G: float64(q.G) / MaxChannel,
		B: float64(q.B) / MaxChannel,
	}
}

// String renders the quantized form, the same text the PPM encoder emits
// for this pixel.
func (c Color) String() string {
	return c.Quantize().String()
}

// RGBA implements image/color.Color. The color is quantized first, so
// out-of-range channels saturate exactly as they do in PPM output. Alpha is
// always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	return stdcolor.RGBA{R: quantize(c.R), G: quantize(c.G), B: quantize(c.B), A: 0xff}.RGBA()
}

// FromStd converts any image/color.Color to a Color. Premultiplied alpha is
// not undone; translucent colors come out darker.
func FromStd(sc stdcolor.Color) Color {
	const maxRGBA = 0xffff
	r, g, b, _ := sc.RGBA()

	return Color{
		R: float64(r) / maxRGBA,
		G: float64(g) / maxRGBA,
		B: float64(b) / maxRGBA,
	}
}

// Named looks up an SVG 1.1 color keyword ("red", "cornflowerblue", ...).
// Lookup is case-insensitive.
func Named(name string) (Color, error) {
	rgba, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return Color{}, fmt.Errorf("color.Named(%q): %w", name, ErrUnknownName)
	}

	return FromStd(rgba), nil
}
