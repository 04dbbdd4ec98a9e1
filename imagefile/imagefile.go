// SPDX-License-Identifier: MIT

package imagefile

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/benjaminhirsch/raytracer/canvas"
	"github.com/benjaminhirsch/raytracer/outfile"
	"github.com/benjaminhirsch/raytracer/ppm"
)

// ErrUnknownFormat is returned for a format name that is not supported.
var ErrUnknownFormat = errors.New("imagefile: unknown format")

// Format identifies an output encoding.
type Format int

// Supported formats.
const (
	PPM Format = iota
	TIFF
	BMP
)

var formatNames = [...]string{PPM: "ppm", TIFF: "tiff", BMP: "bmp"}

// String returns the lower-case name, which doubles as the file extension.
func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int(f))
	}

	return formatNames[f]
}

// Ext returns the file extension with its leading dot.
func (f Format) Ext() string {
	return "." + f.String()
}

// ParseFormat maps a case-insensitive name ("ppm", "tiff"/"tif", "bmp") to a
// Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "ppm":
		return PPM, nil
	case "tiff", "tif":
		return TIFF, nil
	case "bmp":
		return BMP, nil
	}

	return 0, fmt.Errorf("imagefile.ParseFormat(%q): %w", name, ErrUnknownFormat)
}

// Encode writes c to w in format f.
func Encode(w io.Writer, c *canvas.Canvas, f Format) error {
	switch f {
	case PPM:
		return ppm.Encode(w, c)
	case TIFF:
		return tiff.Encode(w, c, &tiff.Options{Compression: tiff.Deflate})
	case BMP:
		return bmp.Encode(w, c)
	}

	return fmt.Errorf("imagefile.Encode(%v): %w", f, ErrUnknownFormat)
}

// Save encodes c in format f into a new generated file (see package
// outfile) and returns its path. The extension always matches f.
func Save(c *canvas.Canvas, f Format, opts ...outfile.Option) (string, error) {
	if f < 0 || int(f) >= len(formatNames) {
		return "", fmt.Errorf("imagefile.Save(%v): %w", f, ErrUnknownFormat)
	}
	opts = append(opts, outfile.WithExt(f.Ext()))

	return outfile.WriteFunc(func(w io.Writer) error {
		return Encode(w, c, f)
	}, opts...)
}
