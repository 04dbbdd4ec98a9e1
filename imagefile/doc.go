// Package imagefile exports a canvas in one of several image formats: the
// plain-text PPM the kernel is specified around, plus TIFF and BMP through
// golang.org/x/image for viewers that cannot open PPM.
package imagefile
