// Package canvas implements the framebuffer: a fixed-size grid of colors
// addressed by (x, y).
//
// Storage is a dense row-major slice (y is the row, x the column), which is
// exactly the traversal order the PPM encoder relies on. Every cell starts
// black. Coordinates are validated explicitly on every access; nothing ever
// grows the canvas.
//
// A Canvas is owned by one caller at a time; it performs no locking.
//
// *Canvas implements image.Image, so it can be passed to any encoder in the
// standard library or golang.org/x/image.
package canvas
