// Package demo builds small canvases that exercise the kernel end to end:
// the reference 5×3 image, a projectile trajectory driven by tuple
// arithmetic, and a color gradient. The CLI renders them; the tests pin
// their output.
package demo
