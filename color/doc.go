// Package color implements the real-valued RGB color used by the canvas.
//
// Channels are float64 and unbounded: arithmetic may push them below 0 or
// above 1. They are only clamped when quantized to 8-bit integers for output
// (see Quantize). Colors are plain values; every operation returns a new one.
//
// Color also satisfies image/color.Color so a canvas can be handed to any
// standard image encoder.
package color
