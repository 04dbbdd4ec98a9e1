package ppm_test

import (
	"fmt"
	"os"

	"github.com/benjaminhirsch/raytracer/canvas"
	"github.com/benjaminhirsch/raytracer/color"
	"github.com/benjaminhirsch/raytracer/ppm"
)

func ExampleEncode() {
	c, err := canvas.New(3, 2)
	if err != nil {
		fmt.Println(err)
		return
	}
	_ = c.WritePixel(0, 0, color.New(1, 0, 0))
	_ = c.WritePixel(2, 1, color.New(0, 0, 2)) // saturates to 255

	if err := ppm.Encode(os.Stdout, c); err != nil {
		fmt.Println(err)
	}

	// Output:
	// P3
	// 3 2
	// 255
	// 255 0 0 0 0 0 0 0 0 0 0 0 0 0 0
	// 0 0 255
}
