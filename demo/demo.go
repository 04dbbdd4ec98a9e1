// SPDX-License-Identifier: MIT

package demo

import (
	"fmt"
	"sort"

	"github.com/benjaminhirsch/raytracer/canvas"
	"github.com/benjaminhirsch/raytracer/color"
)

// Scene names understood by Render.
const (
	SceneReference  = "reference"
	SceneProjectile = "projectile"
	SceneGradient   = "gradient"
)

// builders maps a scene name to its constructor. Reference ignores the size.
var builders = map[string]func(w, h int) (*canvas.Canvas, error){
	SceneReference: func(int, int) (*canvas.Canvas, error) { return Reference() },
	SceneProjectile: func(w, h int) (*canvas.Canvas, error) {
		c, _, err := Trajectory(w, h)
		return c, err
	},
	SceneGradient: Gradient,
}

// Scenes returns the known scene names, sorted.
func Scenes() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Render builds the named scene at the requested size.
// Returns ErrUnknownScene for a name not listed by Scenes.
func Render(scene string, w, h int) (*canvas.Canvas, error) {
	build, ok := builders[scene]
	if !ok {
		return nil, fmt.Errorf("demo.Render(%q): %w", scene, ErrUnknownScene)
	}

	return build(w, h)
}

// Reference returns the 5×3 canvas with three pixels set: an over-bright
// red at (0,0), half green at (2,1) and a negative-red blue at (4,2).
func Reference() (*canvas.Canvas, error) {
	c, err := canvas.New(5, 3)
	if err != nil {
		return nil, err
	}
	for _, p := range []struct {
		x, y int
		c    color.Color
	}{
		{0, 0, color.New(1.5, 0, 0)},
		{2, 1, color.New(0, 0.5, 0)},
		{4, 2, color.New(-0.5, 0, 1)},
	} {
		if err := c.WritePixel(p.x, p.y, p.c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Gradient returns a w×h canvas blending red (left) into blue (right) and
// fading to black towards the bottom.
func Gradient(w, h int) (*canvas.Canvas, error) {
	c, err := canvas.New(w, h)
	if err != nil {
		return nil, err
	}
	left, right := color.New(1, 0, 0), color.New(0, 0, 1)
	for y := 0; y < h; y++ {
		fade := 1 - float64(y)/float64(h)
		for x := 0; x < w; x++ {
			t := 0.5
			if w > 1 {
				t = float64(x) / float64(w-1)
			}
			px := left.Scale(1 - t).Add(right.Scale(t)).Scale(fade)
			if err := c.WritePixel(x, y, px); err != nil {
				return nil, err
			}
		}
	}

	return c, nil
}
