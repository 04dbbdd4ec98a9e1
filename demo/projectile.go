// SPDX-License-Identifier: MIT

package demo

import (
	"math"

	"github.com/benjaminhirsch/raytracer/canvas"
	"github.com/benjaminhirsch/raytracer/color"
	"github.com/benjaminhirsch/raytracer/tuple"
)

// Launch parameters of the projectile scene.
var (
	launchPoint = tuple.Point(0, 1, 0)
	launchDir   = tuple.Vector(1, 1.8, 0)
	launchSpeed = 11.25
	gravity     = tuple.Vector(0, -0.1, 0)
	wind        = tuple.Vector(-0.01, 0, 0)
	trailColor  = color.New(1, 0, 0)
)

// maxTicks bounds the simulation in case the parameters never bring the
// projectile down.
const maxTicks = 100000

// Projectile is a point moving with a velocity vector.
type Projectile struct {
	Position tuple.Tuple // point
	Velocity tuple.Tuple // vector
}

// Environment applies constant acceleration to a Projectile.
type Environment struct {
	Gravity tuple.Tuple // vector
	Wind    tuple.Tuple // vector
}

// Tick advances p by one time step in env.
func (env Environment) Tick(p Projectile) Projectile {
	return Projectile{
		Position: p.Position.Add(p.Velocity),
		Velocity: p.Velocity.Add(env.Gravity).Add(env.Wind),
	}
}

// Trajectory plots the flight of a projectile launched up and to the right
// onto a w×h canvas (y axis flipped so up is up) and returns the canvas and
// the number of ticks until it fell to the ground. Positions that leave the
// canvas are skipped.
func Trajectory(w, h int) (*canvas.Canvas, int, error) {
	c, err := canvas.New(w, h)
	if err != nil {
		return nil, 0, err
	}
	dir, err := launchDir.Normalize()
	if err != nil {
		return nil, 0, err
	}
	p := Projectile{Position: launchPoint, Velocity: dir.Mul(launchSpeed)}
	env := Environment{Gravity: gravity, Wind: wind}

	ticks := 0
	for p.Position.Y > 0 && ticks < maxTicks {
		x := int(math.Round(p.Position.X))
		y := h - int(math.Round(p.Position.Y))
		if x >= 0 && x < w && y >= 0 && y < h {
			if err := c.WritePixel(x, y, trailColor); err != nil {
				return nil, 0, err
			}
		}
		p = env.Tick(p)
		ticks++
	}

	return c, ticks, nil
}
