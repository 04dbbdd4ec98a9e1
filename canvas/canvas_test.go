// SPDX-License-Identifier: MIT

package canvas_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/benjaminhirsch/raytracer/canvas"
	"github.com/benjaminhirsch/raytracer/color"
)

type CanvasSuite struct {
	suite.Suite
	c *canvas.Canvas
}

func (s *CanvasSuite) SetupTest() {
	c, err := canvas.New(10, 20)
	s.Require().NoError(err)
	s.c = c
}

func (s *CanvasSuite) TestDimensions() {
	s.Equal(10, s.c.Width())
	s.Equal(20, s.c.Height())
}

func (s *CanvasSuite) TestStartsBlack() {
	require := require.New(s.T())
	for y := 0; y < s.c.Height(); y++ {
		for x := 0; x < s.c.Width(); x++ {
			px, err := s.c.PixelAt(x, y)
			require.NoError(err)
			require.Equal(color.Black, px, "(%d,%d)", x, y)
		}
	}
}

func (s *CanvasSuite) TestWriteThenRead() {
	require := require.New(s.T())
	red := color.New(1, 0, 0)
	require.NoError(s.c.WritePixel(2, 3, red))

	px, err := s.c.PixelAt(2, 3)
	require.NoError(err)
	require.Equal(red, px)

	// transposed coordinates are a different cell
	px, err = s.c.PixelAt(3, 2)
	require.NoError(err)
	require.Equal(color.Black, px)
}

func (s *CanvasSuite) TestOutOfRange() {
	require := require.New(s.T())
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {10, 0}, {0, 20}, {10, 20}, {-1, -1}} {
		err := s.c.WritePixel(p[0], p[1], color.White)
		require.ErrorIs(err, canvas.ErrOutOfRange, "write %v", p)

		_, err = s.c.PixelAt(p[0], p[1])
		require.ErrorIs(err, canvas.ErrOutOfRange, "read %v", p)
	}
	// nothing was written by the failed calls
	require.NoError(s.c.Each(func(x, y int, c color.Color) error {
		require.Equal(color.Black, c)
		return nil
	}))
}

func (s *CanvasSuite) TestFill() {
	require := require.New(s.T())
	gray := color.New(0.5, 0.5, 0.5)
	s.c.Fill(gray)
	px, err := s.c.PixelAt(9, 19)
	require.NoError(err)
	require.Equal(gray, px)
}

func (s *CanvasSuite) TestRow() {
	require := require.New(s.T())
	require.NoError(s.c.WritePixel(4, 7, color.White))
	row, err := s.c.Row(7)
	require.NoError(err)
	require.Len(row, 10)
	require.Equal(color.White, row[4])

	row[4] = color.Black // copy, not a view
	px, _ := s.c.PixelAt(4, 7)
	require.Equal(color.White, px)

	_, err = s.c.Row(20)
	require.ErrorIs(err, canvas.ErrOutOfRange)
}

func (s *CanvasSuite) TestEachIsRowMajor() {
	require := require.New(s.T())
	var order [][2]int
	small, err := canvas.New(3, 2)
	require.NoError(err)
	require.NoError(small.Each(func(x, y int, _ color.Color) error {
		order = append(order, [2]int{x, y})
		return nil
	}))
	require.Equal([][2]int{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}}, order)

	stop := errors.New("stop")
	n := 0
	err = small.Each(func(int, int, color.Color) error {
		n++
		if n == 2 {
			return stop
		}
		return nil
	})
	require.ErrorIs(err, stop)
	require.Equal(2, n)
}

func TestCanvasSuite(t *testing.T) {
	suite.Run(t, new(CanvasSuite))
}

func TestNewBadShape(t *testing.T) {
	for _, wh := range [][2]int{{0, 1}, {1, 0}, {-3, 3}, {0, 0}} {
		_, err := canvas.New(wh[0], wh[1])
		require.ErrorIs(t, err, canvas.ErrBadShape, "%v", wh)
	}
}

// Untouched cells of a 5×3 canvas read back as black.
func TestUntouchedPixelsAreBlack(t *testing.T) {
	c, err := canvas.New(5, 3)
	require.NoError(t, err)
	require.NoError(t, c.WritePixel(0, 0, color.New(1.5, 0, 0)))
	for _, p := range [][2]int{{1, 0}, {4, 2}, {2, 1}} {
		px, err := c.PixelAt(p[0], p[1])
		require.NoError(t, err)
		require.Equal(t, color.Black, px)
	}
}
