// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/f64"

	"github.com/benjaminhirsch/raytracer/matrix"
)

func TestMat4RoundTrip(t *testing.T) {
	a, err := fixtureA.Mat4()
	require.NoError(t, err)
	require.Equal(t, f64.Mat4{1, 2, 3, 4, 5, 6, 7, 8, 9, 8, 7, 6, 5, 4, 3, 2}, a)
	require.Equal(t, fixtureA, matrix.FromMat4(a))
}

func TestMat3(t *testing.T) {
	m := matrix.New3([3]float64{1, 2, 3}, [3]float64{4, 5, 6}, [3]float64{7, 8, 9})
	a, err := m.Mat3()
	require.NoError(t, err)
	require.Equal(t, f64.Mat3{1, 2, 3, 4, 5, 6, 7, 8, 9}, a)
}

func TestConvertOrderMismatch(t *testing.T) {
	m2 := matrix.New2([2]float64{1, 2}, [2]float64{3, 4})
	_, err := m2.Mat4()
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = m2.Mat3()
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
