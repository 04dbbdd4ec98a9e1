// SPDX-License-Identifier: MIT

package matrix_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/benjaminhirsch/raytracer/approx"
	"github.com/benjaminhirsch/raytracer/matrix"
	"github.com/benjaminhirsch/raytracer/tuple"
)

// fixtureA and fixtureB are the classic 4×4 multiplication operands.
var (
	fixtureA = matrix.New4(
		[4]float64{1, 2, 3, 4},
		[4]float64{5, 6, 7, 8},
		[4]float64{9, 8, 7, 6},
		[4]float64{5, 4, 3, 2},
	)
	fixtureB = matrix.New4(
		[4]float64{-2, 1, 2, 3},
		[4]float64{3, 2, 1, -1},
		[4]float64{4, 3, 6, 5},
		[4]float64{1, 2, 7, 8},
	)
)

// randomMatrix returns a deterministic matrix of the given order with small
// integer-valued cells, so products stay exactly representable.
func randomMatrix(rng *rand.Rand, order int) matrix.Matrix {
	m, err := matrix.Zero(order)
	if err != nil {
		panic(err)
	}
	for i := 0; i < order; i++ {
		for j := 0; j < order; j++ {
			_ = m.Set(i, j, float64(rng.Intn(21)-10))
		}
	}

	return m
}

func mustMul(t *testing.T, a, b matrix.Matrix) matrix.Matrix {
	t.Helper()
	p, err := a.Mul(b)
	require.NoError(t, err)

	return p
}

func TestEqual(t *testing.T) {
	same := matrix.New4(
		[4]float64{1, 2, 3, 4},
		[4]float64{5, 6, 7, 8},
		[4]float64{9, 8, 7, 6},
		[4]float64{5, 4, 3, 2},
	)
	require.True(t, fixtureA.Equal(same))
	require.False(t, fixtureA.Equal(fixtureB))

	nudged := same
	require.NoError(t, nudged.Set(3, 3, 2+1e-9))
	require.False(t, fixtureA.Equal(nudged))
	require.True(t, fixtureA.Equal(nudged, approx.WithEpsilon(1e-6)))
}

// Orders must match even when the live cells coincide.
func TestEqualRequiresSameOrder(t *testing.T) {
	m2 := matrix.New2([2]float64{1, 0}, [2]float64{0, 1})
	m3 := matrix.New3([3]float64{1, 0, 0}, [3]float64{0, 1, 0}, [3]float64{0, 0, 0})
	require.False(t, m2.Equal(m3))
	require.False(t, m3.Equal(m2))
}

func TestMul(t *testing.T) {
	want := matrix.New4(
		[4]float64{20, 22, 50, 48},
		[4]float64{44, 54, 114, 108},
		[4]float64{40, 58, 110, 102},
		[4]float64{16, 26, 46, 42},
	)
	require.True(t, want.Equal(mustMul(t, fixtureA, fixtureB)))
}

func TestMulSmallOrders(t *testing.T) {
	a := matrix.New2([2]float64{1, 2}, [2]float64{3, 4})
	b := matrix.New2([2]float64{5, 6}, [2]float64{7, 8})
	got := mustMul(t, a, b)
	require.Equal(t, 2, got.Order())
	require.True(t, matrix.New2([2]float64{19, 22}, [2]float64{43, 50}).Equal(got))

	c := matrix.New3([3]float64{1, 0, 2}, [3]float64{0, 1, 0}, [3]float64{3, 0, 1})
	require.True(t, matrix.New3(
		[3]float64{7, 0, 4},
		[3]float64{0, 1, 0},
		[3]float64{6, 0, 7},
	).Equal(mustMul(t, c, c)))
}

func TestMulDimensionMismatch(t *testing.T) {
	a := matrix.New2([2]float64{1, 2}, [2]float64{3, 4})
	_, err := a.Mul(matrix.Identity())
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMulIdentity(t *testing.T) {
	m := matrix.New4(
		[4]float64{0, 1, 2, 4},
		[4]float64{1, 2, 4, 8},
		[4]float64{2, 4, 8, 16},
		[4]float64{4, 8, 16, 32},
	)
	require.True(t, m.Equal(mustMul(t, m, matrix.Identity())))
	require.True(t, m.Equal(mustMul(t, matrix.Identity(), m)))

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 32; i++ {
		r := randomMatrix(rng, 4)
		require.True(t, r.Equal(mustMul(t, r, matrix.Identity())))
		require.True(t, r.Equal(mustMul(t, matrix.Identity(), r)))
	}
}

func TestMulIsAssociative(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for _, order := range []int{2, 3, 4} {
		for i := 0; i < 16; i++ {
			a, b, c := randomMatrix(rng, order), randomMatrix(rng, order), randomMatrix(rng, order)
			left := mustMul(t, mustMul(t, a, b), c)
			right := mustMul(t, a, mustMul(t, b, c))
			require.True(t, left.Equal(right), "order %d:\n%v\n%v", order, left, right)
		}
	}
}

func TestMulZeroValuePanics(t *testing.T) {
	require.PanicsWithError(t, "Matrix.Zero(0): matrix: unsupported order", func() {
		_, _ = matrix.Matrix{}.Mul(matrix.Matrix{})
	})
}

func TestRow(t *testing.T) {
	require.Equal(t, tuple.New(5, 4, 3, 2), matrix.Row(fixtureA, 3))
}

func TestApply(t *testing.T) {
	a := matrix.New4(
		[4]float64{1, 2, 3, 4},
		[4]float64{2, 4, 4, 2},
		[4]float64{8, 6, 4, 1},
		[4]float64{0, 0, 0, 1},
	)
	got, err := a.Apply(tuple.New(1, 2, 3, 1))
	require.NoError(t, err)
	require.True(t, tuple.New(18, 24, 33, 1).Equal(got), "got %v", got)
}

func TestApplyIdentity(t *testing.T) {
	in := tuple.New(1, 2, 3, 4)
	got, err := matrix.Identity().Apply(in)
	require.NoError(t, err)
	require.True(t, in.Equal(got))
}

func TestApplyRequiresOrder4(t *testing.T) {
	for _, m := range []matrix.Matrix{
		matrix.New2([2]float64{1, 0}, [2]float64{0, 1}),
		matrix.New3([3]float64{1, 0, 0}, [3]float64{0, 1, 0}, [3]float64{0, 0, 1}),
		{},
	} {
		_, err := m.Apply(tuple.Point(1, 2, 3))
		require.True(t, errors.Is(err, matrix.ErrDimensionMismatch), "order %d", m.Order())
	}
}

func TestTranspose(t *testing.T) {
	m := matrix.New4(
		[4]float64{0, 9, 3, 0},
		[4]float64{9, 8, 0, 8},
		[4]float64{1, 8, 5, 3},
		[4]float64{0, 0, 5, 8},
	)
	want := matrix.New4(
		[4]float64{0, 9, 1, 0},
		[4]float64{9, 8, 8, 0},
		[4]float64{3, 0, 5, 5},
		[4]float64{0, 8, 3, 8},
	)
	require.True(t, want.Equal(m.Transpose()))
	require.True(t, matrix.Identity().Equal(matrix.Identity().Transpose()))
}

func TestTransposeKeepsOrder(t *testing.T) {
	m := matrix.New3([3]float64{1, 2, 3}, [3]float64{4, 5, 6}, [3]float64{7, 8, 9})
	tr := m.Transpose()
	require.Equal(t, 3, tr.Order())
	require.True(t, matrix.New3([3]float64{1, 4, 7}, [3]float64{2, 5, 8}, [3]float64{3, 6, 9}).Equal(tr))

	// padding stays zero: bitwise equality with a freshly built matrix
	require.Equal(t, matrix.New3([3]float64{1, 4, 7}, [3]float64{2, 5, 8}, [3]float64{3, 6, 9}), tr)
}

func TestTransposeIsInvolution(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _, order := range []int{2, 3, 4} {
		for i := 0; i < 16; i++ {
			m := randomMatrix(rng, order)
			require.True(t, m.Equal(m.Transpose().Transpose()))
		}
	}
}

func TestTransposeZeroValuePanics(t *testing.T) {
	require.Panics(t, func() { _ = matrix.Matrix{}.Transpose() })

	defer func() {
		err, ok := recover().(error)
		require.True(t, ok)
		require.ErrorIs(t, err, matrix.ErrBadOrder)
	}()
	_ = matrix.Matrix{}.Transpose()
}
