package geom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOrdinateGetSet(t *testing.T) {
	p := Point4D{X: 1, Y: 2, Z: 3, M: 4}

	v, ok := p.Ordinate(OrdinateX)
	require.True(t, ok)
	require.Equal(t, 1.0, v)

	v, ok = p.Ordinate(OrdinateM)
	require.True(t, ok)
	require.Equal(t, 4.0, v)

	_, ok = p.Ordinate(Ordinate(4))
	require.False(t, ok)

	ok = p.SetOrdinate(OrdinateZ, 30)
	require.True(t, ok)
	require.Equal(t, 30.0, p.Z)

	before := p
	ok = p.SetOrdinate(Ordinate(-1), 99)
	require.False(t, ok)
	require.Equal(t, before, p)
}

func TestInterpolateBasic(t *testing.T) {
	a := Point4D{X: 0, Y: 0, Z: 0, M: 0}
	b := Point4D{X: 10, Y: 0, Z: 0, M: 10}

	out, err := Interpolate(a, b, 4, OrdinateM, 3)
	require.NoError(t, err)
	require.Equal(t, 3.0, out.X)
	require.Equal(t, 3.0, out.M)
}

func TestInterpolateOutOfRange(t *testing.T) {
	a := Point4D{M: 0}
	b := Point4D{M: 10}

	_, err := Interpolate(a, b, 4, OrdinateM, 20)
	require.Error(t, err)
	require.True(t, Is(err, NotBetween))
}

func TestInterpolateBadOrdinate(t *testing.T) {
	a := Point4D{X: 0}
	b := Point4D{X: 10}

	_, err := Interpolate(a, b, 2, OrdinateM, 5)
	require.Error(t, err)
	require.True(t, Is(err, BadOrdinate))
}

func TestInterpolateOrientationInsensitive(t *testing.T) {
	a := Point4D{X: 0, M: 10}
	b := Point4D{X: 10, M: 0}

	out, err := Interpolate(a, b, 4, OrdinateM, 4)
	require.NoError(t, err)
	require.InDelta(t, 6.0, out.X, 1e-9)
}
