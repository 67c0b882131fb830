package geom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPointArrayAppendAndAt(t *testing.T) {
	pa := NewPointArray(false, true, 2)
	require.Equal(t, 0, pa.Len())

	pa.Append(Point4D{X: 1, M: 1}, true)
	pa.Append(Point4D{X: 2, M: 2}, true)

	require.Equal(t, 2, pa.Len())
	require.Equal(t, 1.0, pa.At(0).X)
	require.Equal(t, 2.0, pa.At(1).X)
	require.True(t, pa.HasM())
	require.False(t, pa.HasZ())
	require.Equal(t, 3, pa.NDims())
}

func TestPointArraySetOverwrites(t *testing.T) {
	pa := NewSizedPointArray(false, false, 3)
	pa.Set(1, Point4D{X: 99})
	require.Equal(t, 99.0, pa.At(1).X)
	require.Equal(t, 0.0, pa.At(0).X)
}

func TestPointArrayClone(t *testing.T) {
	pa := NewPointArray(false, true, 1)
	pa.Append(Point4D{X: 1}, true)

	clone := pa.Clone()
	clone.Set(0, Point4D{X: 42})

	require.Equal(t, 1.0, pa.At(0).X)
	require.Equal(t, 42.0, clone.At(0).X)
}

func TestNilPointArrayLen(t *testing.T) {
	var pa *PointArray
	require.Equal(t, 0, pa.Len())
}
