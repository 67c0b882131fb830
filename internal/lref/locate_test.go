package lref

import (
	"testing"

	"github.com/equinor/linref-api/internal/geom"
	"github.com/stretchr/testify/require"
)

func measuredLine(srid int, coords [][2]float64) *geom.Line {
	pa := geom.NewPointArray(false, true, len(coords))
	for _, c := range coords {
		pa.Append(geom.Point4D{X: c[0], M: c[1]}, true)
	}
	return geom.LineFromPointArray(srid, pa)
}

func TestLocateAlongSimpleCrossing(t *testing.T) {
	line := measuredLine(4326, [][2]float64{{0, 0}, {10, 10}})

	out, err := LocateAlong(line, 3, 0, nil)
	require.NoError(t, err)

	mp, ok := out.(*geom.MultiPoint)
	require.True(t, ok)
	require.Len(t, mp.Points, 1)
	require.Equal(t, 3.0, mp.Points[0].Value.X)
	require.Equal(t, 3.0, mp.Points[0].Value.M)
}

func TestLocateAlongPointExactMatch(t *testing.T) {
	p := &geom.Point{Value: geom.Point4D{M: 5}, Dims_: geom.Dims{HasM: true}, SRID_: 4326}
	out, err := LocateAlong(p, 5, 0, nil)
	require.NoError(t, err)
	require.Equal(t, 5.0, out.(*geom.Point).Value.M)
}

func TestLocateAlongPointNoMatch(t *testing.T) {
	p := &geom.Point{Value: geom.Point4D{M: 5}, Dims_: geom.Dims{HasM: true}, SRID_: 4326}
	out, err := LocateAlong(p, 7, 0, nil)
	require.NoError(t, err)
	require.Equal(t, 0.0, out.(*geom.Point).Value.M)
}

func TestLocateAlongSynthesizesMeasureWhenAbsent(t *testing.T) {
	pa := geom.NewPointArray(false, false, 3)
	pa.Append(geom.Point4D{X: 0}, true)
	pa.Append(geom.Point4D{X: 10}, true)
	pa.Append(geom.Point4D{X: 20}, true)
	line := geom.LineFromPointArray(4326, pa)

	out, err := LocateAlong(line, 0.5, 0, nil)
	require.NoError(t, err)

	// Synthesized measures are 0, 0.5, 1: m=0.5 sits on the shared middle
	// vertex, which both adjoining segments report (no deduplication).
	mp := out.(*geom.MultiPoint)
	require.Len(t, mp.Points, 2)
	require.Equal(t, 10.0, mp.Points[0].Value.X)
	require.Equal(t, 10.0, mp.Points[1].Value.X)
}

func TestLocateAlongMultiLineMergesInChildOrder(t *testing.T) {
	a := measuredLine(4326, [][2]float64{{0, 0}, {10, 10}})
	b := measuredLine(4326, [][2]float64{{100, 0}, {110, 10}})
	ml := &geom.MultiLine{Lines: []*geom.Line{a, b}, Dims_: geom.Dims{HasM: true}, SRID_: 4326}

	out, err := LocateAlong(ml, 5, 0, nil)
	require.NoError(t, err)

	mp := out.(*geom.MultiPoint)
	require.Len(t, mp.Points, 2)
	require.Equal(t, 5.0, mp.Points[0].Value.X)
	require.Equal(t, 105.0, mp.Points[1].Value.X)
}

func TestLocateAlongUnsupportedGeometry(t *testing.T) {
	mp := geom.NewEmptyMultiPoint(4326, geom.Dims{HasM: true})
	_, err := LocateAlong(mp, 1, 0, nil)
	require.Error(t, err)
	require.True(t, geom.Is(err, geom.UnsupportedGeometry))
}

func TestLocateAlongMultiLineMissingM(t *testing.T) {
	pa := geom.NewPointArray(false, false, 2)
	pa.Append(geom.Point4D{X: 0}, true)
	pa.Append(geom.Point4D{X: 10}, true)
	unmeasured := geom.LineFromPointArray(4326, pa)

	ml := &geom.MultiLine{Lines: []*geom.Line{unmeasured}, Dims_: geom.Dims{}, SRID_: 4326}
	_, err := LocateAlong(ml, 1, 0, nil)
	require.Error(t, err)
	require.True(t, geom.Is(err, geom.MissingM))
}
