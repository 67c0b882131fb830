package lref

import (
	"testing"

	"github.com/equinor/linref-api/internal/geom"
	"github.com/stretchr/testify/require"
)

func mline(coords [][2]float64) *geom.Line {
	pa := geom.NewPointArray(false, true, len(coords))
	for _, c := range coords {
		pa.Append(geom.Point4D{X: c[0], M: c[1]}, true)
	}
	return geom.LineFromPointArray(1, pa)
}

func linesOf(t *testing.T, g geom.Geometry) [][]geom.Point4D {
	t.Helper()
	var out [][]geom.Point4D
	switch v := g.(type) {
	case *geom.MultiLine:
		for _, l := range v.Lines {
			out = append(out, append([]geom.Point4D{}, l.Points.Points()...))
		}
	case *geom.Collection:
		for _, item := range v.Items {
			if l, ok := item.(*geom.Line); ok {
				out = append(out, append([]geom.Point4D{}, l.Points.Points()...))
			}
		}
	}
	return out
}

func TestClipLineRangeEntering(t *testing.T) {
	line := mline([][2]float64{{0, 0}, {10, 10}})
	out, err := ClipLineToRange(line, geom.OrdinateM, 2, 7)
	require.NoError(t, err)

	ml, ok := out.(*geom.MultiLine)
	require.True(t, ok)
	require.Len(t, ml.Lines, 1)
	pts := ml.Lines[0].Points.Points()
	require.Len(t, pts, 2)
	require.Equal(t, 2.0, pts[0].M)
	require.Equal(t, 7.0, pts[1].M)
}

func TestClipLineRangeEnteringThroughInteriorVertex(t *testing.T) {
	// Unlike TestClipLineRangeEntering, the midpoint vertex actually sits
	// inside [2,7], so this exercises the per-vertex AddedInside/flush
	// transitions rather than the whole-segment straddle branch.
	line := mline([][2]float64{{0, 0}, {5, 5}, {10, 10}})
	out, err := ClipLineToRange(line, geom.OrdinateM, 2, 7)
	require.NoError(t, err)

	ml := out.(*geom.MultiLine)
	require.Len(t, ml.Lines, 1)
	pts := ml.Lines[0].Points.Points()
	require.Len(t, pts, 3)
	require.Equal(t, 2.0, pts[0].M)
	require.Equal(t, 5.0, pts[1].M)
	require.Equal(t, 7.0, pts[2].M)
}

func TestClipLineRangeStraddling(t *testing.T) {
	line := mline([][2]float64{{-5, -5}, {15, 15}})
	out, err := ClipLineToRange(line, geom.OrdinateM, 0, 10)
	require.NoError(t, err)

	ml := out.(*geom.MultiLine)
	require.Len(t, ml.Lines, 1)
	pts := ml.Lines[0].Points.Points()
	require.Len(t, pts, 2)
	require.Equal(t, 0.0, pts[0].M)
	require.Equal(t, 10.0, pts[1].M)
}

func TestClipLineBoundaryTouchWithoutEntry(t *testing.T) {
	line := mline([][2]float64{{0, 0}, {5, 5}, {0, 10}})
	out, err := ClipLineToRange(line, geom.OrdinateM, 5, 5)
	require.NoError(t, err)

	coll, ok := out.(*geom.Collection)
	require.True(t, ok)
	require.Len(t, coll.Items, 1)
	pt, ok := coll.Items[0].(*geom.Point)
	require.True(t, ok)
	require.Equal(t, 5.0, pt.Value.M)
}

func TestClipLineMultiEnter(t *testing.T) {
	// M goes 0 -> 5 -> 0 -> 5 -> 0: each of the four segments crosses the
	// whole range [2,4], so each contributes its own 2-point fragment.
	line := mline([][2]float64{{0, 0}, {5, 5}, {0, 0}, {5, 5}, {10, 0}})
	out, err := ClipLineToRange(line, geom.OrdinateM, 2, 4)
	require.NoError(t, err)

	ml, ok := out.(*geom.MultiLine)
	require.True(t, ok)
	require.Len(t, ml.Lines, 4)
}

func TestClipLineEmptyResult(t *testing.T) {
	line := mline([][2]float64{{0, 100}, {10, 110}})
	out, err := ClipLineToRange(line, geom.OrdinateM, 0, 10)
	require.NoError(t, err)
	require.Nil(t, out)
}

func TestClipLineIntervalSwapInvariance(t *testing.T) {
	line := mline([][2]float64{{-5, -5}, {15, 15}})

	a, err := ClipLineToRange(line, geom.OrdinateM, 0, 10)
	require.NoError(t, err)
	b, err := ClipLineToRange(line, geom.OrdinateM, 10, 0)
	require.NoError(t, err)

	require.Equal(t, linesOf(t, a), linesOf(t, b))
}

func TestClipLineIdempotence(t *testing.T) {
	line := mline([][2]float64{{-5, -5}, {3, 3}, {15, 15}})

	first, err := ClipLineToRange(line, geom.OrdinateM, 0, 10)
	require.NoError(t, err)

	ml := first.(*geom.MultiLine)
	require.Len(t, ml.Lines, 1)

	second, err := ClipLineToRange(ml.Lines[0], geom.OrdinateM, 0, 10)
	require.NoError(t, err)

	require.Equal(t, linesOf(t, first), linesOf(t, second))
}

func TestClipLineDegenerateIntervalOnlyExactHits(t *testing.T) {
	line := mline([][2]float64{{0, 0}, {10, 10}, {20, 0}})
	out, err := ClipLineToRange(line, geom.OrdinateM, 5, 5)
	require.NoError(t, err)

	coll := out.(*geom.Collection)
	for _, item := range coll.Items {
		_, isPoint := item.(*geom.Point)
		require.True(t, isPoint)
	}
}

func TestClipLineBadOrdinate(t *testing.T) {
	pa := geom.NewPointArray(false, false, 2)
	pa.Append(geom.Point4D{X: 0, Y: 0}, true)
	pa.Append(geom.Point4D{X: 10, Y: 10}, true)
	line := geom.LineFromPointArray(1, pa)

	_, err := ClipLineToRange(line, geom.OrdinateM, 0, 10)
	require.Error(t, err)
	require.True(t, geom.Is(err, geom.BadOrdinate))
}

func TestClipLineNilInput(t *testing.T) {
	_, err := ClipLineToRange(nil, geom.OrdinateM, 0, 10)
	require.Error(t, err)
	require.True(t, geom.Is(err, geom.NullInput))
}

func TestClipMultiLineConcatenatesAndWidens(t *testing.T) {
	a := mline([][2]float64{{0, 0}, {10, 10}})
	b := mline([][2]float64{{0, 5}, {0, 10}}) // second child touches boundary only
	ml := &geom.MultiLine{Lines: []*geom.Line{a, b}, Dims_: geom.Dims{HasM: true}, SRID_: 1}

	out, err := ClipMultiLineToRange(ml, geom.OrdinateM, 5, 5)
	require.NoError(t, err)

	coll, ok := out.(*geom.Collection)
	require.True(t, ok)
	require.NotEmpty(t, coll.Items)
	require.NotNil(t, coll.Envelope)
}

func TestClipMultiLineHomogeneousStaysMultiLine(t *testing.T) {
	a := mline([][2]float64{{0, 0}, {10, 10}})
	b := mline([][2]float64{{0, 2}, {10, 8}})
	ml := &geom.MultiLine{Lines: []*geom.Line{a, b}, Dims_: geom.Dims{HasM: true}, SRID_: 1}

	out, err := ClipMultiLineToRange(ml, geom.OrdinateM, 1, 9)
	require.NoError(t, err)

	mlOut, ok := out.(*geom.MultiLine)
	require.True(t, ok)
	require.Len(t, mlOut.Lines, 2)
	require.NotNil(t, mlOut.Envelope)
}

func TestClipMultiLineEmptyResult(t *testing.T) {
	a := mline([][2]float64{{0, 100}, {10, 110}})
	ml := &geom.MultiLine{Lines: []*geom.Line{a}, Dims_: geom.Dims{HasM: true}, SRID_: 1}

	out, err := ClipMultiLineToRange(ml, geom.OrdinateM, 0, 10)
	require.NoError(t, err)
	require.Nil(t, out)
}
