package lref

import "github.com/equinor/linref-api/internal/geom"

// LocateAlong dispatches locate-along-measure over the input variant,
// synthesizing measures when a line lacks an M dimension, and returns a
// MultiPoint (or, for a Point input, a Point). Fails with
// UnsupportedGeometry for any other variant, or MissingM when the input
// needs an M dimension it does not carry.
func LocateAlong(g geom.Geometry, m, offset float64, report ErrorSink) (geom.Geometry, error) {
	if g == nil {
		return nil, geom.NewError(geom.NullInput, "locate_along: nil geometry")
	}

	switch v := g.(type) {
	case *geom.Point:
		return locatePoint(v, m), nil
	case *geom.Line:
		return locateLine(v, m, offset, report)
	case *geom.MultiLine:
		return locateMultiLine(v, m, offset, report)
	default:
		return nil, geom.NewErrorf(geom.UnsupportedGeometry,
			"locate_along: unsupported geometry variant %s", g.Kind())
	}
}

func locatePoint(p *geom.Point, m float64) *geom.Point {
	if p.Value.M == m {
		clone := *p
		return &clone
	}
	return geom.NewEmptyPoint(p.SRID_, p.Dims_)
}

// synthesizeMeasures returns a copy of pa with M set to a value that runs
// linearly from 0.0 to 1.0 across vertex index -- not arc-length. This is
// the source's (surprising) choice, preserved deliberately.
func synthesizeMeasures(pa *geom.PointArray) *geom.PointArray {
	n := pa.Len()
	out := geom.NewSizedPointArray(pa.HasZ(), true, n)
	if n == 1 {
		p := pa.At(0)
		p.M = 0.0
		out.Set(0, p)
		return out
	}
	last := float64(n - 1)
	for i := 0; i < n; i++ {
		p := pa.At(i)
		p.M = float64(i) / last
		out.Set(i, p)
	}
	return out
}

func locateLine(l *geom.Line, m, offset float64, report ErrorSink) (*geom.MultiPoint, error) {
	var hits *geom.PointArray

	if l.Points.HasM() {
		hits = PathLocateAlong(l.Points, m, offset, report)
	} else {
		measured := synthesizeMeasures(l.Points)
		hits = PathLocateAlong(measured, m, offset, report)
	}

	dims := geom.Dims{HasZ: l.Points.HasZ(), HasM: true}
	mp := geom.NewEmptyMultiPoint(l.SRID_, dims)
	if hits == nil {
		return mp, nil
	}
	for _, p := range hits.Points() {
		mp.AddPoint(&geom.Point{Value: p, Dims_: dims, SRID_: l.SRID_})
	}
	return mp, nil
}

func locateMultiLine(ml *geom.MultiLine, m, offset float64, report ErrorSink) (*geom.MultiPoint, error) {
	out := geom.NewEmptyMultiPoint(ml.SRID_, ml.Dims_)

	for _, child := range ml.Lines {
		if !child.Points.HasM() {
			return nil, geom.NewError(geom.MissingM,
				"locate_along: multiline child lacks an M dimension")
		}

		along, err := locateLine(child, m, offset, report)
		if err != nil {
			return nil, err
		}
		// The original C implementation indexes the sub-point being
		// appended by the outer loop variable (a bug); this walks the
		// inner multipoint's own members instead.
		for _, p := range along.Points {
			out.AddPoint(p)
		}
	}

	return out, nil
}
