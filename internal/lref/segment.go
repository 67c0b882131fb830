// Package lref implements the linear-referencing kernel's algorithms:
// locate-along-measure and clip-to-ordinate-range, built on top of the
// geom package's data model.
package lref

import (
	"math"

	"github.com/equinor/linref-api/internal/geom"
)

// SegmentLocateAlong produces the point on segment (p1, p2) whose measure
// equals m, optionally displaced perpendicular to the segment by offset.
// It reports ok=false (no error) when m falls outside [min(m1,m2),
// max(m1,m2)] -- the segment simply has no hit. A zero-measure-length
// segment (m1 == m2) that is asked to interpolate is a genuine kernel
// error: ZeroMeasureLength.
func SegmentLocateAlong(p1, p2 geom.Point4D, m, offset float64) (geom.Point4D, bool, error) {
	m1, m2 := p1.M, p2.M

	lo, hi := m1, m2
	if lo > hi {
		lo, hi = hi, lo
	}
	if m < lo || m > hi {
		return geom.Point4D{}, false, nil
	}

	if m1 == m2 {
		return geom.Point4D{}, false, geom.NewErrorf(
			geom.ZeroMeasureLength,
			"zero measure-length segment encountered (m=%g)", m1,
		)
	}

	mprop := (m - m1) / (m2 - m1)

	pn := geom.Point4D{
		X: p1.X + (p2.X-p1.X)*mprop,
		Y: p1.Y + (p2.Y-p1.Y)*mprop,
		Z: p1.Z + (p2.Z-p1.Z)*mprop,
		M: m,
	}

	if offset != 0.0 {
		theta := math.Atan2(p2.Y-p1.Y, p2.X-p1.X)
		pn.X -= math.Sin(theta) * offset
		pn.Y += math.Cos(theta) * offset
	}

	return pn, true, nil
}
