package lref

import "github.com/equinor/linref-api/internal/geom"

// ErrorSink receives non-fatal errors encountered mid-traversal.
// PathLocateAlong calls it for every ZeroMeasureLength segment it skips,
// but does not abort the traversal because of one: the segment is
// skipped and traversal continues. A nil sink silently discards the
// report.
type ErrorSink func(error)

// PathLocateAlong applies SegmentLocateAlong across every consecutive pair
// of vertices in pa, accumulating hits in traversal order. It returns nil
// for point arrays with fewer than two vertices. Coincident hits at shared
// vertices are not deduplicated: this duplication is deliberate and matches
// the source behavior.
func PathLocateAlong(pa *geom.PointArray, m, offset float64, report ErrorSink) *geom.PointArray {
	if pa == nil || pa.Len() < 2 {
		return nil
	}

	var out *geom.PointArray
	for i := 1; i < pa.Len(); i++ {
		p1 := pa.At(i - 1)
		p2 := pa.At(i)

		hit, ok, err := SegmentLocateAlong(p1, p2, m, offset)
		if err != nil {
			if report != nil {
				report(err)
			}
			continue
		}
		if !ok {
			continue
		}

		if out == nil {
			out = geom.NewPointArray(pa.HasZ(), pa.HasM(), 8)
		}
		out.Append(hit, true)
	}

	return out
}
