package lref

import "github.com/equinor/linref-api/internal/geom"

// status classifies the previous iteration's outcome while walking a line
// for ClipLineToRange.
type status int

const (
	statusNotAdded status = iota
	statusAddedInside
	statusAddedBoundary
)

// clipBuilder accumulates the heterogeneous output of a single line clip:
// a run of Line fragments widened to a Collection the moment any
// single-vertex Point fragment is flushed. Widening is a one-way ratchet.
type clipBuilder struct {
	srid       int
	dims       geom.Dims
	lines      []*geom.Line
	collection *geom.Collection
}

func newClipBuilder(srid int, d geom.Dims) *clipBuilder {
	return &clipBuilder{srid: srid, dims: d}
}

func (b *clipBuilder) widen() {
	if b.collection != nil {
		return
	}
	b.collection = geom.NewEmptyCollection(b.srid, b.dims)
	for _, l := range b.lines {
		b.collection.Append(l)
	}
	b.lines = nil
}

// flush turns buf into a fragment: a Line when it has >=2 points, a Point
// (and a widening of the whole output) when it has exactly 1.
func (b *clipBuilder) flush(buf *geom.PointArray) {
	if buf == nil || buf.Len() == 0 {
		return
	}
	if buf.Len() == 1 {
		b.widen()
		b.collection.Append(&geom.Point{
			Value: buf.At(0),
			Dims_: b.dims,
			SRID_: b.srid,
		})
		return
	}
	line := geom.LineFromPointArray(b.srid, buf)
	if b.collection != nil {
		b.collection.Append(line)
	} else {
		b.lines = append(b.lines, line)
	}
}

// result returns the final MultiLine or Collection, or nil when nothing
// was produced.
func (b *clipBuilder) result() geom.Geometry {
	if b.collection != nil {
		if len(b.collection.Items) == 0 {
			return nil
		}
		b.collection.Envelope = envelopePtr(geom.ComputeEnvelope(b.collection))
		return b.collection
	}
	if len(b.lines) == 0 {
		return nil
	}
	ml := geom.NewEmptyMultiLine(b.srid, b.dims)
	ml.Lines = b.lines
	ml.Envelope = envelopePtr(geom.ComputeEnvelope(ml))
	return ml
}

func envelopePtr(e geom.Envelope) *geom.Envelope {
	if e.IsEmpty() {
		return nil
	}
	return &e
}

func inRange(v, from, to float64) bool { return v >= from && v <= to }

// interpolateAt is lwpoint_interpolate's call site in the clipper: it
// interpolates the crossing point on (a, b) at ordinate o reaching
// target. Most callers pass endpoints in (prev, curr) order; the straddle
// branch passes (curr, prev), which gives the same point because
// geom.Interpolate's proportion does not depend on segment orientation.
func interpolateAt(a, b geom.Point4D, ndims int, o geom.Ordinate, target float64) (geom.Point4D, error) {
	return geom.Interpolate(a, b, ndims, o, target)
}

// ClipLineToRange clips a single line to the closed interval [from, to] on
// ordinate o, producing a MultiLine when every emitted fragment has >=2
// vertices, else a Collection with the 1-vertex fragments represented as
// Points. Returns nil when no fragment was produced.
func ClipLineToRange(line *geom.Line, o geom.Ordinate, from, to float64) (geom.Geometry, error) {
	if line == nil {
		return nil, geom.NewError(geom.NullInput, "clip_line_to_range: nil geometry")
	}
	if from > to {
		from, to = to, from
	}

	// X and Y are always present; Z and M only when the line carries them.
	// Point4D holds all four ordinates (absent ones are zero), so crossings
	// are interpolated over all four and an XYM line keeps its M.
	lineDims := line.Points.Dims
	if o < geom.OrdinateX || o > geom.OrdinateM ||
		(o == geom.OrdinateZ && !lineDims.HasZ) || (o == geom.OrdinateM && !lineDims.HasM) {
		return nil, geom.NewErrorf(geom.BadOrdinate,
			"cannot clip on ordinate %d in a %d-d geometry", int(o), lineDims.N())
	}
	ndims := 4

	pa := line.Points
	dims := pa.Dims
	builder := newClipBuilder(line.SRID_, dims)

	var buf *geom.PointArray
	st := statusNotAdded

	var prev, curr geom.Point4D
	var vq, vp float64

	for i := 0; i < pa.Len(); i++ {
		if i > 0 {
			prev = curr
			vq = vp
		}
		curr = pa.At(i)
		vp, _ = curr.Ordinate(o)

		if inRange(vp, from, to) {
			onBoundary := vp == from || vp == to

			if st == statusNotAdded {
				buf = geom.NewPointArray(dims.HasZ, dims.HasM, 32)

				// A zero-width range never needs one: the boundary point
				// would be curr itself, turning a single touch into a
				// 2-point line.
				needsBoundaryPoint := i > 0 && from != to && (
					(vp > from && vp < to) ||
						(vp == from && vq > to) ||
						(vp == to && vq < from))

				if needsBoundaryPoint {
					target := from
					if vq > to {
						target = to
					}
					r, err := interpolateAt(prev, curr, ndims, o, target)
					if err != nil {
						return nil, err
					}
					buf.Append(r, false)
				}
			}

			buf.Append(curr, false)

			if onBoundary {
				st = statusAddedBoundary
			} else {
				st = statusAddedInside
			}
			continue
		}

		// vp is outside [from, to].
		switch st {
		case statusAddedInside:
			target := from
			if vp > to {
				target = to
			}
			r, err := interpolateAt(prev, curr, ndims, o, target)
			if err != nil {
				return nil, err
			}
			buf.Append(r, false)

		case statusAddedBoundary:
			// vp is already known outside [from, to] here, so
			// (vq==from && vp>from) can only mean vp>to (hopped clean
			// over the far side), and symmetrically for vq==to. If we
			// instead left through the boundary we were already
			// touching, no new point is needed.
			if from != to &&
				((vq == from && vp > from) || (vq == to && vp < to)) {
				target := from
				if vp > to {
					target = to
				}
				r, err := interpolateAt(prev, curr, ndims, o, target)
				if err != nil {
					return nil, err
				}
				buf.Append(r, false)
			}

		case statusNotAdded:
			if i > 0 && ((vq < from && vp > to) || (vq > to && vp < from)) {
				if from == to {
					// Degenerate (zero-width) range: the segment passes
					// through the single value `from` without either
					// endpoint touching it. That is one exact crossing,
					// i.e. a 1-vertex fragment, not a 2-point line
					// straddling a range of width zero.
					r, err := interpolateAt(curr, prev, ndims, o, from)
					if err != nil {
						return nil, err
					}
					buf = geom.NewPointArray(dims.HasZ, dims.HasM, 1)
					buf.Append(r, false)
				} else {
					buf = geom.NewPointArray(dims.HasZ, dims.HasM, 2)
					first, second := from, to
					if vq > to {
						first, second = to, from
					}
					r1, err := interpolateAt(curr, prev, ndims, o, first)
					if err != nil {
						return nil, err
					}
					r2, err := interpolateAt(curr, prev, ndims, o, second)
					if err != nil {
						return nil, err
					}
					buf.Append(r1, false)
					buf.Append(r2, false)
				}
			}
		}

		builder.flush(buf)
		buf = nil
		st = statusNotAdded
	}

	builder.flush(buf)

	return builder.result(), nil
}
