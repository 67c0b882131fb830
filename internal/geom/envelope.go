package geom

import "math"

// Envelope is the bounding box of a geometry on its X/Y ordinates (and Z
// when present), recomputed by the multiline clipper after concatenating
// its children's fragments.
type Envelope struct {
	MinX, MinY, MaxX, MaxY float64
	MinZ, MaxZ             float64
	HasZ                   bool
}

func newEmptyEnvelope() Envelope {
	return Envelope{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
		MinZ: math.Inf(1), MaxZ: math.Inf(-1),
	}
}

func (e *Envelope) extend(p Point4D, hasZ bool) {
	if p.X < e.MinX {
		e.MinX = p.X
	}
	if p.X > e.MaxX {
		e.MaxX = p.X
	}
	if p.Y < e.MinY {
		e.MinY = p.Y
	}
	if p.Y > e.MaxY {
		e.MaxY = p.Y
	}
	if hasZ {
		e.HasZ = true
		if p.Z < e.MinZ {
			e.MinZ = p.Z
		}
		if p.Z > e.MaxZ {
			e.MaxZ = p.Z
		}
	}
}

// IsEmpty reports whether the envelope never saw a point.
func (e Envelope) IsEmpty() bool {
	return math.IsInf(e.MinX, 1)
}

// ComputeEnvelope walks g's fragments and returns their bounding box. For
// an empty geometry it returns an empty envelope (infinite, inverted
// bounds), for which IsEmpty reports true.
func ComputeEnvelope(g Geometry) Envelope {
	env := newEmptyEnvelope()
	accumulate(g, &env)
	return env
}

func accumulate(g Geometry, env *Envelope) {
	switch v := g.(type) {
	case *Point:
		env.extend(v.Value, v.Dims_.HasZ)
	case *Line:
		for _, p := range v.Points.Points() {
			env.extend(p, v.Points.HasZ())
		}
	case *MultiLine:
		for _, l := range v.Lines {
			accumulate(l, env)
		}
	case *MultiPoint:
		for _, p := range v.Points {
			accumulate(p, env)
		}
	case *Collection:
		for _, item := range v.Items {
			accumulate(item, env)
		}
	}
}

// VertexCount returns the number of coordinate tuples g is made of. A nil
// geometry has zero vertices. Used to size the "vertices walked" metric
// around a locate/clip call.
func VertexCount(g Geometry) int {
	if g == nil {
		return 0
	}

	switch v := g.(type) {
	case *Point:
		return 1
	case *Line:
		return v.Points.Len()
	case *MultiLine:
		n := 0
		for _, l := range v.Lines {
			n += VertexCount(l)
		}
		return n
	case *MultiPoint:
		return len(v.Points)
	case *Collection:
		n := 0
		for _, item := range v.Items {
			n += VertexCount(item)
		}
		return n
	default:
		return 0
	}
}
