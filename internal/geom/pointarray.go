package geom

// PointArray is an ordered sequence of Point4D sharing one Dims
// descriptor. It is the sole container the kernel's algorithms consume
// or produce: segments, paths, and clip fragments are all built by
// reading and appending to one of these.
type PointArray struct {
	Dims   Dims
	points []Point4D
}

// NewPointArray returns an empty point array with the given
// dimensionality and initial capacity hint.
func NewPointArray(hasZ, hasM bool, capacityHint int) *PointArray {
	if capacityHint < 0 {
		capacityHint = 0
	}
	return &PointArray{
		Dims:   Dims{HasZ: hasZ, HasM: hasM},
		points: make([]Point4D, 0, capacityHint),
	}
}

// NewSizedPointArray returns a point array of exactly n zero-valued points.
func NewSizedPointArray(hasZ, hasM bool, n int) *PointArray {
	return &PointArray{
		Dims:   Dims{HasZ: hasZ, HasM: hasM},
		points: make([]Point4D, n),
	}
}

// NewPointArrayFrom wraps an existing slice of points, sharing its backing
// array (no copy).
func NewPointArrayFrom(hasZ, hasM bool, points []Point4D) *PointArray {
	return &PointArray{Dims: Dims{HasZ: hasZ, HasM: hasM}, points: points}
}

// Len returns the number of points.
func (pa *PointArray) Len() int {
	if pa == nil {
		return 0
	}
	return len(pa.points)
}

// HasZ reports whether this array carries a Z ordinate.
func (pa *PointArray) HasZ() bool { return pa.Dims.HasZ }

// HasM reports whether this array carries an M ordinate.
func (pa *PointArray) HasM() bool { return pa.Dims.HasM }

// NDims is the effective dimensionality, 2, 3 or 4.
func (pa *PointArray) NDims() int { return pa.Dims.N() }

// At reads the point at index i.
func (pa *PointArray) At(i int) Point4D { return pa.points[i] }

// Set overwrites the point at index i.
func (pa *PointArray) Set(i int, p Point4D) { pa.points[i] = p }

// Append adds p to the end of the array. The repeatedOK flag mirrors
// ptarray_append_point's repeated-point flag but is ignored: p is always
// appended, even when it repeats the last point and repeatedOK is false.
func (pa *PointArray) Append(p Point4D, repeatedOK bool) {
	_ = repeatedOK
	pa.points = append(pa.points, p)
}

// Clone returns a deep copy of pa.
func (pa *PointArray) Clone() *PointArray {
	if pa == nil {
		return nil
	}
	out := make([]Point4D, len(pa.points))
	copy(out, pa.points)
	return &PointArray{Dims: pa.Dims, points: out}
}

// Points exposes the underlying slice for read-only iteration.
func (pa *PointArray) Points() []Point4D {
	if pa == nil {
		return nil
	}
	return pa.points
}
