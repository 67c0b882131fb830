package lref

import "github.com/equinor/linref-api/internal/geom"

// ClipMultiLineToRange clips every child line to [from, to] on ordinate o
// and concatenates the results in child order. The parent container is
// MultiLine iff every concatenated child is itself a Line; any Point
// child, or a child clip that was already widened to a Collection, forces
// promotion to Collection. The bounding envelope is recomputed after
// concatenation. Returns nil for an empty aggregate result.
func ClipMultiLineToRange(ml *geom.MultiLine, o geom.Ordinate, from, to float64) (geom.Geometry, error) {
	if ml == nil {
		return nil, geom.NewError(geom.NullInput, "clip_multiline_to_range: nil geometry")
	}

	dims := ml.Dims_
	homogeneous := true
	var items []geom.Geometry

	for _, child := range ml.Lines {
		clipped, err := ClipLineToRange(child, o, from, to)
		if err != nil {
			return nil, err
		}
		if clipped == nil {
			continue
		}

		switch v := clipped.(type) {
		case *geom.MultiLine:
			for _, l := range v.Lines {
				items = append(items, l)
			}
		case *geom.Collection:
			homogeneous = false
			items = append(items, v.Items...)
		}
	}

	if len(items) == 0 {
		return nil, nil
	}

	if homogeneous {
		lines := make([]*geom.Line, len(items))
		for i, it := range items {
			lines[i] = it.(*geom.Line)
		}
		out := geom.NewEmptyMultiLine(ml.SRID_, dims)
		out.Lines = lines
		env := geom.ComputeEnvelope(out)
		out.Envelope = &env
		return out, nil
	}

	out := geom.NewEmptyCollection(ml.SRID_, dims)
	out.Items = items
	env := geom.ComputeEnvelope(out)
	out.Envelope = &env
	return out, nil
}
