package handlers

import "github.com/equinor/linref-api/internal/geom"

func dtoToPoint4D(p PointDTO) geom.Point4D {
	return geom.Point4D{X: p.X, Y: p.Y, Z: p.Z, M: p.M}
}

func point4DToDTO(p geom.Point4D) PointDTO {
	return PointDTO{X: p.X, Y: p.Y, Z: p.Z, M: p.M}
}

func pointArrayFromDTO(dims geom.Dims, coords []PointDTO) *geom.PointArray {
	pa := geom.NewPointArray(dims.HasZ, dims.HasM, len(coords))
	for _, c := range coords {
		pa.Append(dtoToPoint4D(c), true)
	}
	return pa
}

// toGeometry converts a request DTO into the kernel's geometry model.
func (g GeometryDTO) toGeometry() (geom.Geometry, error) {
	dims := geom.Dims{HasZ: g.HasZ, HasM: g.HasM}

	switch g.Kind {
	case "Point":
		if g.Point == nil {
			return nil, newInvalidArgument("geometry kind Point requires a point")
		}
		return &geom.Point{Value: dtoToPoint4D(*g.Point), Dims_: dims, SRID_: g.SRID}, nil

	case "Line":
		if len(g.Lines) != 1 {
			return nil, newInvalidArgument("geometry kind Line requires exactly one line")
		}
		return geom.LineFromPointArray(g.SRID, pointArrayFromDTO(dims, g.Lines[0])), nil

	case "MultiLine":
		if len(g.Lines) == 0 {
			return nil, newInvalidArgument("geometry kind MultiLine requires at least one line")
		}
		ml := geom.NewEmptyMultiLine(g.SRID, dims)
		for _, coords := range g.Lines {
			ml.Lines = append(ml.Lines, geom.LineFromPointArray(g.SRID, pointArrayFromDTO(dims, coords)))
		}
		return ml, nil

	default:
		return nil, newInvalidArgument("unsupported geometry kind '%s', valid options are: Point, Line, MultiLine", g.Kind)
	}
}

// geometryToDTO converts any kernel output variant (including the widened
// Collection) back into the wire DTO.
func geometryToDTO(g geom.Geometry) *GeometryDTO {
	if g == nil {
		return nil
	}

	dims := g.Dims()
	dto := &GeometryDTO{Kind: g.Kind().String(), SRID: g.SRID(), HasZ: dims.HasZ, HasM: dims.HasM}

	switch v := g.(type) {
	case *geom.Point:
		p := point4DToDTO(v.Value)
		dto.Point = &p

	case *geom.Line:
		dto.Lines = [][]PointDTO{pointsToDTO(v.Points)}

	case *geom.MultiLine:
		for _, l := range v.Lines {
			dto.Lines = append(dto.Lines, pointsToDTO(l.Points))
		}

	case *geom.MultiPoint:
		for _, p := range v.Points {
			pd := point4DToDTO(p.Value)
			dto.Lines = append(dto.Lines, []PointDTO{pd})
		}

	case *geom.Collection:
		for _, item := range v.Items {
			switch child := item.(type) {
			case *geom.Line:
				dto.Lines = append(dto.Lines, pointsToDTO(child.Points))
			case *geom.Point:
				dto.Lines = append(dto.Lines, []PointDTO{point4DToDTO(child.Value)})
			}
		}
	}

	return dto
}

func pointsToDTO(pa *geom.PointArray) []PointDTO {
	out := make([]PointDTO, pa.Len())
	for i, p := range pa.Points() {
		out[i] = point4DToDTO(p)
	}
	return out
}
