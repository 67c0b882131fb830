package storage

import "github.com/equinor/linref-api/internal/geom"

// point4D is the JSON wire shape of a geom.Point4D.
type point4D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z,omitempty"`
	M float64 `json:"m,omitempty"`
}

// geometryDoc is the JSON document stored in blob storage (or a local
// file) for a line or multiline geometry -- the persisted analogue of the
// api package's GeometryDTO.
type geometryDoc struct {
	SRID  int         `json:"srid"`
	HasZ  bool        `json:"hasZ"`
	HasM  bool        `json:"hasM"`
	Lines [][]point4D `json:"lines" binding:"required"`
}

func toGeom(p point4D) geom.Point4D {
	return geom.Point4D{X: p.X, Y: p.Y, Z: p.Z, M: p.M}
}

func fromGeom(p geom.Point4D) point4D {
	return point4D{X: p.X, Y: p.Y, Z: p.Z, M: p.M}
}

// toGeometry converts a decoded document into a geom.Line (single entry in
// Lines) or geom.MultiLine (multiple entries).
func (d geometryDoc) toGeometry() geom.Geometry {
	dims := geom.Dims{HasZ: d.HasZ, HasM: d.HasM}

	if len(d.Lines) == 1 {
		return geom.LineFromPointArray(d.SRID, pointArrayFrom(dims, d.Lines[0]))
	}

	ml := geom.NewEmptyMultiLine(d.SRID, dims)
	for _, coords := range d.Lines {
		ml.Lines = append(ml.Lines, geom.LineFromPointArray(d.SRID, pointArrayFrom(dims, coords)))
	}
	return ml
}

func pointArrayFrom(dims geom.Dims, coords []point4D) *geom.PointArray {
	pa := geom.NewPointArray(dims.HasZ, dims.HasM, len(coords))
	for _, c := range coords {
		pa.Append(toGeom(c), true)
	}
	return pa
}

// fromGeometry converts a geom.Line/geom.MultiLine back into its wire
// document, for the storage layer's own tests and for any component that
// needs to persist a clip/locate result.
func fromGeometry(g geom.Geometry) (geometryDoc, error) {
	switch v := g.(type) {
	case *geom.Line:
		return geometryDoc{
			SRID:  v.SRID(),
			HasZ:  v.Points.HasZ(),
			HasM:  v.Points.HasM(),
			Lines: [][]point4D{pointsOf(v.Points)},
		}, nil
	case *geom.MultiLine:
		doc := geometryDoc{SRID: v.SRID(), HasZ: v.Dims_.HasZ, HasM: v.Dims_.HasM}
		for _, l := range v.Lines {
			doc.Lines = append(doc.Lines, pointsOf(l.Points))
		}
		return doc, nil
	default:
		return geometryDoc{}, NewErrorf(InvalidArgument, "cannot encode geometry kind %s to storage document", g.Kind())
	}
}

func pointsOf(pa *geom.PointArray) []point4D {
	out := make([]point4D, pa.Len())
	for i, p := range pa.Points() {
		out[i] = fromGeom(p)
	}
	return out
}
