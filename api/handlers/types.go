// Package handlers implements the HTTP surface over the linear-referencing
// kernel: one route per kernel operation, JSON request/response DTOs, and
// the error-to-status mapping in errors.go.
package handlers

// @Description Four-tuple coordinate. Z/M are omitted from the JSON
// @Description whenever their value is zero, whether or not the parent
// @Description geometry carries that dimension.
type PointDTO struct {
	X float64 `json:"x" example:"1.0"`
	Y float64 `json:"y" example:"2.0"`
	Z float64 `json:"z,omitempty" example:"0.0"`
	M float64 `json:"m,omitempty" example:"0.0"`
} // @name Point

// @Description A line, multiline, point, multipoint or mixed collection,
// @Description tagged by kind. Lines has one entry per child line (a plain
// @Description Line has exactly one).
type GeometryDTO struct {
	Kind  string       `json:"kind" example:"Line"`
	SRID  int          `json:"srid" example:"4326"`
	HasZ  bool         `json:"hasZ"`
	HasM  bool         `json:"hasM"`
	Point *PointDTO    `json:"point,omitempty"`
	Lines [][]PointDTO `json:"lines,omitempty"`
} // @name Geometry

// @Description Request body for POST /locate. Exactly one of geometry or
// @Description geometryUrl must be set; geometryUrl is fetched through the
// @Description configured storage backend. Measure is a pointer so that a
// @Description legitimate zero measure is distinguished from an absent one.
type LocateRequest struct {
	Geometry    GeometryDTO `json:"geometry"`
	GeometryURL string      `json:"geometryUrl" example:"https://account.blob.core.windows.net/container/line.json"`
	Measure     *float64    `json:"measure" binding:"required"`
	Offset      float64     `json:"offset"`
} // @name LocateRequest

// @Description Request body for POST /clip. Exactly one of geometry or
// @Description geometryUrl must be set; geometryUrl is fetched through the
// @Description configured storage backend. From/To are pointers so that a
// @Description legitimate zero boundary is distinguished from an absent one.
type ClipRequest struct {
	Geometry    GeometryDTO `json:"geometry"`
	GeometryURL string      `json:"geometryUrl" example:"https://account.blob.core.windows.net/container/line.json"`
	Ordinate    string      `json:"ordinate" binding:"required" example:"m"`
	From        *float64    `json:"from" binding:"required"`
	To          *float64    `json:"to" binding:"required"`
} // @name ClipRequest

// @Description Response envelope shared by /locate and /clip
type GeometryResponse struct {
	Geometry *GeometryDTO `json:"geometry"`
} // @name GeometryResponse
