package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/equinor/linref-api/internal/cache"
	"github.com/equinor/linref-api/internal/geom"
	"github.com/equinor/linref-api/internal/lref"
	"github.com/equinor/linref-api/internal/metrics"
	"github.com/equinor/linref-api/internal/storage"
)

// Endpoint bundles the collaborators every handler needs: a way to load a
// geometry document by URL, a response cache, and the loader that decodes
// what MakeConnection resolves.
type Endpoint struct {
	MakeConnection storage.ConnectionMaker
	Loader         *storage.Loader
	Cache          cache.Cache
}

/* Call abortOnError on the context in case of an error.
 *
 * If err != nil the error is mapped to an HTTP status through
 * httpStatusCode and ctx.AbortWithError is called with that status and
 * the error itself, and this returns true to indicate the context was
 * aborted. If err == nil, ctx is left untouched and this returns false.
 */
func abortOnError(ctx *gin.Context, err error) bool {
	if err == nil {
		return false
	}
	ctx.AbortWithError(httpStatusCode(err), err)
	return true
}

// Health reports the service is up.
func (e *Endpoint) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (e *Endpoint) resolveGeometry(ctx context.Context, inline GeometryDTO, url string) (geom.Geometry, error) {
	if url == "" {
		return inline.toGeometry()
	}

	conn, err := e.MakeConnection(url)
	if err != nil {
		return nil, err
	}
	return e.Loader.Load(ctx, conn)
}

// LocatePost handles POST /locate.
//
// @Summary     Locate points along a measured geometry
// @Description Produces the points whose interpolated measure equals the
// @Description requested value, optionally displaced perpendicular to the
// @Description line by a signed offset.
// @Accept      json
// @Produce     json
// @Param       body body     LocateRequest true "locate parameters"
// @Success     200  {object} GeometryResponse
// @Failure     400  {object} gin.H
// @Router      /locate [post]
func (e *Endpoint) LocatePost(ctx *gin.Context) {
	var req LocateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		abortOnError(ctx, newInvalidArgument("malformed request body: %v", err))
		return
	}

	key, err := cache.Key("locate", req)
	if abortOnError(ctx, err) {
		return
	}
	if cached, ok := e.Cache.Get(key); ok {
		ctx.Data(http.StatusOK, "application/json; charset=utf-8", cached)
		return
	}

	g, err := e.resolveGeometry(ctx.Request.Context(), req.Geometry, req.GeometryURL)
	if abortOnError(ctx, err) {
		return
	}
	metrics.SetVertices(ctx, geom.VertexCount(g))

	result, err := lref.LocateAlong(g, *req.Measure, req.Offset, nil)
	if abortOnError(ctx, err) {
		return
	}

	body := GeometryResponse{Geometry: geometryToDTO(result)}
	if encoded, err := json.Marshal(body); err == nil {
		e.Cache.Set(key, encoded, int64(len(encoded)))
	}

	ctx.JSON(http.StatusOK, body)
}

// ClipPost handles POST /clip.
//
// @Summary     Clip a geometry to an ordinate range
// @Description Produces the sub-portions of the input whose selected
// @Description ordinate lies within [from, to], interpolating points at
// @Description each crossing of the interval boundary.
// @Accept      json
// @Produce     json
// @Param       body body     ClipRequest true "clip parameters"
// @Success     200  {object} GeometryResponse
// @Failure     400  {object} gin.H
// @Router      /clip [post]
func (e *Endpoint) ClipPost(ctx *gin.Context) {
	var req ClipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		abortOnError(ctx, newInvalidArgument("malformed request body: %v", err))
		return
	}

	ordinate, err := GetOrdinate(req.Ordinate)
	if abortOnError(ctx, err) {
		return
	}

	key, err := cache.Key("clip", req)
	if abortOnError(ctx, err) {
		return
	}
	if cached, ok := e.Cache.Get(key); ok {
		ctx.Data(http.StatusOK, "application/json; charset=utf-8", cached)
		return
	}

	g, err := e.resolveGeometry(ctx.Request.Context(), req.Geometry, req.GeometryURL)
	if abortOnError(ctx, err) {
		return
	}
	metrics.SetVertices(ctx, geom.VertexCount(g))

	var result geom.Geometry
	switch v := g.(type) {
	case *geom.Line:
		result, err = lref.ClipLineToRange(v, ordinate, *req.From, *req.To)
	case *geom.MultiLine:
		result, err = lref.ClipMultiLineToRange(v, ordinate, *req.From, *req.To)
	default:
		err = geom.NewErrorf(geom.UnsupportedGeometry, "clip: unsupported geometry kind %s", g.Kind())
	}
	if abortOnError(ctx, err) {
		return
	}

	body := GeometryResponse{Geometry: geometryToDTO(result)}
	if encoded, err := json.Marshal(body); err == nil {
		e.Cache.Set(key, encoded, int64(len(encoded)))
	}

	ctx.JSON(http.StatusOK, body)
}
