package handlers

import (
	"fmt"
	"net/http"

	"github.com/equinor/linref-api/internal/geom"
	"github.com/equinor/linref-api/internal/storage"
)

// requestError is a handler-local error kind for request validation
// failures that never reach the kernel (bad JSON, unknown ordinate name).
type requestError struct{ msg string }

func (e *requestError) Error() string { return e.msg }

func newInvalidArgument(format string, args ...interface{}) error {
	return &requestError{msg: fmt.Sprintf(format, args...)}
}

// httpStatusCode maps an error from any layer (request validation, the
// geom/lref kernel, or storage) to an HTTP status.
func httpStatusCode(err error) int {
	switch e := err.(type) {
	case *requestError:
		return http.StatusBadRequest
	case *geom.Error:
		switch e.Kind {
		case geom.NullInput, geom.BadOrdinate, geom.NotBetween,
			geom.MissingM, geom.UnsupportedGeometry:
			return http.StatusBadRequest
		default:
			return http.StatusInternalServerError
		}
	case *storage.Error:
		if e.Kind == storage.InvalidArgument {
			return http.StatusBadRequest
		}
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
