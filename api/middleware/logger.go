// Package middleware holds the gin middleware shared by the HTTP surface:
// request logging, rendering recorded errors as a JSON body, and
// IP/user-agent blocking,
// wired together by cmd/linrefd/main.go's setupApp via
// middleware.FormattedLogger / middleware.ErrorHandler /
// middleware.RequestBlocker.
package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDKey = "request-id"

// FormattedLogger emits one line per request: method, path, status,
// latency, client IP and a minted request ID, and stashes the request ID
// in the context so handlers and ErrorHandler can reference it.
func FormattedLogger() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		requestID := uuid.NewString()
		ctx.Set(requestIDKey, requestID)

		start := time.Now()
		ctx.Next()
		latency := time.Since(start)

		fmt.Printf(
			"%s | %3d | %13v | %15s | %-7s %s\n",
			requestID,
			ctx.Writer.Status(),
			latency,
			ctx.ClientIP(),
			ctx.Request.Method,
			ctx.Request.URL.Path,
		)
	}
}

// RequestID returns the request ID FormattedLogger minted for ctx, or ""
// if the middleware was not installed.
func RequestID(ctx *gin.Context) string {
	v, ok := ctx.Get(requestIDKey)
	if !ok {
		return ""
	}
	id, _ := v.(string)
	return id
}
