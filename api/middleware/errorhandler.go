package middleware

import "github.com/gin-gonic/gin"

// ErrorHandler finalizes any error recorded on the context (by
// abortOnError in api/handlers) into a JSON error body, once the handler
// chain has finished. It is installed on the route group in
// cmd/linrefd/main.go.
func ErrorHandler(ctx *gin.Context) {
	ctx.Next()

	if len(ctx.Errors) == 0 {
		return
	}

	err := ctx.Errors.Last()
	ctx.JSON(ctx.Writer.Status(), gin.H{
		"requestId": RequestID(ctx),
		"error":     err.Error(),
	})
}
