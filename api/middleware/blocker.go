package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// RequestBlocker aborts requests from a configured set of blocked IPs or
// user-agents before they reach any route.
func RequestBlocker(blockedIPs, blockedUserAgents []string) gin.HandlerFunc {
	ips := toSet(blockedIPs)
	agents := toSet(blockedUserAgents)

	return func(ctx *gin.Context) {
		if ips[ctx.ClientIP()] {
			ctx.AbortWithStatus(http.StatusForbidden)
			return
		}

		ua := strings.ToLower(ctx.Request.UserAgent())
		for blocked := range agents {
			if ua != "" && strings.Contains(ua, blocked) {
				ctx.AbortWithStatus(http.StatusForbidden)
				return
			}
		}

		ctx.Next()
	}
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v != "" {
			set[v] = true
		}
	}
	return set
}
