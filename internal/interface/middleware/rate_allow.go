package middleware

import (
	"net"

	"github.com/gin-gonic/gin"
)

// AllowPrivateIP returns an AllowFunc that bypasses rate limits for
// requests from loopback or RFC1918 addresses.
func AllowPrivateIP() AllowFunc {
	return func(c *gin.Context) bool {
		parsed := net.ParseIP(ipFromCtx(c))
		if parsed == nil {
			return false
		}
		return parsed.IsLoopback() || parsed.IsPrivate()
	}
}
