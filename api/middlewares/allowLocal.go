package middlewares

import (
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

// OnlyAllowLocal rejects clients not connecting over loopback.
func OnlyAllowLocal(c *gin.Context) {
	if ip := c.ClientIP(); ip == "127.0.0.1" || ip == "::1" {
		c.Next()
	} else {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	}
}

// IsLocalOrigin reports whether an Origin header is absent or names a loopback host.
// Browsers send Origin on cross-site requests, so a page on another site never passes.
func IsLocalOrigin(origin string) bool {
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return false
	}
	host := u.Hostname()
	if strings.EqualFold(host, "localhost") {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}

// OnlyAllowLocalOrigin rejects browser requests coming from a non-loopback page.
func OnlyAllowLocalOrigin(c *gin.Context) {
	if !IsLocalOrigin(c.GetHeader("Origin")) {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden origin"})
		return
	}
	c.Next()
}

// RequireJSON rejects bodies not sent as application/json, which a page cannot
// send cross-site without a preflight.
func RequireJSON(c *gin.Context) {
	if c.ContentType() != gin.MIMEJSON {
		c.AbortWithStatusJSON(http.StatusUnsupportedMediaType, gin.H{"error": "Content-Type must be application/json"})
		return
	}
	c.Next()
}
