// Package cors answers browser preflights for the planner API.
package cors

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

var staticHeaders = map[string]string{
	"Vary":                          "Origin",
	"Access-Control-Allow-Headers":  "Content-Type, X-Requested-With, X-Request-ID",
	"Access-Control-Allow-Methods":  "GET, POST, OPTIONS",
	"Access-Control-Expose-Headers": "Content-Disposition, X-Request-ID, X-Plan-ID",
	"Access-Control-Max-Age":        "600",
}

type policy struct {
	any     bool
	origins map[string]struct{}
}

func newPolicy(allowed []string) policy {
	p := policy{any: len(allowed) == 0, origins: make(map[string]struct{}, len(allowed))}
	for _, origin := range allowed {
		p.origins[normalize(origin)] = struct{}{}
	}
	return p
}

// allowOrigin returns the Access-Control-Allow-Origin value for a request
// origin, or "" when the origin is refused.
func (p policy) allowOrigin(origin string) string {
	if origin == "" {
		if p.any {
			return "*"
		}
		return ""
	}
	if p.any {
		return origin
	}
	if _, ok := p.origins[normalize(origin)]; ok {
		return origin
	}
	return ""
}

func normalize(origin string) string {
	return strings.ToLower(strings.TrimRight(strings.TrimSpace(origin), "/"))
}

// New returns CORS middleware. An empty list allows every origin.
func New(allowedOrigins []string) gin.HandlerFunc {
	p := newPolicy(allowedOrigins)

	return func(c *gin.Context) {
		h := c.Writer.Header()
		if allow := p.allowOrigin(c.GetHeader("Origin")); allow != "" {
			h.Set("Access-Control-Allow-Origin", allow)
		}
		for k, v := range staticHeaders {
			h.Set(k, v)
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
