package middleware

import (
	"context"
	"strings"

	"github.com/evergreen/backend/internal/infrastructure/telemetry"
	"github.com/gin-gonic/gin"
)

// ProfilingConfig holds configuration for the profiling middleware.
type ProfilingConfig struct {
	Enabled bool
	// SkipPaths are exact paths that never get profiling labels.
	SkipPaths []string
	// SkipPathPrefixes are path prefixes that never get profiling labels.
	SkipPathPrefixes []string
}

// DefaultProfilingConfig skips health checks and the swagger UI.
func DefaultProfilingConfig() ProfilingConfig {
	return ProfilingConfig{
		Enabled: true,
		SkipPaths: []string{
			"/health",
		},
		SkipPathPrefixes: []string{
			"/swagger",
		},
	}
}

// Profiling returns profiling middleware with the default configuration.
func Profiling() gin.HandlerFunc {
	return ProfilingWithConfig(DefaultProfilingConfig())
}

// ProfilingWithConfig attaches Pyroscope labels to each request so CPU
// and memory profiles can be sliced by method, route pattern, and
// domain in the Pyroscope UI. Labels come from gin's matched route,
// not the raw path, to keep cardinality bounded.
func ProfilingWithConfig(cfg ProfilingConfig) gin.HandlerFunc {
	if !cfg.Enabled {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		path := c.Request.URL.Path

		for _, skipPath := range cfg.SkipPaths {
			if path == skipPath {
				c.Next()
				return
			}
		}
		for _, prefix := range cfg.SkipPathPrefixes {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}

		labels := requestProfilingLabels(c)

		telemetry.WithProfilingLabels(c.Request.Context(), labels, func(ctx context.Context) {
			c.Request = c.Request.WithContext(ctx)
			c.Next()
		})
	}
}

// requestProfilingLabels builds the label set for a handled request.
func requestProfilingLabels(c *gin.Context) map[string]string {
	route := c.FullPath()
	return telemetry.HTTPRequestLabels(
		domainFromRoute(route),
		route,
		c.Request.Method,
	)
}

// domainFromRoute derives a domain group name from the route pattern.
// Example: "/api/v1/listing/properties/:slug" yields "listing".
func domainFromRoute(route string) string {
	if route == "" {
		return ""
	}

	for _, part := range strings.Split(route, "/") {
		if part == "" || part == "api" || isVersionSegment(part) {
			continue
		}
		if strings.HasPrefix(part, ":") || strings.HasPrefix(part, "*") {
			continue
		}
		return part
	}

	return ""
}

// isVersionSegment reports whether a path segment looks like an API
// version, such as v1 or v2.
func isVersionSegment(segment string) bool {
	if len(segment) < 2 || (segment[0] != 'v' && segment[0] != 'V') {
		return false
	}
	for i := 1; i < len(segment); i++ {
		if segment[i] < '0' || segment[i] > '9' {
			return false
		}
	}
	return true
}
