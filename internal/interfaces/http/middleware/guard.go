package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

// Decision is the outcome of evaluating a request path against the
// access rules for protected areas of the site.
type Decision int

const (
	// DecisionAllow lets the request through.
	DecisionAllow Decision = iota
	// DecisionRedirectLogin sends an unauthenticated visitor to the
	// login page, preserving the originally requested path.
	DecisionRedirectLogin
	// DecisionRedirectHome sends an authenticated but unauthorized
	// visitor back to the home page.
	DecisionRedirectHome
)

// GuardIdentity is the resolved caller identity the guard decides on.
// A zero value means the request carries no valid session.
type GuardIdentity struct {
	UserID    string
	Email     string
	AdminRole string
}

// IsAuthenticated reports whether the request carries a valid session.
func (i GuardIdentity) IsAuthenticated() bool {
	return i.UserID != ""
}

// IsAdmin reports whether the caller has back-office membership.
func (i GuardIdentity) IsAdmin() bool {
	return i.AdminRole != ""
}

// guardRule binds a path prefix to its access requirement. Rules are
// evaluated in order and the first matching prefix wins.
type guardRule struct {
	prefix       string
	requireAuth  bool
	requireAdmin bool
}

var guardRules = []guardRule{
	{prefix: "/admin", requireAuth: true, requireAdmin: true},
	{prefix: "/protected", requireAuth: true},
	{prefix: "/sell", requireAuth: true},
	{prefix: "/favorites", requireAuth: true},
}

// Decide evaluates a request path against the ordered rule table.
// Paths that match no rule are always allowed.
func Decide(path string, identity GuardIdentity) Decision {
	for _, rule := range guardRules {
		if !matchesPrefix(path, rule.prefix) {
			continue
		}
		if rule.requireAuth && !identity.IsAuthenticated() {
			return DecisionRedirectLogin
		}
		if rule.requireAdmin && !identity.IsAdmin() {
			return DecisionRedirectHome
		}
		return DecisionAllow
	}
	return DecisionAllow
}

// matchesPrefix matches whole path segments so that /selling does not
// fall under the /sell rule.
func matchesPrefix(path, prefix string) bool {
	if !strings.HasPrefix(path, prefix) {
		return false
	}
	if len(path) == len(prefix) {
		return true
	}
	return path[len(prefix)] == '/'
}

// RouteGuardMiddleware enforces the access rules for protected page
// prefixes. It expects OptionalJWTAuthMiddleware to have run first so
// that claims for a valid session are already on the context.
func RouteGuardMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := identityFromContext(c)

		switch Decide(c.Request.URL.Path, identity) {
		case DecisionRedirectLogin:
			target := "/auth/login?redirect=" + url.QueryEscape(c.Request.URL.Path)
			c.Redirect(http.StatusFound, target)
			c.Abort()
		case DecisionRedirectHome:
			c.Redirect(http.StatusFound, "/")
			c.Abort()
		default:
			if identity.AdminRole != "" {
				c.Set(AdminRoleKey, identity.AdminRole)
			}
			c.Next()
		}
	}
}

// AdminOnlyMiddleware rejects API calls from sessions without admin
// membership. Unlike the route guard it answers with a JSON error
// instead of a redirect, for use on /api/v1/admin routes.
func AdminOnlyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := identityFromContext(c)
		if !identity.IsAuthenticated() {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Authentication required",
				},
			})
			c.Abort()
			return
		}
		if !identity.IsAdmin() {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "FORBIDDEN",
					"message": "Admin access required",
				},
			})
			c.Abort()
			return
		}
		c.Set(AdminRoleKey, identity.AdminRole)
		c.Next()
	}
}

// SuperAdminOnlyMiddleware restricts a route to super administrators.
// It must run after AdminOnlyMiddleware.
func SuperAdminOnlyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetAdminRole(c) != "super_admin" {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "FORBIDDEN",
					"message": "Super admin access required",
				},
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

func identityFromContext(c *gin.Context) GuardIdentity {
	claims := GetJWTClaims(c)
	if claims == nil {
		return GuardIdentity{}
	}
	return GuardIdentity{
		UserID:    claims.UserID,
		Email:     claims.Email,
		AdminRole: claims.AdminRole,
	}
}

// GetAdminRole returns the admin role attached by the guard, or an
// empty string for non-admin sessions.
func GetAdminRole(c *gin.Context) string {
	if role, exists := c.Get(AdminRoleKey); exists {
		if s, ok := role.(string); ok {
			return s
		}
	}
	return ""
}
