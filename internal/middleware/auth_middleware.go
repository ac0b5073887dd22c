package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/kaan/campushub/internal/app/models/dto"
	"github.com/kaan/campushub/internal/app/services"
)

// Context keys set by RequireSession
const (
	ContextUserIDKey = "userID"
	ContextUserKey   = "currentUser"
)

// AuthMiddleware guards routes using the cookie session. It runs two
// tiers: RequireSession is the authoritative check that resolves the
// cookie against the store, PageGate is the cheap edge check that only
// looks at cookie presence and redirects page requests.
type AuthMiddleware struct {
	sessions *services.SessionService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(sessions *services.SessionService) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// RequireSession resolves the session cookie to a live user and aborts
// with 401 when there is none. A cookie naming a deleted user counts as
// no session. On success the user is stored in the gin context.
func (m *AuthMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := m.sessions.Current(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error"))
			return
		}
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Unauthorized"))
			return
		}

		c.Set(ContextUserIDKey, user.ID)
		c.Set(ContextUserKey, user)

		c.Next()
	}
}

// CurrentUserID reads the authenticated user id set by RequireSession
func CurrentUserID(c *gin.Context) (int64, bool) {
	value, exists := c.Get(ContextUserIDKey)
	if !exists {
		return 0, false
	}
	userID, ok := value.(int64)
	return userID, ok
}

// isAuthPath reports whether the path belongs to the login/registration pages
func isAuthPath(path string) bool {
	return strings.HasPrefix(path, "/login") || strings.HasPrefix(path, "/register")
}

// PageGate is the edge-tier page guard. It never touches the store: only
// cookie presence decides the redirect, and each handler still re-checks
// the session authoritatively. Without a cookie every page except the
// auth pages redirects to registration; with a cookie the auth pages
// redirect to the home feed.
func PageGate(cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(cookieName)
		hasSession := err == nil && cookie != ""
		path := c.Request.URL.Path

		if !hasSession && !isAuthPath(path) {
			c.Redirect(http.StatusFound, "/register")
			c.Abort()
			return
		}

		if hasSession && isAuthPath(path) {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}

		c.Next()
	}
}
