package services

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kaan/campushub/internal/app/models"
	"github.com/kaan/campushub/internal/app/repositories"
	"github.com/kaan/campushub/internal/pkg/apperrors"
)

// SessionService issues and resolves the cookie-based session. The cookie
// value is the decimal user id; a session is valid only while that user
// still exists, so resolving always goes through the user repository.
type SessionService struct {
	userRepo   repositories.IUserRepository
	cookieName string
	maxAge     int
	secure     bool
}

// NewSessionService creates a new SessionService
func NewSessionService(userRepo repositories.IUserRepository, cookieName string, maxAge int, secure bool) *SessionService {
	return &SessionService{
		userRepo:   userRepo,
		cookieName: cookieName,
		maxAge:     maxAge,
		secure:     secure,
	}
}

// CookieName returns the configured session cookie name
func (s *SessionService) CookieName() string {
	return s.cookieName
}

// Issue sets the session cookie on the response. HTTP-only, site-wide,
// Secure only in production.
func (s *SessionService) Issue(c *gin.Context, userID int64) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.cookieName, strconv.FormatInt(userID, 10), s.maxAge, "/", "", s.secure, true)
}

// Current resolves the session cookie to its user. A missing cookie, an
// unparsable value or a stale id (user deleted since the cookie was set)
// all mean "not logged in" and return (nil, nil) — never an error. Errors
// are reserved for store failures.
func (s *SessionService) Current(c *gin.Context) (*models.User, error) {
	raw, err := c.Cookie(s.cookieName)
	if err != nil || raw == "" {
		return nil, nil
	}

	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, nil
	}

	user, err := s.userRepo.GetByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return user, nil
}

// Clear expires the session cookie. Clearing an absent cookie is a no-op.
func (s *SessionService) Clear(c *gin.Context) {
	c.SetCookie(s.cookieName, "", -1, "/", "", s.secure, true)
}
