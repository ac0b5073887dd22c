package services

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaan/campushub/internal/app/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testContext(cookie *http.Cookie) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		c.Request.AddCookie(cookie)
	}
	return c, w
}

func issuedCookie(t *testing.T, w *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	t.Fatalf("cookie %q not set", name)
	return nil
}

func TestSessionIssueAndResolve(t *testing.T) {
	userRepo := newFakeUserRepo()
	require.NoError(t, userRepo.Create(nil, &models.User{Name: "Ayse Demir", Email: "ayse@campushub.edu"}))
	svc := NewSessionService(userRepo, "session", 604800, false)

	c, w := testContext(nil)
	svc.Issue(c, 1)

	cookie := issuedCookie(t, w, "session")
	assert.Equal(t, "1", cookie.Value)
	assert.Equal(t, 604800, cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)
	assert.False(t, cookie.Secure)
	assert.Equal(t, "/", cookie.Path)

	// Resolve the cookie we just issued
	c2, _ := testContext(&http.Cookie{Name: "session", Value: cookie.Value})
	user, err := svc.Current(c2)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, int64(1), user.ID)
}

func TestSessionSecureOnlyInProduction(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewSessionService(userRepo, "session", 604800, true)

	c, w := testContext(nil)
	svc.Issue(c, 1)

	cookie := issuedCookie(t, w, "session")
	assert.True(t, cookie.Secure)
}

func TestSessionMissingCookie(t *testing.T) {
	svc := NewSessionService(newFakeUserRepo(), "session", 604800, false)

	c, _ := testContext(nil)
	user, err := svc.Current(c)
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestSessionUnparsableCookie(t *testing.T) {
	svc := NewSessionService(newFakeUserRepo(), "session", 604800, false)

	c, _ := testContext(&http.Cookie{Name: "session", Value: "not-a-number"})
	user, err := svc.Current(c)
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestSessionStaleCookie(t *testing.T) {
	// A cookie naming a user deleted since it was issued means "not
	// logged in", not an error.
	userRepo := newFakeUserRepo()
	require.NoError(t, userRepo.Create(nil, &models.User{Name: "Ayse Demir"}))
	require.NoError(t, userRepo.DeleteWithPosts(nil, 1))
	svc := NewSessionService(userRepo, "session", 604800, false)

	c, _ := testContext(&http.Cookie{Name: "session", Value: "1"})
	user, err := svc.Current(c)
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestSessionClearExpiresCookie(t *testing.T) {
	svc := NewSessionService(newFakeUserRepo(), "session", 604800, false)

	c, w := testContext(nil)
	svc.Clear(c)

	cookie := issuedCookie(t, w, "session")
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}
