package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionCookie(t *testing.T, rr *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rr.Result().Cookies() {
		if c.Name == sessionCookieName {
			return c
		}
	}
	t.Fatalf("missing session cookie")
	return nil
}

func TestSessionRoundTrip(t *testing.T) {
	s := NewSessions("test-secret", time.Hour)
	rr := httptest.NewRecorder()
	require.NoError(t, s.CreateSession(rr, Identity{UserID: 7, Role: "volunteer"}))

	c := sessionCookie(t, rr)
	assert.True(t, c.HttpOnly)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(c)
	id, ok := s.ParseSession(req)
	require.True(t, ok)
	assert.Equal(t, uint(7), id.UserID)
	assert.Equal(t, "volunteer", id.Role)
}

func TestSessionRejectsForeignSecret(t *testing.T) {
	rr := httptest.NewRecorder()
	require.NoError(t, NewSessions("secret-a", time.Hour).CreateSession(rr, Identity{UserID: 1, Role: "admin"}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(sessionCookie(t, rr))
	_, ok := NewSessions("secret-b", time.Hour).ParseSession(req)
	assert.False(t, ok)
}

func TestSessionExpires(t *testing.T) {
	s := NewSessions("test-secret", time.Minute)
	base := time.Now()
	s.now = func() time.Time { return base }
	rr := httptest.NewRecorder()
	require.NoError(t, s.CreateSession(rr, Identity{UserID: 3, Role: "admin"}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(sessionCookie(t, rr))
	s.now = func() time.Time { return base.Add(2 * time.Minute) }
	_, ok := s.ParseSession(req)
	assert.False(t, ok)
}

func TestSessionRejectsGarbage(t *testing.T) {
	s := NewSessions("test-secret", time.Hour)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "7.abc"})
	_, ok := s.ParseSession(req)
	assert.False(t, ok)
}

func TestClearSessionIsIdempotent(t *testing.T) {
	s := NewSessions("test-secret", time.Hour)
	for i := 0; i < 2; i++ {
		rr := httptest.NewRecorder()
		s.ClearSession(rr)
		c := sessionCookie(t, rr)
		assert.Empty(t, c.Value)
		assert.Less(t, c.MaxAge, 0)
	}
}

func TestRequireAuthRedirectsAnonymous(t *testing.T) {
	s := NewSessions("test-secret", time.Hour)
	called := false
	h := s.Middleware(s.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	assert.False(t, called)
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/login", rr.Header().Get("Location"))

	rr = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Header.Set("Accept", "application/json")
	h.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRequireAuthPassesIdentity(t *testing.T) {
	s := NewSessions("test-secret", time.Hour)
	rr := httptest.NewRecorder()
	require.NoError(t, s.CreateSession(rr, Identity{UserID: 9, Role: "admin"}))

	var got Identity
	h := s.Middleware(s.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = IdentityFromContext(r.Context())
	})))
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(sessionCookie(t, rr))
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, Identity{UserID: 9, Role: "admin"}, got)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)
	assert.True(t, CheckPassword(hash, "s3cret"))
	assert.False(t, CheckPassword(hash, "S3cret"))
	assert.False(t, CheckPassword("not-a-hash", "s3cret"))

	again, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, hash, again, "hashes must be salted")
}
