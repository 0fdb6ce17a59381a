package middleware

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cinehub/internal/logging"
	"cinehub/internal/microservices/http-api/models"
	"cinehub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// stubAuth accepts exactly one token.
type stubAuth struct {
	token  string
	claims *service.Claims
}

func (s *stubAuth) Register(context.Context, string, string, string) (*models.User, error) {
	return nil, errors.New("not implemented")
}

func (s *stubAuth) Login(context.Context, string, string) (string, string, *models.User, error) {
	return "", "", nil, errors.New("not implemented")
}

func (s *stubAuth) RefreshAccessToken(context.Context, string) (string, error) {
	return "", errors.New("not implemented")
}

func (s *stubAuth) RevokeToken(context.Context, string) error { return nil }

func (s *stubAuth) ValidateToken(token string) (*service.Claims, error) {
	if token != s.token {
		return nil, service.ErrInvalidToken
	}
	return s.claims, nil
}

func (s *stubAuth) AccessTokenTTL() time.Duration { return time.Minute }

func newStubAuth(isStaff bool) *stubAuth {
	return &stubAuth{
		token:  "good",
		claims: &service.Claims{UserID: "u1", Username: "alice", IsStaff: isStaff, Type: "access"},
	}
}

func echoActor(c *gin.Context) {
	a := ActorFrom(c)
	c.JSON(http.StatusOK, gin.H{"user_id": a.UserID, "is_staff": a.IsStaff})
}

func serve(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", AuthMiddleware(newStubAuth(false)), echoActor)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic good", http.StatusUnauthorized},
		{"bad token", "Bearer nope", http.StatusUnauthorized},
		{"valid token", "Bearer good", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(r, tt.header)
			assert.Equal(t, tt.status, w.Code)
		})
	}

	w := serve(r, "Bearer good")
	assert.JSONEq(t, `{"user_id":"u1","is_staff":false}`, w.Body.String())
}

func TestOptionalAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", OptionalAuth(newStubAuth(false)), echoActor)

	w := serve(r, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":"","is_staff":false}`, w.Body.String())

	w = serve(r, "Bearer nope")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":"","is_staff":false}`, w.Body.String())

	w = serve(r, "Bearer good")
	assert.JSONEq(t, `{"user_id":"u1","is_staff":false}`, w.Body.String())
}

func TestRequireStaff(t *testing.T) {
	gin.SetMode(gin.TestMode)

	for _, isStaff := range []bool{false, true} {
		r := gin.New()
		r.GET("/", AuthMiddleware(newStubAuth(isStaff)), RequireStaff(), echoActor)

		w := serve(r, "Bearer good")
		if isStaff {
			assert.Equal(t, http.StatusOK, w.Code)
		} else {
			assert.Equal(t, http.StatusForbidden, w.Code)
		}
	}
}

func TestRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := newVisitorStore(1, 2, visitorTTL)
	fixed := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return fixed }

	r := gin.New()
	r.GET("/", rateLimiter(store, logging.Discard()), func(c *gin.Context) { c.Status(http.StatusOK) })

	hit := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = ip + ":1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, hit("10.0.0.1"))
	assert.Equal(t, http.StatusOK, hit("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, hit("10.0.0.1"))
	assert.Equal(t, http.StatusOK, hit("10.0.0.2"))
	assert.Equal(t, 2, store.len())
}

func TestWritesOnly(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := newVisitorStore(1, 1, visitorTTL)
	fixed := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return fixed }

	r := gin.New()
	r.Use(WritesOnly(rateLimiter(store, logging.Discard())))
	ok := func(c *gin.Context) { c.Status(http.StatusOK) }
	r.GET("/dashboard", ok)
	r.POST("/watchlist", ok)
	r.DELETE("/watchlist/1", ok)

	hit := func(method, path string) int {
		req := httptest.NewRequest(method, path, nil)
		req.RemoteAddr = "10.0.0.9:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	for range 5 {
		assert.Equal(t, http.StatusOK, hit(http.MethodGet, "/dashboard"))
	}
	assert.Equal(t, http.StatusOK, hit(http.MethodPost, "/watchlist"))
	assert.Equal(t, http.StatusTooManyRequests, hit(http.MethodDelete, "/watchlist/1"))
	assert.Equal(t, http.StatusOK, hit(http.MethodGet, "/dashboard"))
}

func TestVisitorStore_SweepsIdle(t *testing.T) {
	store := newVisitorStore(1, 1, time.Minute)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	store.lastSweep = now
	store.now = func() time.Time { return now }

	store.get("a")
	now = now.Add(2 * time.Minute)
	store.get("b")

	assert.Equal(t, 1, store.len())
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	logger := logging.NewWithWriter("test", "info", "json", &buf)

	r := gin.New()
	r.Use(RequestLogger(logger))
	r.GET("/missing", func(c *gin.Context) {
		c.Set(ContextUserID, "u1")
		c.Status(http.StatusNotFound)
	})

	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	assert.Contains(t, out, `"level":"WARN"`)
	assert.Contains(t, out, `"status":404`)
	assert.Contains(t, out, `"user_id":"u1"`)
	assert.Contains(t, out, `"path":"/missing"`)
}
