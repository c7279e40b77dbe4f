package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-dashboard/internal/app/models"
)

type stubProvider struct {
	session *models.Session
	err     error
	calls   int
}

func (p *stubProvider) Session(*http.Request) (*models.Session, error) {
	p.calls++
	return p.session, p.err
}

func newRouter(provider *stubProvider, seen **models.Session) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(OptionalSessionMiddleware(provider, nil))
	r.GET("/", func(c *gin.Context) {
		*seen = GetSessionFromContext(c)
		c.Status(http.StatusOK)
	})
	return r
}

func TestOptionalSessionMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		provider *stubProvider
		want     *models.Session
	}{
		{
			name:     "valid session is stored",
			provider: &stubProvider{session: &models.Session{Username: "alice", Role: "admin"}},
			want:     &models.Session{Username: "alice", Role: "admin"},
		},
		{
			name:     "anonymous request passes through",
			provider: &stubProvider{err: models.ErrUnauthenticated},
		},
		{
			name:     "invalid token passes through anonymously",
			provider: &stubProvider{err: models.ErrInvalidToken},
		},
		{
			name:     "malformed session falls back to anonymous",
			provider: &stubProvider{err: models.ErrMalformedSession},
		},
		{
			name:     "unexpected provider error passes through",
			provider: &stubProvider{err: errors.New("boom")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen *models.Session
			r := newRouter(tt.provider, &seen)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, 1, tt.provider.calls)
			assert.Equal(t, tt.want, seen)
		})
	}
}

func TestGetSessionFromContext(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		assert.Nil(t, GetSessionFromContext(c))
	})

	t.Run("wrong type", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Set(string(SessionContextKey), "alice")
		assert.Nil(t, GetSessionFromContext(c))
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("generates an id", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Len(t, w.Header().Get(RequestIDHeader), 36)
	})

	t.Run("propagates an incoming id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "req-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, "req-123", w.Header().Get(RequestIDHeader))
	})
}

func TestCORSAndSecurityMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORSMiddleware(), SecurityMiddleware(), MetricsMiddleware())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("preflight is answered", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/", nil))
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("security headers are set", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
		assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
		assert.Contains(t, w.Header().Get("Content-Security-Policy"), "default-src 'self'")
	})
}
