package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-dashboard/internal/app/models"
	"github.com/FACorreiaa/go-dashboard/internal/pkg/cache"
)

func setupAuthRouter(t *testing.T) (*gin.Engine, *cache.SessionCache) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sessions := cache.NewSessionCache(time.Minute, nil)
	provider := NewJWTSessionProvider(testJWTConfig(), sessions, nil)
	h := NewHandlers(provider, HandlerConfig{JWT: testJWTConfig(), LogoutRedirectPath: "/dashboard"}, zap.NewNop())

	r := gin.New()
	r.POST("/auth/logout", h.Logout)
	r.POST("/api/auth/token", h.IssueToken)
	r.GET("/api/auth/session", h.CurrentSession)
	return r, sessions
}

func findCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestHandlers_Logout(t *testing.T) {
	t.Run("browser request is redirected and the cookie expired", func(t *testing.T) {
		r, _ := setupAuthRouter(t)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/auth/logout", nil))

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/dashboard", w.Header().Get("Location"))

		cookie := findCookie(w.Result().Cookies(), CookieName)
		require.NotNil(t, cookie)
		assert.Empty(t, cookie.Value)
		assert.True(t, cookie.MaxAge < 0)
	})

	t.Run("htmx request gets HX-Redirect", func(t *testing.T) {
		r, _ := setupAuthRouter(t)
		req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
		req.Header.Set("HX-Request", "true")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "/dashboard", w.Header().Get("HX-Redirect"))
	})

	t.Run("cached session is forgotten", func(t *testing.T) {
		r, sessions := setupAuthRouter(t)
		token := validToken(t, models.Session{Username: "alice", Role: "admin"})
		sessions.Set(token, models.Session{Username: "alice", Role: "admin"}, time.Time{})

		req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
		r.ServeHTTP(httptest.NewRecorder(), req)

		_, ok := sessions.Get(token)
		assert.False(t, ok)
	})
}

func TestHandlers_IssueTokenAndCurrentSession(t *testing.T) {
	r, _ := setupAuthRouter(t)

	body, _ := json.Marshal(map[string]string{"username": "alice", "role": "admin"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/auth/token", bytes.NewReader(body)))
	require.Equal(t, http.StatusOK, w.Code)

	var resp IssueTokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, "admin", resp.Role)
	assert.Equal(t, time.Hour.String(), resp.ExpiresIn)

	cookie := findCookie(w.Result().Cookies(), CookieName)
	require.NotNil(t, cookie)
	assert.Equal(t, resp.Token, cookie.Value)
	assert.True(t, cookie.HttpOnly)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
	req.AddCookie(cookie)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "alice", got["username"])
	assert.Equal(t, "admin", got["role"])
}

func TestHandlers_IssueToken_RequiresRole(t *testing.T) {
	r, _ := setupAuthRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/auth/token", bytes.NewReader([]byte(`{"username":"alice"}`))))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandlers_CurrentSession_Anonymous(t *testing.T) {
	r, _ := setupAuthRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/auth/session", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
