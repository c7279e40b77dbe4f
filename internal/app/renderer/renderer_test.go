package renderer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer(t *testing.T) {
	t.Run("writes status, content type and body", func(t *testing.T) {
		w := httptest.NewRecorder()
		err := New(context.Background(), http.StatusTeapot, templ.Raw("<p>hi</p>")).Render(w)
		require.NoError(t, err)

		assert.Equal(t, http.StatusTeapot, w.Code)
		assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Equal(t, "<p>hi</p>", w.Body.String())
	})

	t.Run("nil component writes only headers", func(t *testing.T) {
		w := httptest.NewRecorder()
		require.NoError(t, New(context.Background(), http.StatusOK, nil).Render(w))
		assert.Empty(t, w.Body.String())
	})
}

func TestHTMLTemplRenderer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.HTMLRender = &HTMLTemplRenderer{FallbackHTMLRenderer: r.HTMLRender}
	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "", templ.Raw("<h1>ok</h1>"))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "<h1>ok</h1>", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
}
