package domain

import (
	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-dashboard/internal/app/models"
	"github.com/FACorreiaa/go-dashboard/internal/app/pages"
	"github.com/FACorreiaa/go-dashboard/internal/app/renderer"
)

type BaseHandler struct {
	Logger *zap.Logger
}

func NewBaseHandler(logger *zap.Logger) *BaseHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BaseHandler{Logger: logger}
}

func (h *BaseHandler) newLayoutData(title, activeNav string, content templ.Component) models.LayoutTempl {
	return models.LayoutTempl{
		Title:     title,
		Content:   content,
		Nav:       models.MainNav,
		ActiveNav: activeNav,
	}
}

func (h *BaseHandler) Render(c *gin.Context, status int, component templ.Component) {
	c.Render(status, renderer.New(c.Request.Context(), status, component))
	if len(c.Errors) > 0 {
		h.Logger.Error("Failed to render component",
			zap.String("path", c.Request.URL.Path),
			zap.Error(c.Errors.Last()))
	}
}

// RenderPage renders the full layout, or only the content for HTMX requests
// that swap the main region.
func (h *BaseHandler) RenderPage(c *gin.Context, status int, title, activeNav string, content templ.Component) {
	if c.GetHeader("HX-Request") == "true" && c.GetHeader("HX-Boosted") != "true" {
		h.Render(c, status, content)
		return
	}
	h.Render(c, status, pages.LayoutPage(h.newLayoutData(title, activeNav, content)))
}
