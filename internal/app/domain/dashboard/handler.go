package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-dashboard/internal/app/domain"
	"github.com/FACorreiaa/go-dashboard/internal/app/middleware"
	"github.com/FACorreiaa/go-dashboard/internal/app/models"
	"github.com/FACorreiaa/go-dashboard/internal/app/observability/metrics"
)

type Handlers struct {
	*domain.BaseHandler
	view ViewConfig
}

func NewHandlers(base *domain.BaseHandler, view ViewConfig) *Handlers {
	return &Handlers{BaseHandler: base, view: view}
}

func (h *Handlers) ShowDashboard(c *gin.Context) {
	session := middleware.GetSessionFromContext(c)
	state := models.ViewStateFor(session)

	h.Logger.Debug("Dashboard accessed", zap.String("view_state", string(state)))
	metrics.Get().DashboardRendersTotal.Add(c.Request.Context(), 1,
		metric.WithAttributes(attribute.String("view_state", string(state))))

	c.Header("Cache-Control", "no-store")
	c.Header("Vary", "Cookie")
	h.RenderPage(c, http.StatusOK, "Dashboard", "Dashboard", Dashboard(session, h.view))
}
