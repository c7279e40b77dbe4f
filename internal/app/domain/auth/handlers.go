package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-dashboard/internal/app/models"
	"github.com/FACorreiaa/go-dashboard/internal/app/observability/metrics"
)

// sessionForgetter is implemented by providers that memoize sessions.
type sessionForgetter interface {
	Forget(r *http.Request)
}

type HandlerConfig struct {
	JWT                JWTConfig
	CookieSecure       bool
	LogoutRedirectPath string
}

type Handlers struct {
	provider SessionProvider
	jwt      *JWTService
	cfg      HandlerConfig
	logger   *zap.Logger
}

func NewHandlers(provider SessionProvider, cfg HandlerConfig, logger *zap.Logger) *Handlers {
	if cfg.LogoutRedirectPath == "" {
		cfg.LogoutRedirectPath = "/"
	}
	return &Handlers{
		provider: provider,
		jwt:      NewJWTService(),
		cfg:      cfg,
		logger:   logger,
	}
}

// IssueTokenRequest represents the request body for development token generation
type IssueTokenRequest struct {
	Username string  `json:"username"`
	Role     *string `json:"role" binding:"required"`
}

// IssueTokenResponse represents the token response
type IssueTokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn string `json:"expires_in"`
	Username  string `json:"username"`
	Role      string `json:"role"`
}

// Logout clears the session cookie and sends the browser back to the dashboard.
func (h *Handlers) Logout(c *gin.Context) {
	h.logger.Info("User logout", zap.String("ip", c.ClientIP()))
	recordAuthRequest(c, "logout")

	if f, ok := h.provider.(sessionForgetter); ok {
		f.Forget(c.Request)
	}

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
	})

	redirect(c, h.cfg.LogoutRedirectPath)
}

// IssueToken mints a session token for local development, standing in for
// the auth service. Only routed when dev tokens are enabled.
func (h *Handlers) IssueToken(c *gin.Context) {
	recordAuthRequest(c, "token")

	var req IssueTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid token request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request. role is required"})
		return
	}

	session := models.Session{Username: req.Username, Role: *req.Role}
	token, err := h.jwt.GenerateToken(h.cfg.JWT, session)
	if err != nil {
		h.logger.Error("Failed to generate token", zap.String("username", req.Username), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		MaxAge:   int(h.cfg.JWT.TokenExpiration.Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
	})

	h.logger.Info("Development token issued",
		zap.String("username", session.Username),
		zap.String("role", session.Role))

	c.JSON(http.StatusOK, IssueTokenResponse{
		Token:     token,
		ExpiresIn: h.cfg.JWT.TokenExpiration.String(),
		Username:  session.Username,
		Role:      session.Role,
	})
}

// CurrentSession returns the caller's session as JSON.
func (h *Handlers) CurrentSession(c *gin.Context) {
	session, err := h.provider.Session(c.Request)
	if err != nil {
		if !errors.Is(err, models.ErrUnauthenticated) {
			h.logger.Debug("Session rejected", zap.Error(err))
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"username":      session.Username,
		"role":          session.Role,
		"authenticated": true,
	})
}

// redirect handles redirects for both regular and HTMX requests
func redirect(c *gin.Context, url string) {
	if c.GetHeader("HX-Request") == "true" {
		c.Header("HX-Redirect", url)
		c.Status(http.StatusOK)
		return
	}
	c.Redirect(http.StatusFound, url)
}

func recordAuthRequest(c *gin.Context, endpoint string) {
	metrics.Get().AuthRequestsTotal.Add(c.Request.Context(), 1,
		metric.WithAttributes(attribute.String("endpoint", endpoint)))
}
