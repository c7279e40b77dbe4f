package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-dashboard/internal/app/components/logout"
	"github.com/FACorreiaa/go-dashboard/internal/app/domain"
	"github.com/FACorreiaa/go-dashboard/internal/app/domain/auth"
	"github.com/FACorreiaa/go-dashboard/internal/app/domain/dashboard"
	"github.com/FACorreiaa/go-dashboard/internal/app/middleware"
	"github.com/FACorreiaa/go-dashboard/internal/app/renderer"
	"github.com/FACorreiaa/go-dashboard/internal/pkg/cache"
	"github.com/FACorreiaa/go-dashboard/internal/pkg/config"
)

const logoutPath = "/auth/logout"

type AppHandlers struct {
	Dashboard *dashboard.Handlers
	Auth      *auth.Handlers
	Sessions  auth.SessionProvider
}

func Setup(r *gin.Engine, cfg *config.Config, log *zap.Logger) {
	r.HTMLRender = &renderer.HTMLTemplRenderer{FallbackHTMLRenderer: r.HTMLRender}

	setupRouter(r, setupDependencies(cfg, log), cfg, log)
}

func setupDependencies(cfg *config.Config, log *zap.Logger) *AppHandlers {
	jwtConfig := auth.JWTConfig{
		SecretKey:       cfg.JWT.SecretKey,
		TokenExpiration: cfg.JWT.TokenExpiration,
		Logger:          log,
	}

	sessions := cache.NewSessionCache(5*time.Minute, log)
	provider := auth.NewJWTSessionProvider(jwtConfig, sessions, log)

	baseHandler := domain.NewBaseHandler(log)
	return &AppHandlers{
		Dashboard: dashboard.NewHandlers(baseHandler, dashboard.ViewConfig{
			LoginPath: cfg.Routes.LoginPath,
			Logout:    logout.Button(logoutPath),
		}),
		Auth: auth.NewHandlers(provider, auth.HandlerConfig{
			JWT:                jwtConfig,
			CookieSecure:       cfg.JWT.CookieSecure,
			LogoutRedirectPath: cfg.Routes.LogoutRedirectPath,
		}, log),
		Sessions: provider,
	}
}

func setupRouter(r *gin.Engine, h *AppHandlers, cfg *config.Config, log *zap.Logger) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	public := r.Group("/")
	public.Use(middleware.OptionalSessionMiddleware(h.Sessions, log))
	{
		public.GET("/", h.Dashboard.ShowDashboard)
		public.GET("/dashboard", h.Dashboard.ShowDashboard)
	}

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/logout", h.Auth.Logout)
	}

	if cfg.JWT.DevTokens {
		log.Warn("Development token endpoints enabled, do not use in production")
		api := r.Group("/api/auth")
		{
			api.POST("/token", h.Auth.IssueToken)
			api.GET("/session", h.Auth.CurrentSession)
		}
	}
}
