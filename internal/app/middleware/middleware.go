package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-dashboard/internal/app/domain/auth"
	"github.com/FACorreiaa/go-dashboard/internal/app/models"
)

type contextKey string

const SessionContextKey contextKey = "session"

const RequestIDHeader = "X-Request-Id"

// CORSMiddleware handles CORS headers
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With, HX-Request, HX-Target, HX-Current-URL")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// SecurityMiddleware adds security headers
func SecurityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("X-Content-Type-Options", "nosniff")
		c.Writer.Header().Set("X-Frame-Options", "DENY")
		c.Writer.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		csp := "default-src 'self'; " +
			"script-src 'self' https://unpkg.com; " +
			"style-src 'self' 'unsafe-inline'; " +
			"img-src 'self' data:; " +
			"connect-src 'self'"
		c.Writer.Header().Set("Content-Security-Policy", csp)

		c.Next()
	}
}

// RequestIDMiddleware propagates an incoming X-Request-Id or assigns a new one.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Next()
	}
}

// OptionalSessionMiddleware puts the caller's session in the context when
// there is a valid one. It never blocks the request.
func OptionalSessionMiddleware(provider auth.SessionProvider, logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(c *gin.Context) {
		session, err := provider.Session(c.Request)
		switch {
		case err == nil && session != nil:
			c.Set(string(SessionContextKey), session)
		case errors.Is(err, models.ErrUnauthenticated):
		default:
			logger.Debug("Ignoring session",
				zap.String("path", c.Request.URL.Path),
				zap.Error(err))
		}

		c.Next()
	}
}

// GetSessionFromContext returns the session set by OptionalSessionMiddleware,
// or nil for anonymous requests.
func GetSessionFromContext(c *gin.Context) *models.Session {
	v, exists := c.Get(string(SessionContextKey))
	if !exists {
		return nil
	}

	session, ok := v.(*models.Session)
	if !ok {
		return nil
	}

	return session
}
