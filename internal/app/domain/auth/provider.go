package auth

import (
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-dashboard/internal/app/models"
	"github.com/FACorreiaa/go-dashboard/internal/pkg/cache"
)

// CookieName is the cookie the auth service stores its session token in.
const CookieName = "auth_token"

// SessionProvider resolves the current session of a request. Implementations
// return models.ErrUnauthenticated when the request carries no session.
type SessionProvider interface {
	Session(r *http.Request) (*models.Session, error)
}

var _ SessionProvider = (*JWTSessionProvider)(nil)

// JWTSessionProvider reads sessions from HS256 tokens signed with a secret
// shared with the auth service.
type JWTSessionProvider struct {
	jwt    *JWTService
	config JWTConfig
	cache  *cache.SessionCache
	logger *zap.Logger
}

func NewJWTSessionProvider(config JWTConfig, sessions *cache.SessionCache, logger *zap.Logger) *JWTSessionProvider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &JWTSessionProvider{
		jwt:    NewJWTService(),
		config: config,
		cache:  sessions,
		logger: logger,
	}
}

func (p *JWTSessionProvider) Session(r *http.Request) (*models.Session, error) {
	_, span := otel.Tracer("go-dashboard").Start(r.Context(), "SessionProvider.Session")
	defer span.End()

	token := TokenFromRequest(r)
	if token == "" {
		span.SetAttributes(attribute.Bool("session.present", false))
		return nil, models.ErrUnauthenticated
	}

	if p.cache != nil {
		if session, ok := p.cache.Get(token); ok {
			span.SetAttributes(attribute.Bool("session.present", true), attribute.Bool("cache.hit", true))
			return session, nil
		}
	}

	claims, err := p.jwt.ValidateToken(p.config, token)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid token")
		return nil, err
	}

	session, err := claims.Session()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "malformed session")
		return nil, err
	}

	if p.cache != nil {
		var expiresAt time.Time
		if claims.ExpiresAt != nil {
			expiresAt = claims.ExpiresAt.Time
		}
		p.cache.Set(token, *session, expiresAt)
	}

	span.SetAttributes(attribute.Bool("session.present", true), attribute.Bool("cache.hit", false))
	return session, nil
}

// Forget drops any memoized session for the request's token.
func (p *JWTSessionProvider) Forget(r *http.Request) {
	if p.cache == nil {
		return
	}
	if token := TokenFromRequest(r); token != "" {
		p.cache.Delete(token)
	}
}

// TokenFromRequest checks the cookie first, then the Authorization header.
func TokenFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie(CookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			return strings.TrimSpace(parts[1])
		}
	}

	return ""
}
