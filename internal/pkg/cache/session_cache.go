package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"sync/atomic"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-dashboard/internal/app/models"
)

// CacheMetrics tracks cache performance
type CacheMetrics struct {
	Hits   int64
	Misses int64
	Sets   int64
}

// SessionCache memoizes sessions resolved from bearer tokens. Entries never
// outlive the token they were derived from.
type SessionCache struct {
	store  *gocache.Cache
	maxTTL time.Duration
	name   string
	logger *zap.Logger

	hits   atomic.Int64
	misses atomic.Int64
	sets   atomic.Int64
}

// NewSessionCache creates a cache whose entries live at most maxTTL.
func NewSessionCache(maxTTL time.Duration, logger *zap.Logger) *SessionCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionCache{
		store:  gocache.New(maxTTL, 2*maxTTL),
		maxTTL: maxTTL,
		name:   "sessions",
		logger: logger,
	}
}

// Set stores a session for token until expiresAt, capped at the cache max TTL.
// Already-expired entries are not stored.
func (c *SessionCache) Set(token string, session models.Session, expiresAt time.Time) {
	ttl := c.maxTTL
	if !expiresAt.IsZero() {
		if remaining := time.Until(expiresAt); remaining < ttl {
			ttl = remaining
		}
	}
	if ttl <= 0 {
		return
	}

	c.store.Set(key(token), session, ttl)
	c.sets.Add(1)
	c.logger.Debug("Cache set",
		zap.String("cache", c.name),
		zap.Duration("ttl", ttl),
	)
}

// Get returns a copy of the cached session for token.
func (c *SessionCache) Get(token string) (*models.Session, bool) {
	v, found := c.store.Get(key(token))
	if !found {
		c.misses.Add(1)
		return nil, false
	}
	session, ok := v.(models.Session)
	if !ok {
		c.misses.Add(1)
		return nil, false
	}
	c.hits.Add(1)
	return &session, true
}

// Delete drops the entry for token, e.g. on logout.
func (c *SessionCache) Delete(token string) {
	c.store.Delete(key(token))
	c.logger.Debug("Cache delete", zap.String("cache", c.name))
}

// Len returns the number of stored entries, including expired ones not yet evicted.
func (c *SessionCache) Len() int {
	return c.store.ItemCount()
}

// GetMetrics returns a snapshot of the hit/miss counters.
func (c *SessionCache) GetMetrics() CacheMetrics {
	return CacheMetrics{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Sets:   c.sets.Load(),
	}
}

func key(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
