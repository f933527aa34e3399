package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/rueidis"
	"go.uber.org/zap"
)

const keyPrefix = "graphdex:resp_cache:"

// defaultTTL applies when the config does not set one.
const defaultTTL = 5 * time.Minute

// Config holds connection parameters for the response cache.
type Config struct {
	Addrs    []string
	Password string
	TTL      time.Duration
}

// Cache stores rendered API responses in Redis/Valkey for a fixed TTL. Cache
// failures are logged and treated as misses; the backend answer always wins.
type Cache struct {
	client     rueidis.Client
	ttl        time.Duration
	cacheTotal *prometheus.CounterVec
	log        *zap.Logger
}

// New connects to the cache backend.
// cacheTotal is a counter vec with label "result" ("hit"/"miss"), passed explicitly.
func New(cfg Config, cacheTotal *prometheus.CounterVec, log *zap.Logger) (*Cache, error) {
	if len(cfg.Addrs) == 0 {
		return nil, fmt.Errorf("addrs is required")
	}
	if log == nil {
		log = zap.NewNop()
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}

	client, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress:  cfg.Addrs,
		Password:     cfg.Password,
		DisableCache: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create cache client: %w", err)
	}

	return &Cache{client: client, ttl: ttl, cacheTotal: cacheTotal, log: log}, nil
}

// Key derives a stable cache key from the request line parts.
func Key(parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	return keyPrefix + hex.EncodeToString(h.Sum(nil))
}

// Get returns the cached payload for key, or false on a miss. Read failures
// count as misses.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	cmd := c.client.B().Get().Key(key).Build()
	data, err := c.client.Do(ctx, cmd).AsBytes()
	if err != nil {
		if !rueidis.IsRedisNil(err) {
			c.log.Warn("Failed to read response cache", zap.String("key", key), zap.Error(err))
		}
		c.incCache("miss")
		return nil, false
	}

	c.incCache("hit")
	return data, true
}

// Set stores payload under key for the configured TTL. Write failures are
// logged, never surfaced.
func (c *Cache) Set(ctx context.Context, key string, payload []byte) {
	cmd := c.client.B().Set().Key(key).Value(rueidis.BinaryString(payload)).Ex(c.ttl).Build()
	if err := c.client.Do(ctx, cmd).Error(); err != nil {
		c.log.Warn("Failed to write response cache", zap.String("key", key), zap.Error(err))
	}
}

// Close shuts down the cache client.
func (c *Cache) Close() {
	c.client.Close()
}

func (c *Cache) incCache(result string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(result).Inc()
	}
}
