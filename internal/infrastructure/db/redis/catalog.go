package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/sistemasvip/client-portal/internal/core/domain"
)

const catalogKey = "catalog:services"

// CatalogCache is a read-through cache for the service catalog. Redis
// trouble degrades to a miss; the catalog is then served from the backend.
type CatalogCache struct {
	client *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

// NewCatalogCache creates a CatalogCache with the given TTL.
func NewCatalogCache(client *redis.Client, ttl time.Duration, log zerolog.Logger) *CatalogCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &CatalogCache{client: client, ttl: ttl, log: log}
}

func (c *CatalogCache) Get(ctx context.Context) ([]domain.Service, bool) {
	raw, err := c.client.Get(ctx, catalogKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Msg("catalog cache read failed")
		}
		return nil, false
	}

	var services []domain.Service
	if err := json.Unmarshal(raw, &services); err != nil {
		c.log.Warn().Err(err).Msg("catalog cache entry undecodable, dropping")
		_ = c.client.Del(ctx, catalogKey).Err()
		return nil, false
	}
	return services, true
}

func (c *CatalogCache) Set(ctx context.Context, services []domain.Service) {
	raw, err := json.Marshal(services)
	if err != nil {
		c.log.Warn().Err(err).Msg("catalog cache encode failed")
		return
	}
	if err := c.client.Set(ctx, catalogKey, raw, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Msg("catalog cache write failed")
	}
}
