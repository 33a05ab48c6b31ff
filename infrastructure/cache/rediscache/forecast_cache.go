package rediscache

import (
	"context"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"

	"github.com/sustain-inventory/inventory-api/internal/config"
	"github.com/sustain-inventory/inventory-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ForecastCache guarda previsões serializadas em JSON no Redis
type ForecastCache struct {
	client redis.UniversalClient
}

func NewForecastCache(cfg *config.Config) *ForecastCache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	return &ForecastCache{client: rdb}
}

// NewForecastCacheWithClient usa um cliente já configurado (cluster, sentinel, testes)
func NewForecastCacheWithClient(client redis.UniversalClient) *ForecastCache {
	return &ForecastCache{client: client}
}

func (c *ForecastCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Get devolve nil, nil quando a chave não existe ou expirou
func (c *ForecastCache) Get(ctx context.Context, key string) (*domain.ForecastResult, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}

	var result domain.ForecastResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("previsão em cache corrompida: %w", err)
	}
	result = result.WithDefaults()
	return &result, nil
}

func (c *ForecastCache) Set(ctx context.Context, key string, result domain.ForecastResult, ttl time.Duration) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (c *ForecastCache) Close() error {
	return c.client.Close()
}
