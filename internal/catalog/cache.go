package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/Hponky/shopping-kart/internal/domain"
	"github.com/redis/go-redis/v9"
)

var ErrCacheMiss = errors.New("cache miss")

const listingKey = "catalog:all"

// ListingCache caches the full product listing
type ListingCache interface {
	Get(ctx context.Context) ([]domain.Product, error)
	Set(ctx context.Context, products []domain.Product) error
	Delete(ctx context.Context) error
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{
		client:  client,
		baseTTL: 15 * time.Minute,
	}
}

type RedisCache struct {
	client  *redis.Client
	baseTTL time.Duration
}

func (r RedisCache) Get(ctx context.Context) ([]domain.Product, error) {
	data, err := r.client.Get(ctx, listingKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var products []domain.Product
	if err2 := json.Unmarshal(data, &products); err2 != nil {
		return nil, fmt.Errorf("unmarshal products failed: %w", err2)
	}

	return products, nil
}

func (r RedisCache) Set(ctx context.Context, products []domain.Product) error {
	data, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("marshal products failed: %w", err)
	}

	// Jitter the TTL so all gateway instances do not expire at once
	jitter := time.Duration(rand.Intn(5)) * time.Minute
	ttl := r.baseTTL + jitter
	if ret := r.client.Set(ctx, listingKey, data, ttl); ret.Err() != nil {
		return fmt.Errorf("redis set failed: %w", ret.Err())
	}
	return nil
}

func (r RedisCache) Delete(ctx context.Context) error {
	if err := r.client.Del(ctx, listingKey).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}
