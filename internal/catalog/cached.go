package catalog

import (
	"context"
	"errors"
	"log"

	"github.com/Hponky/shopping-kart/internal/domain"
	"golang.org/x/sync/singleflight"
)

// CachedCatalog decorates a ProductCatalog with a listing cache.
type CachedCatalog struct {
	inner ProductCatalog
	cache ListingCache
	sfg   singleflight.Group // Prevents cache stampede
}

func NewCachedCatalog(inner ProductCatalog, cache ListingCache) *CachedCatalog {
	return &CachedCatalog{
		inner: inner,
		cache: cache,
	}
}

func (c *CachedCatalog) ListAll(ctx context.Context) ([]domain.Product, error) {
	// Use singleflight to prevent multiple concurrent cache misses
	v, err, _ := c.sfg.Do(listingKey, func() (interface{}, error) {
		products, err := c.cache.Get(ctx)
		if err == nil {
			return products, nil // listing is in cache
		}

		if !errors.Is(err, ErrCacheMiss) {
			log.Printf("cache get error: %v \n", err) // log cache error but continue
		}

		products, errList := c.inner.ListAll(ctx)
		if errList != nil {
			return nil, errList
		}

		// set cache
		go func() {
			if errSet := c.cache.Set(context.Background(), products); errSet != nil {
				log.Printf("cache set error: %v \n", errSet)
			}
		}()

		return products, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]domain.Product), nil
}

// GetProduct bypasses the listing cache; single-product reads go straight
// to the backing repository.
func (c *CachedCatalog) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	return c.inner.GetProduct(ctx, id)
}
