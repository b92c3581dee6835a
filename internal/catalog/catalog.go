package catalog

import (
	"context"
	"errors"

	"github.com/Hponky/shopping-kart/internal/domain"
)

var ErrProductNotFound = errors.New("product not found")

// ProductCatalog is the read-only product source consumed by the engine.
// The listing is a point-in-time read; no staleness guarantee is made.
type ProductCatalog interface {
	ListAll(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
}
