package catalog_test

import (
	"context"
	"testing"
	"time"

	"github.com/Hponky/shopping-kart/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *catalog.Repository {
	// Use in-memory database for tests
	repo, err := catalog.NewRepository(":memory:")
	if err != nil {
		t.Fatalf("Failed to create test repository: %v", err)
	}

	// Run migrations
	if err := repo.RunMigrations("./migrations"); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return repo
}

func TestListAll_ReturnsSeededCatalog(t *testing.T) {
	repo := setupTestDB(t)
	defer repo.Close()

	products, err := repo.ListAll(context.Background())

	require.NoError(t, err)
	assert.Len(t, products, 8) // seed migration inserts 8 products

	// Listing is ordered by id
	for i := 1; i < len(products); i++ {
		assert.Less(t, products[i-1].ID, products[i].ID)
	}
}

func TestListAll_CarriesStockStatus(t *testing.T) {
	repo := setupTestDB(t)
	defer repo.Close()

	products, err := repo.ListAll(context.Background())
	require.NoError(t, err)

	outOfStock := 0
	for _, p := range products {
		if !p.InStock {
			outOfStock++
		}
	}
	assert.Equal(t, 1, outOfStock) // the seeded keyboard is out of stock
}

func TestListAll_CancelledContext(t *testing.T) {
	repo := setupTestDB(t)
	defer repo.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.ListAll(ctx)

	require.ErrorContains(t, err, "context canceled")
}

func TestListAll_WithContext(t *testing.T) {
	repo := setupTestDB(t)
	defer repo.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	products, err := repo.ListAll(ctx)

	require.NoError(t, err)
	assert.NotEmpty(t, products)
}

func TestGetProduct_ReturnsProduct(t *testing.T) {
	repo := setupTestDB(t)
	defer repo.Close()

	product, err := repo.GetProduct(context.Background(), 1)

	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Equal(t, int64(1), product.ID)
	assert.InDelta(t, 3499, product.Price, 0.0001)
	assert.True(t, product.InStock)
	t.Logf("Received product: %+v", *product)
}

func TestGetProduct_UnknownId_ReturnsNotFound(t *testing.T) {
	repo := setupTestDB(t)
	defer repo.Close()

	product, err := repo.GetProduct(context.Background(), -1)

	assert.Nil(t, product)
	assert.ErrorIs(t, err, catalog.ErrProductNotFound)
}
