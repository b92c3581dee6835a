package cart

import (
	"sync"
	"testing"

	"github.com/Hponky/shopping-kart/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id int64, price float64) domain.Product {
	return domain.Product{
		ID:      id,
		Name:    "product",
		Price:   price,
		InStock: true,
	}
}

func TestGet_EmptyStore(t *testing.T) {
	sut := NewMemoryStore()

	got := sut.Get()

	assert.NotNil(t, got.Items)
	assert.Empty(t, got.Items)
}

func TestAddProduct_NewItemAppendsWithQuantityOne(t *testing.T) {
	sut := NewMemoryStore()

	got, err := sut.AddProduct(product(1, 100))

	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, int64(1), got.Items[0].Product.ID)
	assert.Equal(t, 1, got.Items[0].Quantity)
}

func TestAddProduct_ExistingItemIncrementsQuantity(t *testing.T) {
	sut := NewMemoryStore()

	_, err := sut.AddProduct(product(1, 100))
	require.NoError(t, err)
	got, err := sut.AddProduct(product(1, 100))
	require.NoError(t, err)

	// One item with quantity 2, not two items
	require.Len(t, got.Items, 1)
	assert.Equal(t, 2, got.Items[0].Quantity)
}

func TestAddProduct_PreservesInsertionOrder(t *testing.T) {
	sut := NewMemoryStore()

	sut.AddProduct(product(3, 30))
	sut.AddProduct(product(1, 10))
	sut.AddProduct(product(2, 20))
	got, err := sut.AddProduct(product(1, 10))
	require.NoError(t, err)

	require.Len(t, got.Items, 3)
	assert.Equal(t, int64(3), got.Items[0].Product.ID)
	assert.Equal(t, int64(1), got.Items[1].Product.ID)
	assert.Equal(t, int64(2), got.Items[2].Product.ID)
}

func TestUpdateQuantity_SetsExactValue(t *testing.T) {
	sut := NewMemoryStore()
	sut.AddProduct(product(1, 100))
	sut.AddProduct(product(1, 100))

	got, err := sut.UpdateQuantity(1, 7)

	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, 7, got.Items[0].Quantity)
}

func TestUpdateQuantity_ZeroOrNegativeRemovesItem(t *testing.T) {
	for _, quantity := range []int{0, -1, -99} {
		sut := NewMemoryStore()
		sut.AddProduct(product(1, 100))
		sut.AddProduct(product(2, 200))

		got, err := sut.UpdateQuantity(1, quantity)

		require.NoError(t, err)
		require.Len(t, got.Items, 1)
		assert.Equal(t, int64(2), got.Items[0].Product.ID)
	}
}

func TestUpdateQuantity_UnknownProductIsNoOp(t *testing.T) {
	sut := NewMemoryStore()
	sut.AddProduct(product(1, 100))

	got, err := sut.UpdateQuantity(99, 5)

	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, 1, got.Items[0].Quantity)
}

func TestRemoveProduct_RemovesMatchingItem(t *testing.T) {
	sut := NewMemoryStore()
	sut.AddProduct(product(1, 100))
	sut.AddProduct(product(2, 200))

	got, err := sut.RemoveProduct(1)

	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, int64(2), got.Items[0].Product.ID)
}

func TestRemoveProduct_UnknownProductIsNoOp(t *testing.T) {
	sut := NewMemoryStore()
	sut.AddProduct(product(1, 100))

	got, err := sut.RemoveProduct(99)

	require.NoError(t, err)
	assert.Len(t, got.Items, 1)
}

func TestClear_EmptiesCartAndBehavesAsFresh(t *testing.T) {
	sut := NewMemoryStore()
	sut.AddProduct(product(1, 100))
	sut.AddProduct(product(2, 200))

	cleared, err := sut.Clear()
	require.NoError(t, err)
	assert.Empty(t, cleared.Items)
	assert.Empty(t, sut.Get().Items)

	// Subsequent adds behave as on a fresh cart
	got, err := sut.AddProduct(product(1, 100))
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, 1, got.Items[0].Quantity)
}

func TestGet_SnapshotDoesNotAliasLiveCart(t *testing.T) {
	sut := NewMemoryStore()
	sut.AddProduct(product(1, 100))

	snapshot := sut.Get()
	snapshot.Items[0].Quantity = 42

	assert.Equal(t, 1, sut.Get().Items[0].Quantity)
}

func TestConcurrentMutations_UniquenessHolds(t *testing.T) {
	sut := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sut.AddProduct(product(1, 100))
			sut.AddProduct(product(2, 200))
		}()
	}
	wg.Wait()

	got := sut.Get()
	require.Len(t, got.Items, 2)
	assert.Equal(t, 50, got.Items[0].Quantity)
	assert.Equal(t, 50, got.Items[1].Quantity)

	// No duplicate product ids after concurrent adds
	seen := map[int64]bool{}
	for _, item := range got.Items {
		assert.False(t, seen[item.Product.ID], "duplicate product id %d", item.Product.ID)
		seen[item.Product.ID] = true
		assert.GreaterOrEqual(t, item.Quantity, 1)
	}
}
