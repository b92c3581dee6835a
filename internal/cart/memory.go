package cart

import (
	"sync"

	"github.com/Hponky/shopping-kart/internal/domain"
)

// MemoryStore implements Store with in-memory storage. There is exactly
// one cart per process; all mutation is serialized under the mutex so
// the uniqueness and quantity invariants hold under concurrent requests.
type MemoryStore struct {
	mu   sync.RWMutex
	cart domain.Cart
}

// NewMemoryStore creates an empty in-memory cart store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		cart: domain.Cart{Items: []domain.CartItem{}},
	}
}

// Get returns a snapshot of the current cart. The items slice is copied
// so callers never alias the live cart.
func (s *MemoryStore) Get() domain.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot()
}

func (s *MemoryStore) AddProduct(product domain.Product) (domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart.Items {
		if s.cart.Items[i].Product.ID == product.ID {
			s.cart.Items[i].Quantity++
			return s.snapshot(), nil
		}
	}

	s.cart.Items = append(s.cart.Items, domain.CartItem{
		Product:  product,
		Quantity: 1,
	})
	return s.snapshot(), nil
}

func (s *MemoryStore) UpdateQuantity(productID int64, quantity int) (domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart.Items {
		if s.cart.Items[i].Product.ID != productID {
			continue
		}
		if quantity <= 0 {
			s.cart.Items = append(s.cart.Items[:i], s.cart.Items[i+1:]...)
		} else {
			s.cart.Items[i].Quantity = quantity
		}
		break
	}
	return s.snapshot(), nil
}

func (s *MemoryStore) RemoveProduct(productID int64) (domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.cart.Items {
		if item.Product.ID == productID {
			s.cart.Items = append(s.cart.Items[:i], s.cart.Items[i+1:]...)
			break
		}
	}
	return s.snapshot(), nil
}

func (s *MemoryStore) Clear() (domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.Items = s.cart.Items[:0]
	return s.snapshot(), nil
}

// snapshot copies the items slice; callers must hold at least a read lock
func (s *MemoryStore) snapshot() domain.Cart {
	items := make([]domain.CartItem, len(s.cart.Items))
	copy(items, s.cart.Items)
	return domain.Cart{Items: items}
}
