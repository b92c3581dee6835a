package cart

import (
	"github.com/Hponky/shopping-kart/internal/domain"
)

// Store defines the interface for cart state operations.
// Consumers define this interface, not the in-memory implementation.
// Mutators return an error so callers can tolerate per-item failures
// when a remote store backs the interface; the in-memory implementation
// never fails.
type Store interface {
	// Get returns a snapshot of the current cart
	Get() domain.Cart

	// AddProduct increments the quantity of an existing item by 1,
	// or appends a new item with quantity 1
	AddProduct(product domain.Product) (domain.Cart, error)

	// UpdateQuantity sets the quantity of an existing item.
	// Quantity <= 0 removes the item. Unknown product ids are a no-op.
	UpdateQuantity(productID int64, quantity int) (domain.Cart, error)

	// RemoveProduct removes the item for the given product id if present
	RemoveProduct(productID int64) (domain.Cart, error)

	// Clear empties the cart, keeping the same cart instance
	Clear() (domain.Cart, error)
}
