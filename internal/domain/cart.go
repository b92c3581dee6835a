package domain

type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

type Cart struct {
	Items []CartItem `json:"items"`
}

// OptimizationResult is the outcome of a single optimizer run. TotalValue
// sums the real (non-truncated) prices of the selected products.
type OptimizationResult struct {
	SelectedProducts []Product `json:"products"`
	TotalValue       float64   `json:"totalValue"`
	RemainingBudget  float64   `json:"remainingBudget"`
}

// QuantityOf returns the quantity of the given product in the cart,
// or 0 if the product is not present.
func QuantityOf(cart Cart, productID int64) int {
	for _, item := range cart.Items {
		if item.Product.ID == productID {
			return item.Quantity
		}
	}
	return 0
}

// Contains reports whether the cart holds an item for the given product.
func Contains(cart Cart, productID int64) bool {
	return QuantityOf(cart, productID) > 0
}

// ItemCount returns the sum of all quantities in the cart.
func ItemCount(cart Cart) int {
	count := 0
	for _, item := range cart.Items {
		count += item.Quantity
	}
	return count
}

// TotalPrice returns the sum of price * quantity over all items.
func TotalPrice(cart Cart) float64 {
	total := 0.0
	for _, item := range cart.Items {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}
