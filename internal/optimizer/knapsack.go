// Package optimizer selects the subset of catalog products that spends
// as much of a budget as possible. Each product's price acts as both the
// weight and the value of the 0/1 knapsack, so the objective is to get
// the cart total as close to the budget as it can go without exceeding it.
package optimizer

import (
	"math"

	"github.com/Hponky/shopping-kart/internal/domain"
)

// FindBestCombination runs the exact 0/1 knapsack dynamic program over
// the in-stock products. Prices and the budget are truncated to whole
// units before entering the table; this is a known approximation for
// fractional prices, kept because changing it changes which products
// get selected. TotalValue is summed over the real, non-truncated prices.
func FindBestCombination(products []domain.Product, budget float64) domain.OptimizationResult {
	available := filterInStock(products)

	capacity := int(math.Floor(budget))
	if len(available) == 0 || capacity <= 0 {
		return domain.OptimizationResult{
			SelectedProducts: []domain.Product{},
			TotalValue:       0,
			RemainingBudget:  budget,
		}
	}

	n := len(available)

	// dp[i][w] = best spend using the first i products with capacity w
	dp := make([][]int, n+1)
	for i := range dp {
		dp[i] = make([]int, capacity+1)
	}

	for i := 1; i <= n; i++ {
		price := int(math.Floor(available[i-1].Price))
		for w := 0; w <= capacity; w++ {
			dp[i][w] = dp[i-1][w]
			if price <= w {
				withProduct := dp[i-1][w-price] + price
				if withProduct > dp[i][w] {
					dp[i][w] = withProduct
				}
			}
		}
	}

	// Walk the table backward to recover the selection. When several
	// subsets tie, this scan keeps products later in the input list;
	// that order is deliberate and must stay stable across releases.
	selected := []domain.Product{}
	w := capacity
	for i := n; i > 0 && w > 0; i-- {
		if dp[i][w] != dp[i-1][w] {
			selected = append(selected, available[i-1])
			w -= int(math.Floor(available[i-1].Price))
		}
	}

	totalValue := sumPrices(selected)
	return domain.OptimizationResult{
		SelectedProducts: selected,
		TotalValue:       totalValue,
		RemainingBudget:  budget - totalValue,
	}
}

func filterInStock(products []domain.Product) []domain.Product {
	available := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if p.InStock {
			available = append(available, p)
		}
	}
	return available
}

func sumPrices(products []domain.Product) float64 {
	total := 0.0
	for _, p := range products {
		total += p.Price
	}
	return total
}
