package optimizer

import (
	"sort"

	"github.com/Hponky/shopping-kart/internal/domain"
)

// FindBestCombinationGreedy is the approximate alternative to
// FindBestCombination for large catalogs: sort the in-stock, affordable
// products by price descending and accept while budget remains. It does
// not guarantee optimality and is never substituted for the exact DP
// without the caller opting in.
func FindBestCombinationGreedy(products []domain.Product, budget float64) domain.OptimizationResult {
	available := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if p.InStock && p.Price <= budget {
			available = append(available, p)
		}
	}
	sort.SliceStable(available, func(i, j int) bool {
		return available[i].Price > available[j].Price
	})

	selected := []domain.Product{}
	remaining := budget
	for _, p := range available {
		if p.Price <= remaining {
			selected = append(selected, p)
			remaining -= p.Price
		}
	}

	totalValue := sumPrices(selected)
	return domain.OptimizationResult{
		SelectedProducts: selected,
		TotalValue:       totalValue,
		RemainingBudget:  budget - totalValue,
	}
}
