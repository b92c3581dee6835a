package optimizer

import "github.com/Hponky/shopping-kart/internal/domain"

// Strategy names one of the two selection algorithms
type Strategy string

const (
	StrategyKnapsack Strategy = "knapsack"
	StrategyGreedy   Strategy = "greedy"
)

// Optimize dispatches to the named strategy. Unknown strategies fall
// through to the exact knapsack.
func Optimize(strategy Strategy, products []domain.Product, budget float64) domain.OptimizationResult {
	switch strategy {
	case StrategyGreedy:
		return FindBestCombinationGreedy(products, budget)
	default:
		return FindBestCombination(products, budget)
	}
}
