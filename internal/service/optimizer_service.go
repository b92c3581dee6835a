package service

import (
	"context"
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"github.com/Hponky/shopping-kart/internal/cart"
	"github.com/Hponky/shopping-kart/internal/catalog"
	"github.com/Hponky/shopping-kart/internal/domain"
	"github.com/Hponky/shopping-kart/internal/events"
	"github.com/Hponky/shopping-kart/internal/optimizer"
	"github.com/google/uuid"
)

// DefaultGreedyThreshold caps the DP table size (candidates * budget
// units) before the orchestrator falls back to the greedy strategy.
const DefaultGreedyThreshold = 10_000_000

// ApplyOutcome records a single cart insertion attempt during
// optimization. Err is nil when the insertion succeeded.
type ApplyOutcome struct {
	Product domain.Product
	Err     error
}

// OptimizerService bridges a budget request to a consistent cart state:
// it runs the optimizer over the catalog and replaces the cart contents
// with the selection.
type OptimizerService struct {
	catalog   catalog.ProductCatalog
	store     cart.Store
	publisher events.Publisher // optional; nil disables event publishing
	threshold int

	mu sync.Mutex // serializes whole optimize runs
}

func NewOptimizerService(productCatalog catalog.ProductCatalog, store cart.Store, publisher events.Publisher) *OptimizerService {
	return &OptimizerService{
		catalog:   productCatalog,
		store:     store,
		publisher: publisher,
		threshold: DefaultGreedyThreshold,
	}
}

// OptimizeAndApply selects the best product combination for the budget
// and replaces the cart with it. Each insertion is attempted
// independently: a failure on one product is recorded in the returned
// outcomes but does not abort the remaining insertions, so the returned
// result reflects the intended selection, which can differ from the
// final cart when an insertion failed. Callers needing strict
// consistency must re-read the cart afterwards.
func (s *OptimizerService) OptimizeAndApply(ctx context.Context, budget float64) (*domain.OptimizationResult, []ApplyOutcome, error) {
	if budget <= 0 || math.IsNaN(budget) || math.IsInf(budget, 0) {
		return nil, nil, ErrInvalidBudget
	}

	allProducts, err := s.catalog.ListAll(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list products: %w", err)
	}

	candidates := make([]domain.Product, 0, len(allProducts))
	for _, p := range allProducts {
		if p.InStock && p.Price <= budget {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		return nil, nil, ErrNoAffordableProducts
	}

	result := optimizer.Optimize(s.pickStrategy(len(candidates), budget), candidates, budget)
	if len(result.SelectedProducts) == 0 {
		return nil, nil, ErrNoViableCombination
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.store.Clear(); err != nil {
		return nil, nil, fmt.Errorf("failed to clear cart: %w", err)
	}

	outcomes := make([]ApplyOutcome, 0, len(result.SelectedProducts))
	for _, product := range result.SelectedProducts {
		_, errAdd := s.store.AddProduct(product)
		if errAdd != nil {
			// Continue with the next product rather than failing the batch
			log.Printf("failed to add product %d (%s) to cart: %v", product.ID, product.Name, errAdd)
		}
		outcomes = append(outcomes, ApplyOutcome{Product: product, Err: errAdd})
	}

	s.publishApplied(budget, result, outcomes)

	return &result, outcomes, nil
}

// pickStrategy keeps DP latency bounded: above the threshold the table
// would be too large, so the greedy approximation takes over. The
// comparison stays in float so huge budgets cannot wrap the product
// negative and sneak past the guard into the DP allocation.
func (s *OptimizerService) pickStrategy(candidates int, budget float64) optimizer.Strategy {
	if s.threshold > 0 && float64(candidates)*math.Floor(budget) > float64(s.threshold) {
		return optimizer.StrategyGreedy
	}
	return optimizer.StrategyKnapsack
}

func (s *OptimizerService) publishApplied(budget float64, result domain.OptimizationResult, outcomes []ApplyOutcome) {
	if s.publisher == nil {
		return
	}

	failed := 0
	for _, o := range outcomes {
		if o.Err != nil {
			failed++
		}
	}

	event := events.OptimizationApplied{
		EventID:         uuid.New().String(),
		Budget:          budget,
		TotalValue:      result.TotalValue,
		RemainingBudget: result.RemainingBudget,
		Products:        result.SelectedProducts,
		AppliedCount:    len(outcomes) - failed,
		FailedCount:     failed,
		CompletedAt:     time.Now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.publisher.PublishOptimizationApplied(ctx, event); err != nil {
		log.Printf("failed to publish optimization event: %v", err)
	}
}
