package events

import (
	"context"
	"time"

	"github.com/Hponky/shopping-kart/internal/domain"
)

// OptimizationApplied is emitted after an optimizer run has been applied
// to the cart, so downstream consumers (analytics, recommendations) can
// react without polling the cart endpoint.
type OptimizationApplied struct {
	EventID         string           `json:"eventId"`
	Budget          float64          `json:"budget"`
	TotalValue      float64          `json:"totalValue"`
	RemainingBudget float64          `json:"remainingBudget"`
	Products        []domain.Product `json:"products"`
	AppliedCount    int              `json:"appliedCount"`
	FailedCount     int              `json:"failedCount"`
	CompletedAt     time.Time        `json:"completedAt"`
}

// Publisher delivers optimization events. Delivery is best effort; the
// orchestrator logs failures and moves on.
type Publisher interface {
	PublishOptimizationApplied(ctx context.Context, event OptimizationApplied) error
	Close() error
}
