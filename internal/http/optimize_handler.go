package http

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/Hponky/shopping-kart/internal/domain"
	"github.com/Hponky/shopping-kart/internal/service"
)

type OptimizeHandler struct {
	service *service.OptimizerService
	timeout time.Duration
}

func NewOptimizeHandler(svc *service.OptimizerService, timeout time.Duration) *OptimizeHandler {
	return &OptimizeHandler{
		service: svc,
		timeout: timeout,
	}
}

type OptimizeRequestDTO struct {
	Budget *float64 `json:"budget"`
}

type AppliedItemDTO struct {
	ProductID int64  `json:"productId"`
	Name      string `json:"name"`
	Added     bool   `json:"added"`
	Error     string `json:"error,omitempty"`
}

type OptimizeResponseDTO struct {
	Result  domain.OptimizationResult `json:"result"`
	Applied []AppliedItemDTO          `json:"applied"`
}

func (h *OptimizeHandler) Optimize(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req OptimizeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Budget == nil {
		respondError(w, http.StatusBadRequest, "invalid_budget", "budget is required")
		return
	}

	result, outcomes, err := h.service.OptimizeAndApply(ctx, *req.Budget)
	if err != nil {
		handleOptimizeError(w, r.Context(), err)
		return
	}

	applied := make([]AppliedItemDTO, len(outcomes))
	for i, o := range outcomes {
		applied[i] = AppliedItemDTO{
			ProductID: o.Product.ID,
			Name:      o.Product.Name,
			Added:     o.Err == nil,
		}
		if o.Err != nil {
			applied[i].Error = o.Err.Error()
		}
	}

	respondJSON(w, http.StatusOK, OptimizeResponseDTO{
		Result:  *result,
		Applied: applied,
	})
}

func handleOptimizeError(w http.ResponseWriter, ctx context.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidBudget):
		respondError(w, http.StatusBadRequest, "invalid_budget", err.Error())
	case errors.Is(err, service.ErrNoAffordableProducts):
		respondError(w, http.StatusUnprocessableEntity, "no_affordable_products", err.Error())
	case errors.Is(err, service.ErrNoViableCombination):
		respondError(w, http.StatusUnprocessableEntity, "no_viable_combination", err.Error())
	default:
		log.Printf("optimization failed (request %s): %v", getRequestID(ctx), err)
		respondError(w, http.StatusInternalServerError, "internal_error", "optimization failed")
	}
}
