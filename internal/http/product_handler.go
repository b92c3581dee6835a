package http

import (
	"context"
	"net/http"
	"time"

	"github.com/Hponky/shopping-kart/internal/catalog"
)

type ProductHandler struct {
	catalog catalog.ProductCatalog
	timeout time.Duration
}

func NewProductHandler(productCatalog catalog.ProductCatalog, timeout time.Duration) *ProductHandler {
	return &ProductHandler{
		catalog: productCatalog,
		timeout: timeout,
	}
}

func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	products, err := h.catalog.ListAll(ctx)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to list products")
		return
	}

	respondJSON(w, http.StatusOK, products)
}
