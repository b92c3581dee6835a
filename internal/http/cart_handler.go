package http

import (
	"encoding/json"
	"net/http"

	"github.com/Hponky/shopping-kart/internal/cart"
	"github.com/Hponky/shopping-kart/internal/domain"
)

type CartHandler struct {
	store cart.Store
}

func NewCartHandler(store cart.Store) *CartHandler {
	return &CartHandler{store: store}
}

type UpdateQuantityRequestDTO struct {
	ProductID *int64 `json:"productId"`
	Quantity  *int   `json:"quantity"`
}

type DeleteItemRequestDTO struct {
	ProductID *int64 `json:"productId"`
	ClearAll  bool   `json:"clearAll"`
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.store.Get())
}

func (h *CartHandler) AddProduct(w http.ResponseWriter, r *http.Request) {
	var product domain.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	// Validate request
	if product.ID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product id must be positive")
		return
	}
	if product.Price < 0 {
		respondError(w, http.StatusBadRequest, "invalid_price", "product price must not be negative")
		return
	}

	updated, err := h.store.AddProduct(product)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to add product to cart")
		return
	}

	respondJSON(w, http.StatusCreated, updated)
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	var req UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	// Both fields must be present; quantity <= 0 is a valid removal request
	if req.ProductID == nil || req.Quantity == nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "productId and quantity are required")
		return
	}
	if *req.ProductID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "productId must be a positive integer")
		return
	}

	updated, err := h.store.UpdateQuantity(*req.ProductID, *req.Quantity)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to update quantity")
		return
	}

	respondJSON(w, http.StatusOK, updated)
}

func (h *CartHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	var req DeleteItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if req.ClearAll {
		cleared, err := h.store.Clear()
		if err != nil {
			respondError(w, http.StatusInternalServerError, "internal_error", "failed to clear cart")
			return
		}
		respondJSON(w, http.StatusOK, cleared)
		return
	}

	if req.ProductID == nil || *req.ProductID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "productId must be a positive integer")
		return
	}

	updated, err := h.store.RemoveProduct(*req.ProductID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to remove product")
		return
	}

	respondJSON(w, http.StatusOK, updated)
}
