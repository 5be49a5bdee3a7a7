package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sojibhasan5800/flipcart-storefront/internal/checkout"
	"github.com/sojibhasan5800/flipcart-storefront/internal/domain"
	"github.com/sojibhasan5800/flipcart-storefront/internal/identity"
	"github.com/sojibhasan5800/flipcart-storefront/internal/pricing"
)

type CartHandler struct {
	identities  *identity.Manager
	coordinator *checkout.Coordinator
	timeout     time.Duration
}

func NewCartHandler(identities *identity.Manager, coordinator *checkout.Coordinator, timeout time.Duration) *CartHandler {
	return &CartHandler{
		identities:  identities,
		coordinator: coordinator,
		timeout:     timeout,
	}
}

type AddItemRequestDTO struct {
	ProductID  int64             `json:"product_id"`
	Quantity   int               `json:"quantity"`
	Variations map[string]string `json:"variations"`
}

type UpdateQuantityRequestDTO struct {
	Quantity int `json:"quantity"`
}

// CartViewDTO is the cart as the UI renders it: the authoritative
// lines plus totals derived through the one pricing policy.
type CartViewDTO struct {
	Lines   []domain.CartLine    `json:"lines"`
	Count   int                  `json:"count"`
	Summary domain.PricedSummary `json:"summary"`
}

// session resolves the durable cart identity for this browser session
// and returns its cart store / orchestrator pair.
func (h *CartHandler) session(ctx context.Context, w http.ResponseWriter) (*checkout.Session, bool) {
	cartID, err := h.identities.EnsureIdentity(ctx, sessionKeyFromContext(ctx))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "identity_unavailable", "could not resolve cart identity")
		return nil, false
	}
	return h.coordinator.Session(cartID), true
}

// GET /api/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	sess, ok := h.session(ctx, w)
	if !ok {
		return
	}
	if err := sess.Cart.Reload(ctx); err != nil {
		handleCoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, cartView(sess))
}

// POST /api/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ProductID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be positive")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	sess, ok := h.session(ctx, w)
	if !ok {
		return
	}
	if err := sess.Cart.AddItem(ctx, req.ProductID, req.Quantity, req.Variations); err != nil {
		handleCoreError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, cartView(sess))
}

// PUT /api/cart/items/{line_id}
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	lineID, err := strconv.ParseInt(chi.URLParam(r, "line_id"), 10, 64)
	if err != nil || lineID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_line_id", "line_id must be a positive integer")
		return
	}

	var req UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	sess, ok := h.session(ctx, w)
	if !ok {
		return
	}
	if err := sess.Cart.SetQuantity(ctx, lineID, req.Quantity); err != nil {
		handleCoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, cartView(sess))
}

// DELETE /api/cart/items/{line_id}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	lineID, err := strconv.ParseInt(chi.URLParam(r, "line_id"), 10, 64)
	if err != nil || lineID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_line_id", "line_id must be a positive integer")
		return
	}

	sess, ok := h.session(ctx, w)
	if !ok {
		return
	}
	if err := sess.Cart.RemoveItem(ctx, lineID); err != nil {
		handleCoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, cartView(sess))
}

func cartView(sess *checkout.Session) CartViewDTO {
	snapshot := sess.Cart.Snapshot()
	return CartViewDTO{
		Lines:   snapshot.Lines,
		Count:   snapshot.ItemCount(),
		Summary: pricing.Price(snapshot).Rounded(),
	}
}
