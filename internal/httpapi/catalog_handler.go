package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sojibhasan5800/flipcart-storefront/internal/catalog"
)

type CatalogHandler struct {
	catalog *catalog.Service
	timeout time.Duration
}

func NewCatalogHandler(svc *catalog.Service, timeout time.Duration) *CatalogHandler {
	return &CatalogHandler{catalog: svc, timeout: timeout}
}

// GET /api/products?page=&search=
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	search := r.URL.Query().Get("search")

	result, err := h.catalog.ListProducts(ctx, page, search)
	if err != nil {
		handleCoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// GET /api/products/{product_id}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	productID, err := strconv.ParseInt(chi.URLParam(r, "product_id"), 10, 64)
	if err != nil || productID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be a positive integer")
		return
	}

	product, err := h.catalog.GetProduct(ctx, productID)
	if err != nil {
		handleCoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, product)
}

// GET /api/products/{product_id}/reviews
func (h *CatalogHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	productID, err := strconv.ParseInt(chi.URLParam(r, "product_id"), 10, 64)
	if err != nil || productID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be a positive integer")
		return
	}

	reviews, err := h.catalog.ListReviews(ctx, productID)
	if err != nil {
		handleCoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, reviews)
}

type SubmitReviewRequestDTO struct {
	Subject string `json:"subject"`
	Review  string `json:"review"`
	Rating  int    `json:"rating"`
}

// POST /api/products/{product_id}/reviews
//
// Creates the review and responds with the refreshed review list, so
// the UI never needs a full reload to see it.
func (h *CatalogHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	productID, err := strconv.ParseInt(chi.URLParam(r, "product_id"), 10, 64)
	if err != nil || productID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be a positive integer")
		return
	}

	var req SubmitReviewRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		respondError(w, http.StatusBadRequest, "invalid_rating", "rating must be between 1 and 5")
		return
	}

	reviews, err := h.catalog.SubmitReview(ctx, productID, req.Subject, req.Review, req.Rating)
	if err != nil {
		handleCoreError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, reviews)
}
