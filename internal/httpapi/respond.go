package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/sojibhasan5800/flipcart-storefront/internal/cart"
	"github.com/sojibhasan5800/flipcart-storefront/internal/checkout"
	"github.com/sojibhasan5800/flipcart-storefront/internal/gateway"
)

type ErrorResponse struct {
	Error   string            `json:"error"`
	Code    string            `json:"code,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
	OrderID int64             `json:"order_id,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{Error: message, Code: code})
}

// handleCoreError maps cart/checkout/gateway failures onto HTTP
// responses. Payment-session failures carry the created order id so
// the shopper is not told the order failed outright.
func handleCoreError(w http.ResponseWriter, err error) {
	var validation checkout.ValidationErrors
	if errors.As(err, &validation) {
		respondJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Error:  "billing information is invalid",
			Code:   "validation_failed",
			Fields: validation,
		})
		return
	}

	var sessionErr *checkout.PaymentSessionError
	if errors.As(err, &sessionErr) {
		respondJSON(w, http.StatusBadGateway, ErrorResponse{
			Error:   "your order was placed but the payment provider could not be reached",
			Code:    "payment_session_failed",
			OrderID: sessionErr.Order.ID,
		})
		return
	}

	switch {
	case errors.Is(err, checkout.ErrEmptyCart):
		respondError(w, http.StatusConflict, "empty_cart", "cart is empty")
	case errors.Is(err, checkout.ErrSubmitInFlight):
		respondError(w, http.StatusConflict, "submit_in_flight", "a submission is already in progress")
	case errors.Is(err, checkout.ErrIllegalTransition):
		respondError(w, http.StatusConflict, "illegal_state", "checkout is not in a submittable state")
	case errors.Is(err, cart.ErrInvalidQuantity):
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be at least 1")
	case gateway.IsGatewayError(err):
		respondError(w, http.StatusBadGateway, "backend_unavailable", "the store backend did not respond")
	default:
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
