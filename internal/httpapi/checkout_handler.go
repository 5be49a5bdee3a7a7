package httpapi

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/schema"
	"github.com/sojibhasan5800/flipcart-storefront/internal/auth"
	"github.com/sojibhasan5800/flipcart-storefront/internal/checkout"
	"github.com/sojibhasan5800/flipcart-storefront/internal/domain"
	"github.com/sojibhasan5800/flipcart-storefront/internal/gateway"
	"github.com/sojibhasan5800/flipcart-storefront/internal/identity"
	"github.com/sojibhasan5800/flipcart-storefront/internal/pricing"
)

var formDecoder = func() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}()

type CheckoutHandler struct {
	identities  *identity.Manager
	coordinator *checkout.Coordinator
	orders      *gateway.OrderGateway
	timeout     time.Duration
}

func NewCheckoutHandler(identities *identity.Manager, coordinator *checkout.Coordinator, orders *gateway.OrderGateway, timeout time.Duration) *CheckoutHandler {
	return &CheckoutHandler{
		identities:  identities,
		coordinator: coordinator,
		orders:      orders,
		timeout:     timeout,
	}
}

func (h *CheckoutHandler) session(ctx context.Context, w http.ResponseWriter) (*checkout.Session, bool) {
	cartID, err := h.identities.EnsureIdentity(ctx, sessionKeyFromContext(ctx))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "identity_unavailable", "could not resolve cart identity")
		return nil, false
	}
	return h.coordinator.Session(cartID), true
}

// CheckoutViewDTO backs the checkout page: the priced cart and a
// billing form prefilled from the shopper's profile where available.
type CheckoutViewDTO struct {
	Lines   []domain.CartLine         `json:"lines"`
	Summary domain.PricedSummary      `json:"summary"`
	Form    domain.BillingInformation `json:"form"`
	Status  string                    `json:"status"`
}

// GET /api/checkout
func (h *CheckoutHandler) GetCheckout(w http.ResponseWriter, r *http.Request) {
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

	snapshot := sess.Cart.Snapshot()
	form := sess.Orchestrator.Form()
	if form == (domain.BillingInformation{}) {
		form = auth.BillingDefaults(claimsFromContext(r.Context()))
	}

	respondJSON(w, http.StatusOK, CheckoutViewDTO{
		Lines:   snapshot.Lines,
		Summary: pricing.Price(snapshot).Rounded(),
		Form:    form,
		Status:  sess.Orchestrator.Status().String(),
	})
}

// GET /api/checkout/payment-methods
func (h *CheckoutHandler) PaymentMethods(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	methods, err := h.orders.PaymentMethods(ctx)
	if err != nil {
		handleCoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, methods)
}

// POST /checkout/submit
//
// Accepts the billing form, drives the order creation and payment
// session, and hands the browser off to the provider redirect target.
func (h *CheckoutHandler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := r.ParseForm(); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "could not parse form")
		return
	}
	var billing domain.BillingInformation
	if err := formDecoder.Decode(&billing, r.PostForm); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "could not decode billing form")
		return
	}

	sess, ok := h.session(ctx, w)
	if !ok {
		return
	}

	session, err := sess.Orchestrator.Submit(ctx, billing)
	if err != nil {
		handleCoreError(w, err)
		return
	}

	// Point of handoff: control leaves the application. The cart is
	// cleared only when the return callback confirms completion.
	http.Redirect(w, r, session.RedirectURL, http.StatusSeeOther)
}

// GET /checkout/return
//
// The payment provider sends the shopper back here after the redirect
// flow. Completing the orchestrator clears the cart.
func (h *CheckoutHandler) PaymentReturn(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	sess, ok := h.session(ctx, w)
	if !ok {
		return
	}
	if err := sess.Orchestrator.CompletePayment(); err != nil {
		handleCoreError(w, err)
		return
	}

	order, _ := sess.Orchestrator.Order()
	respondJSON(w, http.StatusOK, map[string]any{
		"status":   domain.CheckoutStatusCompleted.String(),
		"order_id": order.ID,
	})
}

// GET /api/orders/{order_id}
func (h *CheckoutHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	orderID, err := strconv.ParseInt(chi.URLParam(r, "order_id"), 10, 64)
	if err != nil || orderID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_order_id", "order_id must be a positive integer")
		return
	}

	order, err := h.orders.GetOrder(ctx, orderID)
	if err != nil {
		handleCoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, order)
}
