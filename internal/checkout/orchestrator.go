package checkout

import (
	"context"
	"log"
	"sync"

	"github.com/sojibhasan5800/flipcart-storefront/internal/domain"
	"github.com/sojibhasan5800/flipcart-storefront/internal/gateway"
	"github.com/sojibhasan5800/flipcart-storefront/internal/pricing"
)

// CartStore is the slice of the cart store the orchestrator drives.
type CartStore interface {
	Snapshot() domain.CartSnapshot
	Clear()
}

// OrderGateway creates orders and provider payment sessions.
type OrderGateway interface {
	CreateOrder(ctx context.Context, req gateway.OrderRequest) (domain.Order, error)
	CreatePaymentSession(ctx context.Context, order domain.Order, method domain.PaymentMethod) (domain.PaymentSession, error)
}

// Orchestrator drives one cart identity through
// EDITING -> SUBMITTING -> AWAITING_PAYMENT_REDIRECT -> COMPLETED.
// It is a single-writer construct: only one submission sequence may be
// in flight at a time.
type Orchestrator struct {
	cart   CartStore
	orders OrderGateway

	mu     sync.Mutex
	status domain.CheckoutStatus
	order  *domain.Order
	form   domain.BillingInformation // retained across failed attempts
}

func NewOrchestrator(cart CartStore, orders OrderGateway) *Orchestrator {
	return &Orchestrator{
		cart:   cart,
		orders: orders,
		status: domain.CheckoutStatusEditing,
	}
}

func (o *Orchestrator) Status() domain.CheckoutStatus {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.status
}

// Form returns the last billing input, so a failed attempt loses no
// entered data.
func (o *Orchestrator) Form() domain.BillingInformation {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.form
}

// Order returns the created order, if any.
func (o *Orchestrator) Order() (domain.Order, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.order == nil {
		return domain.Order{}, false
	}
	return *o.order, true
}

// Submit validates the billing form, creates the order from the cart
// priced at this moment, and requests the provider payment session.
// Guards reject an empty cart, invalid billing, and overlapping
// submissions before any gateway call is made. Exactly one order is
// created per successful submission.
func (o *Orchestrator) Submit(ctx context.Context, billing domain.BillingInformation) (domain.PaymentSession, error) {
	o.mu.Lock()
	if o.status != domain.CheckoutStatusEditing {
		o.mu.Unlock()
		return domain.PaymentSession{}, ErrSubmitInFlight
	}
	o.form = billing

	if errs := ValidateBilling(billing); errs != nil {
		o.mu.Unlock()
		return domain.PaymentSession{}, errs
	}

	// Price at the moment of submission, never a cached earlier value.
	snapshot := o.cart.Snapshot()
	if snapshot.IsEmpty() {
		o.mu.Unlock()
		return domain.PaymentSession{}, ErrEmptyCart
	}
	if err := o.transition(domain.CheckoutStatusSubmitting); err != nil {
		o.mu.Unlock()
		return domain.PaymentSession{}, err
	}
	o.mu.Unlock()

	summary := pricing.Price(snapshot).Rounded()
	order, err := o.orders.CreateOrder(ctx, gateway.OrderRequest{
		BillingInformation: billing,
		OrderTotal:         summary.GrandTotal,
		Discount:           summary.Discount,
	})
	if err != nil {
		log.Printf("checkout: order creation failed: %v", err)
		o.fail()
		return domain.PaymentSession{}, err
	}

	o.mu.Lock()
	o.order = &order
	if err := o.transition(domain.CheckoutStatusAwaitingRedirect); err != nil {
		o.mu.Unlock()
		return domain.PaymentSession{}, err
	}
	o.mu.Unlock()

	session, err := o.orders.CreatePaymentSession(ctx, order, billing.PaymentMethod)
	if err != nil {
		// The order exists unpaid; the backend reconciles it. Report
		// this distinctly so the shopper is not told the order failed.
		log.Printf("checkout: payment session failed for order %d: %v", order.ID, err)
		return domain.PaymentSession{}, &PaymentSessionError{Order: order, Err: err}
	}

	return session, nil
}

// CompletePayment confirms the shopper came back from the provider
// redirect. Only now is the cart cleared: an abandoned payment flow
// keeps its items.
func (o *Orchestrator) CompletePayment() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if err := o.transition(domain.CheckoutStatusCompleted); err != nil {
		return err
	}
	o.cart.Clear()
	return nil
}

// fail records an order-creation failure and returns to EDITING with
// the form intact so the shopper may retry.
func (o *Orchestrator) fail() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if err := o.transition(domain.CheckoutStatusFailed); err != nil {
		return
	}
	if err := o.transition(domain.CheckoutStatusEditing); err != nil {
		log.Printf("checkout: could not return to editing: %v", err)
	}
}

// transition moves the state machine, holding o.mu.
func (o *Orchestrator) transition(to domain.CheckoutStatus) error {
	if !domain.CanTransitionTo(o.status, to) {
		return ErrIllegalTransition
	}
	o.status = to
	return nil
}
