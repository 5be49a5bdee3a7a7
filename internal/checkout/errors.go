package checkout

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sojibhasan5800/flipcart-storefront/internal/domain"
)

var (
	ErrEmptyCart         = errors.New("cart is empty, nothing to checkout")
	ErrIllegalTransition = errors.New("illegal transition of checkout status")
	ErrSubmitInFlight    = errors.New("a submission is already in flight")
)

// ValidationErrors maps billing form fields to their failure messages.
// Rejected before any gateway call is made.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	return fmt.Sprintf("invalid billing fields: %s", strings.Join(fields, ", "))
}

// PaymentSessionError reports that the order was created but the
// payment session was not. The order exists unpaid on the backend; the
// shopper must not be told the order failed outright.
type PaymentSessionError struct {
	Order domain.Order
	Err   error
}

func (e *PaymentSessionError) Error() string {
	return fmt.Sprintf("order %d created but payment session failed: %v", e.Order.ID, e.Err)
}

func (e *PaymentSessionError) Unwrap() error {
	return e.Err
}
