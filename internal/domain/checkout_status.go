package domain

type CheckoutStatus string

const (
	CheckoutStatusEditing          CheckoutStatus = "EDITING"
	CheckoutStatusSubmitting       CheckoutStatus = "SUBMITTING"
	CheckoutStatusAwaitingRedirect CheckoutStatus = "AWAITING_PAYMENT_REDIRECT"
	CheckoutStatusCompleted        CheckoutStatus = "COMPLETED"
	CheckoutStatusFailed           CheckoutStatus = "FAILED"
)

// legal transitions of the checkout state machine
var checkoutTransitions = map[CheckoutStatus][]CheckoutStatus{
	CheckoutStatusEditing:          {CheckoutStatusSubmitting},
	CheckoutStatusSubmitting:       {CheckoutStatusAwaitingRedirect, CheckoutStatusFailed},
	CheckoutStatusAwaitingRedirect: {CheckoutStatusCompleted},
	CheckoutStatusFailed:           {CheckoutStatusEditing},
}

func CanTransitionTo(from, to CheckoutStatus) bool {
	for _, next := range checkoutTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func (s CheckoutStatus) IsTerminal() bool {
	return s == CheckoutStatusCompleted
}

// String representation (for logging)
func (s CheckoutStatus) String() string {
	return string(s)
}
