package domain

import "time"

// PaymentMethod tags which provider the shopper picked at checkout.
type PaymentMethod string

const (
	PaymentMethodStripe PaymentMethod = "stripe"
	PaymentMethodSSL    PaymentMethod = "sslcommerz"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentMethodStripe || m == PaymentMethodSSL
}

func (m PaymentMethod) String() string {
	return string(m)
}

// PaymentMethods is the closed set offered on the checkout page.
var PaymentMethods = []PaymentMethod{PaymentMethodStripe, PaymentMethodSSL}

// BillingInformation is the shopper-entered checkout form.
type BillingInformation struct {
	FirstName     string        `json:"first_name" schema:"first_name"`
	LastName      string        `json:"last_name" schema:"last_name"`
	Email         string        `json:"email" schema:"email"`
	Phone         string        `json:"phone" schema:"phone"`
	AddressLine1  string        `json:"address_line_1" schema:"address_line_1"`
	AddressLine2  string        `json:"address_line_2,omitempty" schema:"address_line_2"`
	City          string        `json:"city" schema:"city"`
	State         string        `json:"state" schema:"state"`
	Country       string        `json:"country" schema:"country"`
	OrderNote     string        `json:"order_note,omitempty" schema:"order_note"`
	PaymentMethod PaymentMethod `json:"payment_method" schema:"payment_method"`
}

// Order is the backend's record of a placed order. Immutable on the
// client once created.
type Order struct {
	ID         int64     `json:"id"`
	OrderTotal float64   `json:"order_total"`
	Discount   float64   `json:"tax"`
	Status     string    `json:"status,omitempty"`
	CreatedAt  time.Time `json:"created_at,omitempty"`
}

// PaymentSession is the provider redirect target for a created order.
// Ephemeral: not persisted beyond the handoff.
type PaymentSession struct {
	Provider    PaymentMethod `json:"provider"`
	RedirectURL string        `json:"redirect_url"`
}
