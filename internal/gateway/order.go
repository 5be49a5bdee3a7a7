package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sojibhasan5800/flipcart-storefront/internal/domain"
)

// OrderGateway talks to the backend order resource and the per-provider
// payment-session endpoints.
type OrderGateway struct {
	client *Client
}

func NewOrderGateway(client *Client) *OrderGateway {
	return &OrderGateway{client: client}
}

// OrderRequest is the order-creation payload: billing fields plus the
// totals priced at the moment of submission.
type OrderRequest struct {
	domain.BillingInformation
	OrderTotal float64 `json:"order_total"`
	Discount   float64 `json:"tax"`
}

func (g *OrderGateway) CreateOrder(ctx context.Context, req OrderRequest) (domain.Order, error) {
	var order domain.Order
	if err := g.client.Do(ctx, "create order", http.MethodPost, "/orders/place-order/", nil, req, &order); err != nil {
		return domain.Order{}, err
	}
	return order, nil
}

func (g *OrderGateway) GetOrder(ctx context.Context, orderID int64) (domain.Order, error) {
	var order domain.Order
	path := fmt.Sprintf("/orders/orders/%d/", orderID)
	if err := g.client.Do(ctx, "get order", http.MethodGet, path, nil, nil, &order); err != nil {
		return domain.Order{}, err
	}
	return order, nil
}

// CreatePaymentSession is the single dispatch point for provider
// session creation. Each provider has its own call and response shape;
// both resolve to an opaque redirect target.
func (g *OrderGateway) CreatePaymentSession(ctx context.Context, order domain.Order, method domain.PaymentMethod) (domain.PaymentSession, error) {
	switch method {
	case domain.PaymentMethodStripe:
		return g.createStripeSession(ctx, order)
	case domain.PaymentMethodSSL:
		return g.createSSLSession(ctx, order)
	default:
		return domain.PaymentSession{}, &Error{
			Op:  "create payment session",
			Err: fmt.Errorf("unknown payment method %q", method),
		}
	}
}

type stripeSessionResponse struct {
	CheckoutURL string `json:"checkout_url"`
}

func (g *OrderGateway) createStripeSession(ctx context.Context, order domain.Order) (domain.PaymentSession, error) {
	query := url.Values{"order_id": {strconv.FormatInt(order.ID, 10)}}
	var resp stripeSessionResponse
	if err := g.client.Do(ctx, "create stripe session", http.MethodPost, "/orders/stripe/create-session/", query, nil, &resp); err != nil {
		return domain.PaymentSession{}, err
	}
	return domain.PaymentSession{Provider: domain.PaymentMethodStripe, RedirectURL: resp.CheckoutURL}, nil
}

type sslSessionRequest struct {
	OrderID int64   `json:"order_id"`
	Amount  float64 `json:"amount"`
}

type sslSessionResponse struct {
	GatewayURL string `json:"gateway_url"`
}

func (g *OrderGateway) createSSLSession(ctx context.Context, order domain.Order) (domain.PaymentSession, error) {
	payload := sslSessionRequest{OrderID: order.ID, Amount: order.OrderTotal}
	var resp sslSessionResponse
	if err := g.client.Do(ctx, "create ssl session", http.MethodPost, "/orders/ssl-payment/", nil, payload, &resp); err != nil {
		return domain.PaymentSession{}, err
	}
	return domain.PaymentSession{Provider: domain.PaymentMethodSSL, RedirectURL: resp.GatewayURL}, nil
}

// PaymentMethodInfo mirrors the backend's payment method listing.
type PaymentMethodInfo struct {
	Tag   string `json:"tag"`
	Label string `json:"label"`
}

func (g *OrderGateway) PaymentMethods(ctx context.Context) ([]PaymentMethodInfo, error) {
	var methods []PaymentMethodInfo
	if err := g.client.Do(ctx, "list payment methods", http.MethodGet, "/orders/payments/", nil, nil, &methods); err != nil {
		return nil, err
	}
	return methods, nil
}
