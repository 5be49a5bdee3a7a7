package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sojibhasan5800/flipcart-storefront/internal/domain"
)

// CartGateway talks to the backend cart resource. It holds no state and
// applies no retry or caching of its own.
type CartGateway struct {
	client *Client
}

func NewCartGateway(client *Client) *CartGateway {
	return &CartGateway{client: client}
}

// FetchLines returns the ordered line list for the given cart identity.
func (g *CartGateway) FetchLines(ctx context.Context, cartID string) ([]domain.CartLine, error) {
	query := url.Values{"id": {cartID}}
	var lines []domain.CartLine
	if err := g.client.Do(ctx, "fetch cart lines", http.MethodGet, "/carts/", query, nil, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// AddLine creates a new cart line. Variation selections ride along as
// flat fields of the payload, matching the backend's contract.
func (g *CartGateway) AddLine(ctx context.Context, cartID string, productID int64, quantity int, variations map[string]string) error {
	payload := map[string]any{
		"cart_id":    cartID,
		"product_id": productID,
		"quantity":   quantity,
	}
	for category, value := range variations {
		payload[category] = value
	}
	return g.client.Do(ctx, "add cart line", http.MethodPost, "/carts/", nil, payload, nil)
}

func (g *CartGateway) UpdateLine(ctx context.Context, lineID int64, quantity int) error {
	payload := map[string]any{"quantity": quantity}
	path := fmt.Sprintf("/carts/%d/", lineID)
	return g.client.Do(ctx, "update cart line", http.MethodPut, path, nil, payload, nil)
}

func (g *CartGateway) DeleteLine(ctx context.Context, lineID int64) error {
	path := fmt.Sprintf("/carts/%d/", lineID)
	return g.client.Do(ctx, "delete cart line", http.MethodDelete, path, nil, nil, nil)
}
