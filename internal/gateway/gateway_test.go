package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sojibhasan5800/flipcart-storefront/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, 2*time.Second)
}

func TestFetchLines_Success(t *testing.T) {
	sut := NewCartGateway(newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/carts/", r.URL.Path)
		assert.Equal(t, "cart_abc", r.URL.Query().Get("id"))
		json.NewEncoder(w).Encode([]domain.CartLine{
			{ID: 1, ProductID: 42, Quantity: 2, Subtotal: 20.00},
		})
	}))

	lines, err := sut.FetchLines(context.Background(), "cart_abc")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, int64(42), lines[0].ProductID)
}

func TestFetchLines_BackendError(t *testing.T) {
	sut := NewCartGateway(newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := sut.FetchLines(context.Background(), "cart_abc")
	require.Error(t, err)

	var ge *Error
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, http.StatusInternalServerError, ge.StatusCode)
	assert.True(t, IsGatewayError(err))
}

func TestAddLine_FlattensVariations(t *testing.T) {
	var payload map[string]any
	sut := NewCartGateway(newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &payload))
		w.WriteHeader(http.StatusCreated)
	}))

	err := sut.AddLine(context.Background(), "cart_abc", 42, 2, map[string]string{"color": "red"})
	require.NoError(t, err)

	assert.Equal(t, float64(42), payload["product_id"])
	assert.Equal(t, float64(2), payload["quantity"])
	assert.Equal(t, "red", payload["color"], "variation rides as a flat field")
}

func TestUpdateAndDeleteLine_Paths(t *testing.T) {
	var gotMethod, gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		w.WriteHeader(http.StatusOK)
	})
	sut := NewCartGateway(client)

	require.NoError(t, sut.UpdateLine(context.Background(), 7, 3))
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/carts/7/", gotPath)

	require.NoError(t, sut.DeleteLine(context.Background(), 7))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/carts/7/", gotPath)
}

func TestCreateOrder_SendsPricedTotals(t *testing.T) {
	var payload map[string]any
	sut := NewOrderGateway(newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders/place-order/", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &payload))
		json.NewEncoder(w).Encode(domain.Order{ID: 500, OrderTotal: 19.00})
	}))

	order, err := sut.CreateOrder(context.Background(), OrderRequest{
		BillingInformation: domain.BillingInformation{Email: "a@b.c"},
		OrderTotal:         19.00,
		Discount:           1.00,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(500), order.ID)
	assert.Equal(t, 19.00, payload["order_total"])
	assert.Equal(t, 1.00, payload["tax"])
	assert.Equal(t, "a@b.c", payload["email"])
}

func TestCreatePaymentSession_Stripe(t *testing.T) {
	sut := NewOrderGateway(newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders/stripe/create-session/", r.URL.Path)
		assert.Equal(t, "500", r.URL.Query().Get("order_id"))
		json.NewEncoder(w).Encode(map[string]string{"checkout_url": "https://stripe.test/s"})
	}))

	session, err := sut.CreatePaymentSession(context.Background(), domain.Order{ID: 500}, domain.PaymentMethodStripe)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentMethodStripe, session.Provider)
	assert.Equal(t, "https://stripe.test/s", session.RedirectURL)
}

func TestCreatePaymentSession_SSL(t *testing.T) {
	var payload map[string]any
	sut := NewOrderGateway(newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders/ssl-payment/", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &payload))
		json.NewEncoder(w).Encode(map[string]string{"gateway_url": "https://ssl.test/gw"})
	}))

	session, err := sut.CreatePaymentSession(context.Background(), domain.Order{ID: 500, OrderTotal: 19.00}, domain.PaymentMethodSSL)
	require.NoError(t, err)

	assert.Equal(t, "https://ssl.test/gw", session.RedirectURL)
	assert.Equal(t, float64(500), payload["order_id"])
	assert.Equal(t, 19.00, payload["amount"], "ssl session carries the amount")
}

func TestCreatePaymentSession_UnknownMethod(t *testing.T) {
	called := false
	sut := NewOrderGateway(newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	_, err := sut.CreatePaymentSession(context.Background(), domain.Order{ID: 500}, "bitcoin")
	require.Error(t, err)
	assert.True(t, IsGatewayError(err))
	assert.False(t, called, "no request issued for an unknown provider tag")
}

func TestClient_NetworkFailure(t *testing.T) {
	// port is closed immediately
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()
	sut := NewCartGateway(NewClient(server.URL, time.Second))

	_, err := sut.FetchLines(context.Background(), "cart_abc")
	require.Error(t, err)
	assert.True(t, IsGatewayError(err))

	var ge *Error
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, 0, ge.StatusCode)
	assert.NotNil(t, errors.Unwrap(ge))
}
