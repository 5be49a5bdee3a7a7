package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sojibhasan5800/flipcart-storefront/internal/gateway"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, handler http.HandlerFunc) *Service {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewService(gateway.NewClient(server.URL, 2*time.Second))
}

func TestListProducts_PagedQuery(t *testing.T) {
	sut := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/store/products/", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "shirt", r.URL.Query().Get("search"))
		json.NewEncoder(w).Encode(ProductPage{
			Count:   1,
			Results: []Product{{ID: 42, Name: "Linen Shirt", Price: 10.00}},
		})
	})

	page, err := sut.ListProducts(context.Background(), 2, "shirt")
	require.NoError(t, err)
	assert.Equal(t, 1, page.Count)
	require.Len(t, page.Results, 1)
	assert.Equal(t, int64(42), page.Results[0].ID)
}

func TestSubmitReview_CreatesThenRefetches(t *testing.T) {
	var created bool
	sut := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/store/reviews/create/":
			created = true
			w.WriteHeader(http.StatusCreated)
		case r.Method == http.MethodGet && r.URL.Path == "/store/reviews/":
			assert.Equal(t, "42", r.URL.Query().Get("product"))
			json.NewEncoder(w).Encode([]Review{{ID: 1, ProductID: 42, Rating: 5}})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	reviews, err := sut.SubmitReview(context.Background(), 42, "Great", "Fits well", 5)
	require.NoError(t, err)
	assert.True(t, created)
	require.Len(t, reviews, 1, "the refreshed list comes back without a full reload")
}

func TestGetProduct_BackendError(t *testing.T) {
	sut := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := sut.GetProduct(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, gateway.IsGatewayError(err))
}
