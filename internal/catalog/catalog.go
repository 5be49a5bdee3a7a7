// Package catalog wraps the read-only product and review resources.
// Thin by design: no state machine lives here.
package catalog

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"product_name"`
	Slug        string  `json:"slug"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Images      string  `json:"images"`
	InStock     bool    `json:"is_available"`
}

// ProductPage is one page of a catalog query.
type ProductPage struct {
	Count   int       `json:"count"`
	Results []Product `json:"results"`
}

type Review struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"product"`
	Subject   string    `json:"subject"`
	Body      string    `json:"review"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

// backendClient is the slice of the gateway base client we need.
type backendClient interface {
	Do(ctx context.Context, op, method, path string, query url.Values, payload, out any) error
}

type Service struct {
	client backendClient
}

func NewService(client backendClient) *Service {
	return &Service{client: client}
}

// ListProducts runs a paged, optionally filtered catalog query.
func (s *Service) ListProducts(ctx context.Context, page int, search string) (ProductPage, error) {
	query := url.Values{}
	if page > 1 {
		query.Set("page", strconv.Itoa(page))
	}
	if search != "" {
		query.Set("search", search)
	}
	var result ProductPage
	if err := s.client.Do(ctx, "list products", http.MethodGet, "/store/products/", query, nil, &result); err != nil {
		return ProductPage{}, err
	}
	return result, nil
}

func (s *Service) GetProduct(ctx context.Context, productID int64) (Product, error) {
	var product Product
	path := fmt.Sprintf("/store/products/%d/", productID)
	if err := s.client.Do(ctx, "get product", http.MethodGet, path, nil, nil, &product); err != nil {
		return Product{}, err
	}
	return product, nil
}

func (s *Service) ListReviews(ctx context.Context, productID int64) ([]Review, error) {
	query := url.Values{"product": {strconv.FormatInt(productID, 10)}}
	var reviews []Review
	if err := s.client.Do(ctx, "list reviews", http.MethodGet, "/store/reviews/", query, nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// SubmitReview creates a review and returns the refreshed review list
// for the product, so callers never need to refetch anything else.
func (s *Service) SubmitReview(ctx context.Context, productID int64, subject, body string, rating int) ([]Review, error) {
	payload := map[string]any{
		"product": productID,
		"subject": subject,
		"review":  body,
		"rating":  rating,
	}
	if err := s.client.Do(ctx, "create review", http.MethodPost, "/store/reviews/create/", nil, payload, nil); err != nil {
		return nil, err
	}
	return s.ListReviews(ctx, productID)
}
