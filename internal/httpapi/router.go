package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sojibhasan5800/flipcart-storefront/internal/auth"
)

// Deps are the constructed handlers and middleware inputs.
type Deps struct {
	Cart           *CartHandler
	Checkout       *CheckoutHandler
	Catalog        *CatalogHandler
	Verifier       *auth.Verifier
	RequestTimeout time.Duration
}

func NewRouter(deps Deps) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Timeout(deps.RequestTimeout))
	r.Use(middleware.Compress(5))
	r.Use(SessionMiddleware)
	r.Use(AuthMiddleware(deps.Verifier))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", deps.Catalog.ListProducts)
			r.Get("/{product_id}", deps.Catalog.GetProduct)
			r.Get("/{product_id}/reviews", deps.Catalog.ListReviews)
			r.Post("/{product_id}/reviews", deps.Catalog.SubmitReview)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", deps.Cart.GetCart)
			r.Post("/items", deps.Cart.AddItem)
			r.Put("/items/{line_id}", deps.Cart.UpdateQuantity)
			r.Delete("/items/{line_id}", deps.Cart.RemoveItem)
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Get("/", deps.Checkout.GetCheckout)
			r.Get("/payment-methods", deps.Checkout.PaymentMethods)
		})

		r.Get("/orders/{order_id}", deps.Checkout.GetOrder)
	})

	r.Post("/checkout/submit", deps.Checkout.Submit)
	r.Get("/checkout/return", deps.Checkout.PaymentReturn)

	return r
}
