package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/sojibhasan5800/flipcart-storefront/internal/auth"
	"github.com/sojibhasan5800/flipcart-storefront/internal/catalog"
	"github.com/sojibhasan5800/flipcart-storefront/internal/checkout"
	"github.com/sojibhasan5800/flipcart-storefront/internal/config"
	"github.com/sojibhasan5800/flipcart-storefront/internal/gateway"
	"github.com/sojibhasan5800/flipcart-storefront/internal/httpapi"
	"github.com/sojibhasan5800/flipcart-storefront/internal/identity"
)

func main() {
	cfg := config.Load()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	defer redisClient.Close()

	identities := identity.NewManager(identity.NewRedisStore(redisClient))

	backend := gateway.NewClient(cfg.BackendBaseURL, cfg.GatewayTimeout)
	cartGW := gateway.NewCartGateway(backend)
	orderGW := gateway.NewOrderGateway(backend)

	coordinator := checkout.NewCoordinator(cartGW, orderGW)
	catalogSvc := catalog.NewService(backend)
	verifier := auth.NewVerifier(cfg.JWTSecret)

	router := httpapi.NewRouter(httpapi.Deps{
		Cart:           httpapi.NewCartHandler(identities, coordinator, cfg.RequestTimeout),
		Checkout:       httpapi.NewCheckoutHandler(identities, coordinator, orderGW, cfg.RequestTimeout),
		Catalog:        httpapi.NewCatalogHandler(catalogSvc, cfg.RequestTimeout),
		Verifier:       verifier,
		RequestTimeout: cfg.RequestTimeout,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      otelhttp.NewHandler(router, "storefront"),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("storefront starting on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server exited")
}
