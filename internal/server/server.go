// Package server exposes the storefront over HTTP: the menu, per-session
// cart and address state, delivery eligibility checks, checkout and a
// websocket change feed.
package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lapuropizza/storefront/internal/catalog"
	"github.com/lapuropizza/storefront/internal/checkout"
	"github.com/lapuropizza/storefront/internal/delivery"
	"github.com/lapuropizza/storefront/internal/repositories"
	"github.com/lapuropizza/storefront/internal/storage"
)

type Server struct {
	catalog  *catalog.Catalog
	checker  *delivery.Checker
	checkout *checkout.Service
	repo     repositories.OrderRepository
	sessions *SessionManager
	metrics  *metrics
	router   chi.Router
}

func New(cat *catalog.Catalog, checker *delivery.Checker, svc *checkout.Service, repo repositories.OrderRepository, st storage.Store) *Server {
	sessions := NewSessionManager(st)
	registry := prometheus.NewRegistry()

	s := &Server{
		catalog:  cat,
		checker:  checker,
		checkout: svc,
		repo:     repo,
		sessions: sessions,
		metrics:  newMetrics(registry, sessions),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(s.metrics.instrument)

	r.Route("/api", func(r chi.Router) {
		r.Get("/menu", s.handleMenu)
		r.Get("/menu/{category}", s.handleMenuCategory)
		r.Get("/categories", s.handleCategories)
		r.Get("/toppings", s.handleToppings)

		r.Get("/cart", s.handleGetCart)
		r.Get("/cart/items", s.handleGetCart)
		r.Post("/cart/items", s.handleAddCartItem)
		r.Patch("/cart/items/{lineID}", s.handleUpdateCartItem)
		r.Delete("/cart/items/{lineID}", s.handleRemoveCartItem)
		r.Delete("/cart", s.handleClearCart)

		r.Get("/address", s.handleGetAddress)
		r.Put("/address", s.handleSetAddress)
		r.Delete("/address", s.handleClearAddress)

		r.Post("/delivery/check", s.handleDeliveryCheck)

		r.Post("/orders", s.handlePlaceOrder)
		r.Get("/orders", s.handleListOrders)

		r.Get("/language", s.handleGetLanguage)
		r.Put("/language", s.handleSetLanguage)
	})

	r.Get("/ws", s.handleWebsocket)
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	s.router = r
	return s
}

func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe runs until ctx is cancelled, then drains in-flight
// requests for up to ten seconds.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Storefront listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
