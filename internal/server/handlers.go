package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lapuropizza/storefront/internal/checkout"
	"github.com/lapuropizza/storefront/internal/delivery"
	"github.com/lapuropizza/storefront/internal/i18n"
	"github.com/lapuropizza/storefront/internal/models"
)

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// --- menu ---

func (s *Server) handleMenu(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.catalog.Items())
}

func (s *Server) handleMenuCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	items := s.catalog.ItemsByCategory(category)
	if len(items) == 0 {
		respondError(w, http.StatusNotFound, "unknown category")
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.catalog.Categories())
}

func (s *Server) handleToppings(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.catalog.Toppings())
}

// --- cart ---

func (s *Server) handleGetCart(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	respondJSON(w, http.StatusOK, sess.Cart.Snapshot())
}

type addCartItemRequest struct {
	ItemID             string   `json:"itemId"`
	Size               string   `json:"size"`
	ToppingIDs         []string `json:"toppingIds,omitempty"`
	RemovedIngredients []string `json:"removedIngredients,omitempty"`
}

func (s *Server) handleAddCartItem(w http.ResponseWriter, r *http.Request) {
	var req addCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, ok := s.catalog.Item(req.ItemID)
	if !ok {
		respondError(w, http.StatusNotFound, "unknown menu item")
		return
	}

	toppings := make([]models.Topping, 0, len(req.ToppingIDs))
	for _, id := range req.ToppingIDs {
		t, ok := s.catalog.Topping(id)
		if !ok {
			respondError(w, http.StatusNotFound, "unknown topping "+id)
			return
		}
		toppings = append(toppings, t)
	}

	sess := s.session(w, r)
	line, ok := sess.Cart.AddLine(item, models.Size(req.Size), toppings, req.RemovedIngredients)
	if !ok {
		respondError(w, http.StatusUnprocessableEntity, "item has no price for size "+req.Size)
		return
	}
	respondJSON(w, http.StatusCreated, line)
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

func (s *Server) handleUpdateCartItem(w http.ResponseWriter, r *http.Request) {
	var req updateCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	sess := s.session(w, r)
	sess.Cart.SetQuantity(chi.URLParam(r, "lineID"), req.Quantity)
	respondJSON(w, http.StatusOK, sess.Cart.Snapshot())
}

func (s *Server) handleRemoveCartItem(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	sess.Cart.RemoveLine(chi.URLParam(r, "lineID"))
	respondJSON(w, http.StatusOK, sess.Cart.Snapshot())
}

func (s *Server) handleClearCart(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	sess.Cart.Clear()
	respondJSON(w, http.StatusOK, sess.Cart.Snapshot())
}

// --- address ---

func (s *Server) handleGetAddress(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	addr := sess.Address.Address()
	if addr == nil {
		respondError(w, http.StatusNotFound, "no delivery address set")
		return
	}
	respondJSON(w, http.StatusOK, addr)
}

func (s *Server) handleSetAddress(w http.ResponseWriter, r *http.Request) {
	var addr models.DeliveryAddress
	if err := json.NewDecoder(r.Body).Decode(&addr); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	sess := s.session(w, r)
	sess.Address.SetAddress(&addr)
	respondJSON(w, http.StatusOK, sess.Address.Address())
}

func (s *Server) handleClearAddress(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	sess.Address.Clear()
	respondJSON(w, http.StatusNoContent, nil)
}

// --- delivery ---

// handleDeliveryCheck resolves eligibility and, when the address is
// deliverable, replaces the session's stored address with the result.
// A failed or negative check leaves the stored address untouched.
func (s *Server) handleDeliveryCheck(w http.ResponseWriter, r *http.Request) {
	var req delivery.CheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := s.checker.Check(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrNoLocator):
			respondError(w, http.StatusBadRequest, "provide a placeId, lat/lng pair or address")
		case errors.Is(err, delivery.ErrGeocoderUnavailable):
			respondError(w, http.StatusServiceUnavailable, "address lookup is unavailable")
		default:
			log.Printf("Delivery check failed: %v", err)
			respondError(w, http.StatusBadGateway, "could not resolve address")
		}
		return
	}

	if result.CanDeliver {
		sess := s.session(w, r)
		sess.Address.SetAddress(&models.DeliveryAddress{
			Address:       result.Address,
			PlaceID:       req.PlaceID,
			CanDeliver:    true,
			Distance:      result.Distance,
			Zone:          result.Zone,
			MinimumOrder:  result.MinimumOrder,
			DeliveryFee:   result.DeliveryFee,
			EstimatedTime: result.EstimatedTime,
			Message:       result.Message,
		})
	}
	respondJSON(w, http.StatusOK, result)
}

// --- orders ---

func (s *Server) handlePlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req checkout.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sess := s.session(w, r)
	order, err := s.checkout.PlaceOrder(r.Context(), sess.Cart, sess.Address, req)
	if err != nil {
		if checkout.IsValidation(err) {
			respondError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		log.Printf("Checkout failed: %v", err)
		respondError(w, http.StatusInternalServerError, "could not place order")
		return
	}

	s.metrics.ordersTotal.Inc()
	s.metrics.orderValue.Observe(order.Total)
	respondJSON(w, http.StatusCreated, order)
}

func (s *Server) handleListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := s.repo.GetAll(r.Context())
	if err != nil {
		log.Printf("Failed to list orders: %v", err)
		respondError(w, http.StatusInternalServerError, "could not list orders")
		return
	}
	respondJSON(w, http.StatusOK, orders)
}

// --- language ---

func (s *Server) handleGetLanguage(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	respondJSON(w, http.StatusOK, map[string]string{"language": sess.Language.Language()})
}

type setLanguageRequest struct {
	Language string `json:"language"`
}

func (s *Server) handleSetLanguage(w http.ResponseWriter, r *http.Request) {
	var req setLanguageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !i18n.Supported(req.Language) {
		respondError(w, http.StatusUnprocessableEntity, "unsupported language "+req.Language)
		return
	}
	sess := s.session(w, r)
	sess.Language.SetLanguage(req.Language)
	respondJSON(w, http.StatusOK, map[string]string{"language": sess.Language.Language()})
}
