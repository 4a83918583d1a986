// Package checkout turns a cart and a filled-in form into a placed order:
// validation, minimum-order enforcement, simulated payment, persistence
// and event publication.
package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/lucsky/cuid"

	"github.com/lapuropizza/storefront/internal/events"
	"github.com/lapuropizza/storefront/internal/models"
	"github.com/lapuropizza/storefront/internal/repositories"
	"github.com/lapuropizza/storefront/internal/store"
)

// validationError communicates form rule violations back to HTTP handlers.
type validationError struct {
	message string
}

func (e validationError) Error() string { return e.message }

func newValidationError(msg string) error {
	return validationError{message: msg}
}

// IsValidation helps callers distinguish between user and infrastructure
// failures.
func IsValidation(err error) bool {
	var v validationError
	return errors.As(err, &v)
}

var ErrEmptyCart = newValidationError("cart is empty")

// Request is the checkout form submission.
type Request struct {
	Customer      models.CustomerInfo `json:"customer"`
	DeliveryType  string              `json:"delivery_type"`
	PaymentMethod string              `json:"payment_method"`
}

type Service struct {
	repo        repositories.OrderRepository
	sink        events.Sink
	payments    PaymentProcessor
	deliveryFee float64
}

// NewService wires the checkout pipeline. sink may be nil when event
// publication is disabled; repo and payments are required.
func NewService(repo repositories.OrderRepository, sink events.Sink, payments PaymentProcessor, deliveryFee float64) *Service {
	return &Service{repo: repo, sink: sink, payments: payments, deliveryFee: deliveryFee}
}

// PlaceOrder runs the full checkout for the session's cart and address.
// On success the cart is cleared; on any failure both stores keep their
// prior state so the user can correct and retry.
func (s *Service) PlaceOrder(ctx context.Context, cart *store.CartStore, address *store.AddressStore, req Request) (models.Order, error) {
	snapshot := cart.Snapshot()
	if len(snapshot.Lines) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	if err := validate(req); err != nil {
		return models.Order{}, err
	}

	fee := 0.0
	if req.DeliveryType == models.DeliveryTypeDelivery {
		fee = s.deliveryFee
		if addr := address.Address(); addr != nil && addr.CanDeliver {
			fee = addr.DeliveryFee
			if addr.MinimumOrder > 0 && snapshot.Subtotal < addr.MinimumOrder {
				return models.Order{}, newValidationError(
					fmt.Sprintf("minimum order for your address is CHF %.2f", addr.MinimumOrder))
			}
		}
	}

	order := models.Order{
		ID:            cuid.New(),
		Lines:         snapshot.Lines,
		Subtotal:      snapshot.Subtotal,
		DeliveryFee:   fee,
		Total:         models.RoundMoney(snapshot.Subtotal + fee),
		Customer:      req.Customer,
		DeliveryType:  req.DeliveryType,
		PaymentMethod: req.PaymentMethod,
		Status:        models.OrderStatusPending,
		PlacedAt:      time.Now().UTC(),
	}

	if err := s.payments.Process(ctx, &order); err != nil {
		return models.Order{}, fmt.Errorf("payment failed: %w", err)
	}
	order.Status = models.OrderStatusConfirmed

	if err := s.repo.Create(ctx, &order); err != nil {
		return models.Order{}, fmt.Errorf("saving order: %w", err)
	}

	s.publish(order)
	cart.Clear()

	return order, nil
}

// publish emits the placed order. A sink failure must not fail an order
// that has already been paid and saved.
func (s *Service) publish(order models.Order) {
	if s.sink == nil {
		return
	}
	msg, err := json.Marshal(order)
	if err != nil {
		log.Printf("Error serializing order event: %v", err)
		return
	}
	if err := s.sink.WriteMessage(models.OrdersTopic, msg); err != nil {
		log.Printf("Failed to publish order %s: %v", order.ID, err)
	}
}

func validate(req Request) error {
	if req.DeliveryType != models.DeliveryTypeDelivery && req.DeliveryType != models.DeliveryTypePickup {
		return newValidationError("delivery type must be delivery or pickup")
	}
	if req.PaymentMethod != models.PaymentMethodCard && req.PaymentMethod != models.PaymentMethodCash {
		return newValidationError("payment method must be card or cash")
	}
	if strings.TrimSpace(req.Customer.Name) == "" {
		return newValidationError("name is required")
	}
	if strings.TrimSpace(req.Customer.Phone) == "" {
		return newValidationError("phone is required")
	}
	if email := strings.TrimSpace(req.Customer.Email); email != "" {
		if !strings.Contains(email, "@") || strings.HasPrefix(email, "@") || strings.HasSuffix(email, "@") {
			return newValidationError("email address is invalid")
		}
	}
	if req.DeliveryType == models.DeliveryTypeDelivery {
		if strings.TrimSpace(req.Customer.Address) == "" {
			return newValidationError("address is required for delivery")
		}
		if strings.TrimSpace(req.Customer.Zip) == "" {
			return newValidationError("zip is required for delivery")
		}
		if strings.TrimSpace(req.Customer.City) == "" {
			return newValidationError("city is required for delivery")
		}
	}
	return nil
}
