package factories

import (
	"testing"

	"github.com/lapuropizza/storefront/internal/catalog"
	"github.com/lapuropizza/storefront/internal/models"
)

func TestCreateOrder(t *testing.T) {
	factory := NewOrderFactory(catalog.Default())

	for i := 0; i < 50; i++ {
		order := factory.CreateOrder()

		if order.ID == "" {
			t.Fatal("order has no id")
		}
		if len(order.Lines) < 1 || len(order.Lines) > 4 {
			t.Fatalf("line count = %d", len(order.Lines))
		}
		if order.Customer.Name == "" || order.Customer.Phone == "" {
			t.Fatalf("incomplete customer: %+v", order.Customer)
		}
		if order.DeliveryType == models.DeliveryTypeDelivery && order.Customer.Address == "" {
			t.Fatal("delivery order without address")
		}

		subtotal := 0.0
		for _, line := range order.Lines {
			if line.UnitPrice <= 0 {
				t.Fatalf("line %s has unit price %v", line.ID, line.UnitPrice)
			}
			if line.Quantity < 1 {
				t.Fatalf("line %s has quantity %d", line.ID, line.Quantity)
			}
			subtotal += line.UnitPrice * float64(line.Quantity)
		}
		if got, want := order.Subtotal, models.RoundMoney(subtotal); got != want {
			t.Fatalf("Subtotal = %v, want %v", got, want)
		}
		if got, want := order.Total, models.RoundMoney(order.Subtotal+order.DeliveryFee); got != want {
			t.Fatalf("Total = %v, want %v", got, want)
		}
		if order.PlacedAt.IsZero() {
			t.Fatal("PlacedAt is zero")
		}
	}
}
