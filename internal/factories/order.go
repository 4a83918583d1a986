// Package factories produces realistic demo data for seeding and load
// testing. Orders are built from the real catalog so prices and line
// composition match what the storefront would actually sell.
package factories

import (
	"math/rand"
	"time"

	"github.com/jaswdr/faker"
	"github.com/lucsky/cuid"

	"github.com/lapuropizza/storefront/internal/catalog"
	"github.com/lapuropizza/storefront/internal/models"
)

var fake = faker.New()

type OrderFactory struct {
	catalog *catalog.Catalog
}

func NewOrderFactory(c *catalog.Catalog) *OrderFactory {
	return &OrderFactory{catalog: c}
}

// CreateOrder assembles a confirmed order with 1 to 4 lines, a generated
// customer and a placement time within the last 30 days.
func (of *OrderFactory) CreateOrder() *models.Order {
	lineCount := rand.Intn(4) + 1
	lines := make([]models.CartLine, 0, lineCount)
	subtotal := 0.0

	for i := 0; i < lineCount; i++ {
		line := of.createLine()
		subtotal += line.UnitPrice * float64(line.Quantity)
		lines = append(lines, line)
	}
	subtotal = models.RoundMoney(subtotal)

	deliveryType := models.DeliveryTypePickup
	fee := 0.0
	if rand.Float64() < 0.6 {
		deliveryType = models.DeliveryTypeDelivery
		fee = 5
	}

	paymentMethod := models.PaymentMethodCard
	if rand.Float64() < 0.3 {
		paymentMethod = models.PaymentMethodCash
	}

	now := time.Now().UTC()
	return &models.Order{
		ID:            cuid.New(),
		Lines:         lines,
		Subtotal:      subtotal,
		DeliveryFee:   fee,
		Total:         models.RoundMoney(subtotal + fee),
		Customer:      of.createCustomer(deliveryType),
		DeliveryType:  deliveryType,
		PaymentMethod: paymentMethod,
		Status:        randomStatus(),
		PlacedAt:      fake.Time().TimeBetween(now.AddDate(0, -1, 0), now).UTC(),
	}
}

func (of *OrderFactory) createLine() models.CartLine {
	items := of.catalog.Items()
	item := items[rand.Intn(len(items))]

	size := randomPricedSize(item)
	base, _ := item.Prices.ForSize(size)

	var added []models.Topping
	if item.Customizable && rand.Float64() < 0.4 {
		toppings := of.catalog.Toppings()
		count := rand.Intn(3) + 1
		for i := 0; i < count; i++ {
			added = append(added, toppings[rand.Intn(len(toppings))])
		}
	}

	var removed []string
	if len(item.Ingredients) > 0 && rand.Float64() < 0.2 {
		removed = []string{item.Ingredients[rand.Intn(len(item.Ingredients))]}
	}

	unit := base
	for _, t := range added {
		unit += t.Price
	}

	return models.CartLine{
		ID:                 cuid.New(),
		Item:               item,
		Size:               size,
		Quantity:           rand.Intn(3) + 1,
		AddedToppings:      added,
		RemovedIngredients: removed,
		UnitPrice:          models.RoundMoney(unit),
	}
}

func (of *OrderFactory) createCustomer(deliveryType string) models.CustomerInfo {
	customer := models.CustomerInfo{
		Name:  fake.Person().Name(),
		Phone: fake.Phone().Number(),
		Email: fake.Internet().Email(),
	}
	if deliveryType == models.DeliveryTypeDelivery {
		customer.Address = fake.Address().StreetAddress()
		customer.Zip = fake.Address().PostCode()
		customer.City = "Zürich"
	}
	return customer
}

func randomPricedSize(item models.MenuItem) models.Size {
	sizes := make([]models.Size, 0, 3)
	for _, size := range []models.Size{models.SizeSmall, models.SizeLarge, models.SizeRegular} {
		if _, ok := item.Prices.ForSize(size); ok {
			sizes = append(sizes, size)
		}
	}
	return sizes[rand.Intn(len(sizes))]
}

func randomStatus() string {
	statuses := []string{
		models.OrderStatusConfirmed,
		models.OrderStatusPreparing,
		models.OrderStatusReady,
		models.OrderStatusDelivered,
	}
	return statuses[rand.Intn(len(statuses))]
}
