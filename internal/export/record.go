package export

import (
	"encoding/json"

	"github.com/lapuropizza/storefront/internal/models"
)

// OrderRecord is the flattened parquet row for one order. Line detail is
// carried as a JSON column so the schema stays stable when the menu
// changes.
type OrderRecord struct {
	OrderID       string  `parquet:"name=order_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	PlacedAt      int64   `parquet:"name=placed_at, type=INT64, convertedtype=TIMESTAMP_MILLIS"`
	Status        string  `parquet:"name=status, type=BYTE_ARRAY, convertedtype=UTF8"`
	DeliveryType  string  `parquet:"name=delivery_type, type=BYTE_ARRAY, convertedtype=UTF8"`
	PaymentMethod string  `parquet:"name=payment_method, type=BYTE_ARRAY, convertedtype=UTF8"`
	CustomerName  string  `parquet:"name=customer_name, type=BYTE_ARRAY, convertedtype=UTF8"`
	CustomerPhone string  `parquet:"name=customer_phone, type=BYTE_ARRAY, convertedtype=UTF8"`
	CustomerCity  string  `parquet:"name=customer_city, type=BYTE_ARRAY, convertedtype=UTF8"`
	ItemCount     int32   `parquet:"name=item_count, type=INT32"`
	Subtotal      float64 `parquet:"name=subtotal, type=DOUBLE"`
	DeliveryFee   float64 `parquet:"name=delivery_fee, type=DOUBLE"`
	Total         float64 `parquet:"name=total, type=DOUBLE"`
	Lines         string  `parquet:"name=lines, type=BYTE_ARRAY, convertedtype=UTF8"`
}

func recordFromOrder(order models.Order) (OrderRecord, error) {
	lines, err := json.Marshal(order.Lines)
	if err != nil {
		return OrderRecord{}, err
	}
	count := int32(0)
	for _, line := range order.Lines {
		count += int32(line.Quantity)
	}
	return OrderRecord{
		OrderID:       order.ID,
		PlacedAt:      order.PlacedAt.UnixMilli(),
		Status:        order.Status,
		DeliveryType:  order.DeliveryType,
		PaymentMethod: order.PaymentMethod,
		CustomerName:  order.Customer.Name,
		CustomerPhone: order.Customer.Phone,
		CustomerCity:  order.Customer.City,
		ItemCount:     count,
		Subtotal:      order.Subtotal,
		DeliveryFee:   order.DeliveryFee,
		Total:         order.Total,
		Lines:         string(lines),
	}, nil
}
