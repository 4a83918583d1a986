package models

import "time"

type CustomerInfo struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	Zip     string `json:"zip,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

type Order struct {
	ID            string       `json:"id"`
	Lines         []CartLine   `json:"lines"`
	Subtotal      float64      `json:"subtotal"`
	DeliveryFee   float64      `json:"delivery_fee"`
	Total         float64      `json:"total"`
	Customer      CustomerInfo `json:"customer"`
	DeliveryType  string       `json:"delivery_type"`  // "delivery" or "pickup"
	PaymentMethod string       `json:"payment_method"` // "card" or "cash"
	Status        string       `json:"status"`
	PlacedAt      time.Time    `json:"placed_at"`
}
