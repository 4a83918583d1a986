package models

const (
	SizeSmall   Size = "small"
	SizeLarge   Size = "large"
	SizeRegular Size = "regular"

	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusDelivered = "delivered"

	DeliveryTypeDelivery = "delivery"
	DeliveryTypePickup   = "pickup"

	PaymentMethodCard = "card"
	PaymentMethodCash = "cash"

	LanguageGerman  = "de"
	LanguageEnglish = "en"

	// Storage keys match the browser client's localStorage layout.
	CartStorageKey     = "lapuropizza_cart"
	AddressStorageKey  = "deliveryAddress"
	LanguageStorageKey = "language"

	OrdersTopic = "orders"
)
