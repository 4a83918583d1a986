package models

type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// DeliveryAddress is the resolved result of an eligibility check. At most
// one exists per session; it is replaced wholesale by a successful check
// and cleared explicitly by the user.
type DeliveryAddress struct {
	Address       string  `json:"address"`
	PlaceID       string  `json:"placeId,omitempty"`
	CanDeliver    bool    `json:"canDeliver"`
	Distance      float64 `json:"distance,omitempty"`
	Zone          string  `json:"zone,omitempty"`
	MinimumOrder  float64 `json:"minimumOrder,omitempty"`
	DeliveryFee   float64 `json:"deliveryFee,omitempty"`
	EstimatedTime string  `json:"estimatedTime,omitempty"`
	Message       string  `json:"message,omitempty"`
}
