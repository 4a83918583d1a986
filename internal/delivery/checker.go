// Package delivery resolves whether an address or coordinate is inside
// the restaurant's delivery area and at what fee, minimum order and
// estimated time.
package delivery

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/lapuropizza/storefront/internal/models"
)

const earthRadiusKm = 6371.0

// CheckRequest carries exactly one locator: a place reference from the
// autocomplete widget, raw coordinates from GPS, or free address text.
// Field names match the client wire format.
type CheckRequest struct {
	PlaceID string   `json:"placeId,omitempty"`
	Lat     *float64 `json:"lat,omitempty"`
	Lng     *float64 `json:"lng,omitempty"`
	Address string   `json:"address,omitempty"`
}

// HasLocator reports whether the request carries anything to resolve.
func (r CheckRequest) HasLocator() bool {
	return r.PlaceID != "" || (r.Lat != nil && r.Lng != nil) || r.Address != ""
}

// CheckResult is the eligibility response. Zone details are only set when
// CanDeliver is true.
type CheckResult struct {
	CanDeliver    bool    `json:"canDeliver"`
	Address       string  `json:"address,omitempty"`
	Distance      float64 `json:"distance,omitempty"`
	Zone          string  `json:"zone,omitempty"`
	MinimumOrder  float64 `json:"minimumOrder,omitempty"`
	DeliveryFee   float64 `json:"deliveryFee,omitempty"`
	EstimatedTime string  `json:"estimatedTime,omitempty"`
	Message       string  `json:"message"`
}

// Geocoder resolves a place reference or free-text address into a
// coordinate and a formatted address. The Places-backed implementation
// lives outside this module; tests and offline deployments use Static.
type Geocoder interface {
	ResolvePlace(ctx context.Context, placeID string) (models.Location, string, error)
	ResolveAddress(ctx context.Context, address string) (models.Location, string, error)
}

var (
	ErrNoLocator           = errors.New("delivery: request carries no locator")
	ErrGeocoderUnavailable = errors.New("delivery: no geocoder configured")
)

// Checker decides eligibility from radial zones around the restaurant.
// The nearest zone whose radius contains the distance wins.
type Checker struct {
	origin   models.Location
	zones    []models.Zone
	geocoder Geocoder
}

func NewChecker(origin models.Location, zones []models.Zone, geocoder Geocoder) *Checker {
	sorted := append([]models.Zone(nil), zones...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].MaxDistanceKm < sorted[j].MaxDistanceKm
	})
	return &Checker{origin: origin, zones: sorted, geocoder: geocoder}
}

// Check resolves the request's locator and maps its distance from the
// restaurant onto the zone table.
func (c *Checker) Check(ctx context.Context, req CheckRequest) (CheckResult, error) {
	if !req.HasLocator() {
		return CheckResult{}, ErrNoLocator
	}

	loc, formatted, err := c.resolve(ctx, req)
	if err != nil {
		return CheckResult{}, err
	}

	distance := roundDistance(haversineKm(c.origin, loc))
	for _, zone := range c.zones {
		if distance <= zone.MaxDistanceKm {
			return CheckResult{
				CanDeliver:    true,
				Address:       formatted,
				Distance:      distance,
				Zone:          zone.Name,
				MinimumOrder:  zone.MinimumOrder,
				DeliveryFee:   zone.DeliveryFee,
				EstimatedTime: zone.EstimatedTime,
				Message:       "delivery available",
			}, nil
		}
	}

	return CheckResult{
		CanDeliver: false,
		Address:    formatted,
		Distance:   distance,
		Message:    fmt.Sprintf("address is %.1f km away, outside our delivery area", distance),
	}, nil
}

func (c *Checker) resolve(ctx context.Context, req CheckRequest) (models.Location, string, error) {
	if req.Lat != nil && req.Lng != nil {
		return models.Location{Lat: *req.Lat, Lng: *req.Lng}, req.Address, nil
	}
	if c.geocoder == nil {
		return models.Location{}, "", ErrGeocoderUnavailable
	}
	if req.PlaceID != "" {
		return c.geocoder.ResolvePlace(ctx, req.PlaceID)
	}
	return c.geocoder.ResolveAddress(ctx, req.Address)
}

// haversineKm returns the great-circle distance between two coordinates.
func haversineKm(a, b models.Location) float64 {
	lat1 := degreesToRadians(a.Lat)
	lon1 := degreesToRadians(a.Lng)
	lat2 := degreesToRadians(b.Lat)
	lon2 := degreesToRadians(b.Lng)

	dlat := lat2 - lat1
	dlon := lon2 - lon1
	h := math.Pow(math.Sin(dlat/2), 2) + math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(dlon/2), 2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

func roundDistance(km float64) float64 {
	return math.Round(km*10) / 10
}
