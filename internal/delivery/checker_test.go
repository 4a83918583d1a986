package delivery

import (
	"context"
	"testing"

	"github.com/lapuropizza/storefront/internal/models"
)

var zurich = models.Location{Lat: 47.3769, Lng: 8.5417}

func testZones() []models.Zone {
	return models.DefaultZones()
}

func ptr(v float64) *float64 { return &v }

func TestCheckByCoordinates(t *testing.T) {
	c := NewChecker(zurich, testZones(), nil)

	// ~1.1 km north of the restaurant, inside zone A.
	res, err := c.Check(context.Background(), CheckRequest{Lat: ptr(47.3869), Lng: ptr(8.5417)})
	if err != nil {
		t.Fatal(err)
	}
	if !res.CanDeliver {
		t.Fatalf("CanDeliver = false: %+v", res)
	}
	if res.Zone != "A" {
		t.Fatalf("Zone = %q, want A", res.Zone)
	}
	if res.MinimumOrder != 25 || res.DeliveryFee != 0 {
		t.Fatalf("zone terms = min %v fee %v", res.MinimumOrder, res.DeliveryFee)
	}
	if res.Distance <= 0 || res.Distance > 2 {
		t.Fatalf("Distance = %v", res.Distance)
	}
}

func TestCheckOutsideAllZones(t *testing.T) {
	c := NewChecker(zurich, testZones(), nil)

	// Bern is ~95 km away.
	res, err := c.Check(context.Background(), CheckRequest{Lat: ptr(46.9480), Lng: ptr(7.4474)})
	if err != nil {
		t.Fatal(err)
	}
	if res.CanDeliver {
		t.Fatalf("CanDeliver = true for Bern: %+v", res)
	}
	if res.Zone != "" || res.DeliveryFee != 0 {
		t.Fatalf("zone fields set on refusal: %+v", res)
	}
	if res.Message == "" {
		t.Fatal("expected a human-readable message")
	}
}

func TestZoneBoundariesPickNearestZone(t *testing.T) {
	// Zones deliberately passed out of order; the checker must sort them.
	zones := []models.Zone{
		{Name: "far", MaxDistanceKm: 10, DeliveryFee: 8, MinimumOrder: 60},
		{Name: "near", MaxDistanceKm: 3, DeliveryFee: 0, MinimumOrder: 25},
	}
	c := NewChecker(zurich, zones, nil)

	// ~4.4 km away: beyond "near", inside "far".
	res, err := c.Check(context.Background(), CheckRequest{Lat: ptr(47.4169), Lng: ptr(8.5417)})
	if err != nil {
		t.Fatal(err)
	}
	if res.Zone != "far" {
		t.Fatalf("Zone = %q, want far", res.Zone)
	}
}

func TestCheckByPlaceAndAddress(t *testing.T) {
	geo := NewStatic()
	geo.AddPlace("ChIJ-test", StaticEntry{
		Location:  models.Location{Lat: 47.3780, Lng: 8.5400},
		Formatted: "Langstrasse 10, 8004 Zürich",
	})
	geo.AddAddress("Langstrasse 10 Zürich", StaticEntry{
		Location:  models.Location{Lat: 47.3780, Lng: 8.5400},
		Formatted: "Langstrasse 10, 8004 Zürich",
	})

	c := NewChecker(zurich, testZones(), geo)

	res, err := c.Check(context.Background(), CheckRequest{PlaceID: "ChIJ-test"})
	if err != nil {
		t.Fatal(err)
	}
	if !res.CanDeliver || res.Address != "Langstrasse 10, 8004 Zürich" {
		t.Fatalf("place check = %+v", res)
	}

	// Address matching is whitespace- and case-insensitive.
	res, err = c.Check(context.Background(), CheckRequest{Address: "  langstrasse 10   zürich "})
	if err != nil {
		t.Fatal(err)
	}
	if !res.CanDeliver {
		t.Fatalf("address check = %+v", res)
	}

	if _, err := c.Check(context.Background(), CheckRequest{PlaceID: "unknown"}); err == nil {
		t.Fatal("expected error for unknown place")
	}
}

func TestCheckErrors(t *testing.T) {
	c := NewChecker(zurich, testZones(), nil)

	if _, err := c.Check(context.Background(), CheckRequest{}); err != ErrNoLocator {
		t.Fatalf("err = %v, want ErrNoLocator", err)
	}
	if _, err := c.Check(context.Background(), CheckRequest{Address: "somewhere"}); err != ErrGeocoderUnavailable {
		t.Fatalf("err = %v, want ErrGeocoderUnavailable", err)
	}
}
