package store

import (
	"testing"

	"github.com/lapuropizza/storefront/internal/models"
	"github.com/lapuropizza/storefront/internal/storage"
)

func outOfZone() *models.DeliveryAddress {
	return &models.DeliveryAddress{
		Address:    "Bahnhofstrasse 1, 8001 Zürich",
		CanDeliver: false,
		Message:    "out of zone",
	}
}

func TestSetAddressPersistsAndNotifies(t *testing.T) {
	mem := storage.NewMemory()
	s := NewAddressStore(mem, models.AddressStorageKey)

	calls := 0
	s.Subscribe(func() { calls++ })
	if calls != 0 {
		t.Fatalf("subscribe itself notified: calls = %d", calls)
	}

	s.SetAddress(outOfZone())
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
	got := s.Address()
	if got == nil || got.Message != "out of zone" || got.CanDeliver {
		t.Fatalf("Address() = %+v", got)
	}

	if _, err := mem.Get(models.AddressStorageKey); err != nil {
		t.Fatalf("address not persisted: %v", err)
	}

	s.Clear()
	if calls != 2 {
		t.Fatalf("calls = %d, want 2", calls)
	}
	if s.Address() != nil {
		t.Fatal("Address() non-nil after Clear")
	}
	if _, err := mem.Get(models.AddressStorageKey); err != storage.ErrNotFound {
		t.Fatalf("persisted key not removed, err = %v", err)
	}
}

func TestAddressReconstruction(t *testing.T) {
	mem := storage.NewMemory()
	s := NewAddressStore(mem, models.AddressStorageKey)
	s.SetAddress(&models.DeliveryAddress{
		Address:       "Langstrasse 10, 8004 Zürich",
		CanDeliver:    true,
		Distance:      1.2,
		Zone:          "A",
		MinimumOrder:  25,
		DeliveryFee:   0,
		EstimatedTime: "30-45 min",
	})

	rebuilt := NewAddressStore(mem, models.AddressStorageKey)
	got := rebuilt.Address()
	if got == nil || !got.CanDeliver || got.Zone != "A" || got.MinimumOrder != 25 {
		t.Fatalf("rebuilt Address() = %+v", got)
	}
}

func TestCorruptAddressFallsBackToNone(t *testing.T) {
	mem := storage.NewMemory()
	if err := mem.Set(models.AddressStorageKey, []byte("][")); err != nil {
		t.Fatal(err)
	}
	s := NewAddressStore(mem, models.AddressStorageKey)
	if s.Address() != nil {
		t.Fatal("expected none after corrupt snapshot")
	}
}

func TestAddressIsCopiedBothWays(t *testing.T) {
	s := NewAddressStore(storage.NewMemory(), models.AddressStorageKey)

	in := outOfZone()
	s.SetAddress(in)
	in.Message = "mutated after set"

	got := s.Address()
	if got.Message != "out of zone" {
		t.Fatalf("store shares caller memory: %q", got.Message)
	}

	got.Message = "mutated after get"
	if s.Address().Message != "out of zone" {
		t.Fatal("store shares returned memory")
	}
}
