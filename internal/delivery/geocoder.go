package delivery

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/lapuropizza/storefront/internal/models"
)

// Static is a fixture-backed Geocoder. Deployments without a maps API key
// load it from config; tests use it directly.
type Static struct {
	mu        sync.RWMutex
	places    map[string]StaticEntry
	addresses map[string]StaticEntry
}

type StaticEntry struct {
	Location  models.Location
	Formatted string
}

func NewStatic() *Static {
	return &Static{
		places:    make(map[string]StaticEntry),
		addresses: make(map[string]StaticEntry),
	}
}

func (g *Static) AddPlace(placeID string, entry StaticEntry) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.places[placeID] = entry
}

func (g *Static) AddAddress(address string, entry StaticEntry) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addresses[normalizeAddress(address)] = entry
}

func (g *Static) ResolvePlace(_ context.Context, placeID string) (models.Location, string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	entry, ok := g.places[placeID]
	if !ok {
		return models.Location{}, "", fmt.Errorf("unknown place reference %q", placeID)
	}
	return entry.Location, entry.Formatted, nil
}

func (g *Static) ResolveAddress(_ context.Context, address string) (models.Location, string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	entry, ok := g.addresses[normalizeAddress(address)]
	if !ok {
		return models.Location{}, "", fmt.Errorf("could not resolve address %q", address)
	}
	return entry.Location, entry.Formatted, nil
}

func normalizeAddress(address string) string {
	return strings.ToLower(strings.Join(strings.Fields(address), " "))
}
