package store

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/lucsky/cuid"

	"github.com/lapuropizza/storefront/internal/models"
	"github.com/lapuropizza/storefront/internal/storage"
)

// CartStore owns the order line items and their derived subtotal. All
// writes go through its methods; Snapshot returns a deep copy so callers
// cannot reach around that single write path.
type CartStore struct {
	mu        sync.Mutex
	storage   storage.Store
	key       string
	cart      models.Cart
	listeners Listeners
}

// NewCartStore loads the persisted snapshot under key from st. A missing
// or corrupt snapshot falls back to an empty cart; corruption is logged
// and discarded, never returned as an error.
func NewCartStore(st storage.Store, key string) *CartStore {
	s := &CartStore{storage: st, key: key}
	data, err := st.Get(key)
	if err == nil {
		if err := json.Unmarshal(data, &s.cart); err != nil {
			log.Printf("discarding corrupt cart snapshot under %q: %v", key, err)
			s.cart = models.Cart{}
		}
	} else if err != storage.ErrNotFound {
		log.Printf("failed to load cart from storage: %v", err)
	}
	// Restore the invariant in case the snapshot predates a price fix.
	s.cart.RecalculateSubtotal()
	return s
}

// Snapshot returns a defensive copy of the current cart.
func (s *CartStore) Snapshot() models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Clone()
}

// ItemCount sums all line quantities, used for the header badge.
func (s *CartStore) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.ItemCount()
}

// AddLine appends a new line with a freshly generated id. The unit price
// is the base price for the requested size plus the added topping prices,
// computed once here and never recomputed afterward. When the item has no
// price for the size the call is a silent no-op (data-integrity guard,
// not a user-facing error) and ok is false.
func (s *CartStore) AddLine(item models.MenuItem, size models.Size, addedToppings []models.Topping, removedIngredients []string) (models.CartLine, bool) {
	basePrice, ok := item.Prices.ForSize(size)
	if !ok {
		return models.CartLine{}, false
	}

	toppingsPrice := 0.0
	for _, t := range addedToppings {
		toppingsPrice += t.Price
	}

	line := models.CartLine{
		ID:                 cuid.New(),
		Item:               item,
		Size:               size,
		Quantity:           1,
		AddedToppings:      append([]models.Topping(nil), addedToppings...),
		RemovedIngredients: append([]string(nil), removedIngredients...),
		UnitPrice:          models.RoundMoney(basePrice + toppingsPrice),
	}

	s.mu.Lock()
	s.cart.Lines = append(s.cart.Lines, line)
	s.cart.RecalculateSubtotal()
	s.persistLocked()
	s.mu.Unlock()

	s.listeners.Notify()
	return line.Clone(), true
}

// SetQuantity updates the quantity of the matching line. A quantity of
// zero or less removes the line. Unknown ids are a no-op.
func (s *CartStore) SetQuantity(lineID string, quantity int) {
	if quantity <= 0 {
		s.RemoveLine(lineID)
		return
	}

	s.mu.Lock()
	found := false
	for i := range s.cart.Lines {
		if s.cart.Lines[i].ID == lineID {
			s.cart.Lines[i].Quantity = quantity
			found = true
			break
		}
	}
	if !found {
		s.mu.Unlock()
		return
	}
	s.cart.RecalculateSubtotal()
	s.persistLocked()
	s.mu.Unlock()

	s.listeners.Notify()
}

// RemoveLine deletes the matching line. Unknown ids are a no-op.
func (s *CartStore) RemoveLine(lineID string) {
	s.mu.Lock()
	found := false
	for i, line := range s.cart.Lines {
		if line.ID == lineID {
			s.cart.Lines = append(s.cart.Lines[:i], s.cart.Lines[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		s.mu.Unlock()
		return
	}
	s.cart.RecalculateSubtotal()
	s.persistLocked()
	s.mu.Unlock()

	s.listeners.Notify()
}

// Clear resets to an empty cart.
func (s *CartStore) Clear() {
	s.mu.Lock()
	s.cart = models.Cart{}
	s.persistLocked()
	s.mu.Unlock()

	s.listeners.Notify()
}

// Subscribe registers a callback invoked after every successful mutation
// and returns its idempotent unsubscribe function. Subscribing does not
// trigger an initial notification; call Snapshot for the first render.
func (s *CartStore) Subscribe(fn func()) func() {
	return s.listeners.Subscribe(fn)
}

// persistLocked serializes the full cart under the store key. Storage
// failures are logged, never propagated to the mutating caller.
func (s *CartStore) persistLocked() {
	data, err := json.Marshal(s.cart)
	if err != nil {
		log.Printf("failed to serialize cart: %v", err)
		return
	}
	if err := s.storage.Set(s.key, data); err != nil {
		log.Printf("failed to save cart to storage: %v", err)
	}
}
