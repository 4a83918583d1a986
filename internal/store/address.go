package store

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/lapuropizza/storefront/internal/models"
	"github.com/lapuropizza/storefront/internal/storage"
)

// AddressStore holds at most one resolved delivery address. It is a pure
// state container: eligibility resolution happens elsewhere and lands
// here through SetAddress.
type AddressStore struct {
	mu        sync.Mutex
	storage   storage.Store
	key       string
	address   *models.DeliveryAddress
	listeners Listeners
}

// NewAddressStore loads the persisted address under key from st, falling
// back to none on absence or corruption.
func NewAddressStore(st storage.Store, key string) *AddressStore {
	s := &AddressStore{storage: st, key: key}
	data, err := st.Get(key)
	if err == nil {
		var addr models.DeliveryAddress
		if err := json.Unmarshal(data, &addr); err != nil {
			log.Printf("discarding corrupt address snapshot under %q: %v", key, err)
		} else {
			s.address = &addr
		}
	} else if err != storage.ErrNotFound {
		log.Printf("failed to load address from storage: %v", err)
	}
	return s
}

// Address returns a copy of the current address, or nil when none is set.
func (s *AddressStore) Address() *models.DeliveryAddress {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.address == nil {
		return nil
	}
	addr := *s.address
	return &addr
}

// SetAddress replaces the current address. A non-nil address is persisted
// under the store key; nil removes the persisted key. Subscribers are
// notified either way.
func (s *AddressStore) SetAddress(address *models.DeliveryAddress) {
	s.mu.Lock()
	if address == nil {
		s.address = nil
		if err := s.storage.Delete(s.key); err != nil {
			log.Printf("failed to remove address from storage: %v", err)
		}
	} else {
		addr := *address
		s.address = &addr
		if data, err := json.Marshal(addr); err != nil {
			log.Printf("failed to serialize address: %v", err)
		} else if err := s.storage.Set(s.key, data); err != nil {
			log.Printf("failed to save address to storage: %v", err)
		}
	}
	s.mu.Unlock()

	s.listeners.Notify()
}

// Clear is equivalent to SetAddress(nil).
func (s *AddressStore) Clear() {
	s.SetAddress(nil)
}

// Subscribe registers a callback invoked after every SetAddress or Clear
// and returns its idempotent unsubscribe function.
func (s *AddressStore) Subscribe(fn func()) func() {
	return s.listeners.Subscribe(fn)
}
