// Package store holds the reactive state containers at the heart of the
// storefront: the cart and the delivery address. Every mutation persists
// the new snapshot and then synchronously notifies subscribers, which
// re-read the store themselves; no payload is passed.
package store

import (
	"log"
	"sync"
)

// Listeners is the subscribe/notify contract shared by all stores:
// callbacks fire synchronously in registration order, subscribing never
// triggers an initial notification, and the returned unsubscribe function
// is idempotent. The zero value is ready to use.
type Listeners struct {
	mu     sync.Mutex
	nextID int
	subs   []listenerEntry
}

type listenerEntry struct {
	id int
	fn func()
}

func (s *Listeners) Subscribe(fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, listenerEntry{id: id, fn: fn})
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, entry := range s.subs {
			if entry.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// Notify invokes every currently registered listener. Each call is
// isolated: a panicking listener is logged and must not prevent the
// remaining listeners from running.
func (s *Listeners) Notify() {
	s.mu.Lock()
	subs := make([]listenerEntry, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, entry := range subs {
		callListener(entry.fn)
	}
}

func callListener(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("store listener panicked: %v", r)
		}
	}()
	fn()
}
