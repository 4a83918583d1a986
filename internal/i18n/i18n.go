// Package i18n holds the UI language preference. Translation content and
// string lookup live in the client; the server only remembers the choice.
package i18n

import (
	"log"
	"sync"

	"github.com/lapuropizza/storefront/internal/models"
	"github.com/lapuropizza/storefront/internal/storage"
	"github.com/lapuropizza/storefront/internal/store"
)

// Supported reports whether lang is a language the storefront ships.
func Supported(lang string) bool {
	return lang == models.LanguageGerman || lang == models.LanguageEnglish
}

// LanguageStore persists the language preference under a fixed key and
// follows the same subscribe/notify contract as the cart and address
// stores. The default language is German.
type LanguageStore struct {
	mu        sync.Mutex
	storage   storage.Store
	key       string
	language  string
	listeners store.Listeners
}

func NewLanguageStore(st storage.Store, key string) *LanguageStore {
	s := &LanguageStore{storage: st, key: key, language: models.LanguageGerman}
	data, err := st.Get(key)
	if err == nil {
		if saved := string(data); Supported(saved) {
			s.language = saved
		}
	} else if err != storage.ErrNotFound {
		log.Printf("failed to load language from storage: %v", err)
	}
	return s
}

func (s *LanguageStore) Language() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.language
}

// SetLanguage switches the preference. Unsupported values and the current
// language are no-ops; only an actual change persists and notifies.
func (s *LanguageStore) SetLanguage(lang string) {
	if !Supported(lang) {
		return
	}
	s.mu.Lock()
	if lang == s.language {
		s.mu.Unlock()
		return
	}
	s.language = lang
	if err := s.storage.Set(s.key, []byte(lang)); err != nil {
		log.Printf("failed to save language to storage: %v", err)
	}
	s.mu.Unlock()

	s.listeners.Notify()
}

// Toggle flips between German and English.
func (s *LanguageStore) Toggle() {
	if s.Language() == models.LanguageGerman {
		s.SetLanguage(models.LanguageEnglish)
	} else {
		s.SetLanguage(models.LanguageGerman)
	}
}

func (s *LanguageStore) Subscribe(fn func()) func() {
	return s.listeners.Subscribe(fn)
}
