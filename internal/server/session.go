package server

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/lucsky/cuid"

	"github.com/lapuropizza/storefront/internal/i18n"
	"github.com/lapuropizza/storefront/internal/models"
	"github.com/lapuropizza/storefront/internal/storage"
	"github.com/lapuropizza/storefront/internal/store"
)

const sessionCookie = "storefront_session"

// Session bundles one visitor's stores. Store instances are per-session
// singletons so every request and websocket for the same visitor observes
// the same state and notifications.
type Session struct {
	ID       string
	Cart     *store.CartStore
	Address  *store.AddressStore
	Language *i18n.LanguageStore
}

// SessionManager hands out sessions backed by the shared storage with
// keys namespaced per session, so a file-backed deployment survives a
// restart without mixing visitors' carts.
type SessionManager struct {
	mu       sync.Mutex
	storage  storage.Store
	sessions map[string]*Session
}

func NewSessionManager(st storage.Store) *SessionManager {
	return &SessionManager{storage: st, sessions: make(map[string]*Session)}
}

func (m *SessionManager) Get(id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[id]; ok {
		return s
	}
	s := &Session{
		ID:       id,
		Cart:     store.NewCartStore(m.storage, sessionKey(id, models.CartStorageKey)),
		Address:  store.NewAddressStore(m.storage, sessionKey(id, models.AddressStorageKey)),
		Language: i18n.NewLanguageStore(m.storage, sessionKey(id, models.LanguageStorageKey)),
	}
	m.sessions[id] = s
	return s
}

func (m *SessionManager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

func sessionKey(sessionID, key string) string {
	return fmt.Sprintf("s:%s:%s", sessionID, key)
}

// session resolves the request's session, issuing a cookie on first
// contact.
func (s *Server) session(w http.ResponseWriter, r *http.Request) *Session {
	if cookie, err := r.Cookie(sessionCookie); err == nil && cookie.Value != "" {
		return s.sessions.Get(cookie.Value)
	}

	id := cuid.New()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(30 * 24 * time.Hour),
	})
	return s.sessions.Get(id)
}
