package server

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/lucsky/cuid"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// changeEvent tells the client which store changed. It carries no state;
// the client re-reads through the REST API, same as an in-process
// subscriber re-reads through Snapshot.
type changeEvent struct {
	Store string `json:"store"`
}

const (
	wsWriteTimeout = 10 * time.Second
	wsPingInterval = 30 * time.Second
)

// handleWebsocket streams change notifications for the session's stores.
// Store callbacks must never block, so they only enqueue; a dropped event
// is fine because the client re-reads full state anyway.
func (s *Server) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	// The upgrade bypasses the normal response writer, so a first-contact
	// session cookie has to travel in the handshake response.
	var responseHeader http.Header
	var sess *Session
	if cookie, err := r.Cookie(sessionCookie); err == nil && cookie.Value != "" {
		sess = s.sessions.Get(cookie.Value)
	} else {
		id := cuid.New()
		sess = s.sessions.Get(id)
		c := http.Cookie{
			Name:     sessionCookie,
			Value:    id,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
			Expires:  time.Now().Add(30 * 24 * time.Hour),
		}
		responseHeader = http.Header{"Set-Cookie": []string{c.String()}}
	}

	conn, err := upgrader.Upgrade(w, r, responseHeader)
	if err != nil {
		log.Printf("Websocket upgrade failed: %v", err)
		return
	}

	events := make(chan changeEvent, 16)
	enqueue := func(name string) func() {
		return func() {
			select {
			case events <- changeEvent{Store: name}:
			default:
			}
		}
	}
	unsubCart := sess.Cart.Subscribe(enqueue("cart"))
	unsubAddr := sess.Address.Subscribe(enqueue("address"))
	unsubLang := sess.Language.Subscribe(enqueue("language"))

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(wsPingInterval)
	defer func() {
		ticker.Stop()
		unsubCart()
		unsubAddr()
		unsubLang()
		conn.Close()
	}()

	for {
		select {
		case event := <-events:
			conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
			if err := conn.WriteJSON(event); err != nil {
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
