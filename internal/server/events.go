package server

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ayusman/mudra/internal/app"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow local connections
	},
}

// EventHub pushes pipeline events to websocket clients. The recognition
// pipeline is the single producer; the hub never reads the camera or runs
// detection itself.
type EventHub struct {
	snapshot func() app.Event
	mu       sync.RWMutex
	clients  map[*websocket.Conn]bool
}

// NewEventHub creates an EventHub. snapshot, if non-nil, supplies the
// state event sent to each client on connect.
func NewEventHub(snapshot func() app.Event) *EventHub {
	return &EventHub{
		snapshot: snapshot,
		clients:  make(map[*websocket.Conn]bool),
	}
}

// Publish broadcasts an event to all connected clients. Safe to use as an
// application OnEvent callback. The exclusive lock serializes writers;
// websocket connections permit only one at a time.
func (h *EventHub) Publish(e app.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.clients) == 0 {
		return
	}

	msg, err := json.Marshal(e)
	if err != nil {
		return
	}

	for conn := range h.clients {
		conn.WriteMessage(websocket.TextMessage, msg)
	}
}

// ClientCount reports the number of connected clients.
func (h *EventHub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// ServeHTTP handles WebSocket upgrade requests.
func (h *EventHub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	if h.snapshot != nil {
		e := h.snapshot()
		e.Timestamp = time.Now().UnixMilli()
		if msg, err := json.Marshal(e); err == nil {
			conn.WriteMessage(websocket.TextMessage, msg)
		}
	}

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		h.mu.Unlock()
	}()

	// Keep connection alive by reading messages
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
