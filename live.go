package covidabm

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// LiveDashboard broadcasts one JSON-encoded TickSnapshot to every
// connected client per tick, the push-on-tick design used by the
// realtime training-view server in the retrieved pack
// (niceyeti-tabular/server/server.go), simplified here to one message
// type instead of a cell-diff view model.
type LiveDashboard struct {
	upgrader websocket.Upgrader
	mu       sync.Mutex
	clients  map[*websocket.Conn]bool
}

// NewLiveDashboard constructs an empty dashboard with no connected
// clients.
func NewLiveDashboard() *LiveDashboard {
	return &LiveDashboard{
		upgrader: websocket.Upgrader{},
		clients:  make(map[*websocket.Conn]bool),
	}
}

// ServeHTTP upgrades the connection and registers it for broadcast.
func (d *LiveDashboard) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := d.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("live dashboard upgrade failed: %v", err)
		return
	}
	d.mu.Lock()
	d.clients[conn] = true
	d.mu.Unlock()
}

// Broadcast pushes one tick's snapshot to every connected client,
// dropping any connection that errors on write.
func (d *LiveDashboard) Broadcast(snap TickSnapshot) {
	payload, err := json.Marshal(snap)
	if err != nil {
		log.Printf("live dashboard marshal failed: %v", err)
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	for conn := range d.clients {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			conn.Close()
			delete(d.clients, conn)
		}
	}
}
