package web

import (
	"context"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"kelasboard/internal/livesync"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// the dashboard is served same-origin; the relay takes any origin so a
	// reverse proxy in front does not break it
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Hub relays synchronizer state snapshots to every connected browser.
type Hub struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

// NewHub builds an empty relay.
func NewHub() *Hub {
	return &Hub{conns: make(map[*websocket.Conn]struct{})}
}

// Run consumes the state feed until ctx is cancelled, pushing every snapshot
// to all connections. A failed write drops that connection only.
func (h *Hub) Run(ctx context.Context, states <-chan livesync.State) {
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return
		case st, ok := <-states:
			if !ok {
				h.closeAll()
				return
			}
			h.broadcast(st)
		}
	}
}

func (h *Hub) broadcast(st livesync.State) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		if err := conn.WriteJSON(st); err != nil {
			_ = conn.Close()
			delete(h.conns, conn)
		}
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		_ = conn.Close()
		delete(h.conns, conn)
	}
}

// Serve upgrades the request and keeps the connection registered until the
// browser goes away. Reads are discarded; the relay is one-way.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	h.mu.Lock()
	h.conns[conn] = struct{}{}
	h.mu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	h.mu.Lock()
	delete(h.conns, conn)
	h.mu.Unlock()
	_ = conn.Close()
}
