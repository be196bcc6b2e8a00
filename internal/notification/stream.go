package notification

import (
	"log"
	"net/http"
	"sync"

	"photomarket/pkg/jwt"
	"photomarket/pkg/res"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(*http.Request) bool { return true },
}

// Hub pushes notifications to connected WebSocket clients as they arrive
// off the event topic. Delivery is best-effort: a slow or broken client is
// dropped, the durable row is still in Postgres.
type Hub struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]string
}

func NewHub() *Hub {
	return &Hub{conns: make(map[*websocket.Conn]string)}
}

func (h *Hub) Handler(j *jwt.JWT) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tok := r.URL.Query().Get("token")
		valid, data := j.Parse(tok)
		if !valid || data == nil {
			res.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("[stream] upgrade failed: %v", err)
			return
		}
		h.add(conn, data.UserID)
		go h.readLoop(conn)
	}
}

func (h *Hub) add(conn *websocket.Conn, userID string) {
	h.mu.Lock()
	h.conns[conn] = userID
	h.mu.Unlock()
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.conns, conn)
	h.mu.Unlock()
	_ = conn.Close()
}

// readLoop drains control frames and detects disconnects; clients never
// send data frames.
func (h *Hub) readLoop(conn *websocket.Conn) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.remove(conn)
			return
		}
	}
}

func (h *Hub) Broadcast(n Notification) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn, userID := range h.conns {
		if userID != n.UserID {
			continue
		}
		if err := conn.WriteJSON(n); err != nil {
			delete(h.conns, conn)
			_ = conn.Close()
		}
	}
}
