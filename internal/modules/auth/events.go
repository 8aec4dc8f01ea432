package auth

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	maxMsgSize = 4 * 1024
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true }, // configure in prod
}

// Event is an auth-state change pushed to a user's open sessions, so a
// sign-out in one tab is seen by the others.
type Event struct {
	Type   string    `json:"type"`
	UserID string    `json:"user_id"`
	At     time.Time `json:"at"`
}

const (
	EventSignedIn  = "signed_in"
	EventSignedOut = "signed_out"
)

// connection represents a single WebSocket listener
type connection struct {
	userID string
	conn   *websocket.Conn
	send   chan []byte
}

// Hub manages all active auth-event listeners
type Hub struct {
	mu          sync.RWMutex
	connections map[*connection]bool
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[*connection]bool),
	}
}

func (h *Hub) register(c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.connections[c] = true
}

func (h *Hub) unregister(c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.connections[c] {
		delete(h.connections, c)
		close(c.send)
	}
}

// BroadcastToUser delivers an event to every open session of one user.
func (h *Hub) BroadcastToUser(userID string, event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.connections {
		if c.userID != userID {
			continue
		}
		select {
		case c.send <- data:
		default:
			// listener too slow, skip
		}
	}
}

// ServeWS registers a new listener and starts read/write loops
func (h *Hub) ServeWS(conn *websocket.Conn, userID string) {
	c := &connection{
		userID: userID,
		conn:   conn,
		send:   make(chan []byte, 16),
	}

	h.register(c)

	go h.writePump(c)
	h.readPump(c) // blocks until disconnect
}

func (h *Hub) readPump(c *connection) {
	defer func() {
		h.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMsgSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	// Listeners never send application messages; the loop only keeps the
	// connection alive until close or error.
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(c *connection) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
