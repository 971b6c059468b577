package websocket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Message is the envelope every event is broadcast in
type Message struct {
	Type      string          `json:"type"`
	Timestamp time.Time       `json:"timestamp"`
	Data      json.RawMessage `json:"data"`
}

// Client represents a connected WebSocket client
type Client struct {
	ID          string
	Connection  *websocket.Conn
	Send        chan []byte
	ConnectedAt time.Time
	RemoteAddr  string
}

// Hub fans domain events out to every connected client
type Hub struct {
	clients    map[string]*Client
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	upgrader   websocket.Upgrader
	mu         sync.RWMutex
	logger     *zap.Logger
}

// NewHub creates a hub ready to Run
func NewHub(logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		clients:    make(map[string]*Client),
		broadcast:  make(chan []byte, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		logger: logger,
	}
}

// Run processes register/unregister/broadcast events until the process
// exits. Meant to be started as a goroutine from main.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			h.mu.Unlock()
			h.logger.Info("client connected",
				zap.String("client_id", client.ID),
				zap.String("remote_addr", client.RemoteAddr))

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.ID]; ok {
				delete(h.clients, client.ID)
				close(client.Send)
			}
			h.mu.Unlock()
			h.logger.Info("client disconnected", zap.String("client_id", client.ID))

		case payload := <-h.broadcast:
			h.mu.Lock()
			for id, client := range h.clients {
				select {
				case client.Send <- payload:
				default:
					// Slow consumer, drop it.
					delete(h.clients, id)
					close(client.Send)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Publish implements the services.Publisher contract: wraps the data in
// a typed envelope and broadcasts it.
func (h *Hub) Publish(eventType string, data interface{}) {
	raw, err := json.Marshal(data)
	if err != nil {
		h.logger.Error("failed to marshal event data",
			zap.String("type", eventType), zap.Error(err))
		return
	}
	payload, err := json.Marshal(Message{
		Type:      eventType,
		Timestamp: time.Now(),
		Data:      raw,
	})
	if err != nil {
		h.logger.Error("failed to marshal event envelope",
			zap.String("type", eventType), zap.Error(err))
		return
	}

	select {
	case h.broadcast <- payload:
	default:
		h.logger.Warn("broadcast buffer full, event dropped",
			zap.String("type", eventType))
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// HandleConnection upgrades an HTTP request to a websocket and pumps
// outgoing events to it.
func (h *Hub) HandleConnection(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", zap.Error(err))
		return
	}

	client := &Client{
		ID:          fmt.Sprintf("%s-%d", r.RemoteAddr, time.Now().UnixNano()),
		Connection:  conn,
		Send:        make(chan []byte, 16),
		ConnectedAt: time.Now(),
		RemoteAddr:  r.RemoteAddr,
	}

	h.register <- client

	go client.writePump()
	go client.readPump(h)
}

func (c *Client) writePump() {
	ticker := time.NewTicker(30 * time.Second)
	defer func() {
		ticker.Stop()
		c.Connection.Close()
	}()

	for {
		select {
		case payload, ok := <-c.Send:
			if !ok {
				c.Connection.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Connection.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			if err := c.Connection.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump discards inbound frames; the hub is broadcast-only. Reading
// is still required to process control frames and detect closure.
func (c *Client) readPump(h *Hub) {
	defer func() {
		h.unregister <- c
		c.Connection.Close()
	}()
	c.Connection.SetReadLimit(512)
	for {
		if _, _, err := c.Connection.ReadMessage(); err != nil {
			return
		}
	}
}
