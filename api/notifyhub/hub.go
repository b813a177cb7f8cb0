package notifyhub

import (
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gorilla/websocket"

	"github.com/moyoez/katana/tool"
	"github.com/moyoez/katana/types"
)

const writeWait = 2 * time.Second

// Hub holds WebSocket connections and mirrors every notification to them.
// Implements notify.Broadcaster.
type Hub struct {
	mu    sync.RWMutex
	conns map[*websocket.Conn]*sync.Mutex
}

// New creates a new notify hub.
func New() *Hub {
	return &Hub{
		conns: make(map[*websocket.Conn]*sync.Mutex),
	}
}

// Register adds a WebSocket connection to the hub.
func (h *Hub) Register(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[conn] = &sync.Mutex{}
}

// Unregister removes a WebSocket connection from the hub.
func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, conn)
}

// Count returns the number of connected clients.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}

// Broadcast sends the notification as JSON to all registered connections.
func (h *Hub) Broadcast(notification *types.Notification) {
	if notification == nil {
		return
	}
	payload, err := sonic.Marshal(notification)
	if err != nil {
		tool.DefaultLogger.Warnf("[Notify] failed to encode mirror payload: %v", err)
		return
	}

	type target struct {
		conn *websocket.Conn
		mu   *sync.Mutex
	}
	h.mu.RLock()
	targets := make([]target, 0, len(h.conns))
	for c, mu := range h.conns {
		targets = append(targets, target{c, mu})
	}
	h.mu.RUnlock()

	for _, t := range targets {
		// gorilla connections allow one concurrent writer
		t.mu.Lock()
		_ = t.conn.SetWriteDeadline(time.Now().Add(writeWait))
		err := t.conn.WriteMessage(websocket.TextMessage, payload)
		t.mu.Unlock()
		if err != nil {
			tool.DefaultLogger.Debugf("[Notify] dropping websocket client: %v", err)
			h.Unregister(t.conn)
		}
	}
}
