package notification

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

type EventType string

const (
	EventJobCreated          EventType = "job.created"
	EventJobStatusChanged    EventType = "job.status_changed"
	EventPaymentRecorded     EventType = "payment.recorded"
	EventInvoicePaid         EventType = "invoice.paid"
	EventDeliverableUnlocked EventType = "deliverable.unlocked"
)

// Event is pushed to every open dashboard connection of the owning account.
type Event struct {
	Type EventType      `json:"type"`
	At   time.Time      `json:"at"`
	Data map[string]any `json:"data,omitempty"`
}

// Hub tracks one websocket connection per account. A newer connection
// replaces an older one.
type Hub struct {
	connections map[string]*websocket.Conn
	mutex       sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[string]*websocket.Conn),
	}
}

func (h *Hub) Register(accountID string, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if oldConn, exists := h.connections[accountID]; exists && oldConn != nil {
		_ = oldConn.Close()
	}

	h.connections[accountID] = conn
}

func (h *Hub) Unregister(accountID string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if conn, exists := h.connections[accountID]; exists && conn != nil {
		_ = conn.Close()
		delete(h.connections, accountID)
	}
}

// Publish sends the event to the account's connection, if any. A write
// failure drops the connection; delivery is best effort.
func (h *Hub) Publish(accountID string, t EventType, data map[string]any) bool {
	h.mutex.RLock()
	conn, exists := h.connections[accountID]
	h.mutex.RUnlock()

	if !exists || conn == nil {
		return false
	}

	ev := Event{Type: t, At: time.Now().UTC(), Data: data}
	if err := conn.WriteJSON(ev); err != nil {
		h.Unregister(accountID)
		return false
	}

	return true
}

func (h *Hub) IsOnline(accountID string) bool {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	_, exists := h.connections[accountID]
	return exists
}

func (h *Hub) OnlineCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.connections)
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for accountID, conn := range h.connections {
		if conn != nil {
			_ = conn.Close()
		}
		delete(h.connections, accountID)
	}
}
