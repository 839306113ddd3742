package notify

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"crop-advisory-service/internal/models"
)

const maxConnectionsPerFarmer = 10

// EventHub fans delivery-attempt outcomes out to WebSocket subscribers, keyed
// by farmer ID.
type EventHub struct {
	connections map[int]map[*websocket.Conn]bool
	mutex       sync.Mutex
	logger      *logrus.Logger
}

// NewEventHub builds an empty hub.
func NewEventHub(logger *logrus.Logger) *EventHub {
	return &EventHub{
		connections: make(map[int]map[*websocket.Conn]bool),
		logger:      logger,
	}
}

// AddConnection registers a subscriber connection for a farmer.
func (h *EventHub) AddConnection(farmerID int, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	if _, exists := h.connections[farmerID]; !exists {
		h.connections[farmerID] = make(map[*websocket.Conn]bool)
	}
	if len(h.connections[farmerID]) >= maxConnectionsPerFarmer {
		h.logger.Warnf("Max connections reached for farmer %d", farmerID)
		return
	}
	h.connections[farmerID][conn] = true
	h.logger.Infof("Added WebSocket connection for farmer %d (total: %d)", farmerID, len(h.connections[farmerID]))
}

// RemoveConnection drops a subscriber connection.
func (h *EventHub) RemoveConnection(farmerID int, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	if conns, exists := h.connections[farmerID]; exists {
		delete(conns, conn)
		if len(conns) == 0 {
			delete(h.connections, farmerID)
		}
		h.logger.Infof("Removed WebSocket connection for farmer %d (remaining: %d)", farmerID, len(conns))
	}
}

// Publish sends an attempt record to every connection of the farmer. Broken
// connections are dropped.
func (h *EventHub) Publish(farmerID int, attempt models.NotificationAttempt) {
	payload, err := json.Marshal(attempt)
	if err != nil {
		h.logger.Errorf("Failed to encode delivery event: %v", err)
		return
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()
	conns, exists := h.connections[farmerID]
	if !exists {
		return
	}
	for conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			h.logger.Errorf("Failed to send delivery event to farmer %d: %v", farmerID, err)
			delete(conns, conn)
		}
	}
	if len(conns) == 0 {
		delete(h.connections, farmerID)
	}
}
