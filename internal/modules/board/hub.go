package board

import (
	"sync"

	"hotelops/internal/domain"

	"github.com/gorilla/websocket"
)

// Event is the envelope pushed to connected front-desk clients.
type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

const (
	EventRoomStatus  = "room_status"
	EventReservation = "reservation"
)

// Hub fans room and reservation events out to every connected staff client.
// One connection per user; a reconnect replaces the old socket.
type Hub struct {
	connections map[int64]*websocket.Conn
	mutex       sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[int64]*websocket.Conn),
	}
}

func (h *Hub) Register(userID int64, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if oldConn, exists := h.connections[userID]; exists && oldConn != nil {
		_ = oldConn.Close()
	}
	h.connections[userID] = conn
}

func (h *Hub) Unregister(userID int64) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if conn, exists := h.connections[userID]; exists && conn != nil {
		_ = conn.Close()
		delete(h.connections, userID)
	}
}

// Broadcast writes the event to every client, dropping any connection that
// fails mid-write.
func (h *Hub) Broadcast(event Event) {
	h.mutex.RLock()
	conns := make(map[int64]*websocket.Conn, len(h.connections))
	for id, c := range h.connections {
		conns[id] = c
	}
	h.mutex.RUnlock()

	for id, conn := range conns {
		if err := conn.WriteJSON(event); err != nil {
			h.Unregister(id)
		}
	}
}

// NotifyRoomStatus implements the roomstatus.BoardNotifier interface.
func (h *Hub) NotifyRoomStatus(room *domain.Room) {
	h.Broadcast(Event{Type: EventRoomStatus, Data: room})
}

// NotifyReservation implements the reservation.BoardNotifier interface.
func (h *Hub) NotifyReservation(r *domain.Reservation) {
	h.Broadcast(Event{Type: EventReservation, Data: r})
}

func (h *Hub) OnlineCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.connections)
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for id, conn := range h.connections {
		if conn != nil {
			_ = conn.Close()
		}
		delete(h.connections, id)
	}
}
