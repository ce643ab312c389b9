package services

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/housielive/housie-backend/utils/logger"
)

// RoomName is the registry key for one (game, round) room.
func RoomName(gameID uint, roundID int) string {
	return fmt.Sprintf("game_%d_round_%d", gameID, roundID)
}

// Hub is the room registry: room name → set of joined clients. Join, Leave
// and Publish are the only mutators. Publishing marshals the event once and
// writes it to each client's send channel; a client whose channel is full
// has the message dropped rather than blocking the room.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*Client]bool
}

func NewHub() *Hub {
	return &Hub{rooms: make(map[string]map[*Client]bool)}
}

func (h *Hub) Join(room string, c *Client) {
	h.mu.Lock()
	clients, ok := h.rooms[room]
	if !ok {
		clients = make(map[*Client]bool)
		h.rooms[room] = clients
	}
	clients[c] = true
	total := len(clients)
	h.mu.Unlock()

	logger.Infof("[%s] client joined (total=%d)", room, total)
}

func (h *Hub) Leave(room string, c *Client) {
	h.mu.Lock()
	if clients, ok := h.rooms[room]; ok {
		delete(clients, c)
		if len(clients) == 0 {
			delete(h.rooms, room)
		}
	}
	h.mu.Unlock()
}

// Publish delivers an event to every client currently in the room,
// at most once per client.
func (h *Hub) Publish(room string, event interface{}) {
	b, err := json.Marshal(event)
	if err != nil {
		logger.Errorf("[%s] marshal broadcast: %v", room, err)
		return
	}

	h.mu.RLock()
	clients := make([]*Client, 0, len(h.rooms[room]))
	for c := range h.rooms[room] {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		select {
		case c.send <- b:
		default:
			logger.Warnf("[%s] dropping message to slow client", room)
		}
	}
}

// Count returns the number of clients joined to a room.
func (h *Hub) Count(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[room])
}
