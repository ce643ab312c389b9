package services

import (
	"encoding/json"
	"errors"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/housielive/housie-backend/game"
	"github.com/housielive/housie-backend/models"
	"github.com/housielive/housie-backend/utils/logger"
)

type inboundMessage struct {
	Action string `json:"action"`
}

type numberCalledEvent struct {
	Type          string `json:"type"`
	Number        int    `json:"number"`
	CalledNumbers []int  `json:"called_numbers"`
}

type winnersAnnouncedEvent struct {
	Type    string              `json:"type"`
	Winners []game.Announcement `json:"winners"`
}

type calledNumbersEvent struct {
	Type          string `json:"type"`
	CalledNumbers []int  `json:"called_numbers"`
}

type allWinnersEvent struct {
	Type       string              `json:"type"`
	AllWinners []game.RoundWinView `json:"all_winners"`
}

type errorEvent struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Client is one live connection joined to a (game, round) room.
type Client struct {
	socket  *GameSocket
	user    *models.User
	gameID  uint
	roundID int
	room    string
	conn    *websocket.Conn
	send    chan []byte
	once    sync.Once
}

func (c *Client) Close() {
	c.once.Do(func() {
		close(c.send)
		c.conn.Close()
	})
}

// readPump consumes inbound messages until the connection drops. A dropped
// connection only leaves the room; operations already admitted to the round
// lock run to completion.
func (c *Client) readPump() {
	defer func() {
		c.socket.hub.Leave(c.room, c)
		c.Close()
	}()

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Debugf("[%s] user %d disconnected", c.room, c.user.ID)
			} else {
				logger.Warnf("[%s] user %d read error: %v", c.room, c.user.ID, err)
			}
			return
		}
		c.dispatch(message)
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			logger.Warnf("[%s] user %d write error: %v", c.room, c.user.ID, err)
			return
		}
	}
}

func (c *Client) dispatch(message []byte) {
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf("[%s] user %d recovered from panic: %v", c.room, c.user.ID, r)
		}
	}()

	var msg inboundMessage
	if err := json.Unmarshal(message, &msg); err != nil {
		c.sendError("Invalid JSON")
		return
	}

	switch msg.Action {
	case "generate_number":
		c.handleGenerateNumber()
	case "get_called_numbers":
		c.handleGetCalledNumbers()
	case "check_winners":
		c.handleCheckWinners()
	default:
		c.sendError("Unknown action")
	}
}

// handleGenerateNumber draws a number, then broadcasts the call and any
// winner announcements to the room. Errors go back to the requester only,
// with no state mutated and nothing broadcast.
func (c *Client) handleGenerateNumber() {
	var g models.Game
	if err := c.socket.db.First(&g, c.gameID).Error; err != nil {
		c.sendError("Game not found")
		return
	}
	if !game.HasCallerRole(c.user, &g) {
		c.sendError("Only the game creator can generate numbers")
		return
	}

	result, err := c.socket.caller.CallNumber(c.gameID, c.roundID)
	if err != nil {
		switch {
		case errors.Is(err, game.ErrGameNotFound),
			errors.Is(err, game.ErrGameNotOngoing),
			errors.Is(err, game.ErrRoundNotFound),
			errors.Is(err, game.ErrNumbersExhausted):
			c.sendError(err.Error())
		default:
			logger.Errorf("[%s] call number: %v", c.room, err)
			c.sendError("Failed to generate number, please retry")
		}
		return
	}

	c.socket.hub.Publish(c.room, numberCalledEvent{
		Type:          "number_called",
		Number:        result.Number,
		CalledNumbers: result.CalledNumbers,
	})
	if len(result.Announcements) > 0 {
		c.socket.hub.Publish(c.room, winnersAnnouncedEvent{
			Type:    "winners_announced",
			Winners: result.Announcements,
		})
	}
}

func (c *Client) handleGetCalledNumbers() {
	numbers, err := c.socket.caller.CalledNumbers(c.gameID, c.roundID)
	if err != nil {
		c.sendError(err.Error())
		return
	}
	if numbers == nil {
		numbers = []int{}
	}
	c.sendEvent(calledNumbersEvent{Type: "called_numbers", CalledNumbers: numbers})
}

func (c *Client) handleCheckWinners() {
	winners, err := game.AllWinners(c.socket.db, c.gameID)
	if err != nil {
		logger.Errorf("[%s] list winners: %v", c.room, err)
		c.sendError("Failed to fetch winners")
		return
	}
	c.sendEvent(allWinnersEvent{Type: "all_winners", AllWinners: winners})
}

func (c *Client) sendEvent(event interface{}) {
	b, err := json.Marshal(event)
	if err != nil {
		logger.Errorf("[%s] marshal event: %v", c.room, err)
		return
	}
	select {
	case c.send <- b:
	default:
		logger.Warnf("[%s] dropping reply to user %d", c.room, c.user.ID)
	}
}

func (c *Client) sendError(message string) {
	c.sendEvent(errorEvent{Type: "error", Message: message})
}
