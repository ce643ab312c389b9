package services

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"gorm.io/gorm"

	"github.com/housielive/housie-backend/game"
	"github.com/housielive/housie-backend/middleware"
	"github.com/housielive/housie-backend/utils/logger"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// GameSocket owns the realtime side: the room hub and the number caller.
type GameSocket struct {
	db     *gorm.DB
	hub    *Hub
	caller *game.Caller
	secret string
}

func NewGameSocket(db *gorm.DB, secret string) *GameSocket {
	locks := game.NewRoundLocks()
	return &GameSocket{
		db:     db,
		hub:    NewHub(),
		caller: game.NewCaller(db, locks),
		secret: secret,
	}
}

// Handle upgrades /ws/game/:game_id/round/:round_id. Unauthenticated
// connections are rejected before the upgrade completes.
func (s *GameSocket) Handle(c *gin.Context) {
	gameID, err := strconv.ParseUint(c.Param("game_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game id"})
		return
	}
	roundID, err := strconv.Atoi(c.Param("round_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid round id"})
		return
	}

	token := c.Query("token")
	if token == "" {
		token = strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	}
	user, err := middleware.AuthenticateUser(s.db, token, s.secret)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warnf("[WS] upgrade error: %v", err)
		return
	}

	client := &Client{
		socket:  s,
		user:    user,
		gameID:  uint(gameID),
		roundID: roundID,
		room:    RoomName(uint(gameID), roundID),
		conn:    conn,
		send:    make(chan []byte, 32),
	}

	s.hub.Join(client.room, client)
	go client.writePump()
	go client.readPump()

	logger.Infof("[WS] user %d (%s) connected to %s", user.ID, user.Role, client.room)
}
