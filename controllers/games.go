package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	appconfig "github.com/housielive/housie-backend/config"
	"github.com/housielive/housie-backend/game"
	"github.com/housielive/housie-backend/middleware"
	"github.com/housielive/housie-backend/models"
	"github.com/housielive/housie-backend/utils/logger"
)

type createGameRequest struct {
	Title          string              `json:"title" binding:"required"`
	Description    string              `json:"description"`
	NumberOfUsers  int                 `json:"number_of_users" binding:"required,min=1"`
	TotalPrizePool decimal.Decimal     `json:"total_prize_pool" binding:"required"`
	DateTime       time.Time           `json:"date_time" binding:"required"`
	PrizeRounds    []models.PrizeRound `json:"prize_rounds" binding:"required,min=1"`
}

// CreateGame defines a new game with its rounds and patterns. Round and
// pattern identifiers are assigned here, before play starts.
func CreateGame(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req createGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rounds, err := models.NormalizeRounds(req.PrizeRounds)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	g := models.Game{
		CreatorID:      user.ID,
		Title:          req.Title,
		Description:    req.Description,
		NumberOfUsers:  req.NumberOfUsers,
		TotalPrizePool: req.TotalPrizePool,
		DateTime:       req.DateTime,
		State:          models.StateUpcoming,
	}
	if err := g.SetRounds(rounds); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := appconfig.DB.Create(&g).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create game"})
		return
	}

	logger.Infof("creator %d created game %d (%s) with %d round(s)", user.ID, g.ID, g.Title, len(rounds))
	c.JSON(http.StatusCreated, gin.H{
		"message":      "Game created successfully",
		"game_id":      g.ID,
		"title":        g.Title,
		"prize_rounds": rounds,
	})
}

// ListGames returns all games, newest first.
func ListGames(c *gin.Context) {
	var games []models.Game
	if err := appconfig.DB.Order("created_at DESC").Find(&games).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, games)
}

// GetGame returns one game with its round definitions.
func GetGame(c *gin.Context) {
	g, ok := loadGame(c)
	if !ok {
		return
	}
	rounds, err := g.Rounds()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Corrupt round data"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"game": g, "prize_rounds": rounds})
}

type statusUpdateRequest struct {
	Status models.GameState `json:"status" binding:"required"`
}

// UpdateGameStatus moves a game through its lifecycle. Only the creator of
// the game may do it, and only along allowed transitions.
func UpdateGameStatus(c *gin.Context) {
	user := middleware.CurrentUser(c)
	g, ok := loadGame(c)
	if !ok {
		return
	}
	if g.CreatorID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the game creator can update its status"})
		return
	}

	var req statusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	switch req.Status {
	case models.StateUpcoming, models.StateOngoing, models.StatePaused, models.StateCompleted:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}
	if !g.State.CanTransitionTo(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Cannot transition from " + string(g.State) + " to " + string(req.Status),
		})
		return
	}

	oldState := g.State
	if err := appconfig.DB.Model(g).Update("state", req.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		return
	}

	logger.Infof("game %d status %s -> %s", g.ID, oldState, req.Status)
	c.JSON(http.StatusOK, gin.H{
		"message":    "Game status updated successfully",
		"game_id":    g.ID,
		"old_status": oldState,
		"new_status": req.Status,
	})
}

// JoinGame enrolls the player and assigns one pool ticket per round, all or
// nothing.
func JoinGame(c *gin.Context) {
	user := middleware.CurrentUser(c)
	g, ok := loadGame(c)
	if !ok {
		return
	}

	rounds, err := g.Rounds()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Corrupt round data"})
		return
	}

	var assigned []gin.H
	err = appconfig.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.PlayerGame
		if err := tx.Where("player_id = ? AND game_id = ?", user.ID, g.ID).First(&existing).Error; err == nil {
			return errors.New("you have already joined this game")
		}
		if err := tx.Create(&models.PlayerGame{PlayerID: user.ID, GameID: g.ID}).Error; err != nil {
			return err
		}

		for roundNum := 1; roundNum <= len(rounds); roundNum++ {
			var ticket models.Ticket
			if err := tx.Where("used = ?", false).First(&ticket).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return errors.New("not enough tickets available for all rounds")
				}
				return err
			}
			if err := tx.Model(&ticket).Update("used", true).Error; err != nil {
				return err
			}
			if err := tx.Create(&models.PlayerTicket{
				PlayerID:   user.ID,
				GameID:     g.ID,
				RoundID:    roundNum,
				TicketData: ticket.TicketData,
				IsActive:   true,
			}).Error; err != nil {
				return err
			}
			assigned = append(assigned, gin.H{"round_id": roundNum, "ticket_data": ticket.TicketData})
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logger.Infof("player %d joined game %d with %d ticket(s)", user.ID, g.ID, len(assigned))
	c.JSON(http.StatusCreated, gin.H{
		"message":          "Joined game",
		"game_id":          g.ID,
		"assigned_tickets": assigned,
	})
}

// PlayerRound returns the requesting player's ticket for a round together
// with the round's called numbers and pattern states.
func PlayerRound(c *gin.Context) {
	user := middleware.CurrentUser(c)
	g, ok := loadGame(c)
	if !ok {
		return
	}
	roundID, err := strconv.Atoi(c.Param("round_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid round id"})
		return
	}

	rounds, err := g.Rounds()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Corrupt round data"})
		return
	}
	if roundID < 1 || roundID > len(rounds) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Round not found"})
		return
	}

	var ticket models.PlayerTicket
	if err := appconfig.DB.
		Where("player_id = ? AND game_id = ? AND round_id = ?", user.ID, g.ID, roundID).
		First(&ticket).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No ticket assigned for this round"})
		return
	}

	round := rounds[roundID-1]
	c.JSON(http.StatusOK, gin.H{
		"round_id":       round.ID,
		"ticket_data":    ticket.TicketData,
		"called_numbers": round.CalledNumbers,
		"patterns":       round.Patterns,
	})
}

// GameWinners returns every awarded pattern of a game from the ledger.
func GameWinners(c *gin.Context) {
	g, ok := loadGame(c)
	if !ok {
		return
	}
	winners, err := game.AllWinners(appconfig.DB, g.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"game_id": g.ID, "all_winners": winners})
}

func loadGame(c *gin.Context) (*models.Game, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game id"})
		return nil, false
	}
	var g models.Game
	if err := appconfig.DB.First(&g, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return nil, false
	}
	return &g, true
}
