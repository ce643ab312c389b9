package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appconfig "github.com/housielive/housie-backend/config"
	"github.com/housielive/housie-backend/middleware"
	"github.com/housielive/housie-backend/models"
)

// PlayerHistory lists the requesting player's joined games with their
// accumulated winnings per game.
func PlayerHistory(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var entries []models.PlayerGame
	if err := appconfig.DB.Preload("Game").
		Where("player_id = ?", user.ID).
		Order("joined_at DESC").
		Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	history := make([]gin.H, 0, len(entries))
	for _, e := range entries {
		history = append(history, gin.H{
			"game_id":    e.GameID,
			"title":      e.Game.Title,
			"state":      e.Game.State,
			"date_time":  e.Game.DateTime,
			"won_amount": e.WonAmount,
			"joined_at":  e.JoinedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"history": history})
}
