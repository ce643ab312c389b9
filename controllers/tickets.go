package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	appconfig "github.com/housielive/housie-backend/config"
	"github.com/housielive/housie-backend/game"
	"github.com/housielive/housie-backend/models"
	"github.com/housielive/housie-backend/utils/logger"
)

type uploadTicketsRequest struct {
	Tickets []game.Ticket `json:"tickets" binding:"required,min=1"`
}

// UploadTickets adds 3x9 grids to the unassigned ticket pool.
func UploadTickets(c *gin.Context) {
	var req uploadTicketsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rows := make([]models.Ticket, 0, len(req.Tickets))
	for i, grid := range req.Tickets {
		data, err := json.Marshal(grid)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if _, err := game.ParseTicket(data); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Ticket " + strconv.Itoa(i) + ": " + err.Error()})
			return
		}
		rows = append(rows, models.Ticket{TicketData: datatypes.JSON(data)})
	}

	if err := appconfig.DB.Create(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store tickets"})
		return
	}

	logger.Infof("added %d ticket(s) to the pool", len(rows))
	c.JSON(http.StatusCreated, gin.H{"message": "Tickets added", "count": len(rows)})
}

// TicketPoolStatus reports how many pool tickets remain unassigned.
func TicketPoolStatus(c *gin.Context) {
	var available, total int64
	appconfig.DB.Model(&models.Ticket{}).Count(&total)
	appconfig.DB.Model(&models.Ticket{}).Where("used = ?", false).Count(&available)
	c.JSON(http.StatusOK, gin.H{"total": total, "available": available})
}
