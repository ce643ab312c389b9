package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/housielive/housie-backend/config"
	"github.com/housielive/housie-backend/controllers"
	"github.com/housielive/housie-backend/middleware"
	"github.com/housielive/housie-backend/models"
)

// SetupRoutes wires the REST surface. The websocket endpoint is registered
// separately in main.
func SetupRoutes(r *gin.Engine, cfg *config.App) {
	api := r.Group("/api")

	// ----------------------
	// Auth routes
	// ----------------------
	api.POST("/creator/register", controllers.RegisterCreator)
	api.POST("/creator/login", controllers.LoginCreator)
	api.POST("/player/register", controllers.RegisterPlayer)
	api.POST("/player/login", controllers.LoginPlayer)

	auth := api.Group("")
	auth.Use(middleware.RequireAuth(cfg.JWTSecret))

	// ----------------------
	// Game routes
	// ----------------------
	auth.GET("/games", controllers.ListGames)
	auth.GET("/games/:id", controllers.GetGame)
	auth.GET("/games/:id/winners", controllers.GameWinners)

	creator := auth.Group("")
	creator.Use(middleware.RequireRole(models.RoleCreator))
	creator.POST("/games", controllers.CreateGame)
	creator.POST("/games/:id/status", controllers.UpdateGameStatus)
	creator.POST("/tickets", controllers.UploadTickets)
	creator.GET("/tickets/pool", controllers.TicketPoolStatus)

	player := auth.Group("")
	player.Use(middleware.RequireRole(models.RolePlayer))
	player.POST("/games/:id/join", controllers.JoinGame)
	player.GET("/games/:id/rounds/:round_id", controllers.PlayerRound)
	player.GET("/player/history", controllers.PlayerHistory)
}
