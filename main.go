package main

import (
	"log"
	"net/http"
	"time"

	"github.com/housielive/housie-backend/config"
	"github.com/housielive/housie-backend/controllers"
	"github.com/housielive/housie-backend/routes"
	"github.com/housielive/housie-backend/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	db := config.ConnectDB(cfg.DatabaseURL)
	controllers.Init(cfg)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.SetupRoutes(r, cfg)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now()})
	})

	// Realtime game rooms
	socket := services.NewGameSocket(db, cfg.JWTSecret)
	r.GET("/ws/game/:game_id/round/:round_id", socket.Handle)

	log.Printf("🚀 Housie backend server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("[FATAL] Failed to start server: %v", err)
	}
}
