package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	appconfig "github.com/housielive/housie-backend/config"
	"github.com/housielive/housie-backend/middleware"
	"github.com/housielive/housie-backend/models"
)

const tokenTTL = 24 * time.Hour

var cfg *appconfig.App

// Init wires the loaded app config into the controllers package.
func Init(c *appconfig.App) {
	cfg = c
}

type registerRequest struct {
	FullName     string `json:"full_name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=6"`
	MobileNumber string `json:"mobile_number"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterCreator registers a game creator account.
func RegisterCreator(c *gin.Context) {
	register(c, models.RoleCreator)
}

// RegisterPlayer registers a player account.
func RegisterPlayer(c *gin.Context) {
	register(c, models.RolePlayer)
}

func register(c *gin.Context, role models.Role) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.User
	if err := appconfig.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}

	user := models.User{
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: string(hash),
		MobileNumber: req.MobileNumber,
		Role:         role,
	}
	if err := appconfig.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}

	c.JSON(http.StatusCreated, user)
}

// LoginCreator authenticates a creator and issues a token.
func LoginCreator(c *gin.Context) {
	login(c, models.RoleCreator)
}

// LoginPlayer authenticates a player and issues a token.
func LoginPlayer(c *gin.Context) {
	login(c, models.RolePlayer)
}

func login(c *gin.Context, role models.Role) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := appconfig.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}
	if user.Role != role {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User is not a " + string(role)})
		return
	}

	token, err := middleware.GenerateToken(&user, cfg.JWTSecret, tokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}
