package game

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"

	"github.com/housielive/housie-backend/config"
	"github.com/housielive/housie-backend/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: glogger.Default.LogMode(glogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

func createUser(t *testing.T, db *gorm.DB, name string, role models.Role) models.User {
	t.Helper()
	user := models.User{
		FullName:     name,
		Email:        fmt.Sprintf("%s@example.com", name),
		PasswordHash: "x",
		Role:         role,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

// createGame seeds a game with a single round holding the given patterns
// and called numbers.
func createGame(t *testing.T, db *gorm.DB, creatorID uint, state models.GameState,
	patterns []models.PatternSpec, called []int) models.Game {
	t.Helper()
	if called == nil {
		called = []int{}
	}
	g := models.Game{
		CreatorID:      creatorID,
		Title:          "test game",
		NumberOfUsers:  10,
		TotalPrizePool: decimal.NewFromInt(1000),
		State:          state,
	}
	require.NoError(t, g.SetRounds([]models.PrizeRound{{
		ID:            "1",
		CalledNumbers: called,
		Patterns:      patterns,
	}}))
	require.NoError(t, db.Create(&g).Error)
	return g
}

// enrollPlayer joins a player to the game and assigns them a ticket for
// round 1.
func enrollPlayer(t *testing.T, db *gorm.DB, playerID, gameID uint, grid Ticket) {
	t.Helper()
	require.NoError(t, db.Create(&models.PlayerGame{PlayerID: playerID, GameID: gameID}).Error)
	data, err := json.Marshal(grid)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.PlayerTicket{
		PlayerID:   playerID,
		GameID:     gameID,
		RoundID:    1,
		TicketData: datatypes.JSON(data),
		IsActive:   true,
	}).Error)
}

func roundFromDB(t *testing.T, db *gorm.DB, gameID uint) models.PrizeRound {
	t.Helper()
	var g models.Game
	require.NoError(t, db.First(&g, gameID).Error)
	rounds, err := g.Rounds()
	require.NoError(t, err)
	require.Len(t, rounds, 1)
	return rounds[0]
}

func wonAmount(t *testing.T, db *gorm.DB, playerID, gameID uint) decimal.Decimal {
	t.Helper()
	var pg models.PlayerGame
	require.NoError(t, db.Where("player_id = ? AND game_id = ?", playerID, gameID).First(&pg).Error)
	return pg.WonAmount
}
