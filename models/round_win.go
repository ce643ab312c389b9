package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RoundWin is the durable ledger row for one awarded pattern. Exactly one
// row exists per (game, round, pattern) once the pattern is resolved, and it
// is never modified afterwards.
type RoundWin struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	GameID      uint            `gorm:"not null;uniqueIndex:idx_game_round_pattern" json:"game_id"`
	Game        Game            `gorm:"foreignKey:GameID" json:"-"`
	RoundID     int             `gorm:"not null;uniqueIndex:idx_game_round_pattern" json:"round_id"`
	PatternID   string          `gorm:"not null;uniqueIndex:idx_game_round_pattern" json:"pattern_id"`
	PatternName string          `json:"pattern_name"`
	PrizeAmount decimal.Decimal `gorm:"type:decimal(10,2)" json:"prize_amount"`
	Winners     []RoundWinner   `gorm:"foreignKey:RoundWinID" json:"winners"`
	CreatedAt   time.Time       `json:"created_at"`
}

// RoundWinner records one winner's share of a RoundWin.
type RoundWinner struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	RoundWinID uint            `gorm:"not null;index" json:"-"`
	PlayerID   uint            `gorm:"not null" json:"player_id"`
	PlayerName string          `json:"player_name"`
	Amount     decimal.Decimal `gorm:"type:decimal(10,2)" json:"amount"`
}
