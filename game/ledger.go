package game

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/housielive/housie-backend/models"
)

// WinnerRef identifies one winner inside an all-winners payload.
type WinnerRef struct {
	PlayerID   uint   `json:"player_id"`
	PlayerName string `json:"player_name"`
}

// RoundWinView is one awarded pattern as reported to clients.
type RoundWinView struct {
	RoundID     int             `json:"round_id"`
	PatternID   string          `json:"pattern_id"`
	PatternName string          `json:"pattern_name"`
	PrizeAmount decimal.Decimal `json:"prize_amount"`
	Winners     []WinnerRef     `json:"winners"`
}

// AllWinners lists every awarded pattern of a game across all rounds, in
// round order, straight from the ledger.
func AllWinners(db *gorm.DB, gameID uint) ([]RoundWinView, error) {
	var wins []models.RoundWin
	if err := db.Preload("Winners").
		Where("game_id = ?", gameID).
		Order("round_id, pattern_id").
		Find(&wins).Error; err != nil {
		return nil, err
	}

	views := make([]RoundWinView, 0, len(wins))
	for _, w := range wins {
		v := RoundWinView{
			RoundID:     w.RoundID,
			PatternID:   w.PatternID,
			PatternName: w.PatternName,
			PrizeAmount: w.PrizeAmount,
		}
		for _, winner := range w.Winners {
			v.Winners = append(v.Winners, WinnerRef{
				PlayerID:   winner.PlayerID,
				PlayerName: winner.PlayerName,
			})
		}
		views = append(views, v)
	}
	return views, nil
}
