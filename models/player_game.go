package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlayerGame links a player to a game they joined and accumulates their
// winnings for it. WonAmount only ever grows, and only the winner resolver
// writes it.
type PlayerGame struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	PlayerID  uint            `gorm:"not null;uniqueIndex:idx_player_game" json:"player_id"`
	Player    User            `gorm:"foreignKey:PlayerID" json:"-"`
	GameID    uint            `gorm:"not null;uniqueIndex:idx_player_game" json:"game_id"`
	Game      Game            `gorm:"foreignKey:GameID" json:"-"`
	WonAmount decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"won_amount"`
	JoinedAt  time.Time       `gorm:"autoCreateTime" json:"joined_at"`
}
