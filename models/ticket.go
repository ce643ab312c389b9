package models

import (
	"time"

	"gorm.io/datatypes"
)

// Ticket is one unassigned entry in the ticket pool: a plain 3x9 grid
// stored as JSON, zero meaning a blank cell.
type Ticket struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	TicketData datatypes.JSON `json:"ticket_data"`
	Used       bool           `gorm:"default:false;index" json:"used"`
	CreatedAt  time.Time      `json:"created_at"`
}

// PlayerTicket is a pool ticket bound to one (player, game, round) once the
// player joins a game.
type PlayerTicket struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	PlayerID   uint           `gorm:"not null;uniqueIndex:idx_player_game_round" json:"player_id"`
	Player     User           `gorm:"foreignKey:PlayerID" json:"-"`
	GameID     uint           `gorm:"not null;uniqueIndex:idx_player_game_round" json:"game_id"`
	RoundID    int            `gorm:"not null;uniqueIndex:idx_player_game_round" json:"round_id"`
	TicketData datatypes.JSON `json:"ticket_data"`
	IsActive   bool           `gorm:"default:true" json:"is_active"`
	CreatedAt  time.Time      `json:"created_at"`
}
