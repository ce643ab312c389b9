package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type GameState string

const (
	StateUpcoming  GameState = "upcoming"
	StateOngoing   GameState = "ongoing"
	StatePaused    GameState = "paused"
	StateCompleted GameState = "completed"
)

// validTransitions lists every allowed state change. Completed is terminal.
var validTransitions = map[GameState][]GameState{
	StateUpcoming: {StateOngoing},
	StateOngoing:  {StatePaused, StateCompleted},
	StatePaused:   {StateOngoing, StateCompleted},
}

func (s GameState) CanTransitionTo(next GameState) bool {
	for _, t := range validTransitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

// PatternSpec is one winning shape bound to a round, stored inside the
// game's prize_rounds JSON document. Once Won is set the entry is frozen:
// WonBy and the prize split recorded for it never change.
type PatternSpec struct {
	ID          string          `json:"id"` // "<round>.<index>", unique within a game
	PatternName string          `json:"patternName"`
	PrizeAmount decimal.Decimal `json:"prizeAmount"`
	Won         bool            `json:"won"`
	WonBy       []uint          `json:"wonBy"`
}

// PrizeRound aggregates the called numbers and pattern list for one round.
type PrizeRound struct {
	ID            string        `json:"id"` // 1-based, matches array position
	CalledNumbers []int         `json:"called_numbers"`
	Patterns      []PatternSpec `json:"patterns"`
}

type Game struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	CreatorID      uint            `gorm:"not null;index" json:"creator_id"`
	Creator        User            `gorm:"foreignKey:CreatorID" json:"-"`
	Title          string          `gorm:"not null" json:"title"`
	Description    string          `json:"description"`
	NumberOfUsers  int             `json:"number_of_users"`
	TotalPrizePool decimal.Decimal `gorm:"type:decimal(10,2)" json:"total_prize_pool"`
	DateTime       time.Time       `json:"date_time"`
	State          GameState       `gorm:"type:varchar(20);default:upcoming" json:"state"`
	PrizeRounds    datatypes.JSON  `json:"prize_rounds"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// Rounds decodes the prize_rounds document.
func (g *Game) Rounds() ([]PrizeRound, error) {
	if len(g.PrizeRounds) == 0 {
		return nil, nil
	}
	var rounds []PrizeRound
	if err := json.Unmarshal(g.PrizeRounds, &rounds); err != nil {
		return nil, fmt.Errorf("decode prize_rounds for game %d: %w", g.ID, err)
	}
	return rounds, nil
}

// SetRounds re-encodes the prize_rounds document after a mutation.
func (g *Game) SetRounds(rounds []PrizeRound) error {
	b, err := json.Marshal(rounds)
	if err != nil {
		return fmt.Errorf("encode prize_rounds for game %d: %w", g.ID, err)
	}
	g.PrizeRounds = datatypes.JSON(b)
	return nil
}

// NormalizeRounds assigns round and pattern identifiers on a freshly
// submitted prize_rounds list: round ids are "1".."N" matching position,
// pattern ids are "<round>.<index>", called_numbers starts empty and every
// pattern starts un-won. Duplicate pattern names within a round are rejected.
func NormalizeRounds(rounds []PrizeRound) ([]PrizeRound, error) {
	for ri := range rounds {
		rounds[ri].ID = fmt.Sprintf("%d", ri+1)
		rounds[ri].CalledNumbers = []int{}

		seen := make(map[string]bool, len(rounds[ri].Patterns))
		for pi := range rounds[ri].Patterns {
			p := &rounds[ri].Patterns[pi]
			if seen[p.PatternName] {
				return nil, fmt.Errorf("duplicate pattern %q in round %d", p.PatternName, ri+1)
			}
			seen[p.PatternName] = true
			p.ID = fmt.Sprintf("%d.%d", ri+1, pi+1)
			p.Won = false
			p.WonBy = nil
		}
	}
	return rounds, nil
}
