package game

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/housielive/housie-backend/models"
	"github.com/housielive/housie-backend/utils/logger"
)

// Award is one winner's share of an announced pattern.
type Award struct {
	PlayerID   uint            `json:"player_id"`
	PlayerName string          `json:"player_name"`
	Amount     decimal.Decimal `json:"amount"`
}

// Announcement is one newly awarded pattern, ready for broadcast.
type Announcement struct {
	PatternID   string  `json:"pattern_id"`
	PatternName string  `json:"pattern_name"`
	Winners     []Award `json:"winners"`
}

// Resolver scans the round's active tickets against its unresolved patterns
// and commits awards. The prize is split equally among simultaneous winners
// with each share rounded half-up to the cent; residual cents from the
// division are not reconciled, so the sum of shares can drift below the
// pattern's prize by a cent or two.
type Resolver struct {
	db    *gorm.DB
	locks *RoundLocks
}

func NewResolver(db *gorm.DB, locks *RoundLocks) *Resolver {
	return &Resolver{db: db, locks: locks}
}

// Resolve runs one standalone resolution pass for a round under its lock.
// Re-running it on an unchanged called-number set awards nothing new. An
// empty result is a normal outcome, not an error.
func (r *Resolver) Resolve(gameID uint, roundID int) ([]Announcement, error) {
	lock := r.locks.Get(gameID, roundID)
	lock.Lock()
	defer lock.Unlock()

	var announcements []Announcement
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var g models.Game
		if err := tx.First(&g, gameID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrGameNotFound
			}
			return err
		}
		a, err := resolveRound(tx, &g, roundID)
		announcements = a
		return err
	})
	if err != nil {
		return nil, err
	}
	return announcements, nil
}

// resolveRound is the in-transaction pass shared with the number caller.
// The caller must hold the round lock.
func resolveRound(tx *gorm.DB, g *models.Game, roundID int) ([]Announcement, error) {
	rounds, err := g.Rounds()
	if err != nil {
		return nil, err
	}
	idx := roundID - 1
	if idx < 0 || idx >= len(rounds) {
		return nil, ErrRoundNotFound
	}
	round := &rounds[idx]

	pending := make([]int, 0, len(round.Patterns))
	for pi, p := range round.Patterns {
		if !p.Won {
			pending = append(pending, pi)
		}
	}
	if len(pending) == 0 {
		return nil, nil
	}

	var tickets []models.PlayerTicket
	if err := tx.Preload("Player").
		Where("game_id = ? AND round_id = ? AND is_active = ?", g.ID, roundID, true).
		Order("player_id").
		Find(&tickets).Error; err != nil {
		return nil, err
	}
	if len(tickets) == 0 {
		return nil, nil
	}

	called := NewNumberSet(round.CalledNumbers)

	var announcements []Announcement
	for _, pi := range pending {
		spec := &round.Patterns[pi]
		pattern := ParsePattern(spec.PatternName)

		var winners []models.User
		seen := make(map[uint]bool)
		for i := range tickets {
			pt := &tickets[i]
			if seen[pt.PlayerID] {
				continue
			}
			grid, err := ParseTicket(pt.TicketData)
			if err != nil {
				logger.Warnf("skipping malformed ticket %d: %v", pt.ID, err)
				continue
			}
			if pattern.Match(grid, called) {
				seen[pt.PlayerID] = true
				winners = append(winners, pt.Player)
			}
		}
		if len(winners) == 0 {
			continue
		}

		// Ledger guard: a pattern with an existing win row was already
		// awarded, even if the round JSON lagged behind. Absorb silently.
		var existing int64
		if err := tx.Model(&models.RoundWin{}).
			Where("game_id = ? AND round_id = ? AND pattern_id = ?", g.ID, roundID, spec.ID).
			Count(&existing).Error; err != nil {
			return nil, err
		}
		if existing > 0 {
			spec.Won = true
			continue
		}

		share := spec.PrizeAmount.DivRound(decimal.NewFromInt(int64(len(winners))), 2)

		win := models.RoundWin{
			GameID:      g.ID,
			RoundID:     roundID,
			PatternID:   spec.ID,
			PatternName: spec.PatternName,
			PrizeAmount: spec.PrizeAmount,
		}
		ann := Announcement{PatternID: spec.ID, PatternName: spec.PatternName}
		wonBy := make([]uint, 0, len(winners))
		for _, w := range winners {
			win.Winners = append(win.Winners, models.RoundWinner{
				PlayerID:   w.ID,
				PlayerName: w.FullName,
				Amount:     share,
			})
			ann.Winners = append(ann.Winners, Award{
				PlayerID:   w.ID,
				PlayerName: w.FullName,
				Amount:     share,
			})
			wonBy = append(wonBy, w.ID)

			if err := tx.Model(&models.PlayerGame{}).
				Where("player_id = ? AND game_id = ?", w.ID, g.ID).
				Update("won_amount", gorm.Expr("won_amount + ?", share)).Error; err != nil {
				return nil, err
			}
		}
		if err := tx.Create(&win).Error; err != nil {
			return nil, err
		}

		spec.Won = true
		spec.WonBy = wonBy
		announcements = append(announcements, ann)

		logger.Infof("pattern %s (%s) won in game %d round %d by %d player(s), share %s",
			spec.ID, spec.PatternName, g.ID, roundID, len(winners), share.StringFixed(2))
	}

	if len(announcements) > 0 {
		if err := g.SetRounds(rounds); err != nil {
			return nil, err
		}
		if err := tx.Model(&models.Game{}).Where("id = ?", g.ID).
			Update("prize_rounds", g.PrizeRounds).Error; err != nil {
			return nil, err
		}
	}
	return announcements, nil
}
