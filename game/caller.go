package game

import (
	"errors"
	"math/rand"

	"gorm.io/gorm"

	"github.com/housielive/housie-backend/models"
	"github.com/housielive/housie-backend/utils/logger"
)

// CallResult is the outcome of one successful number call.
type CallResult struct {
	Number        int            `json:"number"`
	CalledNumbers []int          `json:"called_numbers"`
	Announcements []Announcement `json:"announcements,omitempty"`
}

// Caller draws numbers for a round. Calls on the same round serialize on the
// round lock; the draw, the append and the winner pass for that call commit
// as one transaction, so a failed resolve also rolls the number back.
type Caller struct {
	db    *gorm.DB
	locks *RoundLocks
}

func NewCaller(db *gorm.DB, locks *RoundLocks) *Caller {
	return &Caller{db: db, locks: locks}
}

// HasCallerRole reports whether the user may draw numbers for this game.
func HasCallerRole(user *models.User, g *models.Game) bool {
	return user != nil && user.IsCreator() && g.CreatorID == user.ID
}

// CallNumber draws an uncalled number uniformly at random for the round,
// appends it and runs winner resolution for the same call before returning.
func (c *Caller) CallNumber(gameID uint, roundID int) (*CallResult, error) {
	lock := c.locks.Get(gameID, roundID)
	lock.Lock()
	defer lock.Unlock()

	res := &CallResult{}
	err := c.db.Transaction(func(tx *gorm.DB) error {
		var g models.Game
		if err := tx.First(&g, gameID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrGameNotFound
			}
			return err
		}
		if g.State != models.StateOngoing {
			return ErrGameNotOngoing
		}

		rounds, err := g.Rounds()
		if err != nil {
			return err
		}
		idx := roundID - 1
		if idx < 0 || idx >= len(rounds) {
			return ErrRoundNotFound
		}

		called := NewNumberSet(rounds[idx].CalledNumbers)
		available := make([]int, 0, MaxNumber-len(rounds[idx].CalledNumbers))
		for n := 1; n <= MaxNumber; n++ {
			if !called.Contains(n) {
				available = append(available, n)
			}
		}
		if len(available) == 0 {
			return ErrNumbersExhausted
		}

		number := available[rand.Intn(len(available))]
		rounds[idx].CalledNumbers = append(rounds[idx].CalledNumbers, number)
		if err := g.SetRounds(rounds); err != nil {
			return err
		}
		if err := tx.Model(&models.Game{}).Where("id = ?", g.ID).
			Update("prize_rounds", g.PrizeRounds).Error; err != nil {
			return err
		}

		res.Number = number
		res.CalledNumbers = rounds[idx].CalledNumbers

		// Winner detection runs against the number just appended, never
		// deferred to a later call.
		announcements, err := resolveRound(tx, &g, roundID)
		if err != nil {
			return err
		}
		res.Announcements = announcements
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Debugf("game %d round %d: called %d (%d/%d)",
		gameID, roundID, res.Number, len(res.CalledNumbers), MaxNumber)
	return res, nil
}

// CalledNumbers returns the round's current called sequence without drawing.
func (c *Caller) CalledNumbers(gameID uint, roundID int) ([]int, error) {
	var g models.Game
	if err := c.db.First(&g, gameID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}
	rounds, err := g.Rounds()
	if err != nil {
		return nil, err
	}
	idx := roundID - 1
	if idx < 0 || idx >= len(rounds) {
		return nil, ErrRoundNotFound
	}
	return rounds[idx].CalledNumbers, nil
}
