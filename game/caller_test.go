package game

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/housielive/housie-backend/models"
)

func allNumbers() []int {
	nums := make([]int, 0, MaxNumber)
	for n := 1; n <= MaxNumber; n++ {
		nums = append(nums, n)
	}
	return nums
}

func TestCallNumberStateErrors(t *testing.T) {
	db := newTestDB(t)
	caller := NewCaller(db, NewRoundLocks())
	creator := createUser(t, db, "creator", models.RoleCreator)

	t.Run("game not found", func(t *testing.T) {
		_, err := caller.CallNumber(9999, 1)
		assert.ErrorIs(t, err, ErrGameNotFound)
	})

	t.Run("game not ongoing", func(t *testing.T) {
		g := createGame(t, db, creator.ID, models.StateUpcoming, nil, nil)
		_, err := caller.CallNumber(g.ID, 1)
		assert.ErrorIs(t, err, ErrGameNotOngoing)
	})

	t.Run("round not found", func(t *testing.T) {
		g := createGame(t, db, creator.ID, models.StateOngoing, nil, nil)
		_, err := caller.CallNumber(g.ID, 2)
		assert.ErrorIs(t, err, ErrRoundNotFound)
	})
}

func TestCallNumberExhausted(t *testing.T) {
	db := newTestDB(t)
	caller := NewCaller(db, NewRoundLocks())
	creator := createUser(t, db, "creator", models.RoleCreator)
	g := createGame(t, db, creator.ID, models.StateOngoing, nil, allNumbers())

	_, err := caller.CallNumber(g.ID, 1)
	assert.ErrorIs(t, err, ErrNumbersExhausted)

	// The called set must be untouched by the failed call.
	round := roundFromDB(t, db, g.ID)
	assert.Len(t, round.CalledNumbers, MaxNumber)
}

func TestCallNumberNeverRepeats(t *testing.T) {
	db := newTestDB(t)
	caller := NewCaller(db, NewRoundLocks())
	creator := createUser(t, db, "creator", models.RoleCreator)
	g := createGame(t, db, creator.ID, models.StateOngoing, nil, nil)

	seen := make(map[int]bool)
	for i := 0; i < MaxNumber; i++ {
		res, err := caller.CallNumber(g.ID, 1)
		require.NoError(t, err)
		require.GreaterOrEqual(t, res.Number, 1)
		require.LessOrEqual(t, res.Number, MaxNumber)
		require.False(t, seen[res.Number], "number %d called twice", res.Number)
		seen[res.Number] = true
		require.Len(t, res.CalledNumbers, i+1)
	}

	_, err := caller.CallNumber(g.ID, 1)
	assert.ErrorIs(t, err, ErrNumbersExhausted)

	round := roundFromDB(t, db, g.ID)
	assert.Len(t, round.CalledNumbers, MaxNumber)
}

func TestConcurrentCallsSerializePerRound(t *testing.T) {
	db := newTestDB(t)
	caller := NewCaller(db, NewRoundLocks())
	creator := createUser(t, db, "creator", models.RoleCreator)
	g := createGame(t, db, creator.ID, models.StateOngoing, nil, nil)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := caller.CallNumber(g.ID, 1)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	// Ten concurrent calls must record ten distinct numbers.
	round := roundFromDB(t, db, g.ID)
	require.Len(t, round.CalledNumbers, 10)
	seen := make(map[int]bool)
	for _, n := range round.CalledNumbers {
		assert.False(t, seen[n], "number %d recorded twice", n)
		seen[n] = true
	}
}

func TestCallNumberResolvesSynchronously(t *testing.T) {
	db := newTestDB(t)
	caller := NewCaller(db, NewRoundLocks())
	creator := createUser(t, db, "creator", models.RoleCreator)
	player := createUser(t, db, "alice", models.RolePlayer)

	// Every number except 88 has been called. The forced draw of 88
	// completes the ticket's top row, so the same call must carry the
	// announcement.
	var called []int
	for n := 1; n <= MaxNumber; n++ {
		if n != 88 {
			called = append(called, n)
		}
	}
	patterns := []models.PatternSpec{{
		ID:          "1.1",
		PatternName: "any-one-line",
		PrizeAmount: decimal.RequireFromString("100.00"),
	}}
	g := createGame(t, db, creator.ID, models.StateOngoing, patterns, called)
	enrollPlayer(t, db, player.ID, g.ID, fullTicket)

	res, err := caller.CallNumber(g.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 88, res.Number)
	require.Len(t, res.Announcements, 1)
	assert.Equal(t, "1.1", res.Announcements[0].PatternID)
	require.Len(t, res.Announcements[0].Winners, 1)
	assert.Equal(t, player.ID, res.Announcements[0].Winners[0].PlayerID)
	assert.True(t, decimal.RequireFromString("100.00").Equal(res.Announcements[0].Winners[0].Amount))
}

func TestCalledNumbersIsReadOnly(t *testing.T) {
	db := newTestDB(t)
	caller := NewCaller(db, NewRoundLocks())
	creator := createUser(t, db, "creator", models.RoleCreator)
	g := createGame(t, db, creator.ID, models.StateOngoing, nil, []int{4, 8, 15})

	nums, err := caller.CalledNumbers(g.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 8, 15}, nums)

	_, err = caller.CalledNumbers(g.ID, 7)
	assert.ErrorIs(t, err, ErrRoundNotFound)

	round := roundFromDB(t, db, g.ID)
	assert.Equal(t, []int{4, 8, 15}, round.CalledNumbers)
}

func TestHasCallerRole(t *testing.T) {
	db := newTestDB(t)
	creator := createUser(t, db, "creator", models.RoleCreator)
	other := createUser(t, db, "other", models.RoleCreator)
	player := createUser(t, db, "player", models.RolePlayer)
	g := createGame(t, db, creator.ID, models.StateOngoing, nil, nil)

	assert.True(t, HasCallerRole(&creator, &g))
	assert.False(t, HasCallerRole(&other, &g))
	assert.False(t, HasCallerRole(&player, &g))
	assert.False(t, HasCallerRole(nil, &g))
}
