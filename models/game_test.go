package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRoundsAssignsIdentifiers(t *testing.T) {
	rounds, err := NormalizeRounds([]PrizeRound{
		{Patterns: []PatternSpec{
			{PatternName: "early-five", PrizeAmount: decimal.RequireFromString("50.00"), Won: true, WonBy: []uint{9}},
			{PatternName: "full-housie", PrizeAmount: decimal.RequireFromString("200.00")},
		}},
		{Patterns: []PatternSpec{
			{PatternName: "any-one-line", PrizeAmount: decimal.RequireFromString("75.00")},
		}},
	})
	require.NoError(t, err)

	require.Len(t, rounds, 2)
	assert.Equal(t, "1", rounds[0].ID)
	assert.Equal(t, "2", rounds[1].ID)
	assert.Equal(t, []int{}, rounds[0].CalledNumbers)

	assert.Equal(t, "1.1", rounds[0].Patterns[0].ID)
	assert.Equal(t, "1.2", rounds[0].Patterns[1].ID)
	assert.Equal(t, "2.1", rounds[1].Patterns[0].ID)

	// Submitted won flags are reset; nothing is won before play starts.
	assert.False(t, rounds[0].Patterns[0].Won)
	assert.Nil(t, rounds[0].Patterns[0].WonBy)
}

func TestNormalizeRoundsRejectsDuplicatePatternNames(t *testing.T) {
	_, err := NormalizeRounds([]PrizeRound{
		{Patterns: []PatternSpec{
			{PatternName: "early-five"},
			{PatternName: "early-five"},
		}},
	})
	assert.Error(t, err)
}

func TestGameStateTransitions(t *testing.T) {
	tests := []struct {
		from, to GameState
		allowed  bool
	}{
		{StateUpcoming, StateOngoing, true},
		{StateUpcoming, StatePaused, false},
		{StateUpcoming, StateCompleted, false},
		{StateOngoing, StatePaused, true},
		{StateOngoing, StateCompleted, true},
		{StateOngoing, StateUpcoming, false},
		{StatePaused, StateOngoing, true},
		{StatePaused, StateCompleted, true},
		{StatePaused, StateUpcoming, false},
		{StateCompleted, StateOngoing, false},
		{StateCompleted, StatePaused, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestRoundsRoundTrip(t *testing.T) {
	g := Game{}
	in := []PrizeRound{{
		ID:            "1",
		CalledNumbers: []int{7, 21, 90},
		Patterns: []PatternSpec{{
			ID:          "1.1",
			PatternName: "four-corners",
			PrizeAmount: decimal.RequireFromString("25.50"),
			Won:         true,
			WonBy:       []uint{3, 5},
		}},
	}}
	require.NoError(t, g.SetRounds(in))

	out, err := g.Rounds()
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, []int{7, 21, 90}, out[0].CalledNumbers)
	assert.True(t, decimal.RequireFromString("25.50").Equal(out[0].Patterns[0].PrizeAmount))
	assert.Equal(t, []uint{3, 5}, out[0].Patterns[0].WonBy)
}

func TestRoundsOnEmptyDocument(t *testing.T) {
	g := Game{}
	rounds, err := g.Rounds()
	require.NoError(t, err)
	assert.Nil(t, rounds)
}
