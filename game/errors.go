package game

import "errors"

// Failure modes of a number call, each surfaced as its own error event on
// the wire.
var (
	ErrGameNotFound     = errors.New("game not found")
	ErrGameNotOngoing   = errors.New("game is not ongoing")
	ErrRoundNotFound    = errors.New("invalid round")
	ErrNumbersExhausted = errors.New("all numbers already called")
)
