package game

import "sync"

type roundKey struct {
	gameID  uint
	roundID int
}

// RoundLocks hands out one mutex per (game, round). Number calls and winner
// resolution for a round serialize on its mutex; different rounds, including
// rounds of the same game, proceed independently. Locks are never removed:
// the set of live rounds is small and bounded by the games being played.
type RoundLocks struct {
	mu    sync.Mutex
	locks map[roundKey]*sync.Mutex
}

func NewRoundLocks() *RoundLocks {
	return &RoundLocks{locks: make(map[roundKey]*sync.Mutex)}
}

// Get returns the mutex for a (game, round), creating it on first use.
func (l *RoundLocks) Get(gameID uint, roundID int) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	key := roundKey{gameID: gameID, roundID: roundID}
	m, ok := l.locks[key]
	if !ok {
		m = &sync.Mutex{}
		l.locks[key] = m
	}
	return m
}
