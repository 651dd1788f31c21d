package assessment

import (
	"context"
	"sync"
)

// Adjuster applies the level transition rule behind a per-learner lock.
//
// The read-modify-write on a learner's level is serialized per learner:
// two concurrent submissions apply in order, last applied wins, instead of
// both reading the pre-update level and clobbering each other.
type Adjuster struct {
	store LevelStore

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewAdjuster creates an Adjuster over the given level store.
func NewAdjuster(store LevelStore) *Adjuster {
	return &Adjuster{
		store: store,
		locks: make(map[string]*sync.Mutex),
	}
}

// Adjust recomputes a learner's inferred level from a five-question score.
//
// Only inferred-mode sessions touch the stored level: an assigned-level or
// self-selected session does not demonstrate ability at the adaptive level,
// so any other mode returns the current level unchanged. No-op transitions
// are not written.
func (a *Adjuster) Adjust(ctx context.Context, learnerID string, score int, mode Mode) (Level, error) {
	if mode != ModeInferred {
		return a.Current(ctx, learnerID)
	}

	unlock := a.lock(learnerID)
	defer unlock()

	current, hasPrior, err := a.store.Get(ctx, learnerID)
	if err != nil {
		return "", err
	}

	effective := current
	if !hasPrior {
		effective = LevelLow
	}

	next := Next(current, hasPrior, score)
	if next == effective {
		return next, nil
	}

	if err := a.store.Set(ctx, learnerID, next); err != nil {
		return "", err
	}
	return next, nil
}

// Current returns the learner's inferred level without touching state.
func (a *Adjuster) Current(ctx context.Context, learnerID string) (Level, error) {
	level, ok, err := a.store.Get(ctx, learnerID)
	if err != nil {
		return "", err
	}
	if !ok {
		return LevelLow, nil
	}
	return level, nil
}

func (a *Adjuster) lock(learnerID string) func() {
	a.mu.Lock()
	l, ok := a.locks[learnerID]
	if !ok {
		l = &sync.Mutex{}
		a.locks[learnerID] = l
	}
	a.mu.Unlock()

	l.Lock()
	return l.Unlock
}
