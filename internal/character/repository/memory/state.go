package memory

import (
	"context"
	"time"

	"schedule-partner/internal/model"
)

// Push records a new state as the most recent one, trimming old history.
func (r *Repository) Push(ctx context.Context, userID string, state model.CharacterState) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	states, _ := r.cache.Get(userID)
	states = append([]model.CharacterState{state}, states...)
	if len(states) > maxStatesPerUser {
		states = states[:maxStatesPerUser]
	}
	r.cache.Add(userID, states)
	return nil
}

// Active returns the most recent state that has not expired at now.
func (r *Repository) Active(ctx context.Context, userID string, now time.Time) (model.CharacterState, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	states, ok := r.cache.Get(userID)
	if !ok {
		return model.CharacterState{}, false
	}
	for _, s := range states {
		if !s.Expired(now) {
			return s, true
		}
	}
	return model.CharacterState{}, false
}

// Recent returns up to limit states, newest first.
func (r *Repository) Recent(ctx context.Context, userID string, limit int) ([]model.CharacterState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	states, ok := r.cache.Get(userID)
	if !ok {
		return []model.CharacterState{}, nil
	}
	if limit > 0 && len(states) > limit {
		states = states[:limit]
	}
	out := make([]model.CharacterState, len(states))
	copy(out, states)
	return out, nil
}

// ExpireAll force-expires every active state and reports how many.
func (r *Repository) ExpireAll(ctx context.Context, userID string, now time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	states, ok := r.cache.Get(userID)
	if !ok {
		return 0, nil
	}

	expired := 0
	for i := range states {
		if !states[i].Expired(now) {
			states[i].ExpiresAt = now
			expired++
		}
	}
	r.cache.Add(userID, states)
	return expired, nil
}
