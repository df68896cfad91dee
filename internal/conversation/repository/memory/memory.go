package memory

import (
	"context"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"schedule-partner/internal/model"
)

const (
	maxUsers              = 1024
	maxTurnsPerUser       = 100
	defaultRecentLimitCap = 100
)

// Repository keeps recent conversations in a bounded LRU keyed by user.
// Least recently active users are evicted first.
type Repository struct {
	mu    sync.Mutex
	cache *lru.Cache[string, []model.Conversation]
}

// New creates an in-memory conversation repository.
func New() (*Repository, error) {
	cache, err := lru.New[string, []model.Conversation](maxUsers)
	if err != nil {
		return nil, err
	}
	return &Repository{cache: cache}, nil
}

// Append stores one exchange as the newest entry, trimming old turns.
func (r *Repository) Append(ctx context.Context, userID string, conv model.Conversation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	turns, _ := r.cache.Get(userID)
	turns = append([]model.Conversation{conv}, turns...)
	if len(turns) > maxTurnsPerUser {
		turns = turns[:maxTurnsPerUser]
	}
	r.cache.Add(userID, turns)
	return nil
}

// Recent returns up to limit exchanges, newest first.
func (r *Repository) Recent(ctx context.Context, userID string, limit int) ([]model.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if limit <= 0 || limit > defaultRecentLimitCap {
		limit = defaultRecentLimitCap
	}

	turns, ok := r.cache.Get(userID)
	if !ok {
		return []model.Conversation{}, nil
	}
	if len(turns) > limit {
		turns = turns[:limit]
	}
	out := make([]model.Conversation, len(turns))
	copy(out, turns)
	return out, nil
}
