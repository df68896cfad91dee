package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"schedule-partner/internal/model"
)

const (
	maxUsers    = 1024
	dateKeyForm = "2006-01-02"
)

// Repository keeps daily reviews in a bounded LRU keyed by user, with one
// review per calendar date inside each user's map.
type Repository struct {
	mu    sync.Mutex
	cache *lru.Cache[string, map[string]model.DailyReview]
}

// New creates an in-memory review repository.
func New() (*Repository, error) {
	cache, err := lru.New[string, map[string]model.DailyReview](maxUsers)
	if err != nil {
		return nil, err
	}
	return &Repository{cache: cache}, nil
}

func dateKey(t time.Time) string {
	return t.Format(dateKeyForm)
}

// Upsert stores the review for its date, replacing any existing one.
func (r *Repository) Upsert(ctx context.Context, userID string, review model.DailyReview) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	byDate, ok := r.cache.Get(userID)
	if !ok {
		byDate = make(map[string]model.DailyReview)
	}
	byDate[dateKey(review.ReviewDate)] = review
	r.cache.Add(userID, byDate)
	return nil
}

// ByDate returns the review for a date, if present.
func (r *Repository) ByDate(ctx context.Context, userID string, date time.Time) (model.DailyReview, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	byDate, ok := r.cache.Get(userID)
	if !ok {
		return model.DailyReview{}, false
	}
	review, ok := byDate[dateKey(date)]
	return review, ok
}

// Between returns reviews with date in [start, end], oldest first.
func (r *Repository) Between(ctx context.Context, userID string, start, end time.Time) ([]model.DailyReview, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	byDate, ok := r.cache.Get(userID)
	if !ok {
		return []model.DailyReview{}, nil
	}

	out := make([]model.DailyReview, 0, len(byDate))
	for _, review := range byDate {
		if !start.IsZero() && review.ReviewDate.Before(start) {
			continue
		}
		if !end.IsZero() && review.ReviewDate.After(end) {
			continue
		}
		out = append(out, review)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ReviewDate.Before(out[j].ReviewDate)
	})
	return out, nil
}
