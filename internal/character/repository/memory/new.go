package memory

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"schedule-partner/internal/model"
)

const (
	maxUsers          = 1024
	maxStatesPerUser  = 50
	defaultIdleExpiry = time.Hour
)

// Repository keeps character state history in an expirable LRU keyed by
// user. Users idle longer than the TTL are evicted wholesale; individual
// state expiry is tracked on each state's ExpiresAt.
type Repository struct {
	mu    sync.Mutex
	cache *expirable.LRU[string, []model.CharacterState]
}

// New creates an in-memory state repository. TTL bounds how long an idle
// user's history is retained; zero means one hour.
func New(ttl time.Duration) *Repository {
	if ttl <= 0 {
		ttl = defaultIdleExpiry
	}
	return &Repository{
		cache: expirable.NewLRU[string, []model.CharacterState](maxUsers, nil, ttl),
	}
}
