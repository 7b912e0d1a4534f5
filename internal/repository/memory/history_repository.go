package memory

import (
	"context"
	"time"

	"vilaw-chatbot-be/internal/repository/contract"
	"vilaw-chatbot-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

// HistoryRepository keeps session transcripts in process memory. A zero TTL
// keeps histories for the process lifetime; a positive TTL evicts idle
// sessions, refreshed on every append.
type HistoryRepository struct {
	cache *cache.Cache
	ttl   time.Duration
}

func NewHistoryRepository(ttl time.Duration) *HistoryRepository {
	expiration := ttl
	if expiration <= 0 {
		expiration = cache.NoExpiration
	}
	c := cache.New(expiration, 10*time.Minute)
	return &HistoryRepository{
		cache: c,
		ttl:   expiration,
	}
}

var _ contract.HistoryRepository = (*HistoryRepository)(nil)

func (r *HistoryRepository) Get(ctx context.Context, sessionID string) ([]store.ConversationTurn, error) {
	x, found := r.cache.Get(sessionID)
	if !found {
		return []store.ConversationTurn{}, nil
	}
	turns := x.([]store.ConversationTurn)
	// Copy so callers cannot mutate the stored transcript
	snapshot := make([]store.ConversationTurn, len(turns))
	copy(snapshot, turns)
	return snapshot, nil
}

func (r *HistoryRepository) Append(ctx context.Context, sessionID string, turns ...store.ConversationTurn) error {
	existing := []store.ConversationTurn{}
	if x, found := r.cache.Get(sessionID); found {
		existing = x.([]store.ConversationTurn)
	}
	updated := make([]store.ConversationTurn, 0, len(existing)+len(turns))
	updated = append(updated, existing...)
	updated = append(updated, turns...)
	r.cache.Set(sessionID, updated, r.ttl)
	return nil
}
