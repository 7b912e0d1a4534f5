package history

import (
	"context"
	"sync"

	"vilaw-chatbot-be/internal/repository/contract"
	"vilaw-chatbot-be/pkg/store"
)

// Store is the session memory store: an ordered, append-only transcript per
// session id, auto-created on first reference. Turns are recorded only after
// a successful generation; a failed turn never mutates the transcript.
//
// Concurrent requests for the same session id are serialized through
// LockSession so interleaved turns cannot corrupt the order.
type Store struct {
	repo  contract.HistoryRepository
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewStore(repo contract.HistoryRepository) *Store {
	return &Store{
		repo:  repo,
		locks: make(map[string]*sync.Mutex),
	}
}

// LockSession acquires the per-session lock and returns its unlock function.
// Callers hold it across a full turn (read history → generate → record).
func (s *Store) LockSession(sessionID string) func() {
	s.mu.Lock()
	lock, ok := s.locks[sessionID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[sessionID] = lock
	}
	s.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}

// GetOrCreate returns the transcript for a session, empty for a new id.
func (s *Store) GetOrCreate(ctx context.Context, sessionID string) ([]store.ConversationTurn, error) {
	return s.repo.Get(ctx, sessionID)
}

// RecordTurn appends the user question and the generated answer, in that
// order, as two transcript entries.
func (s *Store) RecordTurn(ctx context.Context, sessionID, question, answer string) error {
	return s.repo.Append(ctx, sessionID,
		store.ConversationTurn{Role: store.TurnRoleUser, Content: question},
		store.ConversationTurn{Role: store.TurnRoleAssistant, Content: answer},
	)
}
