package history

import (
	"context"
	"sync"
	"testing"

	"vilaw-chatbot-be/internal/repository/memory"
	"vilaw-chatbot-be/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() *Store {
	return NewStore(memory.NewHistoryRepository(0))
}

func TestGetOrCreateReturnsEmptyForNewSession(t *testing.T) {
	s := newTestStore()

	turns, err := s.GetOrCreate(context.Background(), "fresh")
	require.NoError(t, err)
	assert.Empty(t, turns)
}

func TestRecordTurnAppendsQuestionThenAnswer(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	require.NoError(t, s.RecordTurn(ctx, "s1", "hỏi", "đáp"))

	turns, err := s.GetOrCreate(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, turns, 2)
	assert.Equal(t, store.TurnRoleUser, turns[0].Role)
	assert.Equal(t, "hỏi", turns[0].Content)
	assert.Equal(t, store.TurnRoleAssistant, turns[1].Role)
	assert.Equal(t, "đáp", turns[1].Content)
}

func TestRecordTurnGrowsByTwoEachTurn(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	require.NoError(t, s.RecordTurn(ctx, "s1", "q1", "a1"))
	require.NoError(t, s.RecordTurn(ctx, "s1", "q2", "a2"))

	turns, err := s.GetOrCreate(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, turns, 4)
	assert.Equal(t, "q1", turns[0].Content)
	assert.Equal(t, "a1", turns[1].Content)
	assert.Equal(t, "q2", turns[2].Content)
	assert.Equal(t, "a2", turns[3].Content)
}

func TestSessionsAreIsolated(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	require.NoError(t, s.RecordTurn(ctx, "s1", "q1", "a1"))

	turns, err := s.GetOrCreate(ctx, "s2")
	require.NoError(t, err)
	assert.Empty(t, turns)
}

func TestLockSessionSerializesConcurrentTurns(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()
	const workers = 8

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := s.LockSession("shared")
			defer unlock()
			before, err := s.GetOrCreate(ctx, "shared")
			assert.NoError(t, err)
			assert.NoError(t, s.RecordTurn(ctx, "shared", "q", "a"))
			after, err := s.GetOrCreate(ctx, "shared")
			assert.NoError(t, err)
			// With the lock held, nobody else appends in between
			assert.Equal(t, len(before)+2, len(after))
		}()
	}
	wg.Wait()

	turns, err := s.GetOrCreate(ctx, "shared")
	require.NoError(t, err)
	assert.Len(t, turns, workers*2)
}
