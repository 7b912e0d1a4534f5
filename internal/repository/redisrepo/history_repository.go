package redisrepo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"vilaw-chatbot-be/internal/repository/contract"
	"vilaw-chatbot-be/pkg/store"

	"github.com/redis/go-redis/v9"
)

// HistoryRepository persists session transcripts in a Redis list, one JSON
// encoded turn per element. Lets the chat service survive restarts and share
// histories across replicas.
type HistoryRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewHistoryRepository(client *redis.Client, ttl time.Duration) *HistoryRepository {
	return &HistoryRepository{
		client: client,
		ttl:    ttl,
	}
}

var _ contract.HistoryRepository = (*HistoryRepository)(nil)

func historyKey(sessionID string) string {
	return "chat:history:" + sessionID
}

func (r *HistoryRepository) Get(ctx context.Context, sessionID string) ([]store.ConversationTurn, error) {
	raw, err := r.client.LRange(ctx, historyKey(sessionID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis history read: %w", err)
	}

	turns := make([]store.ConversationTurn, 0, len(raw))
	for _, item := range raw {
		var turn store.ConversationTurn
		if err := json.Unmarshal([]byte(item), &turn); err != nil {
			return nil, fmt.Errorf("decode history turn: %w", err)
		}
		turns = append(turns, turn)
	}
	return turns, nil
}

func (r *HistoryRepository) Append(ctx context.Context, sessionID string, turns ...store.ConversationTurn) error {
	if len(turns) == 0 {
		return nil
	}

	key := historyKey(sessionID)
	values := make([]interface{}, 0, len(turns))
	for _, turn := range turns {
		data, err := json.Marshal(turn)
		if err != nil {
			return fmt.Errorf("encode history turn: %w", err)
		}
		values = append(values, data)
	}

	pipe := r.client.TxPipeline()
	pipe.RPush(ctx, key, values...)
	if r.ttl > 0 {
		pipe.Expire(ctx, key, r.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis history append: %w", err)
	}
	return nil
}
