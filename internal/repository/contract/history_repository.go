package contract

import (
	"context"

	"vilaw-chatbot-be/pkg/store"
)

// HistoryRepository backs the session memory store. Implementations must keep
// turns in append order; concurrency control lives in the store on top.
type HistoryRepository interface {
	// Get returns the transcript for a session ("" history → empty slice, nil error)
	Get(ctx context.Context, sessionID string) ([]store.ConversationTurn, error)
	// Append adds turns to the end of the session transcript, creating it if missing
	Append(ctx context.Context, sessionID string, turns ...store.ConversationTurn) error
}
