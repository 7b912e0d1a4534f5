package service

import (
	"context"
	"testing"

	"vilaw-chatbot-be/internal/dto"
	"vilaw-chatbot-be/internal/pkg/apperr"
	"vilaw-chatbot-be/internal/repository/memory"
	"vilaw-chatbot-be/pkg/llm"
	"vilaw-chatbot-be/pkg/rag/executor"
	"vilaw-chatbot-be/pkg/rag/history"
	"vilaw-chatbot-be/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

type stubRetriever struct {
	calls int
}

func (s *stubRetriever) Retrieve(ctx context.Context, query string) ([]store.Document, error) {
	s.calls++
	return nil, nil
}

type stubLLM struct {
	answer string
	calls  int
}

func (s *stubLLM) Chat(ctx context.Context, messages []llm.Message, options ...llm.Option) (string, error) {
	s.calls++
	return s.answer, nil
}

func (s *stubLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return s.Chat(ctx, nil, options...)
}

type stubPublisher struct {
	published []*dto.ChatTurnRecordedMessage
}

func (s *stubPublisher) PublishTurnRecorded(msg *dto.ChatTurnRecordedMessage) error {
	s.published = append(s.published, msg)
	return nil
}

func newTestService(retriever *stubRetriever, provider *stubLLM, publisher *stubPublisher) (IChatbotService, *history.Store) {
	historyStore := history.NewStore(memory.NewHistoryRepository(0))
	pipeline := executor.NewPipelineExecutor(retriever, provider, historyStore, 0.3, nopLogger{})
	var pub IPublisherService
	if publisher != nil {
		pub = publisher
	}
	return NewChatbotService(pipeline, pub, nopLogger{}), historyStore
}

func TestChatRejectsEmptyQuestion(t *testing.T) {
	retriever := &stubRetriever{}
	provider := &stubLLM{answer: "never"}
	svc, historyStore := newTestService(retriever, provider, nil)

	for _, question := range []string{"", "   ", "\n\t "} {
		res, err := svc.Chat(context.Background(), &dto.ChatRequest{Question: question})
		require.Error(t, err)
		assert.Nil(t, res)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
		assert.EqualError(t, err, "Question must not be empty")
	}

	// Rejected before any collaborator runs
	assert.Zero(t, retriever.calls)
	assert.Zero(t, provider.calls)
	turns, _ := historyStore.GetOrCreate(context.Background(), "default")
	assert.Empty(t, turns)
}

func TestChatDefaultsSessionId(t *testing.T) {
	retriever := &stubRetriever{}
	provider := &stubLLM{answer: "câu trả lời"}
	svc, historyStore := newTestService(retriever, provider, nil)

	res, err := svc.Chat(context.Background(), &dto.ChatRequest{Question: "câu hỏi"})
	require.NoError(t, err)
	assert.Equal(t, "câu trả lời", res.Answer)

	turns, err := historyStore.GetOrCreate(context.Background(), "default")
	require.NoError(t, err)
	assert.Len(t, turns, 2)
}

func TestChatUsesProvidedSessionId(t *testing.T) {
	retriever := &stubRetriever{}
	provider := &stubLLM{answer: "a"}
	svc, historyStore := newTestService(retriever, provider, nil)

	_, err := svc.Chat(context.Background(), &dto.ChatRequest{Question: "q", SessionId: "user-42"})
	require.NoError(t, err)

	turns, _ := historyStore.GetOrCreate(context.Background(), "user-42")
	assert.Len(t, turns, 2)
	defaults, _ := historyStore.GetOrCreate(context.Background(), "default")
	assert.Empty(t, defaults)
}

func TestChatPublishesTurnRecorded(t *testing.T) {
	retriever := &stubRetriever{}
	provider := &stubLLM{answer: "a"}
	publisher := &stubPublisher{}
	svc, _ := newTestService(retriever, provider, publisher)

	_, err := svc.Chat(context.Background(), &dto.ChatRequest{Question: "q", SessionId: "s1"})
	require.NoError(t, err)

	require.Len(t, publisher.published, 1)
	assert.Equal(t, "s1", publisher.published[0].SessionId)
	assert.Equal(t, "q", publisher.published[0].Question)
	assert.Equal(t, "a", publisher.published[0].Answer)
}
