package executor

import (
	"context"
	"strings"

	"vilaw-chatbot-be/internal/pkg/apperr"
	"vilaw-chatbot-be/internal/pkg/logger"
	"vilaw-chatbot-be/pkg/llm"
	ragcontext "vilaw-chatbot-be/pkg/rag/context"
	"vilaw-chatbot-be/pkg/rag/history"
	"vilaw-chatbot-be/pkg/rag/prompt"
	"vilaw-chatbot-be/pkg/store"
)

// DocumentRetriever abstracts the vector index lookup so the pipeline can be
// exercised without a live index.
type DocumentRetriever interface {
	Retrieve(ctx context.Context, query string) ([]store.Document, error)
}

// PipelineExecutor runs one conversational retrieval turn:
// history snapshot → retrieve → format → compose → generate → record.
// Strictly sequential, no retries; the turn is recorded only when generation
// succeeds.
type PipelineExecutor struct {
	retriever     DocumentRetriever
	promptBuilder *prompt.Builder
	llmProvider   llm.LLMProvider
	historyStore  *history.Store
	temperature   float64
	log           logger.ILogger
}

func NewPipelineExecutor(
	retriever DocumentRetriever,
	llmProvider llm.LLMProvider,
	historyStore *history.Store,
	temperature float64,
	log logger.ILogger,
) *PipelineExecutor {
	return &PipelineExecutor{
		retriever:     retriever,
		promptBuilder: prompt.NewBuilder(),
		llmProvider:   llmProvider,
		historyStore:  historyStore,
		temperature:   temperature,
		log:           log,
	}
}

// Execute answers one question within a session. Same-session turns are
// serialized on the session lock; the history snapshot is taken before this
// turn is recorded, so the composed prompt never contains the current
// question twice.
func (p *PipelineExecutor) Execute(ctx context.Context, sessionID, question string) (string, error) {
	unlock := p.historyStore.LockSession(sessionID)
	defer unlock()

	turns, err := p.historyStore.GetOrCreate(ctx, sessionID)
	if err != nil {
		return "", apperr.Internal("history read failed", err)
	}

	docs, err := p.retriever.Retrieve(ctx, question)
	if err != nil {
		p.log.Error("rag", "document retrieval failed", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
		return "", apperr.Retrieval(err)
	}

	contextBlock := ragcontext.Format(docs)
	messages := p.promptBuilder.Build(contextBlock, question, turns)

	p.log.Debug("rag", "prompt composed", map[string]interface{}{
		"session_id":    sessionID,
		"documents":     len(docs),
		"history_turns": len(turns),
	})

	answer, err := p.llmProvider.Chat(ctx, messages, llm.WithTemperature(p.temperature))
	if err != nil {
		p.log.Error("rag", "answer generation failed", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
		return "", apperr.Generation(err)
	}
	answer = strings.TrimSpace(answer)

	if err := p.historyStore.RecordTurn(ctx, sessionID, question, answer); err != nil {
		return "", apperr.Internal("history append failed", err)
	}

	return answer, nil
}
