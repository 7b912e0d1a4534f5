package service

import (
	"context"
	"log"
	"strings"
	"time"

	"vilaw-chatbot-be/internal/dto"
	"vilaw-chatbot-be/internal/pkg/apperr"
	"vilaw-chatbot-be/internal/pkg/logger"
	"vilaw-chatbot-be/pkg/rag/executor"
)

// IChatbotService defines the chatbot service interface
type IChatbotService interface {
	Chat(ctx context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error)
}

type chatbotService struct {
	pipelineExecutor *executor.PipelineExecutor
	publisherService IPublisherService
	log              logger.ILogger
}

func NewChatbotService(
	pipelineExecutor *executor.PipelineExecutor,
	publisherService IPublisherService,
	log logger.ILogger,
) IChatbotService {
	return &chatbotService{
		pipelineExecutor: pipelineExecutor,
		publisherService: publisherService,
		log:              log,
	}
}

// Chat runs one conversational retrieval turn. An empty or whitespace-only
// question is rejected at this boundary, before any collaborator is called
// and before session memory is touched.
func (cs *chatbotService) Chat(ctx context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error) {
	question := strings.TrimSpace(request.Question)
	if question == "" {
		return nil, apperr.Validation("Question must not be empty")
	}

	sessionID := request.SessionId
	if sessionID == "" {
		sessionID = "default"
	}

	started := time.Now()
	answer, err := cs.pipelineExecutor.Execute(ctx, sessionID, question)
	if err != nil {
		return nil, err
	}
	elapsed := time.Since(started)

	cs.log.Info("chatbot", "turn completed", map[string]interface{}{
		"session_id":  sessionID,
		"duration_ms": elapsed.Milliseconds(),
	})

	if cs.publisherService != nil {
		if err := cs.publisherService.PublishTurnRecorded(&dto.ChatTurnRecordedMessage{
			SessionId:  sessionID,
			Question:   question,
			Answer:     answer,
			DurationMs: elapsed.Milliseconds(),
		}); err != nil {
			log.Printf("[WARN] Failed to publish turn-recorded message: %v", err)
		}
	}

	return &dto.ChatResponse{Answer: answer}, nil
}
