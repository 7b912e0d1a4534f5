package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"vilaw-chatbot-be/internal/dto"
	"vilaw-chatbot-be/internal/entity"
	"vilaw-chatbot-be/internal/repository/unitofwork"
	"vilaw-chatbot-be/pkg/events"
	pktNats "vilaw-chatbot-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the turn-recorded topic: each message becomes an
// audit row in system_logs and, when a NATS publisher is wired, an event on
// the external bus. Keeps the request path free of audit latency.
type consumerService struct {
	pubSub         *gochannel.GoChannel
	topicName      string
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher // nil when NATS is not configured
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	eventPublisher *pktNats.Publisher,
) IConsumerService {
	return &consumerService{
		pubSub:         pubSub,
		topicName:      topicName,
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.ChatTurnRecordedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal turn message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	auditEntry := &entity.SystemLog{
		Id:        uuid.New(),
		Category:  "chat_turn",
		SessionId: payload.SessionId,
		Message:   "turn recorded",
		Details: map[string]interface{}{
			"question_chars": len(payload.Question),
			"answer_chars":   len(payload.Answer),
			"duration_ms":    payload.DurationMs,
		},
		CreatedAt: time.Now(),
	}
	if err := uow.SystemLogRepository().Create(ctx, auditEntry); err != nil {
		log.Printf("[ERROR] Failed to persist chat audit log: %v", err)
		msg.Nack() // Nack for retriable errors
		return
	}

	if cs.eventPublisher != nil {
		event := events.ChatTurnRecorded{
			SessionId:  payload.SessionId,
			Question:   payload.Question,
			Answer:     payload.Answer,
			DurationMs: payload.DurationMs,
		}
		if err := cs.eventPublisher.Publish(ctx, event); err != nil {
			log.Printf("[WARN] Failed to publish turn event to NATS: %v", err)
			// Audit row is already written; don't redeliver for bus issues
		}
	}

	msg.Ack()
}
