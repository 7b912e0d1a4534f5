package bootstrap

import (
	"log"

	"vilaw-chatbot-be/internal/config"
	"vilaw-chatbot-be/internal/controller"
	"vilaw-chatbot-be/internal/pkg/logger"
	"vilaw-chatbot-be/internal/repository/contract"
	"vilaw-chatbot-be/internal/repository/implementation"
	"vilaw-chatbot-be/internal/repository/memory"
	"vilaw-chatbot-be/internal/repository/redisrepo"
	"vilaw-chatbot-be/internal/repository/unitofwork"
	"vilaw-chatbot-be/internal/service"
	"vilaw-chatbot-be/pkg/embedding"
	"vilaw-chatbot-be/pkg/llm/factory"
	pktNats "vilaw-chatbot-be/pkg/nats"
	"vilaw-chatbot-be/pkg/rag/executor"
	"vilaw-chatbot-be/pkg/rag/history"
	"vilaw-chatbot-be/pkg/rag/retriever"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatbotController controller.IChatbotController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// Exposed for tests and ops tooling
	HistoryStore *history.Store
	SysLogger    logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI Providers
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, "")
		log.Printf("[INFO] Using Embedding Provider: OLLAMA")
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini, cfg.Ai.EmbeddingModel)
		log.Printf("[INFO] Using Embedding Provider: GEMINI (%s)", cfg.Ai.EmbeddingModel)
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.GoogleGemini,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. Session Memory
	var historyRepo contract.HistoryRepository
	if cfg.Session.Backend == "redis" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{Addr: cfg.App.RedisURL}
		}
		rdb := redis.NewClient(opt)
		historyRepo = redisrepo.NewHistoryRepository(rdb, cfg.Session.TTL)
		log.Printf("[INFO] Using Session Backend: REDIS")
	} else {
		historyRepo = memory.NewHistoryRepository(cfg.Session.TTL)
		log.Printf("[INFO] Using Session Backend: MEMORY")
	}
	historyStore := history.NewStore(historyRepo)

	// 5. Retrieval Pipeline
	lawDocRepo := implementation.NewLawDocumentRepository(db)
	docRetriever := retriever.NewRetriever(embeddingProvider, lawDocRepo, cfg.Ai.RetrievalTopK)
	pipelineExecutor := executor.NewPipelineExecutor(
		docRetriever,
		llmProvider,
		historyStore,
		cfg.Ai.Temperature,
		sysLogger,
	)

	// 6. NATS (optional external event bus)
	var natsPub *pktNats.Publisher
	if cfg.App.NatsURL != "" {
		natsPub, err = pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
			natsPub = nil
		}
	}

	// 7. Services
	publisherService := service.NewPublisherService(cfg.App.TurnTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.TurnTopic,
		uowFactory,
		natsPub,
	)
	chatbotService := service.NewChatbotService(
		pipelineExecutor,
		publisherService,
		sysLogger,
	)

	// 8. Controllers
	return &Container{
		ChatbotController: controller.NewChatbotController(chatbotService),
		ConsumerService:   consumerService,
		HistoryStore:      historyStore,
		SysLogger:         sysLogger,
	}
}
