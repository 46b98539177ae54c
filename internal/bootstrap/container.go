package bootstrap

import (
	"context"
	"log"
	"time"

	"ai-salescoach-be/internal/config"
	"ai-salescoach-be/internal/controller"
	"ai-salescoach-be/internal/handler"
	"ai-salescoach-be/internal/pkg/logger"
	"ai-salescoach-be/internal/repository/implementation"
	"ai-salescoach-be/internal/repository/memory"
	"ai-salescoach-be/internal/service"
	"ai-salescoach-be/internal/websocket"
	"ai-salescoach-be/pkg/coach/cuebank"
	"ai-salescoach-be/pkg/coach/dedup"
	"ai-salescoach-be/pkg/coach/gate"
	"ai-salescoach-be/pkg/embedding"
	"ai-salescoach-be/pkg/embedding/jina"
	"ai-salescoach-be/pkg/llm"
	"ai-salescoach-be/pkg/llm/factory"
	"ai-salescoach-be/pkg/trigger"
	"ai-salescoach-be/pkg/vectorstore"

	pktNats "ai-salescoach-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	WebhookController  controller.IWebhookController
	CallController     controller.ICallController
	PlaybookController controller.IPlaybookController
	DocumentController controller.IDocumentController

	// Background services (exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets
	CueStreamHandler *handler.CueStreamHandler
	WebSocketHub     *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// Event bus for async document embedding.
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// Embedding cascade: Gemini, Jina, Ollama, HuggingFace, in that order.
	// Keys left empty in the config silently drop that provider.
	var embedProviders []embedding.Provider
	if cfg.Keys.GoogleGemini != "" {
		embedProviders = append(embedProviders, embedding.NewGeminiProvider(cfg.Keys.GoogleGemini))
	}
	if cfg.Keys.Jina != "" {
		embedProviders = append(embedProviders, jina.NewProvider(cfg.Keys.Jina))
	}
	if cfg.Ai.OllamaEmbeddingModel != "" {
		embedProviders = append(embedProviders, embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaEmbeddingModel))
	}
	if cfg.Keys.HuggingFace != "" {
		embedProviders = append(embedProviders, embedding.NewHuggingFaceProvider(cfg.Keys.HuggingFace, ""))
	}
	providerTimeout := time.Duration(cfg.Ai.ProviderTimeoutMs) * time.Millisecond
	embedCascade := embedding.NewCascade(embedProviders, cfg.Ai.EmbeddingDimension, cfg.Ai.EmbedRetries, providerTimeout)
	log.Printf("[INFO] Embedding cascade initialized with %d providers (dim %d)", len(embedProviders), embedCascade.Dim())

	// Chat cascade with the static cue bank as terminal fallback.
	chatProviders := factory.NewProviders(factory.CascadeConfig{
		GroqApiKey:        cfg.Keys.Groq,
		GroqModel:         cfg.Ai.GroqModel,
		HuggingFaceApiKey: cfg.Keys.HuggingFace,
		HuggingFaceModel:  cfg.Ai.HuggingFaceModel,
		OllamaBaseURL:     cfg.Ai.OllamaBaseURL,
		OllamaModel:       cfg.Ai.OllamaChatModel,
	})
	bank := cuebank.New(nil)
	chatCascade := llm.NewCascade(
		chatProviders,
		bank,
		cfg.Coach.CueWordCap,
		cfg.Coach.MaxTokens,
		cfg.Coach.Temperature,
		providerTimeout,
	)

	// Repositories
	transcriptRepo := implementation.NewTranscriptRepository(db)
	cueRepo := implementation.NewCueRepository(db)
	playbookRepo := implementation.NewPlaybookRepository(db)
	docRepo := implementation.NewDocumentRepository(db)
	sessionRepo := memory.NewCallSessionRepository()
	store := vectorstore.NewPgStore(db)

	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// WebSocket hub for cue delivery.
	wsLogger := logger.NewIsolatedLogger("logs/cue-delivery.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	publisherService := service.NewPublisherService(cfg.Ai.EmbedDocumentTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Ai.EmbedDocumentTopic,
		docRepo,
		embedCascade,
		store,
		service.ConsumerConfig{
			ChunkSizeWords:    cfg.Coach.ChunkSizeWords,
			ChunkOverlapWords: cfg.Coach.ChunkOverlapWords,
		},
	)

	retrievalService := service.NewRetrievalService(store, embedCascade, sysLogger)

	deduplicator := dedup.New(
		time.Duration(cfg.Coach.DedupWindowSecs)*time.Second,
		cfg.Coach.DedupPrefixLen,
	)

	var eventPub service.EventPublisher
	if natsPub != nil {
		eventPub = natsPub
	}

	coachingService := service.NewCoachingService(
		transcriptRepo,
		cueRepo,
		playbookRepo,
		sessionRepo,
		trigger.NewDetector(),
		gate.New(gate.DefaultRules()),
		retrievalService,
		chatCascade,
		deduplicator,
		wsHub,
		eventPub,
		sysLogger,
		service.CoachingConfig{
			RagTopK:       cfg.Coach.RagTopK,
			DedupLookback: cfg.Coach.DedupLookback,
		},
	)

	// Audit trail worker over the cue event bus.
	if natsSub != nil {
		auditService := service.NewCueAuditService(natsSub, sysLogger)
		go auditService.Start()
	}

	callService := service.NewCallService(sessionRepo, cueRepo, playbookRepo)
	playbookService := service.NewPlaybookService(playbookRepo)
	documentService := service.NewDocumentService(docRepo, publisherService, store, sysLogger)

	return &Container{
		WebhookController:  controller.NewWebhookController(coachingService, cfg.App.WebhookToken, sysLogger),
		CallController:     controller.NewCallController(callService),
		PlaybookController: controller.NewPlaybookController(playbookService),
		DocumentController: controller.NewDocumentController(documentService),

		ConsumerService:  consumerService,
		CueStreamHandler: handler.NewCueStreamHandler(wsHub, wsLogger),
		WebSocketHub:     wsHub,
	}
}
