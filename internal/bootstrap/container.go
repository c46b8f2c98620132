package bootstrap

import (
	"log"
	"os"

	"schemekhoj-be/internal/config"
	"schemekhoj-be/internal/controller"
	"schemekhoj-be/internal/pkg/logger"
	"schemekhoj-be/internal/repository/implementation"
	"schemekhoj-be/internal/repository/memory"
	"schemekhoj-be/internal/retrieval"
	"schemekhoj-be/internal/service"
	"schemekhoj-be/pkg/embedding"
	"schemekhoj-be/pkg/embedding/jina"
	"schemekhoj-be/pkg/llm/factory"

	pkgNats "schemekhoj-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AgentController  controller.IAgentController
	SchemeController controller.ISchemeController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// Infrastructure handles main.go closes on shutdown
	NatsPublisher *pkgNats.Publisher
	SysLogger     logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	schemeRepo := implementation.NewSchemeRepository(db)
	embeddingRepo := implementation.NewSchemeEmbeddingRepository(db)
	sessionRepo := memory.NewSessionRepository()
	transcriptRepo := memory.NewTranscriptRepository()

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI Providers
	// Initialize Embedding Provider based on Config
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	} else if cfg.Ai.EmbeddingProvider == "jina" {
		embeddingProvider = jina.NewJinaProvider(cfg.Keys.Jina)
		log.Printf("[INFO] Using Embedding Provider: JINA AI")
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	}

	// Initialize LLM Provider based on Config
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.Groq,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. Infrastructure
	// NATS is optional; submission events are skipped when unavailable.
	natsPub, err := pkgNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		natsPub = nil
	}

	// 5. Services
	retrievalLogger := log.New(os.Stdout, "[RETRIEVAL] ", log.LstdFlags)
	retriever := retrieval.NewSchemeRetriever(schemeRepo, embeddingProvider, retrievalLogger)

	publisherService := service.NewPublisherService(cfg.Keys.EmbedTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Keys.EmbedTopic,
		schemeRepo,
		embeddingRepo,
		embeddingProvider, // Injected
	)

	schemeService := service.NewSchemeService(schemeRepo, publisherService, sysLogger)
	agentService := service.NewAgentService(
		llmProvider, // Injected
		retriever,
		sessionRepo,
		transcriptRepo,
		natsPub,
		cfg.Retrieval.TopK,
	)

	// 6. Controllers
	return &Container{
		AgentController:  controller.NewAgentController(agentService),
		SchemeController: controller.NewSchemeController(schemeService),

		ConsumerService: consumerService,

		NatsPublisher: natsPub,
		SysLogger:     sysLogger,
	}
}
