package bootstrap

import (
	"context"
	"log"
	"time"

	"wealth-advisor-be/internal/config"
	"wealth-advisor-be/internal/controller"
	"wealth-advisor-be/internal/pkg/logger"
	"wealth-advisor-be/internal/pkg/mailer"
	"wealth-advisor-be/internal/repository/contract"
	"wealth-advisor-be/internal/repository/implementation"
	"wealth-advisor-be/internal/repository/memory"
	redisrepo "wealth-advisor-be/internal/repository/redis"
	"wealth-advisor-be/internal/service"
	"wealth-advisor-be/pkg/embedding"
	"wealth-advisor-be/pkg/funnel/compose"
	"wealth-advisor-be/pkg/funnel/extract"
	"wealth-advisor-be/pkg/funnel/state"
	"wealth-advisor-be/pkg/llm/factory"
	pktNats "wealth-advisor-be/pkg/nats"
	"wealth-advisor-be/pkg/retrieval"
	"wealth-advisor-be/pkg/retrieval/flatindex"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	ChatController controller.IChatController

	// Background services, exposed for main.go to run.
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	pipelineLogger := logger.NewPipelineLogger(cfg.App.PipelineLogPath)

	var emailService mailer.IEmailService
	if cfg.SMTP.Host != "" && cfg.SMTP.AdvisorEmail != "" {
		emailService = mailer.NewEmailService(
			cfg.SMTP.Host,
			cfg.SMTP.Port,
			cfg.SMTP.Email,
			cfg.SMTP.Password,
			cfg.SMTP.Email,
			cfg.SMTP.AdvisorEmail,
		)
	} else {
		log.Printf("[WARN] SMTP or advisor email not configured, lead notifications disabled")
	}

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI providers
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.EmbeddingModel)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.EmbeddingModel)
	} else {
		embeddingProvider = embedding.NewOpenAIProvider(cfg.Ai.OpenAIAPIKey, cfg.Ai.EmbeddingModel)
		log.Printf("[INFO] Using Embedding Provider: OPENAI (%s)", cfg.Ai.EmbeddingModel)
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.OpenAIAPIKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. Knowledge index
	var index retrieval.Index
	if cfg.Knowledge.IndexBackend == "flat" {
		flat, err := flatindex.Load(cfg.Knowledge.MetadataPath, cfg.Knowledge.VectorsPath)
		if err != nil {
			log.Fatalf("[FATAL] Failed to load flat knowledge index: %v", err)
		}
		log.Printf("[INFO] Using Knowledge Index: FLAT (%d documents)", flat.Len())
		index = flat
	} else {
		index = implementation.NewKnowledgeRepository(db)
		log.Printf("[INFO] Using Knowledge Index: PGVECTOR")
	}

	// 5. Conversation store
	var conversationRepo contract.ConversationRepository
	if cfg.Store.Backend == "redis" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{Addr: cfg.App.RedisURL}
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
		ttl := time.Duration(cfg.Store.RedisTTLDays) * 24 * time.Hour
		conversationRepo = redisrepo.NewConversationRepository(rdb, ttl)
		log.Printf("[INFO] Using Conversation Store: REDIS")
	} else {
		conversationRepo = implementation.NewConversationRepository(db)
		log.Printf("[INFO] Using Conversation Store: POSTGRES")
	}
	conversationRepo = memory.NewCachedConversationRepository(conversationRepo)

	// 6. NATS (optional outbound integration)
	var natsPub *pktNats.Publisher
	if cfg.App.NatsURL != "" {
		natsPub, err = pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		}
	}

	// 7. Funnel pipeline
	stateStore := state.NewStore(conversationRepo, pipelineLogger)
	extractor := extract.NewExtractor(llmProvider, pipelineLogger)
	retriever := retrieval.NewRetriever(embeddingProvider, index, pipelineLogger)
	composer := compose.NewComposer(llmProvider, cfg.Funnel.MaxReplyRunes, pipelineLogger)

	conversationService := service.NewConversationService(
		stateStore,
		extractor,
		retriever,
		composer,
		pubSub,
		cfg.Funnel.EventTopic,
		sysLogger,
		cfg.Funnel.HistoryWindow,
		cfg.Knowledge.TopK,
	)

	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Funnel.EventTopic,
		emailService,
		natsPub,
	)

	return &Container{
		ChatController:  controller.NewChatController(conversationService),
		ConsumerService: consumerService,
	}
}
