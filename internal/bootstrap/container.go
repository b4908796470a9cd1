package bootstrap

import (
	"context"
	"log"

	"vaul-ai-be/internal/config"
	"vaul-ai-be/internal/constant"
	"vaul-ai-be/internal/controller"
	"vaul-ai-be/internal/pkg/logger"
	"vaul-ai-be/internal/repository/session"
	"vaul-ai-be/internal/repository/unitofwork"
	"vaul-ai-be/internal/service"
	"vaul-ai-be/pkg/llm/factory"
	"vaul-ai-be/pkg/storage"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController      controller.IAuthController
	UserController      controller.IUserController
	AssistantController controller.IAssistantController
	NoteController      controller.INoteController
	FileController      controller.IFileController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
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

	// 3. Infrastructure
	// Redis-backed refresh sessions, with an in-memory fallback so the app
	// still boots without a Redis instance.
	var sessionStore session.SessionStore
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v. Using in-memory session store", err)
		sessionStore = session.NewMemorySessionStore()
	} else {
		sessionStore = session.NewRedisSessionStore(rdb)
	}

	objectStore, err := storage.NewObjectStore(storage.Config{
		Endpoint:  cfg.Storage.Endpoint,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Bucket:    cfg.Storage.Bucket,
		UseSSL:    cfg.Storage.UseSSL,
	})
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize object storage: %v", err)
	}

	// Initialize LLM Provider based on Config
	llmProvider, err := factory.NewLLMProvider(factory.ProviderConfig{
		Provider:      cfg.Ai.Provider,
		Model:         cfg.Ai.Model,
		OpenAIAPIKey:  cfg.Ai.OpenAIAPIKey,
		OpenAIBaseURL: cfg.Ai.OpenAIBaseURL,
		OllamaBaseURL: cfg.Ai.OllamaBaseURL,
	})
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.Provider, cfg.Ai.Model)

	// 4. Services
	publisherService := service.NewPublisherService(constant.TopicAssistantTurnRecorded, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		constant.TopicAssistantTurnRecorded,
		uowFactory,
		sysLogger,
	)

	authService := service.NewAuthService(uowFactory, sessionStore)
	userService := service.NewUserService(uowFactory)
	noteService := service.NewNoteService(uowFactory)
	fileService := service.NewFileService(uowFactory, objectStore, sysLogger)
	assistantService := service.NewAssistantService(
		uowFactory,
		llmProvider,
		publisherService,
		sysLogger,
	)

	// 5. Controllers
	return &Container{
		AuthController:      controller.NewAuthController(authService),
		UserController:      controller.NewUserController(userService),
		AssistantController: controller.NewAssistantController(assistantService),
		NoteController:      controller.NewNoteController(noteService),
		FileController:      controller.NewFileController(fileService),

		ConsumerService: consumerService,
	}
}
