package bootstrap

import (
	"log"
	"os"

	"printing-support-be/internal/config"
	"printing-support-be/internal/controller"
	"printing-support-be/internal/pkg/logger"
	"printing-support-be/internal/repository/unitofwork"
	"printing-support-be/internal/service"
	"printing-support-be/pkg/llm/factory"
	"printing-support-be/pkg/realtime"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController     controller.IAuthController
	ChatController     controller.IChatController
	RealtimeController controller.IRealtimeController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	auditLogger := logger.NewIsolatedLogger(cfg.App.ActivityLogPath)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Infrastructure Clients
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OpenAIKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	realtimeClient := realtime.NewClient(cfg.Ai.OpenAIKey)

	// Optional persona prompt override; the built-in prompt is used when
	// the file is unset or unreadable.
	systemPrompt := ""
	if cfg.Ai.PromptPath != "" {
		raw, err := os.ReadFile(cfg.Ai.PromptPath)
		if err != nil {
			log.Printf("[WARN] Failed to read prompt file %s: %v", cfg.Ai.PromptPath, err)
		} else {
			systemPrompt = string(raw)
		}
	}

	// 4. Services
	publisherService := service.NewPublisherService(cfg.App.ActivityTopic, pubSub, sysLogger)
	consumerService := service.NewConsumerService(pubSub, cfg.App.ActivityTopic, auditLogger)

	authService := service.NewAuthService(uowFactory, sysLogger)
	chatService := service.NewChatService(uowFactory, llmProvider, publisherService, systemPrompt, sysLogger)
	realtimeService := service.NewRealtimeService(
		realtimeClient,
		cfg.Realtime.SessionModel,
		cfg.Realtime.CallModel,
		cfg.Realtime.Voice,
		sysLogger,
	)

	// 5. Controllers
	return &Container{
		AuthController:     controller.NewAuthController(authService),
		ChatController:     controller.NewChatController(chatService),
		RealtimeController: controller.NewRealtimeController(realtimeService),

		ConsumerService: consumerService,
	}
}
