package bootstrap

import (
	"log"

	"gamechat-be/internal/config"
	"gamechat-be/internal/controller"
	"gamechat-be/internal/pkg/logger"
	"gamechat-be/internal/pkg/serverutils"
	"gamechat-be/internal/repository/contract"
	"gamechat-be/internal/repository/implementation"
	"gamechat-be/internal/service"
	"gamechat-be/pkg/llm/factory"
)

type Container struct {
	// Controllers
	GameController controller.IGameController
	ChatController controller.IChatController

	// Exposed for shutdown handling in main.go
	Logger logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Conversation store
	var logRepo contract.ConversationLogRepository
	switch cfg.Store.Driver {
	case "bolt":
		boltRepo, err := implementation.NewBoltConversationLogRepository(cfg.Store.DataDir + "/conversations.bolt")
		if err != nil {
			log.Fatalf("[FATAL] Failed to open bolt conversation store: %v", err)
		}
		logRepo = boltRepo
		log.Printf("[INFO] Using Conversation Store: BOLT (%s)", cfg.Store.DataDir)
	default:
		logRepo = implementation.NewFileConversationLogRepository(cfg.Store.DataDir)
		log.Printf("[INFO] Using Conversation Store: FILE (%s)", cfg.Store.DataDir)
	}

	// 3. Game catalog
	gameService, err := service.NewGameService(cfg.App.GamesFile, sysLogger)
	if err != nil {
		log.Fatalf("[FATAL] Failed to load game catalog: %v", err)
	}

	// 4. LLM Provider based on Config
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.Provider,
		cfg.Ai.Model,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.GeminiAPIKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.Provider, cfg.Ai.Model)

	// 5. Services & Controllers
	chatService := service.NewChatService(logRepo, gameService, llmProvider, sysLogger)
	sessionMid := serverutils.SessionMiddleware(cfg.Session)

	return &Container{
		GameController: controller.NewGameController(gameService),
		ChatController: controller.NewChatController(chatService, sessionMid),
		Logger:         sysLogger,
	}
}
