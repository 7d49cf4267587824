package bootstrap

import (
	"log"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"

	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/config"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/constant"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/controller"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/pkg/access"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/pkg/logger"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/pkg/tokens"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/repository/implementation"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/repository/unitofwork"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/service"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/pkg/embedding"
	pktNats "github.com/ViniciusSouza1/backend-chatbot-challenge/pkg/nats"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/pkg/rag"
)

type Container struct {
	// Controllers
	AuthController    controller.IAuthController
	UserController    controller.IUserController
	SessionController controller.ISessionController
	MessageController controller.IMessageController
	ChatController    controller.IChatController
	IngestController  controller.IIngestController

	// Identity resolution for the request middleware
	IdentityService service.IIdentityService

	// Background services (exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	tokenService, err := tokens.NewService(cfg.Auth.JwtSecret, cfg.Auth.JwtAlgorithm, cfg.Auth.JwtTTL)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize token service: %v", err)
	}
	guard := access.NewGuard(cfg.Auth.AdminEmails)

	// Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// NATS audit events (best effort)
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		natsPub = nil
	}

	// Retrieval stack
	embeddingProvider := embedding.NewOllamaProvider(
		cfg.Retrieval.EmbeddingBaseURL,
		cfg.Retrieval.EmbeddingModel,
		cfg.Retrieval.Timeout,
	)
	searcher := rag.NewPgvectorSearcher(embeddingProvider, implementation.NewFaqEmbeddingRepository(db))
	responder := rag.NewResponder(
		searcher,
		cfg.Retrieval.TopK,
		cfg.Retrieval.ConfidenceThreshold,
		constant.ChatFallbackMessage,
		constant.ChatReplyHeader,
		sysLogger,
	)

	// Services
	publisherService := service.NewPublisherService(cfg.App.FaqEmbedTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.FaqEmbedTopic,
		uowFactory,
		embeddingProvider,
		sysLogger,
	)

	identityService := service.NewIdentityService(tokenService, uowFactory, sysLogger)
	authService := service.NewAuthService(uowFactory, tokenService, guard, natsPub, sysLogger)
	userService := service.NewUserService(uowFactory, guard)
	sessionService := service.NewSessionService(uowFactory, guard, natsPub, sysLogger)
	messageService := service.NewMessageService(uowFactory, guard)
	chatService := service.NewChatService(uowFactory, guard, responder, cfg.Retrieval.Timeout)
	ingestService := service.NewIngestService(guard, publisherService, natsPub, sysLogger)

	return &Container{
		AuthController:    controller.NewAuthController(authService),
		UserController:    controller.NewUserController(userService),
		SessionController: controller.NewSessionController(sessionService),
		MessageController: controller.NewMessageController(messageService),
		ChatController:    controller.NewChatController(chatService),
		IngestController:  controller.NewIngestController(ingestService),
		IdentityService:   identityService,
		ConsumerService:   consumerService,
		Logger:            sysLogger,
	}
}
