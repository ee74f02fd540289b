package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/samaladyasa/spice-and-soul-backend/internal/api/http"
	"github.com/samaladyasa/spice-and-soul-backend/internal/api/http/handlers"
	"github.com/samaladyasa/spice-and-soul-backend/internal/auth"
	"github.com/samaladyasa/spice-and-soul-backend/internal/codes"
	"github.com/samaladyasa/spice-and-soul-backend/internal/config"
	"github.com/samaladyasa/spice-and-soul-backend/internal/events"
	"github.com/samaladyasa/spice-and-soul-backend/internal/mailer"
	"github.com/samaladyasa/spice-and-soul-backend/internal/observability"
	"github.com/samaladyasa/spice-and-soul-backend/internal/persistence"
	"github.com/samaladyasa/spice-and-soul-backend/internal/repository"
	"github.com/samaladyasa/spice-and-soul-backend/internal/service"
	"github.com/samaladyasa/spice-and-soul-backend/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	metrics := observability.NewMetrics()

	awsCfg, err := persistence.NewAWSConfig(ctx, cfg.AWS)
	if err != nil {
		logger.Fatal("failed to load aws config", zap.Error(err))
	}
	dynamo := persistence.NewDynamoDB(awsCfg, cfg.AWS, logger)
	sesClient := sesv2.NewFromConfig(awsCfg)
	cognitoClient := cognitoidentityprovider.NewFromConfig(awsCfg)

	userRepo := repository.NewUserRepository(dynamo, cfg.Tables.Users)
	orderRepo := repository.NewOrderRepository(dynamo, cfg.Tables.Orders)

	var codeRepo repository.CodeRepository
	if cfg.Auth.CodeStoreBackend == "redis" {
		redis := persistence.NewRedis(cfg.Redis, logger)
		defer redis.Close()
		codeRepo = repository.NewRedisCodeRepository(redis.Client)
	} else {
		codeRepo = repository.NewCodeRepository(dynamo, cfg.Tables.Codes)
	}
	codeStore := codes.NewStore(codeRepo, cfg.Auth.ResetCodeTTL())

	tokens := auth.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL(), cfg.Cognito.Issuer(), logger)
	authGate := auth.NewAuthGate(tokens)

	dispatcher := events.NewInMemoryDispatcher()
	mail := mailer.NewSMTPMailer(cfg.Email)

	authService := service.NewAuthService(cfg.Auth, service.AuthDependencies{
		UserRepo:   userRepo,
		CodeStore:  codeStore,
		Tokens:     tokens,
		Dispatcher: dispatcher,
		Logger:     logger,
	})
	orderService := service.NewOrderService(orderRepo, userRepo, dispatcher, logger)
	reservationService := service.NewReservationService(sesClient, cfg.Email, logger)
	paymentService := service.NewPaymentService(cfg.Payment, logger)
	cognitoService := service.NewCognitoService(cognitoClient, cfg.Cognito, logger)

	notificationService := service.NewNotificationService(dispatcher, mail, logger)
	worker.StartNotificationWorker(notificationService)

	validate := validator.New()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.Frontend.CORSOrigin, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:       handlers.NewHealthHandler(),
		Auth:         handlers.NewAuthHandler(authService, validate),
		Cognito:      handlers.NewCognitoHandler(cognitoService, validate),
		Orders:       handlers.NewOrdersHandler(orderService, validate),
		Reservations: handlers.NewReservationsHandler(reservationService, validate),
		Payments:     handlers.NewPaymentsHandler(paymentService, validate),
		Admin:        handlers.NewAdminHandler(userRepo, orderService, codeRepo),
		AuthGate:     authGate,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
