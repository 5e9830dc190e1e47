package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/sefazor/eventix-backend/internal/config"
	"github.com/sefazor/eventix-backend/internal/handler"
	"github.com/sefazor/eventix-backend/internal/repository"
	"github.com/sefazor/eventix-backend/internal/router"
	"github.com/sefazor/eventix-backend/internal/service"
	"github.com/sefazor/eventix-backend/internal/usecase"
	"github.com/sefazor/eventix-backend/pkg/broker"
	"github.com/sefazor/eventix-backend/pkg/database"
	"github.com/sefazor/eventix-backend/pkg/email"
	"github.com/sefazor/eventix-backend/pkg/jwt"
	"github.com/sefazor/eventix-backend/pkg/logger"
	"github.com/sefazor/eventix-backend/pkg/payment"
	"github.com/sefazor/eventix-backend/pkg/qrcode"
	"github.com/sefazor/eventix-backend/pkg/storage"
	"github.com/sefazor/eventix-backend/pkg/utils"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Config'i yükle
	cfg := config.LoadConfig()

	zlog, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer zlog.Sync()

	// Initialize database
	db, err := database.NewDatabase(cfg.DatabaseURL, cfg.IsDevelopment())
	if err != nil {
		zlog.Fatal("failed to connect to database", zap.Error(err))
	}

	// Run migrations
	if err := database.RunMigrations(db); err != nil {
		zlog.Fatal("failed to migrate database", zap.Error(err))
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	eventRepo := repository.NewEventRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Stripe service
	stripeService := payment.NewStripeService(payment.Options{
		SecretKey:     cfg.Stripe.SecretKey,
		WebhookSecret: cfg.Stripe.WebhookSecret,
		SuccessURL:    cfg.Stripe.SuccessURL,
		CancelURL:     cfg.Stripe.CancelURL,
		Currency:      cfg.Stripe.Currency,
	})

	// Storage services
	signer, err := newUploadSigner(cfg)
	if err != nil {
		zlog.Fatal("failed to initialize media storage", zap.Error(err))
	}

	// Email service
	emailService := email.NewEmailService(cfg.Resend.APIKey, cfg.Resend.From, cfg.Resend.FromName, zlog)

	var publisher broker.Publisher = broker.NewNoopPublisher(zlog)
	if cfg.RabbitMQURL != "" {
		b, err := broker.NewBroker(cfg.RabbitMQURL, broker.DefaultExchange, zlog)
		if err != nil {
			zlog.Fatal("failed to connect to RabbitMQ", zap.Error(err))
		}
		publisher = b
	}
	defer publisher.Close()

	tokens := jwt.NewManager(cfg.JWTSecret)
	qrService := qrcode.NewQRService(cfg.TicketQRPrefix)

	// Services
	eventService := service.NewEventService(eventRepo, categoryRepo, userRepo, orderRepo, stripeService, publisher, zlog)
	userService := service.NewUserService(userRepo, tokens, zlog)
	categoryService := service.NewCategoryService(categoryRepo, zlog)
	orderService := service.NewOrderService(orderRepo, eventRepo, userRepo, stripeService, emailService, publisher, qrService, zlog)
	mediaService := service.NewMediaService(signer, zlog)

	validator := utils.NewValidator()

	// Handlers
	handlers := router.Handlers{
		Category: handler.NewCategoryHandler(usecase.NewCategoryUseCase(categoryService), validator, zlog),
		Event:    handler.NewEventHandler(usecase.NewEventUseCase(eventService), validator, zlog),
		User:     handler.NewUserHandler(usecase.NewUserUseCase(userService), validator, zlog),
		Order:    handler.NewOrderHandler(usecase.NewOrderUseCase(orderService), validator, zlog),
		Media:    handler.NewMediaHandler(usecase.NewMediaUseCase(mediaService), validator, zlog),
	}

	app := router.NewRouter(handlers, tokens, router.Options{
		CORSOrigins:  cfg.CORSOrigins,
		RateLimitMax: cfg.RateLimitMax,
		AccessLog:    true,
	}, zlog)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit

		zlog.Info("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			zlog.Error("shutdown failed", zap.Error(err))
		}
	}()

	// Start server
	zlog.Info("listening", zap.String("port", cfg.Port), zap.String("media_provider", cfg.MediaProvider))
	if err := app.Listen(":" + cfg.Port); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}

func newUploadSigner(cfg *config.Config) (storage.UploadSigner, error) {
	if cfg.MediaProvider == config.MediaProviderImages {
		return storage.NewCloudflareImages(cfg.CloudflareImages.AccountID, cfg.CloudflareImages.Token, cfg.CloudflareImages.Hash), nil
	}
	return storage.NewCloudflareStorage(context.Background(), cfg)
}
