package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sefazor/eventix-backend/internal/handler"
	"github.com/sefazor/eventix-backend/internal/middleware"
	"go.uber.org/zap"
)

type Handlers struct {
	Category *handler.CategoryHandler
	Event    *handler.EventHandler
	User     *handler.UserHandler
	Order    *handler.OrderHandler
	Media    *handler.MediaHandler
}

type Options struct {
	CORSOrigins  string
	RateLimitMax int
	AccessLog    bool
}

func NewRouter(h Handlers, tokens middleware.TokenValidator, opts Options, log *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "eventix-backend",
		ErrorHandler: handler.ErrorHandler(log),
	})

	// Global Middleware'ler önce tanımlanmalı
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: opts.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, Stripe-Signature",
		AllowMethods: "GET, POST, DELETE",
	}))
	if opts.AccessLog {
		app.Use(logger.New())
	}
	if opts.RateLimitMax > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        opts.RateLimitMax,
			Expiration: 1 * time.Minute,
			KeyGenerator: func(c *fiber.Ctx) string {
				return c.IP()
			},
			// Stripe webhook'ları sınırlanmaz
			Next: func(c *fiber.Ctx) bool {
				return c.Path() == "/api/v1/webhook/stripe"
			},
		}))
	}

	auth := middleware.AuthMiddleware(tokens, log.Named("auth"))

	api := app.Group("/api/v1")

	// Public routes
	api.Post("/category", h.Category.CreateCategory)
	api.Get("/categories", h.Category.GetCategories)

	api.Get("/events", h.Event.GetEvents)
	api.Get("/events/trending", h.Event.GetTrendingEvents)
	api.Get("/events/cities", h.Event.GetCities)
	api.Get("/event/:id", h.Event.GetEvent)

	api.Post("/user", h.User.CreateUser)
	api.Get("/user/:email", h.User.GetUserByEmail)

	// Stripe webhook (imza ile doğrulanır)
	api.Post("/webhook/stripe", h.Order.HandleStripeWebhook)

	// Protected routes
	api.Get("/sign-upload-image", auth, h.Media.SignUploadImage)
	api.Post("/event", auth, h.Event.CreateEvent)
	api.Delete("/event/:id", auth, h.Event.DeleteEvent)
	api.Delete("/user/:id", auth, h.User.DeleteUser)
	api.Post("/checkout", auth, h.Order.Checkout)
	api.Get("/orders", auth, h.Order.GetOrders)
	api.Get("/order/:id/qrcode", auth, h.Order.GetTicketQRCode)

	return app
}
