package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"modemarket/internal/config"
	"modemarket/internal/http/handlers"
	applog "modemarket/internal/log"
	"modemarket/internal/repos"
)

func main() {
	cfg := config.Load()
	applog.Init(cfg.LogFile)

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message":      "internal server error",
				"errorMessage": "server_error",
			})
		},
	})
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: time.Minute,
	}))

	deps := handlers.NewDeps(db, cfg.JWTSecret)
	signin := handlers.RequireSignin(deps.Auth)

	// Auth (login throttled)
	app.Post("/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"message":      "too many requests",
				"errorMessage": "rate_limit_exceeded",
			})
		},
	}), deps.AuthHandler.Login)

	// Admin
	admin := app.Group("/admin", signin)
	admin.Post("/products", deps.ProductHandler.Create)

	// Seller storefront
	store := app.Group("/store")
	store.Get("/sellers/:id", deps.SellerHandler.Info)
	store.Get("/sellers/:id/categories", deps.SellerHandler.Categories)
	store.Get("/sellers/:id/products", deps.SellerHandler.Products)

	// Destinations
	destinations := app.Group("/destinations", signin)
	destinations.Get("/", deps.DestinationHandler.List)
	destinations.Post("/", deps.DestinationHandler.Create)
	destinations.Get("/:id", deps.DestinationHandler.Detail)
	destinations.Patch("/:id", deps.DestinationHandler.Update)
	destinations.Delete("/:id", deps.DestinationHandler.Delete)

	// Carts & orders
	store.Post("/carts", signin, deps.CartHandler.Create)
	store.Get("/carts/:id", signin, deps.CartHandler.Detail)
	store.Post("/orders", signin, deps.OrderHandler.Place)
	store.Get("/orders/sender", signin, deps.OrderHandler.Sender)
	store.Get("/orders/:id", signin, deps.OrderHandler.Result)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message":      "page not found",
			"errorMessage": "page_not_found",
		})
	})

	applog.Info(nil, "server.start", map[string]any{"port": cfg.Port})
	log.Fatal(app.Listen(":" + cfg.Port))
}
