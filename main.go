package main

import (
	"context"
	"log"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/Lehari1/citypulse/config"
	"github.com/Lehari1/citypulse/controllers"
	"github.com/Lehari1/citypulse/database"
	"github.com/Lehari1/citypulse/routes"
	"github.com/Lehari1/citypulse/store"
)

func main() {
	cfg := config.Load()

	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.SentryDSN}); err != nil {
			log.Printf("sentry init failed: %v", err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	if err := database.Connect(context.Background(), cfg); err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer database.Disconnect(context.Background())

	app := fiber.New()
	app.Use(recover.New())

	// Log concise request lines
	app.Use(logger.New(logger.Config{
		TimeFormat: "15:04:05",
	}))

	// CORS (dev-friendly)
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: "GET,POST,PUT,PATCH,OPTIONS",
		AllowHeaders: "*",
		MaxAge:       int((12 * time.Hour).Seconds()),
	}))

	// Health
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })

	// API
	reports := controllers.NewReports(store.NewReports())
	routes.Register(app, reports)

	log.Println("API listening on :" + cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
