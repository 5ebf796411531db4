package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/example/fashionstore/internal/config"
	"github.com/example/fashionstore/internal/database"
	"github.com/example/fashionstore/internal/routes"
	"github.com/example/fashionstore/internal/session"
)

func main() {
	cfg := config.Load()
	db := database.Connect(cfg.DatabaseURL)

	if err := database.Seed(db); err != nil {
		log.Fatalf("catalog seed failed: %v", err)
	}
	if err := database.EnsureAdmin(db, cfg); err != nil {
		log.Fatalf("admin bootstrap failed: %v", err)
	}

	var store session.Store
	if cfg.RedisAddr != "" {
		redisStore, err := session.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.CartTTL)
		if err != nil {
			log.Fatalf("redis connect failed: %v", err)
		}
		defer redisStore.Close()
		store = redisStore
	} else {
		log.Print("REDIS_ADDR not set, using in-memory session store")
		store = session.NewMemoryStore(cfg.CartTTL)
	}

	app := fiber.New(fiber.Config{
		AppName: "Fashion Store Backend",
	})

	app.Use(recover.New())
	app.Use(logger.New())

	routes.Register(app, db, cfg, store)

	log.Printf("Starting server on :%s", cfg.AppPort)
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatalf("fiber.Listen error: %v", err)
	}
}
