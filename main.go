package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"prospera-go-be/advisor"
	"prospera-go-be/config"
	"prospera-go-be/database"
	"prospera-go-be/handlers"
	"prospera-go-be/state"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration. \n", err)
	}

	ctx := context.Background()

	// Storage
	backend, err := database.Open(cfg)
	if err != nil {
		log.Printf("Storage unavailable (%v), running with in-memory state only", err)
		backend = database.NewMemory()
	}
	store := database.NewStore(backend)
	defer store.Close()

	// Advice
	var gen advisor.Generator
	if key := cfg.AdviceKey(); key != "" {
		gemini, err := advisor.NewGemini(ctx, key, cfg.AdviceModel)
		if err != nil {
			log.Printf("Advice generator disabled: %v", err)
		} else {
			gen = gemini
		}
	} else {
		log.Println("GEMINI_API_KEY not set, advice will use the fallback tip")
	}

	model := state.Load(ctx, store, advisor.New(gen, cfg.AdviceTimeout))

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	handlers.New(model).Register(app.Group("/api/v1"))

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down")
		if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
			log.Printf("Shutdown failed: %v", err)
		}
	}()

	log.Printf("Listening on %s", cfg.ListenAddr())
	if err := app.Listen(cfg.ListenAddr()); err != nil {
		log.Fatal(err)
	}
}
