package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"cad-engine/internal/common/config"
	"cad-engine/internal/common/middleware"
	"cad-engine/internal/engine/handlers"
	"cad-engine/internal/engine/history"
	"cad-engine/internal/engine/storage"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
)

// ============================================================
// CAD Engine Service
// ============================================================

func main() {
	cfg := config.Load()

	db, err := history.OpenSQLite(cfg.HistoryDBPath)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	store := history.New(db)
	if err := store.Init(context.Background(), cfg.MigrationsPath); err != nil {
		log.Fatalf("init db: %v", err)
	}

	files := storage.New(cfg.OutputDir)
	if err := files.EnsureRoot(); err != nil {
		log.Fatalf("init storage: %v", err)
	}

	handler := handlers.New(store, files)

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		AppName:      "CAD Engine Service",
	})

	// ============================================================
	// Global Middleware
	// ============================================================

	app.Use(recover.New())
	app.Use(middleware.Logger())
	app.Use(middleware.CORS())

	// ============================================================
	// Health Check Routes
	// ============================================================

	app.Get("/health/live", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "alive"})
	})

	app.Get("/health/ready", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ready"})
	})

	// ============================================================
	// Engine Routes
	// ============================================================

	app.Post("/api/generate", handler.Generate)
	app.Post("/api/export-3d/:id", handler.Export3D)
	app.Post("/api/render", handler.Render)
	app.Get("/api/shapes", handler.Shapes)
	app.Get("/download/:filename", handler.Download)

	app.Get("/api/history", handler.ListHistory)
	app.Get("/api/history/:id", handler.GetHistory)
	app.Delete("/api/history/:id", handler.DeleteHistory)
	app.Delete("/api/history", handler.ClearHistory)

	// ============================================================
	// Server Start
	// ============================================================

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting CAD Engine Service on %s (env: %s)", addr, cfg.Environment)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
