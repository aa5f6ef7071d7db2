package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"resume-roast/config"
	_ "resume-roast/docs" // Swagger docs
	"resume-roast/internal/httpserver"
	memoryRepo "resume-roast/internal/memory/repository/postgre"
	memoryUC "resume-roast/internal/memory/usecase"
	"resume-roast/pkg/log"
	"resume-roast/pkg/openai"
)

// @title       Resume Roast API
// @description Multi-agent resume critique: Critic, Advocate and Realist debate a resume over SSE, learning from user feedback.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Resume Roast...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. PostgreSQL
	db, err := sql.Open("postgres", cfg.Database.URL)
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		logger.Error(ctx, "Failed to ping database: ", err)
		return
	}
	logger.Info(ctx, "PostgreSQL connected")

	// 4. OpenAI gateway
	llm, err := openai.NewClient(openai.Config{
		APIKey:            cfg.OpenAI.APIKey,
		Endpoint:          cfg.OpenAI.Endpoint,
		APIVersion:        cfg.OpenAI.APIVersion,
		Deployment:        cfg.OpenAI.Deployment,
		MaxTokens:         cfg.OpenAI.MaxTokens,
		Temperature:       cfg.OpenAI.Temperature,
		RequestsPerMinute: cfg.OpenAI.RequestsPerMinute,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize OpenAI client: ", err)
		return
	}

	// 5. Memory domain (shared by the debate engine and the patterns API)
	memRepo := memoryRepo.New(db, logger)
	memUC := memoryUC.New(memRepo, logger, memoryUC.Options{
		RefreshInterval: cfg.Memory.RefreshInterval,
		SnapshotLimit:   cfg.Memory.SnapshotLimit,
	})
	memUC.StartRefresher(ctx)

	// 6. HTTP Server
	httpServer, err := httpserver.New(httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		PostgresDB:  db,
		LLM:         llm,
		MemoryUC:    memUC,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
