package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmo2498/MLB/db"
	"github.com/jmo2498/MLB/internal/config"
	"github.com/jmo2498/MLB/internal/queue"
	"github.com/jmo2498/MLB/internal/recap"
	"github.com/jmo2498/MLB/internal/repository"
	"github.com/jmo2498/MLB/internal/worker"
	"github.com/jmo2498/MLB/pkg/llm"
	"github.com/jmo2498/MLB/pkg/mlb"
)

func main() {

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := db.ConnectRedis(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatalf("error connecting to Redis: %v", err)
	}
	defer db.CloseRedis()

	err = db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatalf("error migrating DB: %v", err)
	}

	generator, err := llm.NewTextGenerator(cfg.LLMProvider, cfg.LLMAPIKey, cfg.Generation)
	if err != nil {
		log.Fatalf("error creating LLM client: %v", err)
	}

	mlbClient := mlb.NewClient(cfg.MLBBaseURL, cfg.MLBRequestsPerSecond)
	service := recap.NewService(mlbClient, generator)
	recapQueue := queue.NewRecapQueue(db.Redis, db.RecapQueueKey, db.DeadLetterKey)
	recapRepo := repository.NewRecapRepository(db.DB)

	slog.Info("recap worker started", "queue", db.RecapQueueKey, "source", mlbClient.Name(), "model", service.ModelName())

	if err := worker.NewRecapWorker(recapQueue, service, recapRepo).Run(ctx); err != nil {
		slog.Error("recap worker stopped", "error", err)
		os.Exit(1)
	}

	slog.Info("recap worker shut down")
}
