package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jmo2498/MLB/db"
	"github.com/jmo2498/MLB/internal/config"
	"github.com/jmo2498/MLB/internal/handler"
	"github.com/jmo2498/MLB/internal/queue"
	"github.com/jmo2498/MLB/internal/recap"
	"github.com/jmo2498/MLB/internal/repository"
	"github.com/jmo2498/MLB/pkg/llm"
	"github.com/jmo2498/MLB/pkg/mlb"
)

func main() {

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.Load()

	generator, err := llm.NewTextGenerator(cfg.LLMProvider, cfg.LLMAPIKey, cfg.Generation)
	if err != nil {
		log.Fatalf("error creating LLM client: %v", err)
	}

	mlbClient := mlb.NewClient(cfg.MLBBaseURL, cfg.MLBRequestsPerSecond)
	slog.Info("game data source", "source", mlbClient.Name(), "base_url", cfg.MLBBaseURL, "model", generator.ModelName())
	service := recap.NewService(mlbClient, generator)
	gameHandler := handler.NewGameHandler(service)

	r := gin.Default()

	slog.Info("AllowOrigins URL:", "urls", cfg.FrontendURLs)

	r.Use(cors.New(cors.Config{
		AllowOrigins: cfg.FrontendURLs,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
	}))

	r.GET("/game-data", gameHandler.GetGameData)

	checks := map[string]handler.HealthCheck{}

	var recapRepo *repository.RecapRepository
	if cfg.DatabaseURL != "" {
		if err := db.Connect(cfg.DatabaseURL); err != nil {
			log.Fatalf("error connecting to DB: %v", err)
		}
		defer db.Close()

		if err := db.Migrate(); err != nil {
			log.Fatalf("error migrating DB: %v", err)
		}

		recapRepo = repository.NewRecapRepository(db.DB)
		checks["database"] = func(ctx context.Context) error { return recapRepo.Ping() }
	} else {
		slog.Warn("DATABASE_URL not set, recap archive disabled")
	}

	var recapQueue *queue.RecapQueue
	if cfg.RedisURL != "" {
		if err := db.ConnectRedis(context.Background(), cfg.RedisURL); err != nil {
			log.Fatalf("error connecting to Redis: %v", err)
		}
		defer db.CloseRedis()

		recapQueue = queue.NewRecapQueue(db.Redis, db.RecapQueueKey, db.DeadLetterKey)
		checks["redis"] = recapQueue.Ping
	} else {
		slog.Warn("REDIS_URL not set, background recaps disabled")
	}

	if recapRepo != nil {
		var jobs handler.JobQueue
		if recapQueue != nil {
			jobs = recapQueue
		}

		recapHandler := handler.NewRecapHandler(recapRepo, jobs)
		r.GET("/recaps", recapHandler.GetRecaps)
		r.GET("/recaps/:gamePk", recapHandler.GetRecap)
		if recapQueue != nil {
			r.POST("/recaps", recapHandler.CreateRecapJob)
		}
	}

	healthHandler := handler.NewHealthHandler(checks)
	if recapQueue != nil {
		healthHandler.WithGauge("queue_length", recapQueue.Length)
	}
	r.GET("/health", healthHandler.GetHealth)

	err = r.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
