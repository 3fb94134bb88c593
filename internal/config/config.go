package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/jmo2498/MLB/pkg/llm"
	"github.com/jmo2498/MLB/pkg/mlb"
	"github.com/joho/godotenv"
)

type Config struct {
	Port                 string
	FrontendURLs         []string
	DatabaseURL          string
	RedisURL             string
	LLMProvider          string
	LLMAPIKey            string
	Generation           llm.GenerationConfig
	MLBBaseURL           string
	MLBRequestsPerSecond float64
}

// Load reads .env (when present) and the process environment.
func Load() Config {
	godotenv.Load()

	cfg := Config{
		Port:                 getEnv("PORT", "8080"),
		FrontendURLs:         []string{"http://localhost:3000"},
		DatabaseURL:          os.Getenv("DATABASE_URL"),
		RedisURL:             os.Getenv("REDIS_URL"),
		LLMProvider:          strings.ToLower(getEnv("LLM_PROVIDER", "openai")),
		MLBBaseURL:           getEnv("MLB_API_BASE_URL", mlb.BaseURL),
		MLBRequestsPerSecond: getEnvFloat("MLB_REQUESTS_PER_SECOND", 5),
	}

	for _, u := range strings.Split(os.Getenv("FRONTEND_URL"), ",") {
		if u = strings.TrimSpace(u); u != "" {
			cfg.FrontendURLs = append(cfg.FrontendURLs, u)
		}
	}

	switch cfg.LLMProvider {
	case "anthropic":
		cfg.LLMAPIKey = os.Getenv("ANTHROPIC_API_KEY")
	default:
		cfg.LLMAPIKey = os.Getenv("OPENAI_API_KEY")
	}

	defaults := llm.DefaultGenerationConfig()
	cfg.Generation = llm.GenerationConfig{
		Temperature:     getEnvFloat("LLM_TEMPERATURE", defaults.Temperature),
		MaxOutputTokens: int64(getEnvInt("LLM_MAX_OUTPUT_TOKENS", int(defaults.MaxOutputTokens))),
		TopP:            getEnvFloat("LLM_TOP_P", defaults.TopP),
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}

	parsed, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("invalid environment variable, using default", "key", key, "value", v, "default", defaultValue)
		return defaultValue
	}
	return parsed
}

func getEnvFloat(key string, defaultValue float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}

	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil {
		slog.Warn("invalid environment variable, using default", "key", key, "value", v, "default", defaultValue)
		return defaultValue
	}
	return parsed
}
