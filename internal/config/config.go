package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	AppName = "Healthcare Symptom Checker"
	Version = "1.0.0"
)

// Config 健康问卷分析服务配置
type Config struct {
	Server struct {
		Port int
	}

	// Analysis backend selection and OpenRouter settings
	LLM struct {
		Backend     string // "openrouter" or "mock"
		BaseURL     string
		APIKey      string
		Model       string
		Temperature float64
		MaxTokens   int
	}

	// Disease catalog source
	Catalog struct {
		Source string // "builtin", "file" or "postgres"
		File   string // YAML path when Source == "file"
	}

	Database struct {
		Host     string
		Port     int
		User     string
		Password string
		Database string
		SSLMode  string
	}

	Redis struct {
		Addr     string
		Password string
		DB       int
	}

	RateLimit struct {
		Requests int // admitted requests per window
		Window   int // window length in seconds
	}

	Log struct {
		Level  string
		Format string
	}
}

// GetDSN returns the PostgreSQL connection string.
func (c *Config) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host, c.Database.Port, c.Database.User,
		c.Database.Password, c.Database.Database, c.Database.SSLMode)
}

// Load 加载配置
func Load() (*Config, error) {
	// .env is optional; real environment variables win
	_ = godotenv.Load()

	cfg := &Config{}

	cfg.Server.Port = getEnvInt("PORT", 8080)

	cfg.LLM.Backend = getEnv("LLM_BACKEND", "openrouter")
	cfg.LLM.BaseURL = getEnv("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1")
	cfg.LLM.APIKey = getEnv("OPENROUTER_API_KEY", "")
	cfg.LLM.Model = getEnv("OPENROUTER_MODEL", "deepseek/deepseek-chat-v3.1:free")
	cfg.LLM.Temperature = 0.7
	cfg.LLM.MaxTokens = 2000

	cfg.Catalog.Source = getEnv("CATALOG_SOURCE", "builtin")
	cfg.Catalog.File = getEnv("CATALOG_FILE", "")

	cfg.Database.Host = getEnv("DB_HOST", "localhost")
	cfg.Database.Port = getEnvInt("DB_PORT", 5432)
	cfg.Database.User = getEnv("DB_USER", "postgres")
	cfg.Database.Password = getEnv("DB_PASSWORD", "postgres")
	cfg.Database.Database = getEnv("DB_NAME", "healthcase")
	cfg.Database.SSLMode = getEnv("DB_SSLMODE", "disable")

	cfg.Redis.Addr = getEnv("REDIS_ADDR", "")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = getEnvInt("REDIS_DB", 0)

	cfg.RateLimit.Requests = getEnvInt("RATE_LIMIT_REQUESTS", 10)
	cfg.RateLimit.Window = getEnvInt("RATE_LIMIT_WINDOW", 60)

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "json")

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if v, err := strconv.Atoi(value); err == nil {
			return v
		}
	}
	return defaultValue
}
