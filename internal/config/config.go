package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	TelegramToken  string
	DBDSN          string // пусто - справочник врачей в памяти
	Environment    string
	LogLevel       string
	MigrationsPath string
	StatsInterval  time.Duration
}

// Load читает .env (если есть) и переменные окружения
func Load() (*Config, error) {
	// Пытаемся загрузить .env файл (игнорируем ошибку, если файла нет)
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return FromEnv()
}

// FromEnv собирает конфиг из переменных окружения и проставляет значения по умолчанию
func FromEnv() (*Config, error) {
	cfg := &Config{
		TelegramToken:  os.Getenv("TELEGRAM_TOKEN"),
		DBDSN:          os.Getenv("DB_DSN"),
		Environment:    getEnv("ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "migrations"),
		StatsInterval:  time.Hour,
	}

	if raw := os.Getenv("STATS_INTERVAL"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("parse STATS_INTERVAL: %w", err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("STATS_INTERVAL must be positive, got %s", raw)
		}
		cfg.StatsInterval = d
	}

	// Проверяем обязательные поля
	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_TOKEN is required but not set")
	}

	return cfg, nil
}

// UseDatabase включён ли справочник врачей в Postgres
func (c *Config) UseDatabase() bool {
	return c.DBDSN != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
