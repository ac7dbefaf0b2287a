package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config содержит конфигурацию сервиса
type Config struct {
	Port         int
	MinPrincipal float64
	MaxPrincipal float64
	MaxRate      float64
	MaxTermYears int

	RateLimitCapacity int
	RateLimitWindow   time.Duration

	ChartWidth  int
	ChartHeight int

	OTELEndpoint    string
	OTELServiceName string
	LogLevel        string
	LogFormat       string
}

// LoadConfig загружает конфигурацию из переменных окружения
func LoadConfig() (*Config, error) {
	// Загружаем .env файл, если он существует (игнорируем ошибку)
	_ = godotenv.Load()

	cfg := &Config{
		Port:              getEnvInt("PORT", 8000),
		MinPrincipal:      getEnvFloat("MIN_PRINCIPAL", 1000),
		MaxPrincipal:      getEnvFloat("MAX_PRINCIPAL", 10_000_000),
		MaxRate:           getEnvFloat("MAX_RATE", 20),
		MaxTermYears:      getEnvInt("MAX_TERM_YEARS", 50),
		RateLimitCapacity: getEnvInt("RATE_LIMIT_CAPACITY", 60),
		RateLimitWindow:   getEnvDuration("RATE_LIMIT_WINDOW", time.Minute),
		ChartWidth:        getEnvInt("CHART_WIDTH", 900),
		ChartHeight:       getEnvInt("CHART_HEIGHT", 700),
		OTELEndpoint:      getEnvString("OTEL_ENDPOINT", ""),
		OTELServiceName:   getEnvString("OTEL_SERVICE_NAME", "mortgage-calculator"),
		LogLevel:          getEnvString("LOG_LEVEL", "INFO"),
		LogFormat:         getEnvString("LOG_FORMAT", "text"),
	}

	return cfg, nil
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

// Addr возвращает адрес для HTTP сервера
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}
