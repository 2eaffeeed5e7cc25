package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration
	CORSOrigin      string

	// Question bank
	QuizAPIURL   string  // quizapi.io compatible endpoint
	QuizAPIKey   string  // sent as the apiKey query parameter
	BatchSize    int     // questions per quiz
	QuizAPIRPS   float64 // outgoing requests per second, 0 disables pacing
	QuizAPIBurst int
	FetchWorkers int

	DatabasePath string // ":memory:" keeps live state in process

	LogLevel string
	LogFile  string // optional rotating log file, stdout only when empty
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()
	return &Config{
		ServerAddress:   mustGetenv("SERVER_ADDRESS"),
		ShutdownTimeout: mustGetDuration("SHUTDOWN_TIMEOUT"),
		CORSOrigin:      getenvDefault("CORS_ORIGIN", "*"),
		QuizAPIURL:      getenvDefault("QUIZ_API_URL", "https://quizapi.io/api/v1/questions"),
		QuizAPIKey:      mustGetenv("QUIZ_API_KEY"),
		BatchSize:       getIntDefault("QUIZ_BATCH_SIZE", 10),
		QuizAPIRPS:      getFloatDefault("QUIZ_API_RPS", 1),
		QuizAPIBurst:    getIntDefault("QUIZ_API_BURST", 2),
		FetchWorkers:    getIntDefault("FETCH_WORKERS", 4),
		DatabasePath:    getenvDefault("DATABASE_PATH", ":memory:"),
		LogLevel:        getenvDefault("LOG_LEVEL", "info"),
		LogFile:         os.Getenv("LOG_FILE"),
	}
}

func mustGetenv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	return v
}

func mustGetDuration(k string) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}

func getIntDefault(k string, fallback int) int {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Fatalf("config: %s=%q is not a positive integer", k, v)
	}
	return n
}

func getFloatDefault(k string, fallback float64) float64 {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 {
		log.Fatalf("config: %s=%q is not a non-negative number", k, v)
	}
	return f
}
