package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	GeminiAPIKey string
	GeminiModel  string

	// APIAccessToken is the static bearer credential callers must present.
	// Empty disables the auth check (local development).
	APIAccessToken string

	DatabaseDriver string
	DatabaseDSN    string

	AppEnv       string
	IsProduction bool
	Port         string

	// runtime tunables
	RateLimitWindowSeconds int
	RateLimitCapacity      int
)

// loadAppEnv loads .env for non-production environments only; production
// relies on the host environment.
func loadAppEnv() {
	AppEnv = os.Getenv("APP_ENV")
	if AppEnv == "production" {
		return
	}
	if err := godotenv.Load(); err != nil {
		log.Printf("[config] no .env file loaded: %v", err)
	}
}

func init() {
	loadAppEnv()

	GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	GeminiModel = os.Getenv("GEMINI_MODEL")
	if GeminiModel == "" {
		GeminiModel = "gemini-1.5-flash"
	}

	APIAccessToken = os.Getenv("API_ACCESS_TOKEN")

	DatabaseDriver = os.Getenv("DATABASE_DRIVER")
	if DatabaseDriver == "" {
		DatabaseDriver = "sqlite"
	}
	DatabaseDSN = os.Getenv("DATABASE_DSN")
	if DatabaseDSN == "" && DatabaseDriver == "sqlite" {
		DatabaseDSN = "roni.db"
	}

	AppEnv = os.Getenv("APP_ENV")
	IsProduction = AppEnv == "production"

	Port = os.Getenv("PORT")
	if Port == "" {
		Port = "5000"
	}

	// Rate limiting stays off unless a capacity is configured; the
	// gateways apply no backpressure by default.
	RateLimitWindowSeconds = atoiOr(os.Getenv("RATE_LIMIT_WINDOW_SECONDS"), 10)
	RateLimitCapacity = atoiOr(os.Getenv("RATE_LIMIT_CAPACITY"), 0)

	if IsProduction && APIAccessToken == "" {
		log.Fatal("API_ACCESS_TOKEN must be set in production")
	}

	log.Printf("[config] AppEnv=%s IsProduction=%v", AppEnv, IsProduction)
	log.Printf("[config] GeminiModel=%s GeminiAPIKeyPresent=%v", GeminiModel, GeminiAPIKey != "")
	log.Printf("[config] DatabaseDriver=%s", DatabaseDriver)
	log.Printf("[config] RateLimit window=%ds capacity=%d", RateLimitWindowSeconds, RateLimitCapacity)
}

func atoiOr(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}
