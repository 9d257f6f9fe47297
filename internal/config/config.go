// Package config centralises configuration parsing for the BrainTrainer API.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config captures runtime configuration values.
type Config struct {
	HTTPAddress  string
	DatabasePath string
	LogMode      string
	CORSOrigins  []string // empty means all origins

	JWTSecret        string
	JWTTTL           time.Duration
	SignupInviteCode string // empty means signup is open

	LLMBaseURL string
	LLMAPIKey  string
	LLMModel   string
	LLMTimeout time.Duration

	CoachRatePerMinute int           // Coach requests allowed per user per minute.
	RoundTTL           time.Duration // Lifetime of an issued exercise round.
	SeedCatalog        bool
}

// Load reads an optional .env file and then environment variables into Config,
// applying defaults for local dev.
func Load() Config {
	// .env는 선택 사항, 없으면 그냥 환경변수 사용
	_ = godotenv.Load()

	return Config{
		HTTPAddress:        getEnv("HTTP_ADDRESS", ":8080"),
		DatabasePath:       getEnv("DATABASE_PATH", "./braintrainer.db"),
		LogMode:            getEnv("LOG_MODE", "dev"),
		CORSOrigins:        splitAndTrim(getEnv("CORS_ORIGINS", "")),
		JWTSecret:          getEnv("JWT_SECRET_KEY", ""),
		JWTTTL:             getDurationEnv("JWT_TTL", 24*time.Hour),
		SignupInviteCode:   getEnv("SIGNUP_INVITE_CODE", ""),
		LLMBaseURL:         getEnv("LLM_BASE_URL", "https://api.chatanywhere.tech"),
		LLMAPIKey:          getEnv("LLM_API_KEY", ""),
		LLMModel:           getEnv("LLM_MODEL", "gpt-3.5-turbo"),
		LLMTimeout:         getDurationEnv("LLM_TIMEOUT", 30*time.Second),
		CoachRatePerMinute: getIntEnv("COACH_RATE_PER_MINUTE", 20),
		RoundTTL:           getDurationEnv("ROUND_TTL", 10*time.Minute),
		SeedCatalog:        getBoolEnv("SEED_CATALOG", true),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getBoolEnv(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}
