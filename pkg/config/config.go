package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	AI       AIServiceConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Gemini   GeminiConfig
	Client   ClientConfig
	Logger   LoggerConfig
}

type LoggerConfig struct {
	Level string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// AIServiceConfig configures the recipe generation proxy (cmd/ai-service).
type AIServiceConfig struct {
	Port           string
	BreakerEnabled bool
	BreakerTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type JWTConfig struct {
	SecretKey  string
	Expiration time.Duration
	RefreshExp time.Duration
}

type GeminiConfig struct {
	APIKey      string
	RecipeModel string
	VisionModel string
}

// ClientConfig configures the SDK side (cmd/receipt-import).
type ClientConfig struct {
	BaseURL      string
	AIServiceURL string
	// ProgressTick is the delay between synthesized recognize/extract
	// progress ticks. Zero disables the delay (used in tests).
	ProgressTick time.Duration
}

func Load() (*Config, error) {
	// Try to load .env file from current directory or project root
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}
	// No .env file is fine, environment variables are used directly
	// (useful for Docker/K8s)

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "30"))
	jwtExp, _ := strconv.Atoi(getEnv("JWT_EXPIRATION_HOURS", "24"))
	refreshExp, _ := strconv.Atoi(getEnv("JWT_REFRESH_EXPIRATION_HOURS", "168"))
	breakerTimeout, _ := strconv.Atoi(getEnv("AI_BREAKER_TIMEOUT_SECONDS", "30"))
	progressTick, _ := strconv.Atoi(getEnv("CLIENT_PROGRESS_TICK_MS", "200"))

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
		},
		AI: AIServiceConfig{
			Port:           getEnv("AI_SERVICE_PORT", "8000"),
			BreakerEnabled: getEnv("AI_BREAKER_ENABLED", "true") == "true",
			BreakerTimeout: time.Duration(breakerTimeout) * time.Second,
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "ssakpotato"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			SecretKey:  getEnv("JWT_SECRET_KEY", "your-secret-key-change-in-production"),
			Expiration: time.Duration(jwtExp) * time.Hour,
			RefreshExp: time.Duration(refreshExp) * time.Hour,
		},
		Gemini: GeminiConfig{
			APIKey:      getEnv("GEMINI_API_KEY", ""),
			RecipeModel: getEnv("GEMINI_RECIPE_MODEL", "gemini-2.5-flash"),
			VisionModel: getEnv("GEMINI_VISION_MODEL", "gemini-2.5-flash"),
		},
		Client: ClientConfig{
			BaseURL:      getEnv("API_BASE_URL", "http://localhost:8080"),
			AIServiceURL: getEnv("AI_SERVICE_URL", "http://localhost:8000"),
			ProgressTick: time.Duration(progressTick) * time.Millisecond,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
