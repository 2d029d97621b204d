package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Ai       AIConfig
	Realtime RealtimeConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	ActivityLogPath    string
	CorsAllowedOrigins string
	ActivityTopic      string
}

type DatabaseConfig struct {
	Connection string
}

type AIConfig struct {
	LLMProvider string // "openai"
	LLMModel    string // e.g. "gpt-4o-mini"
	OpenAIKey   string
	PromptPath  string // optional override for the support persona prompt
}

type RealtimeConfig struct {
	SessionModel string
	CallModel    string
	Voice        string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log.csv"),
			ActivityLogPath:    getEnv("ACTIVITY_LOG_PATH", "logs/chat_activity.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			ActivityTopic:      getEnv("CHAT_ACTIVITY_TOPIC_NAME", "CHAT_ACTIVITY"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Ai: AIConfig{
			LLMProvider: getEnv("LLM_PROVIDER", "openai"),
			LLMModel:    getEnv("LLM_MODEL", "gpt-4o-mini"),
			OpenAIKey:   getEnv("OPENAI_API_KEY", ""),
			PromptPath:  getEnv("SUPPORT_PROMPT_PATH", ""),
		},
		Realtime: RealtimeConfig{
			SessionModel: getEnv("REALTIME_SESSION_MODEL", "gpt-4o-realtime-preview"),
			CallModel:    getEnv("REALTIME_CALL_MODEL", "gpt-realtime"),
			Voice:        getEnv("REALTIME_VOICE", "alloy"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
