package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Store     StoreConfig
	Knowledge KnowledgeConfig
	SMTP      SMTPConfig
	Ai        AIConfig
	Funnel    FunnelConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	PipelineLogPath    string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
}

type DatabaseConfig struct {
	Connection string
}

// StoreConfig selects the conversation state backend: "postgres" (gorm row
// per conversation) or "redis" (JSON blob per conversation).
type StoreConfig struct {
	Backend      string
	RedisTTLDays int
}

// KnowledgeConfig selects the retrieval index backend: "pgvector" queries
// the knowledge_embeddings table, "flat" loads the exported metadata and
// vector files at startup and searches in memory.
type KnowledgeConfig struct {
	IndexBackend string
	MetadataPath string
	VectorsPath  string
	TopK         int
}

type SMTPConfig struct {
	Host         string
	Port         int
	Email        string
	Password     string
	SenderName   string
	AdvisorEmail string
}

type AIConfig struct {
	LLMProvider       string // "openai" or "ollama"
	LLMModel          string
	OpenAIAPIKey      string
	OllamaBaseURL     string
	EmbeddingProvider string
	EmbeddingModel    string
}

type FunnelConfig struct {
	EventTopic    string
	HistoryWindow int
	MaxReplyRunes int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log.csv"),
			PipelineLogPath:    getEnv("PIPELINE_LOG_PATH", "pipeline.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			NatsURL:            getEnv("NATS_URL", ""),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Store: StoreConfig{
			Backend:      getEnv("CONVERSATION_STORE", "postgres"),
			RedisTTLDays: getEnvAsInt("CONVERSATION_TTL_DAYS", 30),
		},
		Knowledge: KnowledgeConfig{
			IndexBackend: getEnv("KNOWLEDGE_INDEX", "pgvector"),
			MetadataPath: getEnv("KNOWLEDGE_METADATA_PATH", "data/metadata.json"),
			VectorsPath:  getEnv("KNOWLEDGE_VECTORS_PATH", "data/vectors.json"),
			TopK:         getEnvAsInt("KNOWLEDGE_TOP_K", 3),
		},
		SMTP: SMTPConfig{
			Host:         getEnv("SMTP_HOST", ""),
			Port:         getEnvAsInt("SMTP_PORT", 587),
			Email:        getEnv("SMTP_EMAIL", ""),
			Password:     getEnv("SMTP_PASSWORD", ""),
			SenderName:   getEnv("SMTP_SENDER_NAME", "WealthAdvisor"),
			AdvisorEmail: getEnv("ADVISOR_EMAIL", ""),
		},
		Ai: AIConfig{
			LLMProvider:       getEnv("LLM_PROVIDER", "openai"),
			LLMModel:          getEnv("LLM_MODEL", "gpt-4"),
			OpenAIAPIKey:      getEnv("OPENAI_API_KEY", ""),
			OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			EmbeddingProvider: getEnv("EMBEDDING_PROVIDER", "openai"),
			EmbeddingModel:    getEnv("EMBEDDING_MODEL", "text-embedding-ada-002"),
		},
		Funnel: FunnelConfig{
			EventTopic:    getEnv("FUNNEL_EVENT_TOPIC_NAME", "FUNNEL_EVENTS"),
			HistoryWindow: getEnvAsInt("HISTORY_WINDOW", 3),
			MaxReplyRunes: getEnvAsInt("MAX_REPLY_RUNES", 1600),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
