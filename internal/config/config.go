package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Keys     APIKeys
	Ai       AIConfig
	Coach    CoachConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string

	// Shared secret checked on the transcription webhook. The voice provider
	// cannot send JWTs, so the route is keyed instead.
	WebhookToken string
}

type DatabaseConfig struct {
	Connection string
}

// APIKeys holds provider credentials. Every key is optional: a missing key
// removes that provider from its cascade instead of crashing the service.
type APIKeys struct {
	GoogleGemini string
	Jina         string
	HuggingFace  string
	Groq         string
}

type AIConfig struct {
	EmbeddingDimension   int
	EmbedRetries         int
	ProviderTimeoutMs    int
	OllamaBaseURL        string
	OllamaEmbeddingModel string
	OllamaChatModel      string
	GroqModel            string
	HuggingFaceModel     string
	EmbedDocumentTopic   string
}

// CoachConfig exposes the pipeline thresholds. The dedup window and prefix
// heuristics are empirically tuned and expected to be adjusted by product.
type CoachConfig struct {
	CueWordCap        int
	MaxTokens         int
	Temperature       float64
	DedupWindowSecs   int
	DedupPrefixLen    int
	DedupLookback     int
	ChunkSizeWords    int
	ChunkOverlapWords int
	RagTopK           int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
			WebhookToken:       getEnv("WEBHOOK_TOKEN", ""),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Keys: APIKeys{
			GoogleGemini: getEnv("GOOGLE_GEMINI_API_KEY", ""),
			Jina:         getEnv("JINA_API_KEY", ""),
			HuggingFace:  getEnv("HUGGINGFACE_API_KEY", ""),
			Groq:         getEnv("GROQ_API_KEY", ""),
		},
		Ai: AIConfig{
			EmbeddingDimension:   getEnvAsInt("EMBEDDING_DIMENSION", 768),
			EmbedRetries:         getEnvAsInt("EMBED_RETRIES", 2),
			ProviderTimeoutMs:    getEnvAsInt("PROVIDER_TIMEOUT_MS", 2000),
			OllamaBaseURL:        getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaEmbeddingModel: getEnv("OLLAMA_EMBEDDING_MODEL", ""),
			OllamaChatModel:      getEnv("OLLAMA_CHAT_MODEL", ""),
			GroqModel:            getEnv("GROQ_MODEL", "llama-3.1-8b-instant"),
			HuggingFaceModel:     getEnv("HUGGINGFACE_MODEL", "meta-llama/Llama-3.1-8B-Instruct"),
			EmbedDocumentTopic:   getEnv("EMBED_DOCUMENT_TOPIC_NAME", "EMBED_DOCUMENT"),
		},
		Coach: CoachConfig{
			CueWordCap:        getEnvAsInt("CUE_WORD_CAP", 10),
			MaxTokens:         getEnvAsInt("CUE_MAX_TOKENS", 50),
			Temperature:       getEnvAsFloat("CUE_TEMPERATURE", 0.3),
			DedupWindowSecs:   getEnvAsInt("DEDUP_WINDOW_SECONDS", 60),
			DedupPrefixLen:    getEnvAsInt("DEDUP_PREFIX_LEN", 20),
			DedupLookback:     getEnvAsInt("DEDUP_LOOKBACK", 10),
			ChunkSizeWords:    getEnvAsInt("CHUNK_SIZE_WORDS", 500),
			ChunkOverlapWords: getEnvAsInt("CHUNK_OVERLAP_WORDS", 50),
			RagTopK:           getEnvAsInt("RAG_TOP_K", 5),
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

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}
