package factory

import (
	"log"

	"ai-salescoach-be/pkg/llm"
	"ai-salescoach-be/pkg/llm/groq"
	"ai-salescoach-be/pkg/llm/huggingface"
	"ai-salescoach-be/pkg/llm/ollama"
)

// CascadeConfig lists the credentials for each chat backend. Empty values
// disable that backend; an empty result list is valid and means the cascade
// will answer from the fallback bank only.
type CascadeConfig struct {
	GroqApiKey        string
	GroqModel         string
	HuggingFaceApiKey string
	HuggingFaceModel  string
	OllamaBaseURL     string
	OllamaModel       string
}

// NewProviders assembles the chat provider cascade in priority order:
// Groq, then HuggingFace router, then local Ollama.
func NewProviders(cfg CascadeConfig) []llm.Provider {
	var providers []llm.Provider

	if cfg.GroqApiKey != "" {
		providers = append(providers, groq.NewProvider(cfg.GroqApiKey, cfg.GroqModel))
	}
	if cfg.HuggingFaceApiKey != "" {
		providers = append(providers, huggingface.NewProvider(cfg.HuggingFaceApiKey, "", cfg.HuggingFaceModel))
	}
	if cfg.OllamaModel != "" {
		providers = append(providers, ollama.NewProvider(cfg.OllamaBaseURL, cfg.OllamaModel))
	}

	if len(providers) == 0 {
		log.Println("[WARN] no LLM provider configured, cue generation will use the fallback bank")
	}
	return providers
}
