package factory

import (
	"fmt"

	"vaul-ai-be/pkg/llm"
	"vaul-ai-be/pkg/llm/ollama"
	"vaul-ai-be/pkg/llm/openai"
)

type ProviderConfig struct {
	Provider      string
	Model         string
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OllamaBaseURL string
}

func NewLLMProvider(cfg ProviderConfig) (llm.LLMProvider, error) {
	switch cfg.Provider {
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("openai provider requires OPENAI_API_KEY")
		}
		return openai.NewOpenAIProvider(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.Model), nil
	case "ollama":
		baseURL := cfg.OllamaBaseURL
		if baseURL == "" {
			baseURL = "http://localhost:11434"
		}
		return ollama.NewOllamaProvider(baseURL, cfg.Model), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}
