package factory

import (
	"testing"

	"vaul-ai-be/pkg/llm/ollama"
	"vaul-ai-be/pkg/llm/openai"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLLMProviderOpenAI(t *testing.T) {
	provider, err := NewLLMProvider(ProviderConfig{
		Provider:     "openai",
		Model:        "gpt-4o-mini",
		OpenAIAPIKey: "sk-test",
	})

	require.NoError(t, err)
	assert.IsType(t, &openai.OpenAIProvider{}, provider)
}

func TestNewLLMProviderOpenAIRequiresKey(t *testing.T) {
	_, err := NewLLMProvider(ProviderConfig{
		Provider: "openai",
		Model:    "gpt-4o-mini",
	})

	assert.Error(t, err)
}

func TestNewLLMProviderOllamaDefaultsBaseURL(t *testing.T) {
	provider, err := NewLLMProvider(ProviderConfig{
		Provider: "ollama",
		Model:    "llama3",
	})

	require.NoError(t, err)
	p, ok := provider.(*ollama.OllamaProvider)
	require.True(t, ok)
	assert.Equal(t, "http://localhost:11434", p.BaseURL)
}

func TestNewLLMProviderUnknown(t *testing.T) {
	_, err := NewLLMProvider(ProviderConfig{Provider: "gemini"})

	assert.ErrorContains(t, err, "unsupported LLM provider")
}
