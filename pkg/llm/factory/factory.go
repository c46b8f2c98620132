package factory

import (
	"fmt"

	"schemekhoj-be/pkg/llm"
	"schemekhoj-be/pkg/llm/groq"
	"schemekhoj-be/pkg/llm/ollama"
)

func NewLLMProvider(providerType, modelName, baseURL, groqApiKey string) (llm.LLMProvider, error) {
	switch providerType {
	case "groq":
		if groqApiKey == "" {
			return nil, fmt.Errorf("groq provider requires GROQ_API_KEY")
		}
		return groq.NewGroqProvider(groqApiKey, modelName), nil
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
