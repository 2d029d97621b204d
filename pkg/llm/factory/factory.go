package factory

import (
	"fmt"

	"printing-support-be/pkg/llm"
	"printing-support-be/pkg/llm/openai"
)

// NewLLMProvider builds the configured completion backend. Only OpenAI
// is wired today; the switch stays so another backend is a one-case
// change.
func NewLLMProvider(provider, model, token string) (llm.LLMProvider, error) {
	switch provider {
	case "openai", "":
		return openai.NewOpenAIProvider(token, model)
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", provider)
	}
}
