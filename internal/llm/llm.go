// File path: internal/llm/llm.go
package llm

import (
	"errors"
	"os"
	"strings"

	openai "github.com/tmc/langchaingo/llms/openai"

	"github.com/penguinworks/tftcoach/internal/common"
	"github.com/penguinworks/tftcoach/internal/llm/providers"
)

type Message = providers.Message

type Provider = providers.Provider

// NewProvider selects the chat backend from the environment: OpenAI via
// langchaingo when OPENAI_API_KEY is set, otherwise the local fallback.
func NewProvider() Provider {
	logger := common.Logger()
	apiKey := strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	if apiKey == "" {
		logger.Warn("llm: OPENAI_API_KEY not set; falling back to local provider")
		return providers.NewLocalProvider()
	}
	model := strings.TrimSpace(os.Getenv("OPENAI_CHAT_MODEL"))
	if model == "" {
		model = "gpt-4o-mini"
	}
	opts := []openai.Option{openai.WithToken(apiKey), openai.WithModel(model)}
	if endpoint := strings.TrimSpace(os.Getenv("OPENAI_ENDPOINT")); endpoint != "" {
		logger.Info("llm: configuring OpenAI client with custom endpoint", "endpoint", endpoint)
		opts = append(opts, openai.WithBaseURL(endpoint))
	}
	client, err := openai.New(opts...)
	if err != nil {
		logger.Error("llm: OpenAI client init failed; falling back to local provider", "error", err)
		return providers.NewLocalProvider()
	}
	logger.Info("llm: OpenAI provider selected", "chat_model", model)
	return providers.NewOpenAIProvider(client, model)
}

// NormalizeMessages lowercases roles and rejects empty conversations.
func NormalizeMessages(messages []Message) ([]Message, error) {
	if len(messages) == 0 {
		return nil, errors.New("no messages provided")
	}
	for i := range messages {
		messages[i].Role = strings.ToLower(messages[i].Role)
	}
	return messages, nil
}
