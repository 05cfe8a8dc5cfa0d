// File path: internal/llm/providers/openai_client.go
package providers

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"

	"github.com/penguinworks/tftcoach/internal/common"
)

// OpenAIProvider answers chat requests through a langchaingo model.
type OpenAIProvider struct {
	model llms.Model
	name  string
}

func NewOpenAIProvider(model llms.Model, name string) *OpenAIProvider {
	return &OpenAIProvider{model: model, name: name}
}

func (o *OpenAIProvider) Chat(ctx context.Context, messages []Message) (string, error) {
	if o.model == nil {
		return "", fmt.Errorf("nil chat model")
	}
	logger := common.Logger()
	logger.Debug("llm: sending chat completion request", "model", o.name, "messages", len(messages))
	content := make([]llms.MessageContent, 0, len(messages))
	for _, msg := range messages {
		content = append(content, llms.TextParts(chatMessageType(msg.Role), msg.Content))
	}
	resp, err := o.model.GenerateContent(ctx, content, llms.WithTemperature(0))
	if err != nil {
		logger.Error("llm: chat completion failed", "error", err)
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices returned")
	}
	logger.Debug("llm: chat completion succeeded")
	return resp.Choices[0].Content, nil
}

func (o *OpenAIProvider) Name() string {
	return o.name
}

func chatMessageType(role string) llms.ChatMessageType {
	switch role {
	case "system":
		return llms.ChatMessageTypeSystem
	case "assistant":
		return llms.ChatMessageTypeAI
	default:
		return llms.ChatMessageTypeHuman
	}
}
