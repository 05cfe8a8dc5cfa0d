// File path: internal/agent/graph.go
package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langgraphgo/graph"

	"github.com/penguinworks/tftcoach/internal/common"
	"github.com/penguinworks/tftcoach/internal/llm"
	"github.com/penguinworks/tftcoach/internal/meta"
	"github.com/penguinworks/tftcoach/internal/prompt"
	"github.com/penguinworks/tftcoach/internal/retriever"
)

// Runner drives one retrieval-augmented chat turn as a two-node message
// graph: retrieve context, then answer with it.
type Runner struct {
	provider  llm.Provider
	retriever *retriever.Service
}

func NewRunner(provider llm.Provider, retr *retriever.Service) *Runner {
	return &Runner{provider: provider, retriever: retr}
}

// ChatRequest carries one user turn plus the replayed conversation
// history for the session.
type ChatRequest struct {
	Question string
	Mode     prompt.Mode
	SubMode  string
	History  []llm.Message
}

// ChatResult is the answered turn with the documents that grounded it.
type ChatResult struct {
	Answer    string
	Documents []meta.Document
}

// Run executes the retrieve→answer flow. Retrieval failures surface
// unchanged so the caller can distinguish a degraded answer from a
// provider outage.
func (r *Runner) Run(ctx context.Context, req ChatRequest) (*ChatResult, error) {
	logger := common.Logger()
	question := strings.TrimSpace(req.Question)
	if question == "" {
		return nil, fmt.Errorf("question required")
	}
	var docs []meta.Document

	g := graph.NewMessageGraph()
	g.AddNode("retrieve", func(ctx context.Context, state []llms.MessageContent) ([]llms.MessageContent, error) {
		retrieved, err := r.retriever.Retrieve(ctx, question)
		if err != nil {
			return nil, err
		}
		docs = retrieved
		rendered, err := prompt.Render(req.Mode, req.SubMode, prompt.FormatDocs(docs), question)
		if err != nil {
			return nil, err
		}
		return append(state, llms.TextParts(llms.ChatMessageTypeHuman, rendered)), nil
	})
	g.AddNode("answer", func(ctx context.Context, state []llms.MessageContent) ([]llms.MessageContent, error) {
		answer, err := r.provider.Chat(ctx, toProviderMessages(state))
		if err != nil {
			return nil, err
		}
		return append(state, llms.TextParts(llms.ChatMessageTypeAI, answer)), nil
	})
	g.AddEdge("retrieve", "answer")
	g.AddEdge("answer", graph.END)
	g.SetEntryPoint("retrieve")

	runnable, err := g.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile chat graph: %w", err)
	}
	final, err := runnable.Invoke(ctx, historyToState(req.History))
	if err != nil {
		return nil, err
	}
	answer := lastAIText(final)
	logger.Debug("agent: chat turn completed", "mode", req.Mode, "context_docs", len(docs))
	return &ChatResult{Answer: answer, Documents: docs}, nil
}

func historyToState(history []llm.Message) []llms.MessageContent {
	state := make([]llms.MessageContent, 0, len(history))
	for _, msg := range history {
		role := llms.ChatMessageTypeHuman
		switch msg.Role {
		case "assistant":
			role = llms.ChatMessageTypeAI
		case "system":
			role = llms.ChatMessageTypeSystem
		}
		state = append(state, llms.TextParts(role, msg.Content))
	}
	return state
}

func toProviderMessages(state []llms.MessageContent) []llm.Message {
	messages := make([]llm.Message, 0, len(state))
	for _, content := range state {
		role := "user"
		switch content.Role {
		case llms.ChatMessageTypeAI:
			role = "assistant"
		case llms.ChatMessageTypeSystem:
			role = "system"
		}
		messages = append(messages, llm.Message{Role: role, Content: contentText(content)})
	}
	return messages
}

func lastAIText(state []llms.MessageContent) string {
	for i := len(state) - 1; i >= 0; i-- {
		if state[i].Role == llms.ChatMessageTypeAI {
			return contentText(state[i])
		}
	}
	return ""
}

func contentText(content llms.MessageContent) string {
	var b strings.Builder
	for _, part := range content.Parts {
		if text, ok := part.(llms.TextContent); ok {
			b.WriteString(text.Text)
		}
	}
	return b.String()
}
