// File path: internal/api/chat_handler.go
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/penguinworks/tftcoach/internal/agent"
	"github.com/penguinworks/tftcoach/internal/common"
	"github.com/penguinworks/tftcoach/internal/llm"
	"github.com/penguinworks/tftcoach/internal/prompt"
	"github.com/penguinworks/tftcoach/internal/vector"
)

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	ctx := r.Context()
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("api: chat decode failed", "error", err)
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		logger.Warn("api: chat prompt missing")
		writeError(w, http.StatusBadRequest, fmt.Errorf("prompt required"))
		return
	}
	mode := prompt.Mode(strings.TrimSpace(req.Mode))
	if mode == "" {
		mode = prompt.ModeGeneral
	}
	logger.Info("api: chat request received", "prompt_length", len(req.Prompt), "mode", mode)

	var history []llm.Message
	if s.store != nil && strings.TrimSpace(req.SessionID) != "" {
		loaded, err := s.store.History(ctx, req.SessionID, 0)
		if err != nil {
			logger.Error("api: history load failed", "session", req.SessionID, "error", err)
		} else if len(loaded) > 0 {
			if normalized, err := llm.NormalizeMessages(loaded); err == nil {
				history = normalized
			}
		}
	}

	result, err := s.runner.Run(ctx, agent.ChatRequest{
		Question: req.Prompt,
		Mode:     mode,
		SubMode:  req.SubMode,
		History:  history,
	})
	if err != nil {
		var provErr *vector.ProviderError
		if errors.As(err, &provErr) {
			// Retrieval is degraded, not broken chat input; the UI can
			// tell the user so instead of failing silently.
			logger.Error("api: retrieval degraded", "error", err)
			writeError(w, http.StatusBadGateway, err)
			return
		}
		logger.Error("api: chat turn failed", "error", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	if s.store != nil && strings.TrimSpace(req.SessionID) != "" {
		if err := s.store.Append(ctx, req.SessionID, "user", req.Prompt); err != nil {
			logger.Error("api: persist user turn failed", "error", err)
		}
		if err := s.store.Append(ctx, req.SessionID, "assistant", result.Answer); err != nil {
			logger.Error("api: persist assistant turn failed", "error", err)
		}
	}

	writeJSON(w, http.StatusOK, chatResponse{
		Answer:   result.Answer,
		Context:  result.Documents,
		Provider: s.provider.Name(),
	})
}
