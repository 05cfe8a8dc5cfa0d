// File path: internal/api/admin_handler.go
package api

import (
	"errors"
	"net/http"

	"github.com/penguinworks/tftcoach/internal/common"
	"github.com/penguinworks/tftcoach/internal/meta"
	"github.com/penguinworks/tftcoach/internal/vector"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	providerName := "none"
	if s.provider != nil {
		providerName = s.provider.Name()
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":            "ok",
		"indexed_documents": s.retriever.IndexSize(),
		"provider":          providerName,
	})
}

func (s *Server) handleRebuild(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	logger.Info("api: rebuild requested")
	if err := s.retriever.Rebuild(r.Context()); err != nil {
		var formatErr *meta.DataFormatError
		if errors.As(err, &formatErr) {
			logger.Error("api: rebuild rejected malformed collection", "path", formatErr.Path, "error", err)
			writeError(w, http.StatusUnprocessableEntity, err)
			return
		}
		var provErr *vector.ProviderError
		if errors.As(err, &provErr) {
			logger.Error("api: rebuild embedding failed", "error", err)
			writeError(w, http.StatusBadGateway, err)
			return
		}
		logger.Error("api: rebuild failed", "error", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	snap := s.retriever.Snapshot()
	writeJSON(w, http.StatusOK, rebuildResponse{
		Documents: snap.Len(),
		Decks:     len(snap.Decks),
		Items:     len(snap.Items),
		Champions: len(snap.Champions),
	})
}
