// File path: internal/api/search_handler.go
package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/penguinworks/tftcoach/internal/common"
	"github.com/penguinworks/tftcoach/internal/meta"
	"github.com/penguinworks/tftcoach/internal/vector"
)

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	query := r.URL.Query().Get("q")
	if query == "" {
		logger.Warn("api: search missing query parameter")
		writeError(w, http.StatusBadRequest, fmt.Errorf("missing q parameter"))
		return
	}
	logger.Info("api: search request", "query", query)
	docs, err := s.retriever.Retrieve(r.Context(), query)
	if err != nil {
		var provErr *vector.ProviderError
		if errors.As(err, &provErr) {
			logger.Error("api: search retrieval degraded", "error", err)
			writeError(w, http.StatusBadGateway, err)
			return
		}
		logger.Error("api: search failed", "error", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if docs == nil {
		docs = []meta.Document{}
	}
	logger.Debug("api: search served", "results", len(docs))
	writeJSON(w, http.StatusOK, searchResponse{Results: docs, Query: query})
}
