// Package symbolsearch serves suggestions from a local symbol directory.
package symbolsearch

import (
	"log/slog"
	"net/http"
	"strings"

	"stockquotes/internal/logging"
	"stockquotes/internal/server"
	"stockquotes/internal/symbols"
)

const maxSuggestions = 5

type Handler struct {
	dir    *symbols.Directory
	logger *slog.Logger
}

func New(dir *symbols.Directory, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{dir: dir, logger: logger}
}

func (h *Handler) Register(r *server.Router) {
	r.Handle("GET /api/search", h.Search)
	r.Handle("GET /health", h.Health)
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		server.WriteError(w, r, server.BadRequest("No query provided"))
		return
	}
	log := logging.FromContext(r.Context(), h.logger).With(slog.String("q", query))

	found := h.dir.Search(query, maxSuggestions)
	if len(found) == 0 {
		log.Info("no suggestions")
		server.WriteJSON(w, http.StatusNotFound, map[string]string{"message": "No matching symbols found."})
		return
	}

	log.Info("suggestions", slog.Int("count", len(found)))
	server.WriteJSON(w, http.StatusOK, map[string][]symbols.Listing{"suggestions": found})
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	server.WriteJSON(w, http.StatusOK, map[string]any{
		"status":         "healthy",
		"symbols_loaded": h.dir.Len(),
	})
}
