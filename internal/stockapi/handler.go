// Package stockapi serves ticker search and stock data straight from the
// provider's JSON endpoints.
package stockapi

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"stockquotes/internal/logging"
	"stockquotes/internal/server"
	"stockquotes/internal/yahoo"
)

// Upstream is the part of *yahoo.Client the handlers use.
//
//go:generate mockgen -package=stockapi_test -destination=mock_upstream_test.go -source=handler.go Upstream
type Upstream interface {
	Autocomplete(ctx context.Context, query string) ([]yahoo.Suggestion, error)
	BatchQuote(ctx context.Context, symbols []string) ([]yahoo.Quote, error)
}

type Handler struct {
	upstream Upstream
	logger   *slog.Logger
}

func New(upstream Upstream, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{upstream: upstream, logger: logger}
}

func (h *Handler) Register(r *server.Router) {
	r.Handle("GET /{$}", h.Index)
	r.Handle("GET /api/search", h.Search)
	r.Handle("GET /api/stock", h.GetStock)
}

func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	server.WriteText(w, http.StatusOK, "Stock Backend API is running.")
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if strings.TrimSpace(query) == "" {
		server.WriteError(w, r, server.BadRequest(`Query parameter "q" is required.`))
		return
	}

	hits, err := h.upstream.Autocomplete(r.Context(), query)
	if err != nil {
		server.WriteError(w, r, server.Upstream(err, "Failed to fetch data from Yahoo Finance."))
		return
	}

	logging.FromContext(r.Context(), h.logger).Debug("search",
		slog.String("q", query), slog.Int("results", len(hits)))
	server.WriteJSON(w, http.StatusOK, NewSuggestions(hits))
}

func (h *Handler) GetStock(w http.ResponseWriter, r *http.Request) {
	symbol := r.URL.Query().Get("symbol")
	if strings.TrimSpace(symbol) == "" {
		server.WriteError(w, r, server.BadRequest(`Query parameter "symbol" is required.`))
		return
	}

	rows, err := h.upstream.BatchQuote(r.Context(), []string{symbol})
	if err != nil {
		server.WriteError(w, r, server.Upstream(err, "Failed to fetch stock data from Yahoo Finance."))
		return
	}
	if len(rows) == 0 {
		server.WriteError(w, r, server.NotFound("Stock data not found."))
		return
	}

	server.WriteJSON(w, http.StatusOK, NewStockData(rows[0]))
}
