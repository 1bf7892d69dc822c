// Package pricescraper serves a single price scraped from the provider's
// HTML quote page.
package pricescraper

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"stockquotes/internal/logging"
	"stockquotes/internal/scrape"
	"stockquotes/internal/server"
)

// PageFetcher loads the quote page for a ticker.
//
//go:generate mockgen -package=pricescraper_test -destination=mock_page_fetcher_test.go -source=handler.go PageFetcher
type PageFetcher interface {
	QuotePage(ctx context.Context, ticker string) (*goquery.Document, error)
}

type priceResponse struct {
	Price *float64 `json:"price"`
}

type Handler struct {
	pages     PageFetcher
	extractor scrape.Extractor
	logger    *slog.Logger
}

func New(pages PageFetcher, extractor scrape.Extractor, logger *slog.Logger) *Handler {
	if extractor == nil {
		extractor = scrape.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{pages: pages, extractor: extractor, logger: logger}
}

func (h *Handler) Register(r *server.Router) {
	r.Handle("GET /api/price/{ticker}", h.GetPrice)
	r.Handle("GET /api/price", h.GetPrice)
}

// GetPrice takes the ticker from the path or, failing that, the ticker query parameter.
func (h *Handler) GetPrice(w http.ResponseWriter, r *http.Request) {
	ticker := r.PathValue("ticker")
	if ticker == "" {
		ticker = r.URL.Query().Get("ticker")
	}
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if ticker == "" {
		server.WriteError(w, r, server.BadRequest("Ticker symbol is required"))
		return
	}
	log := logging.FromContext(r.Context(), h.logger).With(slog.String("ticker", ticker))

	doc, err := h.pages.QuotePage(r.Context(), ticker)
	if err != nil {
		log.Error("fetching quote page", slog.Any("error", err))
		server.WriteError(w, r, server.Upstream(err, "Failed to fetch price"))
		return
	}

	m, ok := h.extractor.Extract(doc, ticker)
	if !ok {
		log.Debug("price element not found")
		server.WriteJSON(w, http.StatusNotFound, priceResponse{})
		return
	}

	log.Debug("found price", slog.String("strategy", m.Strategy), slog.Float64("price", m.Price))
	server.WriteJSON(w, http.StatusOK, priceResponse{Price: &m.Price})
}
