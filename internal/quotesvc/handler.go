// Package quotesvc serves the current price of a symbol and a fixed list of
// well-known symbols.
package quotesvc

import (
	"log/slog"
	"net/http"
	"strings"

	"stockquotes/internal/logging"
	"stockquotes/internal/quotelookup"
	"stockquotes/internal/server"
)

const notAvailable = "N/A"

// Symbol is one entry of the static symbol list.
type Symbol struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

var knownSymbols = []Symbol{
	{Symbol: "AAPL", Name: "Apple Inc."},
	{Symbol: "GOOGL", Name: "Alphabet Inc."},
	{Symbol: "MSFT", Name: "Microsoft Corporation"},
	{Symbol: "AMZN", Name: "Amazon.com, Inc."},
	{Symbol: "TSLA", Name: "Tesla, Inc."},
}

// Symbols returns a copy of the static symbol list.
func Symbols() []Symbol {
	out := make([]Symbol, len(knownSymbols))
	copy(out, knownSymbols)
	return out
}

type priceResponse struct {
	C float64 `json:"c"`
}

// Details is the body of /quote/details. Missing text fields read "N/A";
// Price and Timestamp hold either a number or "N/A".
type Details struct {
	Symbol    string `json:"symbol"`
	ShortName string `json:"shortName"`
	LongName  string `json:"longName"`
	Price     any    `json:"price"`
	Currency  string `json:"currency"`
	Exchange  string `json:"exchange"`
	Timestamp any    `json:"timestamp"`
}

func NewDetails(q *quotelookup.Quote) Details {
	d := Details{
		Symbol:    orNA(q.Symbol),
		ShortName: orNA(q.ShortName),
		LongName:  orNA(q.LongName),
		Price:     notAvailable,
		Currency:  orNA(q.Currency),
		Exchange:  orNA(q.Exchange),
		Timestamp: notAvailable,
	}
	if q.HasPrice() {
		d.Price = *q.Price
	}
	if q.Time != 0 {
		d.Timestamp = q.Time
	}
	return d
}

func orNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}

type Handler struct {
	lookup quotelookup.Lookup
	logger *slog.Logger
}

func New(lookup quotelookup.Lookup, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{lookup: lookup, logger: logger}
}

func (h *Handler) Register(r *server.Router) {
	r.Handle("GET /stock/symbol", h.ListSymbols)
	r.Handle("GET /quote", h.GetQuote)
	r.Handle("GET /quote/details", h.GetQuoteDetails)
}

func (h *Handler) ListSymbols(w http.ResponseWriter, r *http.Request) {
	server.WriteJSON(w, http.StatusOK, Symbols())
}

// GetQuote answers {"c": price}. The symbol is passed on as given.
func (h *Handler) GetQuote(w http.ResponseWriter, r *http.Request) {
	symbol := r.URL.Query().Get("symbol")
	if strings.TrimSpace(symbol) == "" {
		server.WriteError(w, r, server.BadRequest(`Symbol parameter "symbol" is required.`))
		return
	}
	log := logging.FromContext(r.Context(), h.logger).With(slog.String("symbol", symbol))

	q, err := h.lookup.Quote(r.Context(), symbol)
	if err != nil {
		server.WriteError(w, r, server.Upstream(err, "Error fetching quote for symbol: "+symbol))
		return
	}
	if !q.HasPrice() {
		log.Debug("no price in quote")
		server.WriteError(w, r, server.NotFound("Quote not found for the provided symbol."))
		return
	}

	log.Debug("quote found", slog.Float64("price", *q.Price))
	server.WriteJSON(w, http.StatusOK, priceResponse{C: *q.Price})
}

func (h *Handler) GetQuoteDetails(w http.ResponseWriter, r *http.Request) {
	symbol := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("symbol")))
	if symbol == "" {
		server.WriteError(w, r, server.BadRequest("Please provide a stock symbol."))
		return
	}
	log := logging.FromContext(r.Context(), h.logger).With(slog.String("symbol", symbol))

	q, err := h.lookup.Quote(r.Context(), symbol)
	if err != nil {
		server.WriteError(w, r, server.Upstream(err, "An error occurred while fetching stock data."))
		return
	}
	if !q.HasPrice() {
		server.WriteError(w, r, server.NotFound("Invalid stock symbol or no data available."))
		return
	}

	d := NewDetails(q)
	log.Info("fetched quote details", slog.Any("price", d.Price), slog.String("currency", d.Currency))
	server.WriteJSON(w, http.StatusOK, d)
}
