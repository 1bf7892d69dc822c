// Command fetch runs one provider lookup the way the services do and prints
// the result as indented JSON.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"stockquotes/internal/config"
	"stockquotes/internal/httpx"
	"stockquotes/internal/quotelookup"
	"stockquotes/internal/quotesvc"
	"stockquotes/internal/scrape"
	"stockquotes/internal/stockapi"
	"stockquotes/internal/yahoo"
)

type options struct {
	mode    string
	symbols []string
	query   string
	timeout time.Duration
}

func main() {
	var mode, symbolsCSV, query, configPath string
	var timeout int

	flag.StringVar(&mode, "mode", getenv("FETCH_MODE", "price"), "price|quote|search|stock")
	flag.StringVar(&symbolsCSV, "symbol", getenv("SYMBOL", "AAPL"), "ticker symbol; comma-separated for -mode stock")
	flag.StringVar(&query, "q", getenv("QUERY", ""), "search query for -mode search")
	flag.IntVar(&timeout, "timeout", getenvInt("REQUEST_TIMEOUT_SEC", 15), "request timeout seconds")
	flag.StringVar(&configPath, "config", getenv("CONFIG_FILE", ""), "path to config.yaml (optional)")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if timeout > 0 {
		cfg.Server.RequestTimeoutSec = timeout
	}

	opts := options{
		mode:    mode,
		symbols: splitCSV(symbolsCSV),
		query:   query,
		timeout: time.Duration(cfg.Server.RequestTimeoutSec) * time.Second,
	}
	if err := run(context.Background(), cfg, opts, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cfg config.Config, opts options, out io.Writer) error {
	ctx, cancel := context.WithTimeout(ctx, opts.timeout)
	defer cancel()

	ua := cfg.Upstream.UserAgent
	if opts.mode == "price" {
		ua = cfg.Upstream.BrowserUserAgent
	}
	hc := httpx.New(opts.timeout)
	hc.UserAgent = ua

	client, err := yahoo.NewClient(
		yahoo.WithQuotePageURL(cfg.Upstream.QuotePageURL),
		yahoo.WithAutocompleteURL(cfg.Upstream.AutocompleteURL),
		yahoo.WithBatchQuoteURL(cfg.Upstream.BatchQuoteURL),
		yahoo.WithHTTPClient(hc),
	)
	if err != nil {
		return fmt.Errorf("yahoo client: %w", err)
	}

	var result any
	switch opts.mode {
	case "price":
		symbol, err := firstSymbol(opts.symbols)
		if err != nil {
			return err
		}
		doc, err := client.QuotePage(ctx, symbol)
		if err != nil {
			return err
		}
		m, ok := scrape.Default().Extract(doc, symbol)
		if !ok {
			return fmt.Errorf("no price found for %s", symbol)
		}
		log.Printf("%s: matched %s (%q)", symbol, m.Strategy, m.Text)
		result = map[string]float64{"price": m.Price}

	case "quote":
		symbol, err := firstSymbol(opts.symbols)
		if err != nil {
			return err
		}
		var lookup quotelookup.Lookup = quotelookup.NewBatch(client)
		if cfg.Quote.Backend == config.BackendFinanceGo {
			lookup = quotelookup.NewFinanceGo(hc.HTTP)
		}
		q, err := lookup.Quote(ctx, strings.ToUpper(symbol))
		if err != nil {
			return err
		}
		if !q.HasPrice() {
			return fmt.Errorf("no quote for %s", symbol)
		}
		result = quotesvc.NewDetails(q)

	case "search":
		if strings.TrimSpace(opts.query) == "" {
			return errors.New("-q is required for -mode search")
		}
		hits, err := client.Autocomplete(ctx, opts.query)
		if err != nil {
			return err
		}
		result = stockapi.NewSuggestions(hits)

	case "stock":
		if len(opts.symbols) == 0 {
			return errors.New("no symbols provided")
		}
		rows, err := client.BatchQuote(ctx, opts.symbols)
		if err != nil {
			return err
		}
		data := make([]stockapi.StockData, 0, len(rows))
		for _, r := range rows {
			data = append(data, stockapi.NewStockData(r))
		}
		log.Printf("%d of %d symbols returned", len(data), len(opts.symbols))
		result = data

	default:
		return fmt.Errorf("unknown mode %q", opts.mode)
	}

	b, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(b))
	return err
}

func firstSymbol(symbols []string) (string, error) {
	if len(symbols) == 0 {
		return "", errors.New("no symbol provided")
	}
	return strings.ToUpper(symbols[0]), nil
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		var x int
		_, _ = fmt.Sscanf(v, "%d", &x)
		if x != 0 {
			return x
		}
	}
	return def
}
