package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"stockquotes/internal/config"
)

func stubProvider(t *testing.T) config.Config {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /quote/AAPL/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `<html><body><fin-streamer data-symbol="AAPL" data-field="regularMarketPrice">1,234.50</fin-streamer></body></html>`)
	})
	mux.HandleFunc("GET /autoc", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"ResultSet":{"Query":"`+r.URL.Query().Get("query")+`","Result":[{"symbol":"AAPL","name":"Apple Inc.","exchDisp":"NASDAQ","typeDisp":"Equity"}]}}`)
	})
	mux.HandleFunc("GET /v7/finance/quote", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"quoteResponse":{"result":[{"symbol":"AAPL","longName":"Apple Inc.","regularMarketPrice":189.84,"fullExchangeName":"NasdaqGS"}]}}`)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	cfg := config.Default()
	cfg.Upstream.QuotePageURL = srv.URL + "/quote"
	cfg.Upstream.AutocompleteURL = srv.URL + "/autoc"
	cfg.Upstream.BatchQuoteURL = srv.URL + "/v7/finance/quote"
	cfg.Quote.Backend = config.BackendBatch
	return cfg
}

func runMode(t *testing.T, opts options) map[string]any {
	t.Helper()
	opts.timeout = 5 * time.Second
	var out bytes.Buffer
	require.NoError(t, run(t.Context(), stubProvider(t), opts, &out))

	var v any
	require.NoError(t, json.Unmarshal(out.Bytes(), &v))
	if list, ok := v.([]any); ok {
		require.NotEmpty(t, list)
		return list[0].(map[string]any)
	}
	return v.(map[string]any)
}

func TestRun_Price(t *testing.T) {
	got := runMode(t, options{mode: "price", symbols: []string{"aapl"}})
	require.InDelta(t, 1234.5, got["price"], 1e-9)
}

func TestRun_Quote(t *testing.T) {
	got := runMode(t, options{mode: "quote", symbols: []string{"AAPL"}})
	require.Equal(t, "Apple Inc.", got["longName"])
	require.Equal(t, "N/A", got["currency"])
}

func TestRun_Search(t *testing.T) {
	got := runMode(t, options{mode: "search", query: "apple"})
	require.Equal(t, "AAPL", got["symbol"])
	require.Equal(t, "NASDAQ", got["exchDisp"])
}

func TestRun_Stock(t *testing.T) {
	got := runMode(t, options{mode: "stock", symbols: []string{"AAPL"}})
	require.Equal(t, "NasdaqGS", got["exchangeName"])
	require.Nil(t, got["marketState"])
}

func TestRun_Errors(t *testing.T) {
	cfg := stubProvider(t)
	cases := []options{
		{mode: "price"},
		{mode: "search", query: " "},
		{mode: "stock"},
		{mode: "bogus", symbols: []string{"AAPL"}},
		{mode: "price", symbols: []string{"MSFT"}},
	}
	for _, opts := range cases {
		opts.timeout = 5 * time.Second
		require.Error(t, run(t.Context(), cfg, opts, io.Discard), opts.mode)
	}
}

func TestSplitCSV(t *testing.T) {
	require.Equal(t, []string{"AAPL", "MSFT"}, splitCSV(" AAPL, ,MSFT,"))
	require.Empty(t, splitCSV(""))
}
