package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Quote is one row of the v7 batch quote response. Pointer fields are nil
// when the provider omits them.
type Quote struct {
	Symbol                     string   `json:"symbol"`
	ShortName                  *string  `json:"shortName"`
	LongName                   *string  `json:"longName"`
	RegularMarketPrice         *float64 `json:"regularMarketPrice"`
	RegularMarketOpen          *float64 `json:"regularMarketOpen"`
	RegularMarketDayHigh       *float64 `json:"regularMarketDayHigh"`
	RegularMarketDayLow        *float64 `json:"regularMarketDayLow"`
	RegularMarketVolume        *int64   `json:"regularMarketVolume"`
	RegularMarketPreviousClose *float64 `json:"regularMarketPreviousClose"`
	RegularMarketChange        *float64 `json:"regularMarketChange"`
	RegularMarketChangePercent *float64 `json:"regularMarketChangePercent"`
	RegularMarketTime          *int64   `json:"regularMarketTime"`
	Currency                   *string  `json:"currency"`
	Exchange                   *string  `json:"exchange"`
	FullExchangeName           *string  `json:"fullExchangeName"`
	MarketState                *string  `json:"marketState"`
}

type batchQuoteResponse struct {
	QuoteResponse *struct {
		Result []Quote `json:"result"`
	} `json:"quoteResponse"`
}

// BatchQuote fetches quotes for symbols in one call. An empty slice means the
// provider knows none of them.
func (c *Client) BatchQuote(ctx context.Context, symbols []string) ([]Quote, error) {
	q := url.Values{}
	q.Set("symbols", strings.Join(symbols, ","))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.batchQuoteURL+"?"+q.Encode(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	var body batchQuoteResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding quote response: %w", err)
	}
	if body.QuoteResponse == nil || body.QuoteResponse.Result == nil {
		return nil, fmt.Errorf("batch quote: %w: missing quoteResponse.result", ErrUnexpectedShape)
	}
	return body.QuoteResponse.Result, nil
}
