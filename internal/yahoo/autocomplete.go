package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// Suggestion is one autocomplete hit.
type Suggestion struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Exch     string `json:"exch"`
	Type     string `json:"type"`
	ExchDisp string `json:"exchDisp"`
	TypeDisp string `json:"typeDisp"`
}

type autocompleteResponse struct {
	ResultSet *struct {
		Query  string       `json:"Query"`
		Result []Suggestion `json:"Result"`
	} `json:"ResultSet"`
}

// Autocomplete looks up tickers matching query. Results keep provider order.
func (c *Client) Autocomplete(ctx context.Context, query string) ([]Suggestion, error) {
	q := url.Values{}
	q.Set("query", query)
	q.Set("region", "1")
	q.Set("lang", "en")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.autocompleteURL+"?"+q.Encode(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	var body autocompleteResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding autocomplete response: %w", err)
	}
	if body.ResultSet == nil || body.ResultSet.Result == nil {
		return nil, fmt.Errorf("autocomplete: %w: missing ResultSet.Result", ErrUnexpectedShape)
	}
	return body.ResultSet.Result, nil
}
