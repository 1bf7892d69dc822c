package yahoo

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// QuotePageURL returns the quote page address for ticker.
func (c *Client) QuotePageURL(ticker string) string {
	return fmt.Sprintf("%s/%s/", strings.TrimRight(c.quotePageURL, "/"), url.PathEscape(ticker))
}

// QuotePage fetches and parses the HTML quote page for ticker.
func (c *Client) QuotePage(ctx context.Context, ticker string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.QuotePageURL(ticker), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	res, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing quote page: %w", err)
	}
	return doc, nil
}
