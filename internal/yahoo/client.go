// Package yahoo talks to the unofficial Yahoo Finance endpoints: the HTML
// quote page, the autocomplete service and the v7 batch quote API.
package yahoo

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	DefaultQuotePageURL    = "https://finance.yahoo.com/quote"
	DefaultAutocompleteURL = "https://autoc.finance.yahoo.com/autoc"
	DefaultBatchQuoteURL   = "https://query1.finance.yahoo.com/v7/finance/quote"
)

var (
	// ErrUnexpectedStatus is returned for any non-2xx response.
	ErrUnexpectedStatus = errors.New("unexpected status code")
	// ErrUnexpectedShape is returned when a JSON payload lacks the envelope we read from.
	ErrUnexpectedShape = errors.New("unexpected response shape")
)

// HTTPClient describes an HTTP client.
//
//go:generate mockgen -package=yahoo_test -destination=mock_http_client_test.go -source=client.go HTTPClient
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is a client for the Yahoo Finance endpoints.
type Client struct {
	quotePageURL    string
	autocompleteURL string
	batchQuoteURL   string
	// httpClient is the HTTP client requests go through.
	httpClient HTTPClient
	// header contains additional headers to be sent with each request.
	header http.Header
}

// ClientOption is a configuration option for the Yahoo client.
type ClientOption func(*Client)

// WithQuotePageURL sets the base URL of the HTML quote page; the ticker is appended as a path segment.
// An empty u is ignored.
func WithQuotePageURL(u string) ClientOption {
	return func(c *Client) {
		if u != "" {
			c.quotePageURL = u
		}
	}
}

// WithAutocompleteURL sets the autocomplete endpoint. An empty u is ignored.
func WithAutocompleteURL(u string) ClientOption {
	return func(c *Client) {
		if u != "" {
			c.autocompleteURL = u
		}
	}
}

// WithBatchQuoteURL sets the batch quote endpoint. An empty u is ignored.
func WithBatchQuoteURL(u string) ClientOption {
	return func(c *Client) {
		if u != "" {
			c.batchQuoteURL = u
		}
	}
}

// WithHTTPClient sets the HTTP client for the API.
func WithHTTPClient(httpClient HTTPClient) ClientOption {
	return func(c *Client) { c.httpClient = httpClient }
}

// WithHeader sets additional headers to be sent with each request.
func WithHeader(header http.Header) ClientOption {
	return func(c *Client) {
		for key, values := range header {
			for _, value := range values {
				c.header.Add(key, value)
			}
		}
	}
}

// NewClient creates a new Yahoo client. Endpoints not set by an option keep the defaults.
func NewClient(options ...ClientOption) (*Client, error) {
	c := &Client{
		quotePageURL:    DefaultQuotePageURL,
		autocompleteURL: DefaultAutocompleteURL,
		batchQuoteURL:   DefaultBatchQuoteURL,
		httpClient:      http.DefaultClient,
		header:          http.Header{},
	}
	for _, option := range options {
		option(c)
	}
	if c.httpClient == nil {
		return nil, errors.New("yahoo: nil http client")
	}
	return c, nil
}

// do sends req with the client headers and checks the status code. The caller
// closes the body on success.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	for key, values := range c.header {
		req.Header.Del(key)
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("performing request: %w", err)
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		res.Body.Close()
		return nil, fmt.Errorf("%w: %d %s", ErrUnexpectedStatus, res.StatusCode, strings.TrimSpace(string(b)))
	}
	return res, nil
}
