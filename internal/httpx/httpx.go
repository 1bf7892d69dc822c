package httpx

import (
	"net"
	"net/http"
	"time"
)

// Client is a small wrapper around http.Client with sane defaults.
// It satisfies the HTTPClient interfaces of the upstream packages.
//
// UserAgent and Headers are applied by the transport, so HTTP carries them
// when handed to a library that takes a bare *http.Client.
type Client struct {
	HTTP      *http.Client
	UserAgent string
	Headers   map[string]string
}

func New(timeout time.Duration) *Client {
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           (&net.Dialer{Timeout: 3 * time.Second, KeepAlive: 30 * time.Second}).DialContext,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   20,
		ForceAttemptHTTP2:     true,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeout,
	}
	c := &Client{UserAgent: "Mozilla/5.0"}
	c.HTTP = &http.Client{Timeout: timeout, Transport: &defaultHeaders{client: c, next: transport}}
	return c
}

// Do sends req. Cancellation follows req.Context().
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	return c.HTTP.Do(req)
}

// Wrap replaces the client's transport with wrap(current transport).
func (c *Client) Wrap(wrap func(http.RoundTripper) http.RoundTripper) {
	rt := c.HTTP.Transport
	if rt == nil {
		rt = http.DefaultTransport
	}
	c.HTTP.Transport = wrap(rt)
}

// defaultHeaders fills in the client's User-Agent and headers unless the
// request already sets them.
type defaultHeaders struct {
	client *Client
	next   http.RoundTripper
}

func (d *defaultHeaders) RoundTrip(req *http.Request) (*http.Response, error) {
	ua := d.client.UserAgent
	needUA := ua != "" && req.Header.Get("User-Agent") == ""
	var missing []string
	for k := range d.client.Headers {
		if req.Header.Get(k) == "" {
			missing = append(missing, k)
		}
	}
	if !needUA && len(missing) == 0 {
		return d.next.RoundTrip(req)
	}

	// a RoundTripper must not modify the caller's request
	req = req.Clone(req.Context())
	if needUA {
		req.Header.Set("User-Agent", ua)
	}
	for _, k := range missing {
		req.Header.Set(k, d.client.Headers[k])
	}
	return d.next.RoundTrip(req)
}
