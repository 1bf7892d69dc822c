// Package app wires configuration, logging, metrics and the HTTP server shared
// by every service binary.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stockquotes/internal/config"
	"stockquotes/internal/httpx"
	"stockquotes/internal/logging"
	"stockquotes/internal/metrics"
	"stockquotes/internal/server"
	"stockquotes/internal/yahoo"
)

// Env is what a service needs to build its handlers.
type Env struct {
	Service string
	Config  config.Config
	Logger  *slog.Logger
	// Metrics is nil when metrics are disabled.
	Metrics *metrics.Metrics

	closeLog func() error
}

// RegisterFunc adds a service's routes to r.
type RegisterFunc func(env *Env, r *server.Router) error

// Load reads the config named by CONFIG_FILE (or ./config.yaml) and builds an Env.
func Load(service string) (*Env, error) {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		return nil, err
	}
	return New(service, cfg, os.Stdout)
}

// New validates cfg and builds an Env logging to stdout. The logger also
// becomes the slog default.
func New(service string, cfg config.Config, stdout io.Writer) (*Env, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	logger, closeLog, err := logging.New(cfg.Log, stdout)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	logger = logger.With(slog.String("service", service))
	slog.SetDefault(logger)

	env := &Env{Service: service, Config: cfg, Logger: logger, closeLog: closeLog}
	if cfg.Metrics.Enabled {
		env.Metrics = metrics.New(service)
	}
	return env, nil
}

func (e *Env) RequestTimeout() time.Duration {
	return time.Duration(e.Config.Server.RequestTimeoutSec) * time.Second
}

// HTTPClient returns an outbound client sending userAgent, with its transport
// instrumented under the "yahoo" upstream label.
func (e *Env) HTTPClient(userAgent string) *httpx.Client {
	c := httpx.New(e.RequestTimeout())
	if userAgent != "" {
		c.UserAgent = userAgent
	}
	c.Wrap(func(rt http.RoundTripper) http.RoundTripper {
		return e.Metrics.InstrumentTransport("yahoo", rt)
	})
	return c
}

// Yahoo returns a provider client for the configured endpoints.
func (e *Env) Yahoo(userAgent string) (*yahoo.Client, error) {
	up := e.Config.Upstream
	return yahoo.NewClient(
		yahoo.WithQuotePageURL(up.QuotePageURL),
		yahoo.WithAutocompleteURL(up.AutocompleteURL),
		yahoo.WithBatchQuoteURL(up.BatchQuoteURL),
		yahoo.WithHTTPClient(e.HTTPClient(userAgent)),
	)
}

// Handler builds the router, lets register add routes and wraps the result in
// the common middleware.
func (e *Env) Handler(register RegisterFunc) (http.Handler, error) {
	r := server.NewRouter(e.Metrics)
	if e.Metrics != nil {
		r.Mount("GET "+e.Config.Metrics.Path, e.Metrics.Handler())
	}
	if err := register(e, r); err != nil {
		return nil, err
	}
	return server.Wrap(r, e.Logger), nil
}

// Run serves the service until ctx is done.
func (e *Env) Run(ctx context.Context, register RegisterFunc) error {
	h, err := e.Handler(register)
	if err != nil {
		return err
	}
	srv := server.New(":"+e.Config.Server.Port, h)
	return server.Run(ctx, srv, time.Duration(e.Config.Server.ShutdownTimeoutSec)*time.Second, e.Logger)
}

func (e *Env) Close() error {
	if e.closeLog == nil {
		return nil
	}
	return e.closeLog()
}

// Main runs a service binary until SIGINT or SIGTERM and exits non-zero on
// startup or listener failure.
func Main(service string, register RegisterFunc) {
	env, err := Load(service)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", service, err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = env.Run(ctx, register)
	stop()
	if err != nil {
		env.Logger.Error("service stopped", slog.Any("error", err))
		_ = env.Close()
		os.Exit(1)
	}
	env.Logger.Info("service stopped")
	_ = env.Close()
}
