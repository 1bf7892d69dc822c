package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Server struct {
	Port               string `yaml:"port"`
	RequestTimeoutSec  int    `yaml:"request_timeout_sec"`
	ShutdownTimeoutSec int    `yaml:"shutdown_timeout_sec"`
}

type Log struct {
	Level      string `yaml:"level"`
	Format     string `yaml:"format"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// Upstream holds the provider endpoints. Overriding them is mostly useful
// for pointing a service at a local stub.
type Upstream struct {
	QuotePageURL     string `yaml:"quote_page_url"`
	AutocompleteURL  string `yaml:"autocomplete_url"`
	BatchQuoteURL    string `yaml:"batch_quote_url"`
	UserAgent        string `yaml:"user_agent"`
	BrowserUserAgent string `yaml:"browser_user_agent"`
}

type Quote struct {
	// Backend selects the quote lookup: "financego" or "batch".
	Backend string `yaml:"backend"`
}

type Symbols struct {
	CSVPath string `yaml:"csv_path"`
}

type Metrics struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

type Config struct {
	Server   Server   `yaml:"server"`
	Log      Log      `yaml:"log"`
	Upstream Upstream `yaml:"upstream"`
	Quote    Quote    `yaml:"quote"`
	Symbols  Symbols  `yaml:"symbols"`
	Metrics  Metrics  `yaml:"metrics"`
}

const (
	BackendFinanceGo = "financego"
	BackendBatch     = "batch"
)

func Default() Config {
	return Config{
		Server: Server{Port: "3000", RequestTimeoutSec: 10, ShutdownTimeoutSec: 5},
		Log: Log{
			Level:      "info",
			Format:     "text",
			MaxSizeMB:  100,
			MaxBackups: 5,
			MaxAgeDays: 30,
		},
		Upstream: Upstream{
			QuotePageURL:     "https://finance.yahoo.com/quote",
			AutocompleteURL:  "https://autoc.finance.yahoo.com/autoc",
			BatchQuoteURL:    "https://query1.finance.yahoo.com/v7/finance/quote",
			UserAgent:        "Mozilla/5.0",
			BrowserUserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
		},
		Quote:   Quote{Backend: BackendFinanceGo},
		Symbols: Symbols{CSVPath: "nyse_trading_units.csv"},
		Metrics: Metrics{Enabled: true, Path: "/metrics"},
	}
}

// Load reads YAML config from path. If path is empty or file does not exist,
// it returns defaults. JSON files are accepted as well since YAML is a superset.
// Environment variables override file values.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		if _, err := os.Stat("config.yaml"); err == nil {
			path = "config.yaml"
		}
	}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(b, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config: %w", err)
			}
		}
	}
	applyEnv(&cfg)
	return cfg, nil
}

// Validate reports settings no service can start with.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Server.Port) == "" {
		return errors.New("server.port is required")
	}
	if c.Server.RequestTimeoutSec <= 0 {
		return errors.New("server.request_timeout_sec must be positive")
	}
	if c.Server.ShutdownTimeoutSec <= 0 {
		return errors.New("server.shutdown_timeout_sec must be positive")
	}
	if c.Metrics.Enabled && (!strings.HasPrefix(c.Metrics.Path, "/") || strings.ContainsAny(c.Metrics.Path, " \t")) {
		return fmt.Errorf("metrics.path: %q must start with / and contain no spaces", c.Metrics.Path)
	}
	switch c.Quote.Backend {
	case BackendFinanceGo, BackendBatch:
	default:
		return fmt.Errorf("quote.backend: unknown backend %q", c.Quote.Backend)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Port = v
	}
	if v := os.Getenv("REQUEST_TIMEOUT_SEC"); v != "" {
		var x int
		fmt.Sscanf(v, "%d", &x)
		if x > 0 {
			cfg.Server.RequestTimeoutSec = x
		}
	}
	if v := os.Getenv("SHUTDOWN_TIMEOUT_SEC"); v != "" {
		var x int
		fmt.Sscanf(v, "%d", &x)
		if x > 0 {
			cfg.Server.ShutdownTimeoutSec = x
		}
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = strings.ToLower(v)
	}
	if v := os.Getenv("LOG_FILE"); v != "" {
		cfg.Log.File = v
	}

	if v := os.Getenv("YAHOO_QUOTE_PAGE_URL"); v != "" {
		cfg.Upstream.QuotePageURL = v
	}
	if v := os.Getenv("YAHOO_AUTOCOMPLETE_URL"); v != "" {
		cfg.Upstream.AutocompleteURL = v
	}
	if v := os.Getenv("YAHOO_BATCH_QUOTE_URL"); v != "" {
		cfg.Upstream.BatchQuoteURL = v
	}
	if v := os.Getenv("YAHOO_USER_AGENT"); v != "" {
		cfg.Upstream.UserAgent = v
	}
	if v := os.Getenv("YAHOO_BROWSER_USER_AGENT"); v != "" {
		cfg.Upstream.BrowserUserAgent = v
	}

	if v := os.Getenv("QUOTE_BACKEND"); v != "" {
		cfg.Quote.Backend = strings.ToLower(v)
	}
	if v := os.Getenv("CSV_FILE_PATH"); v != "" {
		cfg.Symbols.CSVPath = v
	}
	if v := os.Getenv("METRICS_ENABLED"); v != "" {
		switch strings.ToLower(v) {
		case "1", "true", "yes", "y":
			cfg.Metrics.Enabled = true
		case "0", "false", "no", "n":
			cfg.Metrics.Enabled = false
		}
	}
}
