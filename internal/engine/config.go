package engine

import (
	"net/http"
	"time"
)

// DefaultBaseURL is the platform origin used when Config.BaseURL is empty.
const DefaultBaseURL = "https://www.youtube.com"

// Config holds all engine configuration, injected from main.
type Config struct {
	BaseURL          string        // platform origin
	Hl               string        // interface language sent in the client context
	Gl               string        // content region sent in the client context
	FetchTimeout     time.Duration // per-request timeout applied by the fetcher
	MaxResults       int           // default cap for search output
	PlaylistMaxPages int           // continuation pages followed per playlist load
	HTTPClient       *http.Client
	BrowserClient    *BrowserClient // nil = plain net/http transport
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages (sources, ytserver).
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
// Zero-valued fields fall back to defaults.
func Init(c Config) {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Hl == "" {
		c.Hl = "en"
	}
	if c.Gl == "" {
		c.Gl = "US"
	}
	if c.FetchTimeout <= 0 {
		c.FetchTimeout = 15 * time.Second
	}
	if c.MaxResults <= 0 {
		c.MaxResults = 20
	}
	if c.PlaylistMaxPages <= 0 {
		c.PlaylistMaxPages = 6
	}
	if c.HTTPClient == nil {
		c.HTTPClient = newFetchClient()
	}
	cfg = c
	Cfg = &cfg
}
