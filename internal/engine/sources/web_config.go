package sources

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/anatolykoptev/go_ytweb/internal/engine"
)

const (
	webClientName    = "WEB"
	webClientVersion = "2.20250222.10.00" // pinned fallback until the landing page is scraped
	webPlayerParams  = "2AMB"

	neverFetched int64 = -1
)

// ClientConfig is the base request configuration of one client: its identity,
// optional API key and the fields sent as context.client in every request.
type ClientConfig struct {
	Name         string
	APIKey       string
	ClientFields map[string]string
}

// Copy returns a deep copy safe for the caller to mutate.
func (c ClientConfig) Copy() ClientConfig {
	c.ClientFields = maps.Clone(c.ClientFields)
	if c.ClientFields == nil {
		c.ClientFields = map[string]string{}
	}
	return c
}

// WithAPIKey sets the API key.
func (c *ClientConfig) WithAPIKey(key string) *ClientConfig {
	c.APIKey = key
	return c
}

// WithClientField sets one context.client field.
func (c *ClientConfig) WithClientField(key, value string) *ClientConfig {
	if c.ClientFields == nil {
		c.ClientFields = map[string]string{}
	}
	c.ClientFields[key] = value
	return c
}

// ClientVersion returns the clientVersion field.
func (c ClientConfig) ClientVersion() string { return c.ClientFields["clientVersion"] }

// Context builds the request "context" object.
func (c ClientConfig) Context() map[string]any {
	client := make(map[string]any, len(c.ClientFields))
	for k, v := range c.ClientFields {
		client[k] = v
	}
	return map[string]any{
		"client":  client,
		"user":    map[string]any{"lockedSafetyMode": false},
		"request": map[string]any{"useSsl": true},
	}
}

func defaultWebConfig() ClientConfig {
	return ClientConfig{
		Name: webClientName,
		ClientFields: map[string]string{
			"clientName":    webClientName,
			"clientVersion": webClientVersion,
			"hl":            engine.Cfg.Hl,
			"gl":            engine.Cfg.Gl,
		},
	}
}

// configCache owns the shared WEB base config. It is refreshed from the
// landing page at most once unless invalidated; callers only ever receive
// copies.
type configCache struct {
	mu         sync.Mutex   // serializes refresh
	baseMu     sync.RWMutex // guards base
	base       ClientConfig
	lastUpdate atomic.Int64 // epoch millis, neverFetched until a page was fetched

	fetcher engine.Fetcher
	pageURL string
	now     func() time.Time
}

func newConfigCache(fetcher engine.Fetcher, pageURL string) *configCache {
	c := &configCache{
		base:    defaultWebConfig(),
		fetcher: fetcher,
		pageURL: pageURL,
		now:     time.Now,
	}
	c.lastUpdate.Store(neverFetched)
	return c
}

// get returns a copy of the base config, fetching the landing page first if
// it has never been fetched. Concurrent first callers block on the single
// in-flight refresh.
func (c *configCache) get(ctx context.Context) (ClientConfig, error) {
	if c.lastUpdate.Load() == neverFetched {
		c.mu.Lock()
		if c.lastUpdate.Load() == neverFetched {
			if err := c.refresh(ctx); err != nil {
				c.mu.Unlock()
				engine.IncrConfigRefreshError()
				return ClientConfig{}, fmt.Errorf("web client config: %w", err)
			}
		}
		c.mu.Unlock()
	}
	return c.snapshot(), nil
}

func (c *configCache) snapshot() ClientConfig {
	c.baseMu.RLock()
	defer c.baseMu.RUnlock()
	return c.base.Copy()
}

// invalidate makes the next get fetch the landing page again.
func (c *configCache) invalidate() {
	c.mu.Lock()
	c.lastUpdate.Store(neverFetched)
	c.mu.Unlock()
}

// lastUpdated returns when the landing page was last fetched.
func (c *configCache) lastUpdated() (time.Time, bool) {
	ms := c.lastUpdate.Load()
	if ms == neverFetched {
		return time.Time{}, false
	}
	return time.UnixMilli(ms), true
}

// refresh fetches the landing page and folds its ytcfg values into base.
// Must be called with mu held. Only transport failures are errors: a page
// without a usable ytcfg literal still counts as fetched. lastUpdate is
// published only once base holds the scraped values.
func (c *configCache) refresh(ctx context.Context) error {
	const op = "client config fetch"

	headers := engine.ChromeHeaders()
	resp, err := c.fetcher.Do(ctx, http.MethodGet, c.pageURL, headers, nil)
	if err != nil {
		return &engine.TransportError{Op: op, URL: c.pageURL, Err: err}
	}
	if err := engine.CheckSuccess(resp, op, c.pageURL, true); err != nil {
		return err
	}
	fetchedAt := c.now().UnixMilli()
	engine.IncrConfigRefresh()

	ytcfg, ok := extractYtcfg(resp.Body)
	if !ok {
		engine.IncrYtcfgMissing()
		slog.Warn("unable to find client config in base page",
			slog.String("url", c.pageURL),
			slog.Int("bytes", len(resp.Body)),
			slog.String("head", engine.TruncateRunes(string(resp.Body), 512, "...")),
		)
		c.lastUpdate.Store(fetchedAt)
		return nil
	}

	apiKey := ytcfg.Get("INNERTUBE_API_KEY").Text()
	client := ytcfg.Get("INNERTUBE_CONTEXT").Get("client")

	c.baseMu.Lock()
	if apiKey != "" {
		c.base.WithAPIKey(apiKey)
	}
	if !client.IsNull() {
		if version := client.Get("clientVersion").Text(); version != "" {
			c.base.WithClientField("clientVersion", version)
		}
		// visitorData is deliberately not propagated.
	}
	hasKey, version := c.base.APIKey != "", c.base.ClientVersion()
	c.baseMu.Unlock()

	c.lastUpdate.Store(fetchedAt)

	slog.Debug("web client config refreshed",
		slog.Bool("api_key", hasKey),
		slog.String("client_version", version),
	)
	return nil
}
