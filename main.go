// go_ytweb is a YouTube web client MCP server.
//
// Exposes youtube_search, youtube_playlist, youtube_mix and
// youtube_client_config over the desktop web Innertube API. The client's API
// key and version are scraped from the landing page on first use.
package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-mcpserver"
	stealth "github.com/anatolykoptev/go-stealth"
	"github.com/anatolykoptev/go-stealth/proxypool"
	"github.com/anatolykoptev/go_ytweb/internal/engine"
	"github.com/anatolykoptev/go_ytweb/internal/engine/sources"
	"github.com/anatolykoptev/go_ytweb/internal/ytserver"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var (
	version = "dev"
	mcpPort = env.Str("MCP_PORT", "8893")
)

func main() {
	initEngine()

	slog.Info("starting go_ytweb",
		slog.String("port", mcpPort),
		slog.String("base_url", engine.Cfg.BaseURL),
	)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "go_ytweb",
		Version: version,
	}, nil)

	client := sources.NewWebClient(engine.NewFetcher())
	ytserver.RegisterTools(server, client)
	slog.Info("tools registered", slog.Int("count", ytserver.ToolCount))

	if err := mcpserver.Run(server, mcpserver.Config{
		Name:         "go_ytweb",
		Version:      version,
		Port:         mcpPort,
		WriteTimeout: 120 * time.Second,
		Metrics:      engine.FormatMetrics,
	}); err != nil {
		slog.Error("server failed", slog.Any("error", err))
	}
}

func initEngine() {
	c := engine.Config{
		BaseURL:          env.Str("YT_BASE_URL", engine.DefaultBaseURL),
		Hl:               env.Str("YT_HL", "en"),
		Gl:               env.Str("YT_GL", "US"),
		FetchTimeout:     env.Duration("FETCH_TIMEOUT", 15*time.Second),
		MaxResults:       env.Int("YT_MAX_RESULTS", 20),
		PlaylistMaxPages: env.Int("YT_PLAYLIST_MAX_PAGES", 6),
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     60 * time.Second,
			},
		},
	}

	if env.Str("YT_STEALTH", "") == "true" {
		var opts []stealth.ClientOption
		opts = append(opts, stealth.WithTimeout(15))

		if apiKey := env.Str("WEBSHARE_API_KEY", ""); apiKey != "" {
			pool, err := proxypool.NewWebshare(apiKey)
			if err != nil {
				slog.Warn("proxy pool init failed, running without proxy", slog.Any("error", err))
			} else {
				opts = append(opts, stealth.WithProxyPool(pool))
				slog.Info("proxy pool initialized", slog.Int("proxies", pool.Len()))
			}
		}

		bc, err := stealth.NewClient(opts...)
		if err != nil {
			slog.Error("stealth client init failed", slog.Any("error", err))
		} else {
			c.BrowserClient = bc
			slog.Info("stealth browser client initialized")
		}
	}

	engine.Init(c)
}
