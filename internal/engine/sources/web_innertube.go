package sources

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/anatolykoptev/go_ytweb/internal/engine"
	"github.com/anatolykoptev/go_ytweb/internal/jsontree"
)

// Innertube WEB endpoints, relative to engine.Cfg.BaseURL.
const (
	ytSearchPath   = "/youtubei/v1/search"
	ytBrowsePath   = "/youtubei/v1/browse"
	ytNextPath     = "/youtubei/v1/next"
	ytSearchFilter = "EgIQAQ==" // videos only
)

// ErrInvalidJSON is returned when an API response body is not JSON.
var ErrInvalidJSON = errors.New("response is not valid JSON")

// WebClient is the desktop web Innertube client. Its base config is scraped
// from the landing page on first use and shared by every request it makes.
type WebClient struct {
	fetcher engine.Fetcher
	baseURL string
	configs *configCache
}

// NewWebClient creates a WEB client that issues requests through fetcher
// against engine.Cfg.BaseURL.
func NewWebClient(fetcher engine.Fetcher) *WebClient {
	base := strings.TrimRight(engine.Cfg.BaseURL, "/")
	return &WebClient{
		fetcher: fetcher,
		baseURL: base,
		configs: newConfigCache(fetcher, base+"/"),
	}
}

func (c *WebClient) Identifier() string   { return webClientName }
func (c *WebClient) PlayerParams() string { return webPlayerParams }

// BaseConfig returns a copy of the shared WEB config, scraping the landing
// page on the first call.
func (c *WebClient) BaseConfig(ctx context.Context) (ClientConfig, error) {
	return c.configs.get(ctx)
}

// InvalidateConfig forces the next BaseConfig call to scrape the landing page.
func (c *WebClient) InvalidateConfig() { c.configs.invalidate() }

// ConfigUpdatedAt reports when the landing page was last fetched.
func (c *WebClient) ConfigUpdatedAt() (time.Time, bool) { return c.configs.lastUpdated() }

func (c *WebClient) ExtractSearchResults(root jsontree.Node) []jsontree.Node {
	return ExtractSearchResults(root)
}

func (c *WebClient) ExtractMixPlaylistData(root jsontree.Node) jsontree.Node {
	return ExtractMixPlaylistData(root)
}

func (c *WebClient) ExtractPlaylistName(root jsontree.Node) (string, bool) {
	return ExtractPlaylistName(root)
}

func (c *WebClient) ExtractPlaylistVideoList(root jsontree.Node) jsontree.Node {
	return ExtractPlaylistVideoList(root)
}

func (c *WebClient) ExtractPlaylistContinuationToken(videoList jsontree.Node) (string, bool) {
	return ExtractPlaylistContinuationToken(videoList)
}

func (c *WebClient) ExtractPlaylistContinuationVideos(root jsontree.Node) jsontree.Node {
	return ExtractPlaylistContinuationVideos(root)
}

// Search runs a videos-only search and returns the videoRenderer nodes of the
// first result page.
func (c *WebClient) Search(ctx context.Context, query string) ([]jsontree.Node, error) {
	engine.IncrSearchRequests()
	root, err := c.call(ctx, ytSearchPath, "search", map[string]any{
		"query":  query,
		"params": ytSearchFilter,
	})
	if err != nil {
		return nil, err
	}
	return c.ExtractSearchResults(root), nil
}

// Playlist is one loaded playlist: its first page plus followed continuations.
type Playlist struct {
	Name   string
	Videos []jsontree.Node // playlistVideoRenderer nodes in playlist order
	Pages  int             // pages loaded, including the first
	More   bool            // a continuation token remained when loading stopped
}

// LoadPlaylist loads a playlist's first page and follows up to maxPages
// continuations.
func (c *WebClient) LoadPlaylist(ctx context.Context, playlistID string, maxPages int) (*Playlist, error) {
	engine.IncrBrowseRequests()
	root, err := c.call(ctx, ytBrowsePath, "playlist browse", map[string]any{
		"browseId": "VL" + playlistID,
	})
	if err != nil {
		return nil, err
	}

	pl := &Playlist{Pages: 1}
	pl.Name, _ = c.ExtractPlaylistName(root)

	list := c.ExtractPlaylistVideoList(root)
	pl.Videos = ExtractPlaylistVideos(list)

	pager := NewPaginator(c, list)
	for pager.HasMore() && pl.Pages <= maxPages {
		batch, err := pager.Next(ctx)
		if err != nil {
			return nil, fmt.Errorf("playlist %s page %d: %w", playlistID, pl.Pages+1, err)
		}
		pl.Videos = append(pl.Videos, ExtractPlaylistVideos(batch)...)
		pl.Pages++
	}
	pl.More = pager.HasMore()
	return pl, nil
}

// FetchContinuation fetches the browse page identified by token.
func (c *WebClient) FetchContinuation(ctx context.Context, token string) (jsontree.Node, error) {
	engine.IncrContinuationRequests()
	return c.call(ctx, ytBrowsePath, "playlist continuation", map[string]any{
		"continuation": token,
	})
}

// Mix is the auto-generated playlist attached to a video.
type Mix struct {
	Available bool
	Title     string
	Videos    []jsontree.Node // playlistPanelVideoRenderer nodes
}

// LoadMix fetches the watch-next data for videoID within mixID. A video
// without a mix yields Available=false and no error.
func (c *WebClient) LoadMix(ctx context.Context, videoID, mixID string) (*Mix, error) {
	engine.IncrNextRequests()
	root, err := c.call(ctx, ytNextPath, "mix next", map[string]any{
		"videoId":    videoID,
		"playlistId": mixID,
	})
	if err != nil {
		return nil, err
	}

	data := c.ExtractMixPlaylistData(root)
	if data.IsNull() {
		return &Mix{}, nil
	}
	return &Mix{
		Available: true,
		Title:     data.Get("title").Text(),
		Videos:    ExtractMixVideos(data),
	}, nil
}

// call POSTs payload plus the WEB context to an Innertube endpoint.
func (c *WebClient) call(ctx context.Context, path, op string, payload map[string]any) (jsontree.Node, error) {
	cfg, err := c.BaseConfig(ctx)
	if err != nil {
		return jsontree.Node{}, err
	}
	payload["context"] = cfg.Context()

	body, err := json.Marshal(payload)
	if err != nil {
		return jsontree.Node{}, fmt.Errorf("%s: marshal: %w", op, err)
	}

	endpoint := c.endpoint(path, cfg.APIKey)
	resp, err := c.fetcher.Do(ctx, http.MethodPost, endpoint, c.headers(cfg), body)
	if err != nil {
		return jsontree.Node{}, &engine.TransportError{Op: op, URL: endpoint, Err: err}
	}
	if err := engine.CheckSuccess(resp, op, endpoint, true); err != nil {
		return jsontree.Node{}, err
	}

	root := jsontree.ParseBytes(resp.Body)
	if !root.Exists() {
		return jsontree.Node{}, fmt.Errorf("%s: %w", op, ErrInvalidJSON)
	}
	return root, nil
}

func (c *WebClient) endpoint(path, apiKey string) string {
	q := url.Values{}
	q.Set("prettyPrint", "false")
	if apiKey != "" {
		q.Set("key", apiKey)
	}
	return c.baseURL + path + "?" + q.Encode()
}

func (c *WebClient) headers(cfg ClientConfig) map[string]string {
	return map[string]string{
		"Content-Type":             "application/json",
		"Accept":                   "*/*",
		"User-Agent":               engine.UserAgentChrome,
		"X-Youtube-Client-Name":    "1",
		"X-Youtube-Client-Version": cfg.ClientVersion(),
		"Origin":                   c.baseURL,
		"Referer":                  c.baseURL + "/",
	}
}
