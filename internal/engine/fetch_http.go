package engine

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// maxBodyBytes caps how much of a response body is read into memory.
const maxBodyBytes = 8 * 1024 * 1024

// Response is a fully read HTTP response.
type Response struct {
	StatusCode int
	Body       []byte
}

// Fetcher executes HTTP requests. Cancellation and timeouts belong here, not
// to the callers that interpret the responses.
type Fetcher interface {
	Do(ctx context.Context, method, url string, headers map[string]string, body []byte) (*Response, error)
}

// HTTPFetcher is the default Fetcher. It uses Cfg.BrowserClient when one is
// configured and falls back to Cfg.HTTPClient otherwise.
type HTTPFetcher struct{}

// NewFetcher returns the Fetcher backed by the engine configuration.
func NewFetcher() *HTTPFetcher { return &HTTPFetcher{} }

// Do performs a single request. It never retries.
func (f *HTTPFetcher) Do(ctx context.Context, method, url string, headers map[string]string, body []byte) (*Response, error) {
	metrics.FetchRequests.Add(1)
	start := time.Now()

	var resp *Response
	var err error
	if bc := cfg.BrowserClient; bc != nil {
		resp, err = doBrowser(bc, method, url, headers, body)
	} else {
		resp, err = doHTTP(ctx, cfg.HTTPClient, method, url, headers, body)
	}
	if err != nil {
		metrics.FetchErrors.Add(1)
		return nil, err
	}

	slog.Debug("fetch",
		slog.String("method", method),
		slog.String("url", url),
		slog.Int("status", resp.StatusCode),
		slog.Int("bytes", len(resp.Body)),
		slog.Duration("elapsed", time.Since(start)),
	)
	return resp, nil
}

func doBrowser(bc *BrowserClient, method, url string, headers map[string]string, body []byte) (*Response, error) {
	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	data, _, status, err := bc.Do(method, url, headers, rd)
	if err != nil {
		return nil, fmt.Errorf("browser %s %s: %w", method, url, err)
	}
	return &Response{StatusCode: status, Body: data}, nil
}

func doHTTP(ctx context.Context, client *http.Client, method, url string, headers map[string]string, body []byte) (*Response, error) {
	if client == nil {
		client = newFetchClient()
	}
	if cfg.FetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.FetchTimeout)
		defer cancel()
	}

	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, rd)
	if err != nil {
		return nil, err
	}
	for k, v := range headers {
		// net/http negotiates and decodes gzip itself only when the caller
		// leaves Accept-Encoding unset.
		if strings.EqualFold(k, "Accept-Encoding") {
			continue
		}
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, url, err)
	}
	defer resp.Body.Close()

	data, err := readResponseBody(resp)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return &Response{StatusCode: resp.StatusCode, Body: data}, nil
}

// newFetchClient creates an HTTP client with sane defaults for scraping.
func newFetchClient() *http.Client {
	return &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 5,
			IdleConnTimeout:     30 * time.Second,
			TLSHandshakeTimeout: 15 * time.Second,
		},
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= 10 {
				return errors.New("stopped after 10 redirects")
			}
			return nil
		},
	}
}

// readResponseBody reads the response body, handling gzip decompression if needed.
func readResponseBody(resp *http.Response) ([]byte, error) {
	if resp.Header.Get("Content-Encoding") == "gzip" {
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		return io.ReadAll(io.LimitReader(gz, maxBodyBytes))
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
}
