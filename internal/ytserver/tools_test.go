package ytserver

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/anatolykoptev/go_ytweb/internal/engine"
	"github.com/anatolykoptev/go_ytweb/internal/engine/sources"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testLanding = `<html><script>ytcfg.set({"INNERTUBE_API_KEY":"K","INNERTUBE_CONTEXT":{"client":{"clientVersion":"2.20260202.00.00"}}});</script></html>`

const testSearch = `{"contents":{"twoColumnSearchResultsRenderer":{"primaryContents":{"sectionListRenderer":{"contents":[{"itemSectionRenderer":{"contents":[
	{"videoRenderer":{"videoId":"a","title":{"runs":[{"text":"A"}]}}},
	{"channelRenderer":{"channelId":"UC1"}},
	{"videoRenderer":{"videoId":"b","title":{"runs":[{"text":"B"}]}}},
	{"videoRenderer":{"videoId":"c","title":{"runs":[{"text":"C"}]}}}
]}}]}}}}}`

const testPlaylist = `{"metadata":{"playlistMetadataRenderer":{"title":"Mine"}},"contents":{"twoColumnBrowseResultsRenderer":{"tabs":[{"tabRenderer":{"content":{"sectionListRenderer":{"contents":[{"itemSectionRenderer":{"contents":[{"playlistVideoListRenderer":{"contents":[
	{"playlistVideoRenderer":{"videoId":"x","title":{"runs":[{"text":"X"}]},"lengthSeconds":"90"}}
]}}]}}]}}}}]}}}`

const testNoMix = `{"contents":{"twoColumnWatchNextResults":{}}}`

func newTestClient(t *testing.T) *sources.WebClient {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/":
			_, _ = io.WriteString(w, testLanding)
		case strings.HasSuffix(r.URL.Path, "/search"):
			_, _ = io.WriteString(w, testSearch)
		case strings.HasSuffix(r.URL.Path, "/browse"):
			_, _ = io.WriteString(w, testPlaylist)
		case strings.HasSuffix(r.URL.Path, "/next"):
			_, _ = io.WriteString(w, testNoMix)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)

	engine.Init(engine.Config{BaseURL: srv.URL, FetchTimeout: 5 * time.Second, HTTPClient: srv.Client()})
	return sources.NewWebClient(engine.NewFetcher())
}

func TestSearchTool(t *testing.T) {
	client := newTestClient(t)

	out, err := Search(context.Background(), client, engine.YouTubeSearchInput{Query: " songs ", Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, "songs", out.Query)
	require.Len(t, out.Videos, 2)
	assert.Equal(t, "a", out.Videos[0].ID)
	assert.Equal(t, "b", out.Videos[1].ID)

	_, err = Search(context.Background(), client, engine.YouTubeSearchInput{})
	assert.Error(t, err)
}

func TestPlaylistTool(t *testing.T) {
	client := newTestClient(t)

	out, err := Playlist(context.Background(), client, engine.YouTubePlaylistInput{
		PlaylistID: "https://www.youtube.com/playlist?list=PLmine",
	})
	require.NoError(t, err)
	assert.Equal(t, "PLmine", out.PlaylistID)
	assert.Equal(t, "Mine", out.Name)
	require.Len(t, out.Videos, 1)
	assert.Equal(t, "1:30", out.Videos[0].Duration)
	assert.Equal(t, 1, out.Pages)
	assert.False(t, out.Truncated)
}

func TestMixToolUnavailable(t *testing.T) {
	client := newTestClient(t)

	out, err := Mix(context.Background(), client, engine.YouTubeMixInput{VideoID: "solo"})
	require.NoError(t, err)
	assert.Equal(t, "RDsolo", out.MixID)
	assert.False(t, out.Available)
	assert.Empty(t, out.Videos)
}

func TestClientConfigTool(t *testing.T) {
	client := newTestClient(t)

	out, err := ClientConfig(context.Background(), client)
	require.NoError(t, err)
	assert.Equal(t, "WEB", out.Client)
	assert.Equal(t, "2.20260202.00.00", out.ClientVersion)
	assert.True(t, out.HasAPIKey)
	assert.NotEmpty(t, out.LastUpdate)
}

func TestPlaylistID(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare id", "PL123", "PL123"},
		{"playlist url", "https://www.youtube.com/playlist?list=PL123", "PL123"},
		{"watch url with radio", "https://www.youtube.com/watch?v=abc&list=RDabc&start_radio=1", "RDabc"},
		{"whitespace", "  PL9  ", "PL9"},
		{"bare query", "list=PLabc", "PLabc"},
		{"bare query with more params", "v=abc&list=RDabc&index=2", "RDabc"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlaylistID(tt.in))
		})
	}
}

func TestRegisterTools(t *testing.T) {
	server := mcp.NewServer(&mcp.Implementation{Name: "test", Version: "dev"}, nil)
	assert.NotPanics(t, func() { RegisterTools(server, newTestClient(t)) })
}
