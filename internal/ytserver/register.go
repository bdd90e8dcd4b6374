// Package ytserver exposes the WEB Innertube client as MCP tools.
package ytserver

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/anatolykoptev/go_ytweb/internal/engine"
	"github.com/anatolykoptev/go_ytweb/internal/engine/sources"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ToolCount is the number of tools RegisterTools adds.
const ToolCount = 4

// RegisterTools registers youtube_search, youtube_playlist, youtube_mix and
// youtube_client_config on the given MCP server.
func RegisterTools(server *mcp.Server, client *sources.WebClient) {
	registerSearch(server, client)
	registerPlaylist(server, client)
	registerMix(server, client)
	registerClientConfig(server, client)
}

func registerSearch(server *mcp.Server, client *sources.WebClient) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "youtube_search",
		Description: "Search YouTube videos through the web client. Returns video id, title, channel, duration and URL in relevance order. Ads, channels and shelves are filtered out.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.YouTubeSearchInput) (*mcp.CallToolResult, engine.YouTubeSearchOutput, error) {
		out, err := Search(ctx, client, input)
		if err != nil {
			slog.Warn("youtube_search error", slog.String("query", input.Query), slog.Any("error", err))
			return nil, engine.YouTubeSearchOutput{}, err
		}
		return nil, out, nil
	})
}

func registerPlaylist(server *mcp.Server, client *sources.WebClient) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "youtube_playlist",
		Description: "Load a YouTube playlist: its name and videos, following continuation pages up to max_pages. truncated=true means more pages exist.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.YouTubePlaylistInput) (*mcp.CallToolResult, engine.YouTubePlaylistOutput, error) {
		out, err := Playlist(ctx, client, input)
		if err != nil {
			slog.Warn("youtube_playlist error", slog.String("playlist", input.PlaylistID), slog.Any("error", err))
			return nil, engine.YouTubePlaylistOutput{}, err
		}
		return nil, out, nil
	})
}

func registerMix(server *mcp.Server, client *sources.WebClient) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "youtube_mix",
		Description: "Load the auto-generated mix playlist for a video. available=false when YouTube offers no mix for it.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.YouTubeMixInput) (*mcp.CallToolResult, engine.YouTubeMixOutput, error) {
		out, err := Mix(ctx, client, input)
		if err != nil {
			slog.Warn("youtube_mix error", slog.String("video", input.VideoID), slog.Any("error", err))
			return nil, engine.YouTubeMixOutput{}, err
		}
		return nil, out, nil
	})
}

func registerClientConfig(server *mcp.Server, client *sources.WebClient) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "youtube_client_config",
		Description: "Show the web client's request configuration (client version, whether an API key was scraped, last landing page fetch). Fetches the landing page on first use.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.YouTubeClientConfigInput) (*mcp.CallToolResult, engine.YouTubeClientConfigOutput, error) {
		out, err := ClientConfig(ctx, client)
		if err != nil {
			return nil, engine.YouTubeClientConfigOutput{}, fmt.Errorf("client config: %w", err)
		}
		return nil, out, nil
	})
}
