package ytserver

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/anatolykoptev/go_ytweb/internal/engine"
	"github.com/anatolykoptev/go_ytweb/internal/engine/sources"
)

const (
	maxSearchResults = 50
	maxPlaylistPages = 50
)

// Search runs youtube_search.
func Search(ctx context.Context, client *sources.WebClient, input engine.YouTubeSearchInput) (engine.YouTubeSearchOutput, error) {
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return engine.YouTubeSearchOutput{}, errors.New("query is required")
	}
	limit := clamp(input.Limit, engine.Cfg.MaxResults, maxSearchResults)

	var videos []engine.YouTubeVideo
	err := engine.TrackOperation(ctx, "youtube_search", func(ctx context.Context) error {
		nodes, err := client.Search(ctx, query)
		if err != nil {
			return err
		}
		videos = sources.SummarizeRenderers(nodes)
		return nil
	})
	if err != nil {
		return engine.YouTubeSearchOutput{}, err
	}
	if len(videos) > limit {
		videos = videos[:limit]
	}
	return engine.YouTubeSearchOutput{Query: query, Videos: videos}, nil
}

// Playlist runs youtube_playlist.
func Playlist(ctx context.Context, client *sources.WebClient, input engine.YouTubePlaylistInput) (engine.YouTubePlaylistOutput, error) {
	id := PlaylistID(input.PlaylistID)
	if id == "" {
		return engine.YouTubePlaylistOutput{}, errors.New("playlist_id is required")
	}
	pages := clamp(input.MaxPages, engine.Cfg.PlaylistMaxPages, maxPlaylistPages)

	var pl *sources.Playlist
	err := engine.TrackOperation(ctx, "youtube_playlist", func(ctx context.Context) error {
		var err error
		pl, err = client.LoadPlaylist(ctx, id, pages)
		return err
	})
	if err != nil {
		return engine.YouTubePlaylistOutput{}, err
	}
	return engine.YouTubePlaylistOutput{
		PlaylistID: id,
		Name:       pl.Name,
		Videos:     sources.SummarizeRenderers(pl.Videos),
		Pages:      pl.Pages,
		Truncated:  pl.More,
	}, nil
}

// Mix runs youtube_mix.
func Mix(ctx context.Context, client *sources.WebClient, input engine.YouTubeMixInput) (engine.YouTubeMixOutput, error) {
	videoID := strings.TrimSpace(input.VideoID)
	if videoID == "" {
		return engine.YouTubeMixOutput{}, errors.New("video_id is required")
	}
	mixID := strings.TrimSpace(input.MixID)
	if mixID == "" {
		mixID = "RD" + videoID
	}

	mix, err := client.LoadMix(ctx, videoID, mixID)
	if err != nil {
		return engine.YouTubeMixOutput{}, err
	}
	return engine.YouTubeMixOutput{
		MixID:     mixID,
		Available: mix.Available,
		Title:     mix.Title,
		Videos:    sources.SummarizeRenderers(mix.Videos),
	}, nil
}

// ClientConfig runs youtube_client_config.
func ClientConfig(ctx context.Context, client *sources.WebClient) (engine.YouTubeClientConfigOutput, error) {
	cfg, err := client.BaseConfig(ctx)
	if err != nil {
		return engine.YouTubeClientConfigOutput{}, err
	}
	out := engine.YouTubeClientConfigOutput{
		Client:        client.Identifier(),
		ClientVersion: cfg.ClientVersion(),
		HasAPIKey:     cfg.APIKey != "",
	}
	if at, ok := client.ConfigUpdatedAt(); ok {
		out.LastUpdate = at.UTC().Format(time.RFC3339)
	}
	return out, nil
}

// PlaylistID accepts a bare playlist ID or any URL carrying a list= parameter.
func PlaylistID(s string) string {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, "list=") {
		return s
	}
	u, err := url.Parse(s)
	if err != nil {
		return ""
	}
	if u.RawQuery != "" {
		return u.Query().Get("list")
	}
	q, err := url.ParseQuery(s)
	if err != nil {
		return ""
	}
	return q.Get("list")
}

func clamp(v, def, hi int) int {
	if v <= 0 {
		v = def
	}
	if v > hi {
		v = hi
	}
	return v
}
