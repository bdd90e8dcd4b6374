package engine

// --- YouTube types ---

// YouTubeVideo is a flattened summary of one video renderer node.
type YouTubeVideo struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	Author   string `json:"author,omitempty"`
	Duration string `json:"duration,omitempty"` // display form, e.g. "3:32"
	Seconds  int64  `json:"seconds,omitempty"`
}

type YouTubeSearchInput struct {
	Query string `json:"query" jsonschema:"Search query"`
	Limit int    `json:"limit,omitempty" jsonschema:"Max videos to return (default: 20, max: 50)"`
}

type YouTubeSearchOutput struct {
	Query  string         `json:"query"`
	Videos []YouTubeVideo `json:"videos"`
}

type YouTubePlaylistInput struct {
	PlaylistID string `json:"playlist_id" jsonschema:"Playlist ID (the list= parameter), or a full playlist URL"`
	MaxPages   int    `json:"max_pages,omitempty" jsonschema:"Continuation pages to follow after the first (default: 6, max: 50)"`
}

type YouTubePlaylistOutput struct {
	PlaylistID string         `json:"playlist_id"`
	Name       string         `json:"name,omitempty"`
	Videos     []YouTubeVideo `json:"videos"`
	Pages      int            `json:"pages"`
	Truncated  bool           `json:"truncated"` // more pages were available
}

type YouTubeMixInput struct {
	VideoID string `json:"video_id" jsonschema:"Seed video ID"`
	MixID   string `json:"mix_id,omitempty" jsonschema:"Mix playlist ID (default: RD + video_id)"`
}

type YouTubeMixOutput struct {
	MixID     string         `json:"mix_id"`
	Available bool           `json:"available"`
	Title     string         `json:"title,omitempty"`
	Videos    []YouTubeVideo `json:"videos"`
}

type YouTubeClientConfigInput struct{}

type YouTubeClientConfigOutput struct {
	Client        string `json:"client"`
	ClientVersion string `json:"client_version"`
	HasAPIKey     bool   `json:"has_api_key"`
	LastUpdate    string `json:"last_update,omitempty"` // RFC 3339; empty = never fetched
}
