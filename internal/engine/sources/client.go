package sources

import (
	"context"

	"github.com/anatolykoptev/go_ytweb/internal/jsontree"
)

// Client is one Innertube client strategy. Each strategy knows how to obtain
// its request configuration and where its response shapes keep search results,
// playlist pages, continuations and mix data. Extraction methods are pure and
// never fail on missing paths: absence is reported through absent nodes,
// empty slices, or a false second return value.
type Client interface {
	// Identifier names the client, e.g. "WEB".
	Identifier() string
	// PlayerParams is the params value sent with player requests.
	PlayerParams() string
	// BaseConfig returns an independent copy of the client's request config.
	BaseConfig(ctx context.Context) (ClientConfig, error)

	ExtractSearchResults(root jsontree.Node) []jsontree.Node
	ExtractMixPlaylistData(root jsontree.Node) jsontree.Node
	ExtractPlaylistName(root jsontree.Node) (string, bool)
	ExtractPlaylistVideoList(root jsontree.Node) jsontree.Node
	ExtractPlaylistContinuationToken(videoList jsontree.Node) (string, bool)
	ExtractPlaylistContinuationVideos(root jsontree.Node) jsontree.Node
}

var _ Client = (*WebClient)(nil)
