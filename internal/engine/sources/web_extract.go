package sources

import "github.com/anatolykoptev/go_ytweb/internal/jsontree"

// WEB response traversal. Every function here is pure: it only reads the
// tree it is given and reports missing paths as absence, never as errors.

// ExtractSearchResults returns the videoRenderer nodes of a search response
// in result order. Ads, channel cards and shelves are dropped.
func ExtractSearchResults(root jsontree.Node) []jsontree.Node {
	sections := root.Get("contents").
		Get("twoColumnSearchResultsRenderer").
		Get("primaryContents").
		Get("sectionListRenderer").
		Get("contents").
		Values()

	var out []jsontree.Node
	for _, section := range sections {
		for _, item := range section.Get("itemSectionRenderer").Get("contents").Values() {
			if video := item.Get("videoRenderer"); !video.IsNull() {
				out = append(out, video)
			}
		}
	}
	return out
}

// ExtractMixPlaylistData returns the mix playlist embedded in a watch
// response, or an absent node when no mix is offered for the video.
func ExtractMixPlaylistData(root jsontree.Node) jsontree.Node {
	return root.Get("contents").
		Get("twoColumnWatchNextResults").
		Get("playlist"). // missing when there is no mix
		Get("playlist")
}

// ExtractMixVideos returns the playlistPanelVideoRenderer entries of a mix.
func ExtractMixVideos(mix jsontree.Node) []jsontree.Node {
	return collectVariant(mix.Get("contents"), "playlistPanelVideoRenderer")
}

// ExtractPlaylistName returns the title of a playlist browse response.
func ExtractPlaylistName(root jsontree.Node) (string, bool) {
	title := root.Get("metadata").Get("playlistMetadataRenderer").Get("title").Text()
	return title, title != ""
}

// ExtractPlaylistVideoList returns the first page's playlistVideoListRenderer.
// An absent result means an empty first page.
func ExtractPlaylistVideoList(root jsontree.Node) jsontree.Node {
	return root.Get("contents").
		Get("twoColumnBrowseResultsRenderer").
		Get("tabs").
		Index(0).
		Get("tabRenderer").
		Get("content").
		Get("sectionListRenderer").
		Get("contents").
		Index(0).
		Get("itemSectionRenderer").
		Get("contents").
		Index(0).
		Get("playlistVideoListRenderer")
}

// ExtractPlaylistVideos returns the playlistVideoRenderer entries of a video
// list. It accepts the list container or a bare item array.
func ExtractPlaylistVideos(videoList jsontree.Node) []jsontree.Node {
	return collectVariant(listItems(videoList), "playlistVideoRenderer")
}

// ExtractPlaylistContinuationToken returns the token of the first
// continuationItemRenderer in a video list. It accepts the list container or
// a bare item array. No token means the listing is complete.
func ExtractPlaylistContinuationToken(videoList jsontree.Node) (string, bool) {
	for _, item := range listItems(videoList).Values() {
		renderer := item.Get("continuationItemRenderer")
		if renderer.IsNull() {
			continue
		}
		token := renderer.Get("continuationEndpoint").
			Get("continuationCommand").
			Get("token").
			Text()
		return token, token != ""
	}
	return "", false
}

// ExtractPlaylistContinuationVideos returns the items appended by a
// continuation response.
func ExtractPlaylistContinuationVideos(root jsontree.Node) jsontree.Node {
	return root.Get("onResponseReceivedActions").
		Index(0).
		Get("appendContinuationItemsAction").
		Get("continuationItems")
}

// listItems unwraps a container's contents; WEB continuations hand back the
// bare array instead.
func listItems(videoList jsontree.Node) jsontree.Node {
	if contents := videoList.Get("contents"); !contents.IsNull() {
		return contents
	}
	return videoList
}

func collectVariant(items jsontree.Node, variant string) []jsontree.Node {
	var out []jsontree.Node
	for _, item := range items.Values() {
		if v := item.Get(variant); !v.IsNull() {
			out = append(out, v)
		}
	}
	return out
}
