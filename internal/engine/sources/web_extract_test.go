package sources

import (
	"testing"

	"github.com/anatolykoptev/go_ytweb/internal/jsontree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func videoIDs(nodes []jsontree.Node) []string {
	ids := make([]string, 0, len(nodes))
	for _, n := range nodes {
		ids = append(ids, n.Get("videoId").Text())
	}
	return ids
}

func TestExtractSearchResults(t *testing.T) {
	t.Run("keeps only videos in order", func(t *testing.T) {
		got := ExtractSearchResults(jsontree.Parse(searchResponseJSON))
		assert.Equal(t, []string{"vid1", "vid2", "vid3"}, videoIDs(got))
	})

	t.Run("missing sections", func(t *testing.T) {
		assert.Empty(t, ExtractSearchResults(jsontree.Parse(`{"contents": {}}`)))
	})

	t.Run("absent root", func(t *testing.T) {
		assert.Empty(t, ExtractSearchResults(jsontree.Node{}))
	})

	t.Run("does not mutate input", func(t *testing.T) {
		root := jsontree.Parse(searchResponseJSON)
		before := root.Raw()
		_ = ExtractSearchResults(root)
		assert.Equal(t, before, root.Raw())
	})
}

func TestExtractMixPlaylistData(t *testing.T) {
	t.Run("mix offered", func(t *testing.T) {
		mix := ExtractMixPlaylistData(jsontree.Parse(watchWithMixJSON))
		require.False(t, mix.IsNull())
		assert.Equal(t, "Mix - First", mix.Get("title").Text())
		assert.Equal(t, []string{"vid1", "vid9"}, videoIDs(ExtractMixVideos(mix)))
	})

	t.Run("no playlist field", func(t *testing.T) {
		mix := ExtractMixPlaylistData(jsontree.Parse(watchWithoutMixJSON))
		assert.True(t, mix.IsNull())
		assert.Empty(t, ExtractMixVideos(mix))
	})
}

func TestExtractPlaylistName(t *testing.T) {
	tests := []struct {
		name   string
		doc    string
		want   string
		wantOK bool
	}{
		{"present", playlistPageJSON, "Road Trip", true},
		{"deleted playlist", `{"alerts": [{"alertRenderer": {"type": "ERROR"}}]}`, "", false},
		{"empty title", `{"metadata": {"playlistMetadataRenderer": {"title": ""}}}`, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractPlaylistName(jsontree.Parse(tt.doc))
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestExtractPlaylistVideoList(t *testing.T) {
	list := ExtractPlaylistVideoList(jsontree.Parse(playlistPageJSON))
	require.False(t, list.IsNull())
	assert.Equal(t, "PLroad", list.Get("playlistId").Text())
	assert.Equal(t, []string{"p1", "p2"}, videoIDs(ExtractPlaylistVideos(list)))

	empty := ExtractPlaylistVideoList(jsontree.Parse(`{"contents": {"twoColumnBrowseResultsRenderer": {"tabs": []}}}`))
	assert.True(t, empty.IsNull())
	assert.Empty(t, ExtractPlaylistVideos(empty))
}

func TestExtractPlaylistContinuationToken(t *testing.T) {
	withToken := `[
		{"playlistVideoRenderer": {"videoId": "a"}},
		{"continuationItemRenderer": {"continuationEndpoint": {"continuationCommand": {"token": "TOKEN_A"}}}}
	]`
	withoutToken := `[
		{"playlistVideoRenderer": {"videoId": "a"}}
	]`
	twoTokens := `[
		{"continuationItemRenderer": {"continuationEndpoint": {"continuationCommand": {"token": "FIRST"}}}},
		{"continuationItemRenderer": {"continuationEndpoint": {"continuationCommand": {"token": "SECOND"}}}}
	]`

	tests := []struct {
		name   string
		list   jsontree.Node
		want   string
		wantOK bool
	}{
		{"bare item list", jsontree.Parse(withToken), "TOKEN_A", true},
		{"token removed", jsontree.Parse(withoutToken), "", false},
		{"container with contents", ExtractPlaylistVideoList(jsontree.Parse(playlistPageJSON)), "TOKEN_A", true},
		{"first marker wins", jsontree.Parse(twoTokens), "FIRST", true},
		{"marker without token", jsontree.Parse(`[{"continuationItemRenderer": {}}]`), "", false},
		{"absent list", jsontree.Node{}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractPlaylistContinuationToken(tt.list)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestExtractPlaylistContinuationVideos(t *testing.T) {
	batch := ExtractPlaylistContinuationVideos(jsontree.Parse(continuationPageJSON))
	require.False(t, batch.IsNull())
	assert.Equal(t, []string{"p3"}, videoIDs(ExtractPlaylistVideos(batch)))

	token, ok := ExtractPlaylistContinuationToken(batch)
	assert.True(t, ok)
	assert.Equal(t, "TOKEN_B", token)

	assert.True(t, ExtractPlaylistContinuationVideos(jsontree.Parse(`{"onResponseReceivedActions": []}`)).IsNull())
}
