package sources

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/anatolykoptev/go_ytweb/internal/engine"
	"github.com/anatolykoptev/go_ytweb/internal/jsontree"
)

const maxTitleRunes = 200

// SummarizeRenderer flattens a videoRenderer, playlistVideoRenderer or
// playlistPanelVideoRenderer node. Nodes without a video id are rejected.
func SummarizeRenderer(node jsontree.Node) (engine.YouTubeVideo, bool) {
	id := node.Get("videoId").Text()
	if id == "" {
		return engine.YouTubeVideo{}, false
	}

	v := engine.YouTubeVideo{
		ID:    id,
		Title: engine.TruncateRunes(formattedText(node.Get("title")), maxTitleRunes, "…"),
		URL:   "https://www.youtube.com/watch?v=" + id,
	}

	for _, field := range []string{"longBylineText", "shortBylineText", "ownerText"} {
		if author := formattedText(node.Get(field)); author != "" {
			v.Author = author
			break
		}
	}

	if secs := node.Get("lengthSeconds").Int(); secs > 0 {
		v.Seconds = secs
	}
	v.Duration = formattedText(node.Get("lengthText"))
	if v.Seconds == 0 && v.Duration != "" {
		v.Seconds = parseClock(v.Duration)
	}
	if v.Duration == "" && v.Seconds > 0 {
		v.Duration = formatClock(v.Seconds)
	}
	return v, true
}

// SummarizeRenderers applies SummarizeRenderer to each node, skipping rejects.
func SummarizeRenderers(nodes []jsontree.Node) []engine.YouTubeVideo {
	out := make([]engine.YouTubeVideo, 0, len(nodes))
	for _, n := range nodes {
		if v, ok := SummarizeRenderer(n); ok {
			out = append(out, v)
		}
	}
	return out
}

// formattedText reads a {simpleText} or {runs:[{text}]} node.
func formattedText(n jsontree.Node) string {
	if s := n.Get("simpleText").Text(); s != "" {
		return s
	}
	var sb strings.Builder
	for _, run := range n.Get("runs").Values() {
		sb.WriteString(run.Get("text").Text())
	}
	return sb.String()
}

// parseClock converts "h:mm:ss" or "m:ss" to seconds; 0 when malformed.
func parseClock(s string) int64 {
	var total int64
	for _, part := range strings.Split(s, ":") {
		n, err := strconv.ParseInt(part, 10, 64)
		if err != nil || n < 0 {
			return 0
		}
		total = total*60 + n
	}
	return total
}

func formatClock(secs int64) string {
	h, m, s := secs/3600, secs/60%60, secs%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
