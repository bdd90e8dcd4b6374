package sources

import (
	"bytes"
	"regexp"

	"github.com/anatolykoptev/go_ytweb/internal/jsontree"
	"golang.org/x/net/html"
)

var ytcfgRe = regexp.MustCompile(`ytcfg\.set\((\{.+})\);`)

// extractYtcfg locates the `ytcfg.set({...});` literal in a landing page and
// parses its argument. Script elements are searched first, in document order;
// if none carries a parseable literal the whole body is searched.
func extractYtcfg(page []byte) (jsontree.Node, bool) {
	for _, script := range scriptTexts(page) {
		if n, ok := matchYtcfg(script); ok {
			return n, true
		}
	}
	return matchYtcfg(page)
}

func matchYtcfg(b []byte) (jsontree.Node, bool) {
	m := ytcfgRe.FindSubmatch(b)
	if m == nil {
		return jsontree.Node{}, false
	}
	n := jsontree.ParseBytes(m[1])
	if !n.Exists() {
		return jsontree.Node{}, false
	}
	return n, true
}

// scriptTexts returns the raw text of every <script> element that mentions ytcfg.
func scriptTexts(page []byte) [][]byte {
	var out [][]byte
	z := html.NewTokenizer(bytes.NewReader(page))
	inScript := false
	for {
		switch z.Next() {
		case html.ErrorToken:
			return out
		case html.StartTagToken:
			name, _ := z.TagName()
			inScript = string(name) == "script"
		case html.EndTagToken:
			inScript = false
		case html.TextToken:
			if !inScript {
				continue
			}
			if text := z.Text(); bytes.Contains(text, []byte("ytcfg.set(")) {
				out = append(out, bytes.Clone(text))
			}
		}
	}
}
