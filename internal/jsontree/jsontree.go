// Package jsontree is a null-tolerant accessor over parsed JSON documents.
//
// Every traversal on a missing path yields an absent Node instead of failing,
// so fixed-path lookups into loosely structured responses stay total:
//
//	root.Get("contents").Get("tabs").Index(0).Get("title").Text()
//
// returns "" when any segment is missing.
package jsontree

import (
	"strings"

	"github.com/tidwall/gjson"
)

// Node is a read-only view of one JSON value. The zero Node is absent.
type Node struct {
	r gjson.Result
}

// Parse parses a JSON document. Invalid input yields an absent Node.
func Parse(s string) Node {
	if !gjson.Valid(s) {
		return Node{}
	}
	return Node{r: gjson.Parse(s)}
}

// ParseBytes is Parse for byte slices.
func ParseBytes(b []byte) Node {
	if !gjson.ValidBytes(b) {
		return Node{}
	}
	return Node{r: gjson.ParseBytes(b)}
}

// Get returns the named member of an object. Names are matched literally.
func (n Node) Get(field string) Node {
	if !n.r.IsObject() {
		return Node{}
	}
	return Node{r: n.r.Get(escape(field))}
}

// Index returns the i-th element of an array.
func (n Node) Index(i int) Node {
	if !n.r.IsArray() || i < 0 {
		return Node{}
	}
	arr := n.r.Array()
	if i >= len(arr) {
		return Node{}
	}
	return Node{r: arr[i]}
}

// Values returns array elements, or object member values in document order.
// Absent and scalar nodes have no values.
func (n Node) Values() []Node {
	var out []Node
	switch {
	case n.r.IsArray(), n.r.IsObject():
		n.r.ForEach(func(_, v gjson.Result) bool {
			out = append(out, Node{r: v})
			return true
		})
	}
	return out
}

// Text returns the string form of a scalar. Absent, null, objects and arrays
// return "".
func (n Node) Text() string {
	switch n.r.Type {
	case gjson.String, gjson.Number, gjson.True, gjson.False:
		return n.r.String()
	}
	return ""
}

// Int returns the numeric value, parsing numeric strings. Absent returns 0.
func (n Node) Int() int64 { return n.r.Int() }

// IsNull reports whether the node is absent or an explicit JSON null.
func (n Node) IsNull() bool {
	return n.r.Type == gjson.Null
}

// Exists reports whether the path resolved to a value, including null.
func (n Node) Exists() bool { return n.r.Exists() }

// Raw returns the raw JSON text of the node, or "" when absent.
func (n Node) Raw() string { return n.r.Raw }

// String implements fmt.Stringer for logging.
func (n Node) String() string {
	if !n.r.Exists() {
		return "<absent>"
	}
	return n.r.Raw
}

var pathReplacer = strings.NewReplacer(
	`\`, `\\`,
	".", `\.`,
	"*", `\*`,
	"?", `\?`,
	"|", `\|`,
	"#", `\#`,
	"@", `\@`,
	"!", `\!`,
	"=", `\=`,
	"<", `\<`,
	">", `\>`,
	"%", `\%`,
	":", `\:`,
)

// escape makes a member name safe for use as a single gjson path component.
func escape(field string) string {
	return pathReplacer.Replace(field)
}
