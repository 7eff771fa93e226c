// internal/dom/selection.go
package dom

import "strings"

// Placeholder is the zero-width sentinel rendered into otherwise empty text
// regions so the caret has a text node to live in.
const Placeholder = "\uFEFF"

// Selection is a live selection expressed against concrete nodes. Either node
// may be nil, e.g. when focus has left the document.
type Selection struct {
	AnchorNode   *Node
	AnchorOffset int
	FocusNode    *Node
	FocusOffset  int
}

// Collapsed reports whether anchor and focus coincide.
func (s Selection) Collapsed() bool {
	return s.AnchorNode == s.FocusNode && s.AnchorOffset == s.FocusOffset
}

// SelectionSnapshot is a selection addressed positionally, independent of node identity.
type SelectionSnapshot struct {
	AnchorPath   Path
	AnchorOffset int
	FocusPath    Path
	FocusOffset  int
}

// IsPlaceholder reports whether n is a text node holding only the sentinel.
func IsPlaceholder(n *Node) bool {
	return n != nil && n.Type == TextNode && n.Data == Placeholder
}

// StripPlaceholders removes every sentinel from s.
func StripPlaceholders(s string) string {
	return strings.ReplaceAll(s, Placeholder, "")
}

// ResolveSelection converts sel into root-relative paths. It reports false when
// an endpoint is missing or lies outside root.
func ResolveSelection(sel Selection, root *Node) (SelectionSnapshot, bool) {
	if root == nil || sel.AnchorNode == nil || sel.FocusNode == nil {
		return SelectionSnapshot{}, false
	}
	if !root.Contains(sel.AnchorNode) || !root.Contains(sel.FocusNode) {
		return SelectionSnapshot{}, false
	}

	snap := SelectionSnapshot{
		AnchorPath:   PathTo(sel.AnchorNode, root),
		AnchorOffset: sel.AnchorOffset,
		FocusPath:    PathTo(sel.FocusNode, root),
		FocusOffset:  sel.FocusOffset,
	}
	// The sentinel has no addressable content, whatever offset the platform reports.
	if IsPlaceholder(sel.AnchorNode) && IsPlaceholder(sel.FocusNode) {
		snap.AnchorOffset = 0
		snap.FocusOffset = 0
	}
	return snap, true
}
