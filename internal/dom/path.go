// internal/dom/path.go
package dom

import (
	"strconv"
	"strings"
)

// Path locates a node by sibling index at each level below a root.
type Path []int

// PathTo returns the path from root down to node.
//
// node must be root or one of its descendants; check root.Contains(node) first.
// Walking off the top of the tree is a programming error and panics.
func PathTo(node, root *Node) Path {
	var rev []int
	for cur := node; cur != root; cur = cur.Parent {
		if cur.Parent == nil {
			panic("dom: PathTo called with a node outside root")
		}
		rev = append(rev, cur.Index())
	}
	path := make(Path, len(rev))
	for i, idx := range rev {
		path[len(rev)-1-i] = idx
	}
	return path
}

// Resolve follows p down from root. It returns nil if p does not address a node.
func (p Path) Resolve(root *Node) *Node {
	cur := root
	for _, idx := range p {
		if idx < 0 || idx >= len(cur.Children) {
			return nil
		}
		cur = cur.Children[idx]
	}
	return cur
}

// Equal reports whether two paths address the same position.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// String renders the path as an array literal, e.g. "[1, 0]".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, idx := range p {
		parts[i] = strconv.Itoa(idx)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
