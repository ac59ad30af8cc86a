package navtree

// GroupOrder is the order every group node carries. It keeps groups and
// leaves the same shape; nothing sorts groups by it.
const GroupOrder = 99

// Node is one sidebar entry: a leaf pointing at a document, or a
// collapsible group holding the entries of a subdirectory.
type Node struct {
	Text      string  `json:"text" yaml:"text"`                               // Display title
	Link      string  `json:"link,omitempty" yaml:"link,omitempty"`           // Root-relative document path (leaves only)
	Collapsed bool    `json:"collapsed,omitempty" yaml:"collapsed,omitempty"` // Always true for groups
	Items     []*Node `json:"items,omitempty" yaml:"items,omitempty"`         // Children (groups only)
	Order     float64 `json:"order" yaml:"order"`

	group bool
}

// NewLeaf returns a leaf entry for a single document.
func NewLeaf(text, link string, order float64) *Node {
	return &Node{Text: text, Link: link, Order: order}
}

// NewGroup returns a collapsed group entry wrapping items.
func NewGroup(text string, items []*Node) *Node {
	if items == nil {
		items = []*Node{}
	}
	return &Node{
		Text:      text,
		Collapsed: true,
		Items:     items,
		Order:     GroupOrder,
		group:     true,
	}
}

// IsGroup reports whether n is a group entry.
func (n *Node) IsGroup() bool {
	return n.group || n.Collapsed || n.Items != nil
}

// Walk visits nodes depth-first in order. depth is 0 for the given slice.
// Returning false from fn skips the children of that node.
func Walk(nodes []*Node, fn func(n *Node, depth int) bool) {
	walk(nodes, 0, fn)
}

func walk(nodes []*Node, depth int, fn func(*Node, int) bool) {
	for _, n := range nodes {
		if n == nil {
			continue
		}
		if fn(n, depth) && n.IsGroup() {
			walk(n.Items, depth+1, fn)
		}
	}
}

// Count returns the number of leaf and group entries in the tree.
func Count(nodes []*Node) (leaves, groups int) {
	Walk(nodes, func(n *Node, _ int) bool {
		if n.IsGroup() {
			groups++
		} else {
			leaves++
		}
		return true
	})
	return leaves, groups
}
