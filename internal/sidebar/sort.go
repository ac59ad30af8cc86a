package sidebar

import (
	"cmp"
	"slices"

	"github.com/dgallion1/docnav/internal/navtree"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// byOrder orders the leaves of one directory by their explicit order.
func byOrder(a, b *navtree.Node) int {
	return cmp.Compare(a.Order, b.Order)
}

// bySiblingOrder orders the entries of a subdirectory before they are
// wrapped in a group. Two non-zero orders compare numerically; otherwise two
// titles compare by collation; anything else is a tie.
func bySiblingOrder() func(a, b *navtree.Node) int {
	coll := collate.New(language.Und)
	return func(a, b *navtree.Node) int {
		if a.Order != 0 && b.Order != 0 {
			return cmp.Compare(a.Order, b.Order)
		}
		if a.Text != "" && b.Text != "" {
			return coll.CompareString(a.Text, b.Text)
		}
		return 0
	}
}

// byText orders merged siblings by title, byte-wise. Untitled entries tie.
func byText(a, b *navtree.Node) int {
	if a.Text == "" || b.Text == "" {
		return 0
	}
	return cmp.Compare(a.Text, b.Text)
}

// pinFirst keeps items[0] in place and sorts the rest by title.
func pinFirst(items []*navtree.Node) []*navtree.Node {
	if len(items) == 0 {
		return items
	}
	pinned, rest := items[0], slices.Clone(items[1:])
	slices.SortStableFunc(rest, byText)
	return append([]*navtree.Node{pinned}, rest...)
}
