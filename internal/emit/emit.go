// Package emit writes a built sidebar for the site generator to consume.
package emit

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dgallion1/docnav/internal/navtree"
	"gopkg.in/yaml.v3"
)

// Write encodes nodes to w as "json" or "yaml".
func Write(w io.Writer, nodes []*navtree.Node, format string, indent int) error {
	if nodes == nil {
		nodes = []*navtree.Node{}
	}
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		if indent > 0 {
			enc.SetIndent("", strings.Repeat(" ", indent))
		}
		if err := enc.Encode(nodes); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case "yaml":
		enc := yaml.NewEncoder(w)
		if indent > 0 {
			enc.SetIndent(indent)
		}
		if err := enc.Encode(nodes); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// Outline writes an indented, human-readable listing of the tree.
func Outline(w io.Writer, nodes []*navtree.Node) error {
	var err error
	navtree.Walk(nodes, func(n *navtree.Node, depth int) bool {
		if err != nil {
			return false
		}
		pad := strings.Repeat("  ", depth)
		if n.IsGroup() {
			_, err = fmt.Fprintf(w, "%s%s/\n", pad, n.Text)
		} else {
			_, err = fmt.Fprintf(w, "%s%s (%s) [%s]\n", pad, n.Text, n.Link, strconv.FormatFloat(n.Order, 'f', -1, 64))
		}
		return err == nil
	})
	return err
}
