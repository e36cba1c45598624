package outline

import (
	"fmt"
	"io"
	"strings"
)

// WriteText renders the tree below root as an indented listing with 1-based
// page numbers, for console inspection.
func WriteText(w io.Writer, root *Node) error {
	if root == nil {
		return nil
	}
	for _, c := range root.Children {
		if err := writeNode(w, c, 0); err != nil {
			return err
		}
	}
	return nil
}

func writeNode(w io.Writer, n *Node, depth int) error {
	if _, err := fmt.Fprintf(w, "%s%s (p.%d)\n", strings.Repeat("  ", depth), n.Title, n.Page+1); err != nil {
		return err
	}
	for _, c := range n.Children {
		if err := writeNode(w, c, depth+1); err != nil {
			return err
		}
	}
	return nil
}
