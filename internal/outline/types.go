// Package outline implements the outline construction pipeline: bounding
// per-page text to the oracle's character budget, repairing the untrusted
// heading candidates the oracle returns, and assembling them into a
// bookmark tree.
package outline

import (
	"strconv"
	"strings"
)

// PageText is the extracted text of a single document page.
// Page indices are 0-based and strictly increasing within a document.
type PageText struct {
	Page int
	Text string
}

// Heading is a single heading candidate: a title, its hierarchical level
// (1 = top) and the 0-based page it appears on. Headings coming straight
// from the oracle are untrusted until they pass through Repair.
type Heading struct {
	Title string
	Level int
	Page  int
}

// BoundedDocument is an in-order prefix of a document's pages whose total
// text length fits within the oracle's character budget.
type BoundedDocument struct {
	Pages     []PageText
	Truncated bool
}

// Empty reports whether the document contains any text at all.
func (d BoundedDocument) Empty() bool {
	for _, p := range d.Pages {
		if p.Text != "" {
			return false
		}
	}
	return true
}

// LastPage returns the highest included page index, or -1 when no pages
// are included.
func (d BoundedDocument) LastPage() int {
	if len(d.Pages) == 0 {
		return -1
	}
	return d.Pages[len(d.Pages)-1].Page
}

// TextLen returns the total text length across all included pages,
// excluding page markers.
func (d BoundedDocument) TextLen() int {
	n := 0
	for _, p := range d.Pages {
		n += len(p.Text)
	}
	return n
}

// Marked renders the document as a single string with page markers, the
// form the oracle receives. Markers carry 1-based page numbers so the model
// can quote them back.
func (d BoundedDocument) Marked() string {
	var sb strings.Builder
	for _, p := range d.Pages {
		sb.WriteString("\n--- PAGE ")
		sb.WriteString(strconv.Itoa(p.Page + 1))
		sb.WriteString(" ---\n")
		sb.WriteString(p.Text)
	}
	if d.Truncated {
		sb.WriteString("\n\n[Document truncated...]")
	}
	return sb.String()
}

// Node is a single bookmark entry in the outline tree. The root node is
// virtual (level 0, empty title); its children are the top-level entries.
// A node's Level is always exactly one greater than its parent's.
type Node struct {
	Title    string  `json:"title,omitempty"`
	Page     int     `json:"page"`
	Level    int     `json:"level,omitempty"`
	Children []*Node `json:"children,omitempty"`
}

// Count returns the number of entries in the tree rooted at n, excluding
// the virtual root itself.
func (n *Node) Count() int {
	if n == nil {
		return 0
	}
	total := 0
	for _, c := range n.Children {
		total += 1 + c.Count()
	}
	return total
}

// Walk visits every entry below n in document order.
func (n *Node) Walk(fn func(*Node)) {
	if n == nil {
		return
	}
	for _, c := range n.Children {
		fn(c)
		c.Walk(fn)
	}
}
