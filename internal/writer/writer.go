// Package writer projects a finished outline tree into a document's native
// bookmark structure.
package writer

import (
	"fmt"
	"io"

	"github.com/dgallion1/pdfoutline/internal/outline"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	pdfcpu "github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
)

// Writer writes the children of an outline root into the document read
// from r, producing the bookmarked copy on w. An empty tree is not an
// error: the document passes through unchanged.
type Writer interface {
	Write(r io.ReadSeeker, w io.Writer, root *outline.Node) error
}

// PDF writes native PDF outline entries with pdfcpu, replacing any
// existing outline.
type PDF struct{}

func (PDF) Write(r io.ReadSeeker, w io.Writer, root *outline.Node) error {
	if root == nil || len(root.Children) == 0 {
		if _, err := r.Seek(0, io.SeekStart); err != nil {
			return fmt.Errorf("seek input: %w", err)
		}
		if _, err := io.Copy(w, r); err != nil {
			return fmt.Errorf("copy input: %w", err)
		}
		return nil
	}

	if err := api.AddBookmarks(r, w, toBookmarks(root.Children), true, nil); err != nil {
		return fmt.Errorf("add bookmarks: %w", err)
	}
	return nil
}

// toBookmarks converts outline nodes to pdfcpu bookmarks, mapping the
// pipeline's 0-based pages onto pdfcpu's 1-based numbering.
func toBookmarks(nodes []*outline.Node) []pdfcpu.Bookmark {
	bms := make([]pdfcpu.Bookmark, 0, len(nodes))
	for _, n := range nodes {
		bm := pdfcpu.Bookmark{
			Title:    n.Title,
			PageFrom: n.Page + 1,
		}
		if len(n.Children) > 0 {
			bm.Kids = toBookmarks(n.Children)
		}
		bms = append(bms, bm)
	}
	return bms
}
