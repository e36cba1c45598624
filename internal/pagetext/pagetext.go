// Package pagetext extracts ordered per-page text from source documents.
package pagetext

import (
	"io"

	"github.com/dgallion1/pdfoutline/internal/outline"
)

// Source yields the per-page text of a document, ordered by page index
// starting at 0. A page that yields no text still occupies its slot so
// later pages keep their indices.
type Source interface {
	Pages(r io.Reader) ([]outline.PageText, error)
}
