package pagetext

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/dgallion1/pdfoutline/internal/outline"
	pdflib "github.com/ledongthuc/pdf"
)

// PDFSource extracts page text from PDF files. It tries the Go library
// first, then falls back to pdftotext if available.
type PDFSource struct {
	FallbackPdftotext bool
}

func (s *PDFSource) Pages(r io.Reader) ([]outline.PageText, error) {
	// ledongthuc/pdf requires a ReadSeeker+size, so we write to a temp file.
	tmp, err := os.CreateTemp("", "pdfoutline-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	pages, err := extractPages(tmpPath)
	if err != nil && s.FallbackPdftotext {
		pages, err = extractPdftotext(tmpPath)
	}
	if err != nil {
		return nil, fmt.Errorf("extract pdf text: %w", err)
	}
	return pages, nil
}

func extractPages(path string) ([]outline.PageText, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	numPages := reader.NumPage()
	pages := make([]outline.PageText, 0, numPages)
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		text := ""
		if !page.V.IsNull() {
			if t, err := page.GetPlainText(nil); err == nil {
				text = t
			}
		}
		pages = append(pages, outline.PageText{Page: i - 1, Text: strings.TrimSpace(text)})
	}
	return pages, nil
}

func extractPdftotext(path string) ([]outline.PageText, error) {
	cmd := exec.Command("pdftotext", "-layout", path, "-")
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("pdftotext: %w", err)
	}
	return splitFormFeeds(string(out)), nil
}

// splitFormFeeds maps pdftotext output to pages; pdftotext separates pages
// with form feeds.
func splitFormFeeds(text string) []outline.PageText {
	parts := strings.Split(text, "\f")
	pages := make([]outline.PageText, 0, len(parts))
	for i, part := range parts {
		pages = append(pages, outline.PageText{Page: i, Text: strings.TrimSpace(part)})
	}
	// A trailing form feed yields one empty phantom page; drop it.
	if n := len(pages); n > 0 && pages[n-1].Text == "" {
		pages = pages[:n-1]
	}
	return pages
}
