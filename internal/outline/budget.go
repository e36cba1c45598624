package outline

import "unicode/utf8"

// DefaultMaxChars is the per-document character budget forwarded to the
// oracle, imposed by model context limits.
const DefaultMaxChars = 50000

// Bound concatenates pages in order into a BoundedDocument whose total text
// length does not exceed maxChars. The page that would overflow the budget
// is truncated to fill it exactly and no further pages are included.
// Headings past the truncation point are simply missed; that is an accepted
// limitation, not an error, and keeps the pipeline always-succeeding.
func Bound(pages []PageText, maxChars int) BoundedDocument {
	if maxChars <= 0 {
		maxChars = DefaultMaxChars
	}

	var doc BoundedDocument
	used := 0
	for _, p := range pages {
		if used >= maxChars {
			doc.Truncated = true
			break
		}
		if rem := maxChars - used; len(p.Text) > rem {
			doc.Pages = append(doc.Pages, PageText{Page: p.Page, Text: cut(p.Text, rem)})
			doc.Truncated = true
			break
		}
		doc.Pages = append(doc.Pages, p)
		used += len(p.Text)
	}
	return doc
}

// cut truncates s to at most n bytes without splitting a UTF-8 sequence.
func cut(s string, n int) string {
	if n >= len(s) {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
