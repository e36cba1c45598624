package outline

import (
	"strings"
	"testing"
)

func TestBound_UnderBudgetKeepsEverything(t *testing.T) {
	pages := []PageText{
		{Page: 0, Text: "first page"},
		{Page: 1, Text: "second page"},
	}
	doc := Bound(pages, 1000)
	if len(doc.Pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(doc.Pages))
	}
	if doc.Truncated {
		t.Error("expected document not to be truncated")
	}
	if doc.TextLen() != len("first page")+len("second page") {
		t.Errorf("unexpected total length %d", doc.TextLen())
	}
}

func TestBound_ExactFill(t *testing.T) {
	// 100,000 chars of input against a 50,000 budget must yield exactly
	// 50,000 with the last included page truncated.
	pages := []PageText{
		{Page: 0, Text: strings.Repeat("a", 30000)},
		{Page: 1, Text: strings.Repeat("b", 30000)},
		{Page: 2, Text: strings.Repeat("c", 40000)},
	}
	doc := Bound(pages, 50000)
	if doc.TextLen() != 50000 {
		t.Errorf("expected total length 50000, got %d", doc.TextLen())
	}
	if !doc.Truncated {
		t.Error("expected document to be truncated")
	}
	if len(doc.Pages) != 2 {
		t.Fatalf("expected 2 included pages, got %d", len(doc.Pages))
	}
	if got := len(doc.Pages[1].Text); got != 20000 {
		t.Errorf("expected second page truncated to 20000 chars, got %d", got)
	}
	if doc.LastPage() != 1 {
		t.Errorf("expected last page 1, got %d", doc.LastPage())
	}
}

func TestBound_PrefixAndOrderPreserved(t *testing.T) {
	pages := []PageText{
		{Page: 0, Text: "aaaa"},
		{Page: 1, Text: "bbbb"},
		{Page: 2, Text: "cccc"},
		{Page: 3, Text: "dddd"},
	}
	doc := Bound(pages, 10)
	for i, p := range doc.Pages {
		if p.Page != pages[i].Page {
			t.Errorf("page %d: expected index %d, got %d", i, pages[i].Page, p.Page)
		}
	}
	if doc.TextLen() > 10 {
		t.Errorf("budget exceeded: %d", doc.TextLen())
	}
}

func TestBound_BudgetExhaustedAtPageBoundary(t *testing.T) {
	pages := []PageText{
		{Page: 0, Text: strings.Repeat("a", 10)},
		{Page: 1, Text: strings.Repeat("b", 10)},
	}
	doc := Bound(pages, 10)
	if len(doc.Pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(doc.Pages))
	}
	if !doc.Truncated {
		t.Error("expected truncation flag when pages were dropped")
	}
}

func TestBound_EmptyInput(t *testing.T) {
	doc := Bound(nil, 50000)
	if len(doc.Pages) != 0 {
		t.Errorf("expected no pages, got %d", len(doc.Pages))
	}
	if !doc.Empty() {
		t.Error("expected empty document")
	}
	if doc.LastPage() != -1 {
		t.Errorf("expected last page -1, got %d", doc.LastPage())
	}
}

func TestBound_ZeroBudgetUsesDefault(t *testing.T) {
	pages := []PageText{{Page: 0, Text: strings.Repeat("x", DefaultMaxChars+100)}}
	doc := Bound(pages, 0)
	if doc.TextLen() != DefaultMaxChars {
		t.Errorf("expected default budget %d, got %d", DefaultMaxChars, doc.TextLen())
	}
}

func TestBound_DoesNotSplitRunes(t *testing.T) {
	// "héllo" has a two-byte é at offset 1; a budget of 2 must not cut it
	// in half.
	doc := Bound([]PageText{{Page: 0, Text: "héllo"}}, 2)
	if got := doc.Pages[0].Text; got != "h" {
		t.Errorf("expected %q, got %q", "h", got)
	}
}

func TestMarked_ContainsPageMarkers(t *testing.T) {
	doc := Bound([]PageText{
		{Page: 0, Text: "intro"},
		{Page: 1, Text: "body"},
	}, 1000)
	marked := doc.Marked()
	for _, want := range []string{"--- PAGE 1 ---", "intro", "--- PAGE 2 ---", "body"} {
		if !strings.Contains(marked, want) {
			t.Errorf("marked text missing %q", want)
		}
	}
	if strings.Contains(marked, "[Document truncated...]") {
		t.Error("untruncated document should not carry the truncation notice")
	}
}

func TestMarked_TruncationNotice(t *testing.T) {
	doc := Bound([]PageText{
		{Page: 0, Text: strings.Repeat("a", 20)},
		{Page: 1, Text: "tail"},
	}, 10)
	if !strings.Contains(doc.Marked(), "[Document truncated...]") {
		t.Error("expected truncation notice in marked text")
	}
}
