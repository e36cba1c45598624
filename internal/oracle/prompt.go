package oracle

import (
	"fmt"
	"strings"

	"github.com/dgallion1/pdfoutline/internal/outline"
)

const systemPrompt = `You are a document analysis assistant. Your task is to identify all headings in a document and create an outline.

Analyze the provided document text and identify:
1. Main headings and subheadings
2. Their hierarchical level (1 = main heading, 2 = subheading, etc.)
3. The page number where each heading appears (indicated by PAGE markers)

Guidelines:
- Level 1: Main chapter/section titles
- Level 2: Major subsections
- Level 3+: Nested subsections
- Ignore headers/footers, page numbers, and running titles
- Focus on actual content structure
- Be conservative - only include clear headings

Return the outline as a structured list.`

// buildPrompt creates the user prompt for a bounded document. maxDepth
// bounds the level range the model is asked for.
func buildPrompt(doc outline.BoundedDocument, maxDepth int) string {
	if maxDepth <= 0 {
		maxDepth = outline.DefaultMaxDepth
	}
	var sb strings.Builder
	sb.WriteString("Analyze this document and extract all headings with their levels and page numbers:\n\n")
	sb.WriteString(doc.Marked())
	sb.WriteString("\n\nReturn a JSON object with a \"headings\" array where each heading has:\n")
	sb.WriteString("- title: the heading text\n")
	fmt.Fprintf(&sb, "- level: hierarchical level (1-%d)\n", maxDepth)
	sb.WriteString("- page: page number where it appears\n")
	return sb.String()
}
