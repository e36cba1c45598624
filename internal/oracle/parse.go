package oracle

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/dgallion1/pdfoutline/internal/outline"
)

type headingPayload struct {
	Title string `json:"title"`
	Level int    `json:"level"`
	Page  int    `json:"page"`
}

type outlinePayload struct {
	Headings []headingPayload `json:"headings"`
}

// parseOutline decodes a model reply into raw headings. Fenced code blocks
// are stripped, the payload is checked against the heading-list schema, and
// pages are converted from the 1-based marker numbering the model sees to
// the 0-based indices the pipeline uses. An object with no headings is a
// valid "nothing detected" result, not an error.
func parseOutline(raw string) ([]outline.Heading, error) {
	text := stripCodeBlock(raw)
	if text == "" {
		return nil, &SchemaError{Reason: "empty response"}
	}

	var payload outlinePayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		// Some models return the bare array despite being asked for an
		// object wrapper.
		var bare []headingPayload
		if err2 := json.Unmarshal([]byte(text), &bare); err2 != nil {
			return nil, &SchemaError{Reason: "undecodable headings json", Raw: truncate(text, 200), Err: err}
		}
		payload.Headings = bare
	}

	headings := make([]outline.Heading, 0, len(payload.Headings))
	for _, h := range payload.Headings {
		headings = append(headings, outline.Heading{
			Title: strings.TrimSpace(h.Title),
			Level: h.Level,
			Page:  h.Page - 1,
		})
	}
	return headings, nil
}

var codeBlockRe = regexp.MustCompile("(?s)^```(?:json)?\\s*(.*?)\\s*```$")

func stripCodeBlock(s string) string {
	s = strings.TrimSpace(s)
	if m := codeBlockRe.FindStringSubmatch(s); len(m) > 1 {
		return m[1]
	}
	return s
}
