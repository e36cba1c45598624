// Package oracle talks to the external heading-detection model. The model
// is a black box: every field it returns is untrusted input that the core
// pipeline validates defensively.
package oracle

import (
	"context"
	"fmt"

	"github.com/dgallion1/pdfoutline/internal/outline"
)

// Client detects headings in a bounded document. A single synchronous call
// per document: no streaming, no partial results. On failure no headings
// are returned and the error carries the failure class.
type Client interface {
	DetectHeadings(ctx context.Context, doc outline.BoundedDocument, maxDepth int) ([]outline.Heading, error)

	// Model returns the model identifier used for detection.
	Model() string
}

// TransportError wraps a network-level failure: connection errors,
// timeouts, cancellation.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("oracle transport: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// SchemaError indicates the model replied but the payload could not be
// decoded against the heading-list schema.
type SchemaError struct {
	Reason string
	Raw    string
	Err    error
}

func (e *SchemaError) Error() string {
	if e.Raw != "" {
		return fmt.Sprintf("oracle schema: %s (raw: %s)", e.Reason, e.Raw)
	}
	return fmt.Sprintf("oracle schema: %s", e.Reason)
}

func (e *SchemaError) Unwrap() error { return e.Err }

// RetryableError indicates a transient failure (rate limit or server
// error) that is worth retrying.
type RetryableError struct {
	StatusCode int
	Message    string
}

func (e *RetryableError) Error() string {
	return fmt.Sprintf("retryable error (status %d): %s", e.StatusCode, truncate(e.Message, 200))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
