// Package pipeline runs the outline construction pipeline: page text →
// bounded document → oracle candidates → repaired headings → bookmark tree
// → outlined PDF. Each run is sequential and owns its state exclusively;
// concurrent runs need no coordination.
package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgallion1/pdfoutline/internal/config"
	"github.com/dgallion1/pdfoutline/internal/oracle"
	"github.com/dgallion1/pdfoutline/internal/outline"
	"github.com/dgallion1/pdfoutline/internal/pagetext"
	"github.com/dgallion1/pdfoutline/internal/writer"
)

// Phase identifies a pipeline stage, reported as a run progresses.
type Phase string

const (
	PhaseExtract Phase = "extracting text"
	PhaseDetect  Phase = "detecting headings"
	PhaseBuild   Phase = "building tree"
	PhaseWrite   Phase = "writing bookmarks"
)

// Options carries the tunables each pipeline stage needs. They are passed
// explicitly rather than read from ambient state so stages stay pure and
// independently testable.
type Options struct {
	MaxChars     int
	MaxDepth     int
	PromoteFirst bool
}

// OptionsFromConfig extracts the pipeline tunables from a service config.
func OptionsFromConfig(cfg config.Config) Options {
	return Options{
		MaxChars:     cfg.MaxChars,
		MaxDepth:     cfg.MaxDepth,
		PromoteFirst: cfg.PromoteFirst,
	}
}

// Result is the outcome of a single pipeline run.
type Result struct {
	// Root is the virtual root of the bookmark tree; empty Children means
	// no headings were detected, a valid outcome.
	Root *outline.Node

	// Outlined is the bookmarked copy of the input PDF.
	Outlined []byte

	Pages     int
	TextChars int
	Truncated bool

	// RawHeadings counts oracle candidates before repair, Headings after.
	RawHeadings int
	Headings    int
}

// Outliner runs the pipeline for single documents. Runs are stateless and
// independent; one Outliner may serve many workers.
type Outliner struct {
	source pagetext.Source
	oracle oracle.Client
	writer writer.Writer
	log    *slog.Logger
	opts   Options
}

func NewOutliner(src pagetext.Source, oc oracle.Client, wr writer.Writer, log *slog.Logger, opts Options) *Outliner {
	return &Outliner{
		source: src,
		oracle: oc,
		writer: wr,
		log:    log,
		opts:   opts,
	}
}

// Process runs the full pipeline for one PDF. onPhase, if non-nil, is
// invoked as each stage begins. Only the oracle call can fail after text
// extraction succeeds; on any error no partial outline is produced.
func (o *Outliner) Process(ctx context.Context, pdf []byte, onPhase func(Phase)) (*Result, error) {
	phase := func(p Phase) {
		if onPhase != nil {
			onPhase(p)
		}
	}

	phase(PhaseExtract)
	pages, err := o.source.Pages(bytes.NewReader(pdf))
	if err != nil {
		return nil, fmt.Errorf("extract pages: %w", err)
	}

	doc := outline.Bound(pages, o.opts.MaxChars)
	res := &Result{
		Pages:     len(pages),
		TextChars: doc.TextLen(),
		Truncated: doc.Truncated,
	}

	var raw []outline.Heading
	if !doc.Empty() {
		phase(PhaseDetect)
		raw, err = o.detect(ctx, doc)
		if err != nil {
			return nil, fmt.Errorf("detect headings: %w", err)
		}
	}

	phase(PhaseBuild)
	repaired := outline.Repair(raw, doc.LastPage(), outline.RepairConfig{
		MaxDepth:     o.opts.MaxDepth,
		PromoteFirst: o.opts.PromoteFirst,
	})
	res.RawHeadings = len(raw)
	res.Headings = len(repaired)
	res.Root = outline.BuildTree(repaired)

	phase(PhaseWrite)
	var buf bytes.Buffer
	if err := o.writer.Write(bytes.NewReader(pdf), &buf, res.Root); err != nil {
		return nil, fmt.Errorf("write bookmarks: %w", err)
	}
	res.Outlined = buf.Bytes()

	return res, nil
}

// detect calls the oracle, retrying transient failures.
func (o *Outliner) detect(ctx context.Context, doc outline.BoundedDocument) ([]outline.Heading, error) {
	var headings []outline.Heading
	var lastErr error
	for attempt := range MaxRetries {
		headings, lastErr = o.oracle.DetectHeadings(ctx, doc, o.opts.MaxDepth)
		if lastErr == nil || !IsRetryable(lastErr) || attempt == MaxRetries-1 {
			break
		}
		o.log.Warn("retryable oracle error", "attempt", attempt, "error", lastErr)
		select {
		case <-time.After(Backoff(attempt)):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if lastErr != nil {
		return nil, lastErr
	}
	return headings, nil
}
