package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alexflint/go-arg"
	"github.com/dgallion1/pdfoutline/internal/oracle"
	"github.com/dgallion1/pdfoutline/internal/outline"
	"github.com/dgallion1/pdfoutline/internal/pagetext"
	"github.com/dgallion1/pdfoutline/internal/pipeline"
	"github.com/dgallion1/pdfoutline/internal/writer"
	"github.com/joho/godotenv"
)

type args struct {
	Input        string        `arg:"positional,required" help:"PDF to outline"`
	Output       string        `arg:"-o,--output" help:"output path (default: INPUT_outlined.pdf)"`
	Provider     string        `arg:"--provider" default:"openai" help:"heading oracle provider: openai or anthropic"`
	Model        string        `arg:"-m,--model" help:"oracle model (default depends on provider)"`
	MaxChars     int           `arg:"--max-chars" default:"50000" help:"max characters of page text sent to the oracle"`
	MaxDepth     int           `arg:"--max-depth" default:"6" help:"max heading depth"`
	PromoteFirst bool          `arg:"--promote-first" help:"renumber a leading deep heading to level 1"`
	ShowOutline  bool          `arg:"--show-outline" help:"print the detected outline to stdout"`
	Timeout      time.Duration `arg:"--timeout" default:"10m" help:"overall processing timeout"`
	Verbose      bool          `arg:"-v,--verbose" help:"log pipeline progress"`
}

func (args) Description() string {
	return "pdfoutline: detect headings in a PDF and write them back as bookmarks"
}

func main() {
	godotenv.Load()

	var a args
	arg.MustParse(&a)

	if a.Output == "" {
		ext := filepath.Ext(a.Input)
		a.Output = strings.TrimSuffix(a.Input, ext) + "_outlined" + ext
	}

	logLevel := slog.LevelWarn
	if a.Verbose {
		logLevel = slog.LevelInfo
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	if err := run(a, log); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(a args, log *slog.Logger) error {
	oc, err := newOracle(a.Provider, a.Model)
	if err != nil {
		return err
	}

	pdf, err := os.ReadFile(a.Input)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	outliner := pipeline.NewOutliner(
		&pagetext.PDFSource{FallbackPdftotext: true},
		oc,
		&writer.PDF{},
		log,
		pipeline.Options{
			MaxChars:     a.MaxChars,
			MaxDepth:     a.MaxDepth,
			PromoteFirst: a.PromoteFirst,
		},
	)

	ctx, cancel := context.WithTimeout(context.Background(), a.Timeout)
	defer cancel()

	res, err := outliner.Process(ctx, pdf, func(p pipeline.Phase) {
		log.Info(string(p))
	})
	if err != nil {
		return err
	}

	if err := os.WriteFile(a.Output, res.Outlined, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	if res.Truncated {
		fmt.Fprintln(os.Stderr, "note: document text was truncated before heading detection")
	}
	fmt.Printf("%s: %d pages, %d headings -> %s\n", a.Input, res.Pages, res.Headings, a.Output)

	if a.ShowOutline {
		outline.WriteText(os.Stdout, res.Root)
	}
	return nil
}

func newOracle(provider, model string) (oracle.Client, error) {
	switch provider {
	case "openai":
		key := os.Getenv("OPENAI_API_KEY")
		if key == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is not set")
		}
		return oracle.NewOpenAIClient(key, model), nil
	case "anthropic":
		key := os.Getenv("ANTHROPIC_API_KEY")
		if key == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY is not set")
		}
		return oracle.NewAnthropicClient(key, model), nil
	default:
		return nil, fmt.Errorf("unknown provider: %q", provider)
	}
}
