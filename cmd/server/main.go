package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexflint/go-arg"
	"github.com/dgallion1/pdfoutline/internal/api"
	"github.com/dgallion1/pdfoutline/internal/config"
	"github.com/dgallion1/pdfoutline/internal/oracle"
	"github.com/dgallion1/pdfoutline/internal/pagetext"
	"github.com/dgallion1/pdfoutline/internal/pipeline"
	"github.com/dgallion1/pdfoutline/internal/writer"
	"github.com/joho/godotenv"
)

type args struct {
	Config string `arg:"-c,--config" help:"optional YAML config file overlaying the environment"`
}

func (args) Description() string {
	return "pdfoutline server: accepts PDF uploads and writes detected outlines back as bookmarks"
}

func main() {
	// A missing .env is fine; the environment may be set directly.
	godotenv.Load()

	var a args
	arg.MustParse(&a)

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if a.Config != "" {
		if err := cfg.ApplyFile(a.Config); err != nil {
			log.Error("invalid config file", "path", a.Config, "error", err)
			os.Exit(1)
		}
	}
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize the heading oracle.
	oc, stats, closeOracle := newOracle(cfg)
	defer closeOracle()

	// Initialize pipeline.
	src := &pagetext.PDFSource{FallbackPdftotext: cfg.PDFFallbackPdftotext}
	outliner := pipeline.NewOutliner(src, oc, &writer.PDF{}, log, pipeline.OptionsFromConfig(cfg))
	orch := pipeline.NewOrchestrator(cfg, outliner, log)
	orch.Start(ctx)

	// Initialize HTTP server.
	srv := api.NewServer(orch, oc, stats, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		orch.Stop()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting pdfoutline", "port", cfg.Port, "provider", cfg.Provider, "model", oc.Model())
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}

// newOracle builds the configured oracle client. Validate has already
// ensured the provider is known and its key is set.
func newOracle(cfg config.Config) (oracle.Client, *oracle.Stats, func()) {
	switch cfg.Provider {
	case config.ProviderAnthropic:
		c := oracle.NewAnthropicClient(cfg.AnthropicAPIKey, cfg.Model)
		return c, c.Stats, c.Close
	default:
		c := oracle.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.Model)
		return c, c.Stats, func() {}
	}
}
