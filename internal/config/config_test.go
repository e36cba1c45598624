package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "ORACLE_PROVIDER", "MAX_CHARS", "MAX_DEPTH", "WORKER_COUNT", "JOB_TTL"} {
		t.Setenv(key, "")
	}
	cfg := Load()
	if cfg.Port != "8091" {
		t.Errorf("expected default port 8091, got %q", cfg.Port)
	}
	if cfg.Provider != ProviderOpenAI {
		t.Errorf("expected default provider openai, got %q", cfg.Provider)
	}
	if cfg.MaxChars != 50000 {
		t.Errorf("expected default budget 50000, got %d", cfg.MaxChars)
	}
	if cfg.MaxDepth != 6 {
		t.Errorf("expected default max depth 6, got %d", cfg.MaxDepth)
	}
	if cfg.JobTTL != time.Hour {
		t.Errorf("expected default job TTL 1h, got %v", cfg.JobTTL)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("MAX_CHARS", "1234")
	t.Setenv("ORACLE_PROVIDER", "anthropic")
	t.Setenv("PROMOTE_FIRST", "true")
	cfg := Load()
	if cfg.MaxChars != 1234 {
		t.Errorf("expected budget 1234, got %d", cfg.MaxChars)
	}
	if cfg.Provider != ProviderAnthropic {
		t.Errorf("expected provider anthropic, got %q", cfg.Provider)
	}
	if !cfg.PromoteFirst {
		t.Error("expected PromoteFirst to be set")
	}
}

func TestApplyFile_Overlay(t *testing.T) {
	t.Setenv("MAX_CHARS", "")
	path := filepath.Join(t.TempDir(), "pdfoutline.yaml")
	content := "provider: anthropic\nmax_depth: 4\njob_ttl: 30m\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := Load()
	if err := cfg.ApplyFile(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Provider != ProviderAnthropic {
		t.Errorf("expected provider anthropic, got %q", cfg.Provider)
	}
	if cfg.MaxDepth != 4 {
		t.Errorf("expected max depth 4, got %d", cfg.MaxDepth)
	}
	if cfg.JobTTL != 30*time.Minute {
		t.Errorf("expected job TTL 30m, got %v", cfg.JobTTL)
	}
	// Fields absent from the file keep their env defaults.
	if cfg.MaxChars != 50000 {
		t.Errorf("expected budget untouched at 50000, got %d", cfg.MaxChars)
	}
}

func TestApplyFile_BadTTL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pdfoutline.yaml")
	if err := os.WriteFile(path, []byte("job_ttl: soon\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := Load()
	if err := cfg.ApplyFile(path); err == nil {
		t.Error("expected error for unparseable job_ttl")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid openai", func(c *Config) {
			c.APIKey = "k"
			c.Provider = ProviderOpenAI
			c.OpenAIAPIKey = "sk"
		}, false},
		{"valid anthropic", func(c *Config) {
			c.APIKey = "k"
			c.Provider = ProviderAnthropic
			c.AnthropicAPIKey = "sk"
		}, false},
		{"missing api key", func(c *Config) {
			c.Provider = ProviderOpenAI
			c.OpenAIAPIKey = "sk"
		}, true},
		{"missing provider key", func(c *Config) {
			c.APIKey = "k"
			c.Provider = ProviderOpenAI
		}, true},
		{"unknown provider", func(c *Config) {
			c.APIKey = "k"
			c.Provider = "litellm"
		}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var cfg Config
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
