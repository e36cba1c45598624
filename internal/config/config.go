package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/goccy/go-yaml"
)

// Provider names accepted for the heading oracle.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

type Config struct {
	Port string

	// Auth for the HTTP API.
	APIKey string

	// Oracle selection.
	Provider        string
	Model           string
	OpenAIAPIKey    string
	AnthropicAPIKey string

	// Outline construction. MaxChars bounds the text forwarded to the
	// oracle; MaxDepth bounds heading levels; PromoteFirst renumbers a
	// leading deep heading to level 1.
	MaxChars     int
	MaxDepth     int
	PromoteFirst bool

	// Worker pool.
	WorkerCount  int
	MaxQueueSize int

	// Upload limits.
	MaxUploadBytes int64

	// Job state.
	JobTTL time.Duration

	// PDF
	PDFFallbackPdftotext bool
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8091"),

		APIKey: os.Getenv("PDFOUTLINE_API_KEY"),

		Provider:        envOr("ORACLE_PROVIDER", ProviderOpenAI),
		Model:           os.Getenv("ORACLE_MODEL"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),

		MaxChars:     envInt("MAX_CHARS", 50000),
		MaxDepth:     envInt("MAX_DEPTH", 6),
		PromoteFirst: envBool("PROMOTE_FIRST", false),

		WorkerCount:  envInt("WORKER_COUNT", 4),
		MaxQueueSize: envInt("MAX_QUEUE_SIZE", 100),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 52428800), // 50MB

		JobTTL: envDuration("JOB_TTL", 1*time.Hour),

		PDFFallbackPdftotext: envBool("PDF_FALLBACK_PDFTOTEXT", true),
	}

	if cfg.MaxChars <= 0 {
		cfg.MaxChars = 50000
	}
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = 6
	}
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 100
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}
	if cfg.JobTTL <= 0 {
		cfg.JobTTL = 1 * time.Hour
	}

	return cfg
}

// fileConfig mirrors the YAML config file; only fields present in the file
// override the environment.
type fileConfig struct {
	Port           *string `yaml:"port"`
	APIKey         *string `yaml:"api_key"`
	Provider       *string `yaml:"provider"`
	Model          *string `yaml:"model"`
	MaxChars       *int    `yaml:"max_chars"`
	MaxDepth       *int    `yaml:"max_depth"`
	PromoteFirst   *bool   `yaml:"promote_first"`
	WorkerCount    *int    `yaml:"workers"`
	MaxQueueSize   *int    `yaml:"max_queue_size"`
	MaxUploadBytes *int64  `yaml:"max_upload_bytes"`
	JobTTL         *string `yaml:"job_ttl"`
}

// ApplyFile overlays settings from a YAML file onto c.
func (c *Config) ApplyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}

	if fc.Port != nil {
		c.Port = *fc.Port
	}
	if fc.APIKey != nil {
		c.APIKey = *fc.APIKey
	}
	if fc.Provider != nil {
		c.Provider = *fc.Provider
	}
	if fc.Model != nil {
		c.Model = *fc.Model
	}
	if fc.MaxChars != nil && *fc.MaxChars > 0 {
		c.MaxChars = *fc.MaxChars
	}
	if fc.MaxDepth != nil && *fc.MaxDepth > 0 {
		c.MaxDepth = *fc.MaxDepth
	}
	if fc.PromoteFirst != nil {
		c.PromoteFirst = *fc.PromoteFirst
	}
	if fc.WorkerCount != nil && *fc.WorkerCount > 0 {
		c.WorkerCount = *fc.WorkerCount
	}
	if fc.MaxQueueSize != nil && *fc.MaxQueueSize > 0 {
		c.MaxQueueSize = *fc.MaxQueueSize
	}
	if fc.MaxUploadBytes != nil && *fc.MaxUploadBytes > 0 {
		c.MaxUploadBytes = *fc.MaxUploadBytes
	}
	if fc.JobTTL != nil {
		d, err := time.ParseDuration(*fc.JobTTL)
		if err != nil {
			return fmt.Errorf("parse job_ttl: %w", err)
		}
		c.JobTTL = d
	}
	return nil
}

func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("PDFOUTLINE_API_KEY is required")
	}
	switch c.Provider {
	case ProviderOpenAI:
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required for the openai provider")
		}
	case ProviderAnthropic:
		if c.AnthropicAPIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	default:
		return fmt.Errorf("unknown oracle provider: %q", c.Provider)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
