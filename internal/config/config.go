package config

import (
	"errors"
	"fmt"
	"time"
)

// APIKeyEnv names the environment variable holding the Gemini credential.
const APIKeyEnv = "GOOGLE_API_KEY"

// ErrMissingCredential is returned when no Gemini API key is available at startup.
var ErrMissingCredential = errors.New("missing " + APIKeyEnv + " in environment or .env")

// Transcript backends.
const (
	BackendInnertube = "innertube"
	BackendYtDlp     = "ytdlp"
)

type Config struct {
	Gemini      GeminiConfig      `yaml:"gemini"`
	Transcript  TranscriptConfig  `yaml:"transcript"`
	Server      ServerConfig      `yaml:"server"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type GeminiConfig struct {
	// APIKey never comes from the YAML file.
	APIKey          string  `yaml:"-"`
	Model           string  `yaml:"model"`
	Temperature     float32 `yaml:"temperature"`
	MaxOutputTokens int32   `yaml:"max_output_tokens"`
}

type TranscriptConfig struct {
	Backend        string   `yaml:"backend"`
	Languages      []string `yaml:"languages"`
	StrictLanguage bool     `yaml:"strict_language"`
	YtDlpPath      string   `yaml:"ytdlp_path"`
	// RequestsPerSecond caps outgoing requests to YouTube.
	RequestsPerSecond float64 `yaml:"requests_per_second"`
}

type ServerConfig struct {
	Addr           string        `yaml:"addr"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	RateLimit      int           `yaml:"rate_limit"`
	AllowRawHTML   bool          `yaml:"allow_raw_html"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// Validate checks required fields and fills in defaults
func (c *Config) Validate() error {
	if c.Gemini.APIKey == "" {
		return ErrMissingCredential
	}
	if c.Gemini.Temperature < 0 || c.Gemini.Temperature > 1 {
		return fmt.Errorf("gemini.temperature must be within [0, 1], got %v", c.Gemini.Temperature)
	}
	if c.Gemini.MaxOutputTokens < 0 {
		return fmt.Errorf("gemini.max_output_tokens must be positive, got %d", c.Gemini.MaxOutputTokens)
	}
	switch c.Transcript.Backend {
	case "":
		c.Transcript.Backend = BackendInnertube
	case BackendInnertube, BackendYtDlp:
	default:
		return fmt.Errorf("transcript.backend %q is not one of %s, %s", c.Transcript.Backend, BackendInnertube, BackendYtDlp)
	}
	if c.Transcript.RequestsPerSecond < 0 {
		return fmt.Errorf("transcript.requests_per_second must not be negative")
	}
	if c.Server.RateLimit < 0 {
		return fmt.Errorf("server.rate_limit must not be negative")
	}

	if c.Gemini.Model == "" {
		c.Gemini.Model = "models/gemini-2.5-flash"
	}
	if c.Gemini.MaxOutputTokens == 0 {
		c.Gemini.MaxOutputTokens = 4096
	}
	if len(c.Transcript.Languages) == 0 {
		c.Transcript.Languages = []string{"en"}
	}
	if c.Transcript.YtDlpPath == "" {
		c.Transcript.YtDlpPath = "yt-dlp"
	}
	if c.Transcript.RequestsPerSecond == 0 {
		c.Transcript.RequestsPerSecond = 2
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8501"
	}
	if c.Server.RequestTimeout == 0 {
		c.Server.RequestTimeout = 3 * time.Minute
	}
	if c.Server.RateLimit == 0 {
		c.Server.RateLimit = 10
	}
	if c.Paths.Input == "" {
		c.Paths.Input = "data/inbox"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/summaries"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 1
	}

	return nil
}
