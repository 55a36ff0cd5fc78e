package model

import "time"

// Config holds the full Factyne configuration.
type Config struct {
	Pipeline    PipelineConfig    `yaml:"pipeline"`
	HTTP        HTTPConfig        `yaml:"http"`
	Cache       CacheConfig       `yaml:"cache"`
	Store       StoreConfig       `yaml:"store"`
	Verify      VerifyConfig      `yaml:"verify"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Output      OutputConfig      `yaml:"output"`
	LLM         LLMConfig         `yaml:"llm"`
}

// PipelineConfig bounds a single fact-check run.
type PipelineConfig struct {
	// MaxTextLen is the input size cap in characters. Longer inputs are
	// rejected before processing begins.
	MaxTextLen int `yaml:"max_text_len"`
	// Budget is the total per-request time budget. Exceeding it fails the
	// request with a timeout error instead of hanging.
	Budget time.Duration `yaml:"budget"`
	// MaxClaims bounds accepted claims per request, keeping the pairwise
	// contradiction pass tractable.
	MaxClaims int `yaml:"max_claims"`
	// MinClaimLen is the shortest candidate (in characters) the filter will
	// accept.
	MinClaimLen int `yaml:"min_claim_len"`
}

// HTTPConfig configures outbound fetches (source URLs, verification lookups).
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout"`
	UserAgent    string        `yaml:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes"`
}

// CacheConfig configures the layered lookup cache.
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Dir       string        `yaml:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl"`
}

// StoreConfig configures the in-memory request store.
type StoreConfig struct {
	// TTL is how long terminal requests stay retrievable via get_result.
	TTL time.Duration `yaml:"ttl"`
}

// VerifyConfig configures optional external claim verification.
type VerifyConfig struct {
	Enabled bool `yaml:"enabled"`
	// Endpoint is the Wikipedia search API base URL.
	Endpoint string  `yaml:"endpoint"`
	Workers  int     `yaml:"workers"`
	RateRPS  float64 `yaml:"rate_rps"`
	Burst    int     `yaml:"burst"`
}

// ConcurrencyConfig configures batch processing.
type ConcurrencyConfig struct {
	Workers int `yaml:"workers"`
}

// OutputConfig configures report rendering.
type OutputConfig struct {
	Verbose       bool `yaml:"verbose"`
	IncludeFooter bool `yaml:"include_footer"`
}

// LLMConfig configures the optional report summarizer. The summary never
// affects scoring.
type LLMConfig struct {
	Provider  string `yaml:"provider"` // "", "openai", "ollama"
	Model     string `yaml:"model"`
	APIKey    string `yaml:"-"`
	BaseURL   string `yaml:"base_url"`
	Timeout   int    `yaml:"timeout"` // seconds
	MaxTokens int    `yaml:"max_tokens"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Pipeline: PipelineConfig{
			MaxTextLen:  50000,
			Budget:      30 * time.Second,
			MaxClaims:   200,
			MinClaimLen: 10,
		},
		HTTP: HTTPConfig{
			Timeout:      20 * time.Second,
			UserAgent:    "Factyne/0.2 (+https://github.com/factyne/factyne)",
			MaxBodyBytes: 2_000_000,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       "",
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Store: StoreConfig{
			TTL: time.Hour,
		},
		Verify: VerifyConfig{
			Enabled:  false,
			Endpoint: "https://en.wikipedia.org/w/api.php",
			Workers:  8,
			RateRPS:  2,
			Burst:    4,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		Output: OutputConfig{
			Verbose:       false,
			IncludeFooter: true,
		},
		LLM: LLMConfig{
			Provider:  "",
			Timeout:   30,
			MaxTokens: 1000,
		},
	}
}
