package model

import (
	"os"
	"path/filepath"
	"time"
)

// Config is the complete runtime configuration for attestor.
// Defaults come from DefaultConfig; the CLI layers config file,
// environment and flags on top.
type Config struct {
	Canonical    CanonicalConfig    `yaml:"canonical"`
	Scoring      ScoringConfig      `yaml:"scoring"`
	HTTP         HTTPConfig         `yaml:"http"`
	Cache        CacheConfig        `yaml:"cache"`
	Concurrency  ConcurrencyConfig  `yaml:"concurrency"`
	RateLimiting RateLimitingConfig `yaml:"rate_limiting"`
	Output       OutputConfig       `yaml:"output"`
	LLM          LLMConfig          `yaml:"llm"`
}

// CanonicalConfig fixes the shape of the canonical questionnaire model.
// The counts are constants of the assessment scheme: changing them is a
// versioned migration of the scheme, not a per-run tuning knob.
type CanonicalConfig struct {
	QuestionCount    int `yaml:"question_count"`
	RequirementCount int `yaml:"requirement_count"`
	MaxStemLength    int `yaml:"max_stem_length"` // Trailing header text kept as the item's stem

	// AttachEvidenceMarkers end a requirement narrative: text after a
	// marker is a form instruction, not provider content.
	AttachEvidenceMarkers []string `yaml:"attach_evidence_markers"`

	// BoilerplatePhrases are repeated question-prompt fragments.
	// Answer bodies keep only the text after the LAST occurrence.
	BoilerplatePhrases []string `yaml:"boilerplate_phrases"`
}

// ScoringConfig tunes the lexical index, aggregator and classifier
type ScoringConfig struct {
	TopN                  int     `yaml:"top_n"`                    // Max indexed-search hits per requirement
	MinIndexSentenceChars int     `yaml:"min_index_sentence_chars"` // Reference-corpus noise filter (never applied to the submission scan)
	DirectScanConfidence  float64 `yaml:"direct_scan_confidence"`   // Fixed trust for evidence found in the submission itself
	SearchConfidenceCap   float64 `yaml:"search_confidence_cap"`    // Upper bound for corpus-search confidence
	DedupKeyLength        int     `yaml:"dedup_key_length"`         // Excerpt prefix length for deduplication
	BreadthBonus          float64 `yaml:"breadth_bonus"`            // Added when BreadthBonusMin or more excerpts survive dedup
	BreadthBonusMin       int     `yaml:"breadth_bonus_min"`
	MetThreshold          float64 `yaml:"met_threshold"` // Aggregate confidence at or above this maps to "met"
	GapProbeLength        int     `yaml:"gap_probe_length"` // Example-evidence prefix length for the gap heuristic
}

// HTTPConfig controls fetching of URL-sourced documents
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout"`
	UserAgent    string        `yaml:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes"`
	InsecureTLS  bool          `yaml:"insecure_tls"`
	HTTPProxy    string        `yaml:"http_proxy"`
	HTTPSProxy   string        `yaml:"https_proxy"`
}

// CacheConfig controls the extracted-text cache. Only document text is
// cached; indexes and results are rebuilt on every run.
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Dir       string        `yaml:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl"`
}

// ConcurrencyConfig sets worker counts for batch assessment
type ConcurrencyConfig struct {
	Workers int `yaml:"workers"`
}

// RateLimitingConfig throttles fetching per host
type RateLimitingConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	BurstSize         int     `yaml:"burst_size"`
}

// OutputConfig controls rendering
type OutputConfig struct {
	Verbose       bool `yaml:"verbose"`
	IncludeFooter bool `yaml:"include_footer"`
}

// LLMConfig configures the optional narrative summarizer
type LLMConfig struct {
	Provider      string `yaml:"provider"` // "openai", "ollama", or "" for disabled
	Model         string `yaml:"model"`
	APIKey        string `yaml:"-"` // Never serialized; env only
	BaseURL       string `yaml:"base_url"`
	Timeout       int    `yaml:"timeout"` // seconds
	StrictSources bool   `yaml:"strict_sources"`
	MaxTokens     int    `yaml:"max_tokens"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Canonical: CanonicalConfig{
			QuestionCount:    15,
			RequirementCount: 21,
			MaxStemLength:    240,
			AttachEvidenceMarkers: []string{
				"please attach evidence",
				"attach supporting evidence",
				"attach evidence",
			},
			BoilerplatePhrases: []string{
				"please describe how you meet this requirement",
				"please provide details below",
				"your answer:",
			},
		},
		Scoring: ScoringConfig{
			TopN:                  5,
			MinIndexSentenceChars: 40,
			DirectScanConfidence:  0.9,
			SearchConfidenceCap:   0.95,
			DedupKeyLength:        200,
			BreadthBonus:          0.1,
			BreadthBonusMin:       3,
			MetThreshold:          0.75,
			GapProbeLength:        10,
		},
		HTTP: HTTPConfig{
			Timeout:      30 * time.Second,
			UserAgent:    "Attestor/0.1 (+https://github.com/nkurtev/attestor)",
			MaxBodyBytes: 2_000_000,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       defaultCacheDir(),
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		RateLimiting: RateLimitingConfig{
			RequestsPerSecond: 2,
			BurstSize:         5,
		},
		Output: OutputConfig{
			Verbose:       false,
			IncludeFooter: true,
		},
		LLM: LLMConfig{
			Provider:      "",
			Timeout:       30,
			StrictSources: true,
			MaxTokens:     1000,
		},
	}
}

// defaultCacheDir resolves the on-disk cache location
func defaultCacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".attestor-cache"
	}
	return filepath.Join(home, ".attestor", "cache")
}
