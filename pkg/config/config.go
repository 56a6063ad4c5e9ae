// Package config builds the service configuration from the environment.
// A Config value is constructed once at startup and threaded through
// component constructors; nothing reads the environment after Load returns.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"
)

// ProviderConfig controls the provider gateway.
type ProviderConfig struct {
	TextAPIKey     string
	SearchAPIKey   string
	TextBaseURL    string
	SearchBaseURL  string
	ConnectTimeout time.Duration
	ReadTimeout    time.Duration
	MaxRetries     int

	// Role to model mapping for complete-text calls.
	PlannerModel    string
	ResearcherModel string
	EvaluatorModel  string
	WriterModel     string
}

// TextMockMode reports whether the text capability runs without credentials.
func (p ProviderConfig) TextMockMode() bool { return p.TextAPIKey == "" }

// SearchMockMode reports whether the search capability runs without credentials.
func (p ProviderConfig) SearchMockMode() bool { return p.SearchAPIKey == "" }

// PersistenceConfig selects and tunes the persistence backend.
type PersistenceConfig struct {
	URL    string // empty means in-memory backend
	DBName string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// ResearchConfig holds the orchestrator knobs.
type ResearchConfig struct {
	MaxConcurrentTasks  int
	DefaultTimeout      time.Duration
	QualityThreshold    float64
	MaxEvidencePerQuery int
	SubQueryConcurrency int
	CheapProfile        bool
	DefaultDeepBudget   int
	SimpleBudget        int
}

// RateLimitConfig throttles outbound provider calls.
type RateLimitConfig struct {
	PerMinute int
	Burst     int
}

// Config is the root configuration object returned by Load.
type Config struct {
	HTTPAddr string

	Provider    ProviderConfig
	Persistence PersistenceConfig
	Research    ResearchConfig
	RateLimit   RateLimitConfig

	// ProgressReplayEvents is how many recent events the progress bus
	// replays to late joiners (flagged historical). Zero disables replay.
	ProgressReplayEvents int

	// ArtifactsDir, when set, mirrors each task's NDJSON trace to a file.
	ArtifactsDir string

	// AuthorityTablePath optionally overrides the embedded source-authority
	// table used for evidence quality scoring.
	AuthorityTablePath string
}

// Defaults and permitted ranges. Out-of-range environment values are clamped
// with a warning rather than rejected.
const (
	defaultHTTPAddr = ":8080"

	defaultConnectTimeoutSec = 30
	defaultReadTimeoutSec    = 120
	defaultMaxRetries        = 3

	defaultMaxConcurrentTasks = 10
	minConcurrentTasks        = 1
	maxConcurrentTasks        = 50

	defaultTaskTimeoutSec = 300
	minTaskTimeoutSec     = 60
	maxTaskTimeoutSec     = 3600

	defaultQualityThreshold = 0.75

	defaultMaxEvidencePerQuery = 5
	minMaxEvidencePerQuery     = 1
	maxMaxEvidencePerQuery     = 50

	defaultSubQueryConcurrency = 5
	minSubQueryConcurrency     = 1
	maxSubQueryConcurrency     = 20

	defaultRatePerMinute = 100
	defaultRateBurst     = 20

	defaultDeepBudget   = 150
	defaultSimpleBudget = 50

	maxReplayEvents = 256
)

// Load builds a Config from the process environment, applying defaults and
// clamping out-of-range values.
func Load() (*Config, error) {
	cfg := &Config{
		HTTPAddr: envString("HTTP_ADDR", defaultHTTPAddr),
		Provider: ProviderConfig{
			TextAPIKey:      os.Getenv("PROVIDER_API_KEY_TEXT"),
			SearchAPIKey:    os.Getenv("PROVIDER_API_KEY_SEARCH"),
			TextBaseURL:     envString("PROVIDER_BASE_URL_TEXT", "https://api.openai.com/v1"),
			SearchBaseURL:   envString("PROVIDER_BASE_URL_SEARCH", "https://api.tavily.com"),
			ConnectTimeout:  time.Duration(envInt("PROVIDER_CONNECT_TIMEOUT_SEC", defaultConnectTimeoutSec, 1, 300)) * time.Second,
			ReadTimeout:     time.Duration(envInt("PROVIDER_READ_TIMEOUT_SEC", defaultReadTimeoutSec, 1, 600)) * time.Second,
			MaxRetries:      envInt("PROVIDER_MAX_RETRIES", defaultMaxRetries, 0, 10),
			PlannerModel:    envString("PROVIDER_MODEL_PLANNER", "gpt-4o-mini"),
			ResearcherModel: envString("PROVIDER_MODEL_RESEARCHER", "gpt-4o-mini"),
			EvaluatorModel:  envString("PROVIDER_MODEL_EVALUATOR", "gpt-4o"),
			WriterModel:     envString("PROVIDER_MODEL_WRITER", "gpt-4o"),
		},
		Persistence: PersistenceConfig{
			URL:             os.Getenv("PERSISTENCE_URL"),
			DBName:          envString("PERSISTENCE_DB_NAME", "delver"),
			MaxOpenConns:    envInt("PERSISTENCE_MAX_OPEN_CONNS", 25, 1, 200),
			MaxIdleConns:    envInt("PERSISTENCE_MAX_IDLE_CONNS", 5, 1, 100),
			ConnMaxLifetime: 30 * time.Minute,
			ConnMaxIdleTime: 5 * time.Minute,
		},
		Research: ResearchConfig{
			MaxConcurrentTasks:  envInt("RESEARCH_MAX_CONCURRENT_TASKS", defaultMaxConcurrentTasks, minConcurrentTasks, maxConcurrentTasks),
			DefaultTimeout:      time.Duration(envInt("RESEARCH_DEFAULT_TIMEOUT_SEC", defaultTaskTimeoutSec, minTaskTimeoutSec, maxTaskTimeoutSec)) * time.Second,
			QualityThreshold:    envFloat("RESEARCH_QUALITY_THRESHOLD", defaultQualityThreshold, 0, 1),
			MaxEvidencePerQuery: envInt("RESEARCH_MAX_EVIDENCE_PER_SUBTASK", defaultMaxEvidencePerQuery, minMaxEvidencePerQuery, maxMaxEvidencePerQuery),
			SubQueryConcurrency: envInt("RESEARCH_SUBQUERY_CONCURRENCY", defaultSubQueryConcurrency, minSubQueryConcurrency, maxSubQueryConcurrency),
			CheapProfile:        envBool("RESEARCH_CHEAP_PROFILE", false),
			DefaultDeepBudget:   defaultDeepBudget,
			SimpleBudget:        defaultSimpleBudget,
		},
		RateLimit: RateLimitConfig{
			PerMinute: envInt("RATE_LIMIT_PER_MINUTE", defaultRatePerMinute, 1, 10000),
			Burst:     envInt("RATE_LIMIT_BURST", defaultRateBurst, 1, 1000),
		},
		ProgressReplayEvents: envInt("PROGRESS_REPLAY_EVENTS", 0, 0, maxReplayEvents),
		ArtifactsDir:         os.Getenv("ARTIFACTS_DIR"),
		AuthorityTablePath:   os.Getenv("AUTHORITY_TABLE_PATH"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.HTTPAddr == "" {
		return fmt.Errorf("HTTP_ADDR must not be empty")
	}
	if c.Provider.TextAPIKey != "" && c.Provider.TextBaseURL == "" {
		return fmt.Errorf("PROVIDER_BASE_URL_TEXT must be set when PROVIDER_API_KEY_TEXT is set")
	}
	return nil
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("Invalid boolean environment value, using default", "key", key, "value", v, "default", def)
		return def
	}
	return b
}

func envInt(key string, def, min, max int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("Invalid integer environment value, using default", "key", key, "value", v, "default", def)
		return def
	}
	return clampInt(key, n, min, max)
}

func envFloat(key string, def, min, max float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		slog.Warn("Invalid float environment value, using default", "key", key, "value", v, "default", def)
		return def
	}
	if f < min {
		slog.Warn("Environment value below minimum, clamping", "key", key, "value", f, "min", min)
		return min
	}
	if f > max {
		slog.Warn("Environment value above maximum, clamping", "key", key, "value", f, "max", max)
		return max
	}
	return f
}

func clampInt(key string, n, min, max int) int {
	if n < min {
		slog.Warn("Environment value below minimum, clamping", "key", key, "value", n, "min", min)
		return min
	}
	if n > max {
		slog.Warn("Environment value above maximum, clamping", "key", key, "value", n, "max", max)
		return max
	}
	return n
}
