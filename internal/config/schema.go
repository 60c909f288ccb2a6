package config

// Config holds menuscan configuration.
// Stored at: ~/.menuscan/config.yaml
type Config struct {
	Analysis AnalysisCfg       `mapstructure:"analysis" yaml:"analysis"`
	Output   OutputCfg         `mapstructure:"output" yaml:"output"`
	Vocab    VocabCfg          `mapstructure:"vocab" yaml:"vocab"`
	AIRepair AIRepairCfg       `mapstructure:"ai_repair" yaml:"ai_repair"`
	APIKeys  map[string]string `mapstructure:"api_keys" yaml:"api_keys"` // Supports ${ENV_VAR} syntax
}

// AnalysisCfg holds the tunable thresholds for cross-item checks.
type AnalysisCfg struct {
	// FuzzyThreshold is the name similarity ratio above which two items
	// count as duplicates.
	FuzzyThreshold float64 `mapstructure:"fuzzy_threshold" yaml:"fuzzy_threshold"`
	// FuzzyMinLength is the minimum name length for fuzzy matching.
	FuzzyMinLength int `mapstructure:"fuzzy_min_length" yaml:"fuzzy_min_length"`
	// OutlierMADMultiplier scales the median absolute deviation when
	// flagging price outliers.
	OutlierMADMultiplier float64 `mapstructure:"outlier_mad_multiplier" yaml:"outlier_mad_multiplier"`
	// OutlierMinItems is the minimum category size for outlier detection.
	OutlierMinItems int `mapstructure:"outlier_min_items" yaml:"outlier_min_items"`
	// IsolationWindow is the neighbor radius for category isolation checks.
	IsolationWindow int `mapstructure:"isolation_window" yaml:"isolation_window"`
	// SuggestionWindow is the neighbor radius for category suggestions.
	SuggestionWindow int `mapstructure:"suggestion_window" yaml:"suggestion_window"`
	// SuggestionMinConfidence is the minimum neighbor agreement for a
	// category suggestion.
	SuggestionMinConfidence float64 `mapstructure:"suggestion_min_confidence" yaml:"suggestion_min_confidence"`
	// CoherenceMinGapRatio is the relative median gap that triggers a
	// cross-category price flag.
	CoherenceMinGapRatio float64 `mapstructure:"coherence_min_gap_ratio" yaml:"coherence_min_gap_ratio"`
}

// OutputCfg controls how analysis results are emitted.
type OutputCfg struct {
	Format       string `mapstructure:"format" yaml:"format"` // "json" or "yaml"
	ApplyRepairs bool   `mapstructure:"apply_repairs" yaml:"apply_repairs"`
}

// VocabCfg points at site-local vocabulary extensions.
type VocabCfg struct {
	// OverridesPath is an optional YAML file of extra section headings,
	// combo foods, toppings, and typo corrections.
	OverridesPath string `mapstructure:"overrides_path" yaml:"overrides_path"`
}

// AIRepairCfg configures the optional LLM pass that retypes garbled names.
type AIRepairCfg struct {
	Enabled    bool    `mapstructure:"enabled" yaml:"enabled"`
	Provider   string  `mapstructure:"provider" yaml:"provider"` // Key into APIKeys
	Model      string  `mapstructure:"model" yaml:"model"`
	RateLimit  float64 `mapstructure:"rate_limit" yaml:"rate_limit"` // Requests per second
	MaxRetries int     `mapstructure:"max_retries" yaml:"max_retries"`
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Analysis: AnalysisCfg{
			FuzzyThreshold:          0.82,
			FuzzyMinLength:          4,
			OutlierMADMultiplier:    3.0,
			OutlierMinItems:         3,
			IsolationWindow:         2,
			SuggestionWindow:        3,
			SuggestionMinConfidence: 0.30,
			CoherenceMinGapRatio:    0.30,
		},
		Output: OutputCfg{
			Format: "json",
		},
		AIRepair: AIRepairCfg{
			Provider:   "openai",
			Model:      "gpt-4o-mini",
			RateLimit:  2.0,
			MaxRetries: 5,
		},
		APIKeys: map[string]string{
			"openai": "${OPENAI_API_KEY}",
		},
	}
}

// ResolveAPIKey returns the API key for a provider with any ${ENV_VAR}
// reference expanded.
func (c *Config) ResolveAPIKey(name string) string {
	return ResolveEnvVars(c.APIKeys[name])
}
