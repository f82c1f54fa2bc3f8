package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "arxiv-radar/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// FetchConfig holds settings for the arXiv fetch stage.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxResults is the maximum number of records to fetch (default 50).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// Categories restricts the query to these arXiv categories. Empty means
	// no category clause.
	Categories []string `json:"categories,omitempty" yaml:"categories,omitempty"`

	// SortBy selects the arXiv sort order: "relevance" (default),
	// "submittedDate", or "lastUpdatedDate".
	SortBy string `json:"sort_by,omitempty" yaml:"sort_by,omitempty"`
}

// ScoringConfig holds the interest profile and toggles for the relevance
// scoring engine. Keywords and Categories are required; an empty list is a
// construction error.
type ScoringConfig struct {
	// Keywords is the lexical interest profile (phrases, lowercase not required).
	Keywords []string `json:"keywords" yaml:"keywords"`

	// Categories is the relevant subject-category set (e.g. "cs.AI").
	Categories []string `json:"categories" yaml:"categories"`

	// ContextPhrases extends the embedding reference set with descriptive
	// domain sentences. Empty selects a built-in default set.
	ContextPhrases []string `json:"context_phrases,omitempty" yaml:"context_phrases,omitempty"`

	// MinScore is the minimum-acceptance threshold in [0, 1] applied when
	// ranking (papers below it are dropped from ranked views, never from
	// batch results).
	MinScore float64 `json:"min_score" yaml:"min_score"`

	// EnableSemantic controls whether embedding similarity is attempted.
	// When false, or when the embedding index cannot be built, the scorer
	// uses the lexical TF-IDF fallback with adjusted fusion weights.
	EnableSemantic bool `json:"enable_semantic" yaml:"enable_semantic"`

	// EnableCitations controls whether batch scores are re-weighted with
	// citation-graph analysis. Requires a batch of at least two papers.
	EnableCitations bool `json:"enable_citations" yaml:"enable_citations"`
}

// EmbeddingConfig holds settings for the embedding-model collaborator.
type EmbeddingConfig struct {
	// Provider selects the encoder backend: "openai", "ollama", or "" to
	// disable semantic scoring.
	Provider string `json:"provider" yaml:"provider"`

	// BaseURL overrides the provider endpoint (OpenAI-compatible services,
	// or a non-default Ollama host).
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`

	// APIKey authenticates against the provider, where required.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// Model is the embedding model identifier (e.g. "text-embedding-3-small",
	// "all-minilm:l6-v2").
	Model string `json:"model" yaml:"model"`
}

// StoreConfig holds settings for the persistence stage.
type StoreConfig struct {
	// DBPath is the SQLite database file (default "radar.db").
	DBPath string `json:"db_path" yaml:"db_path"`

	// MaxResults is the default maximum number of rows returned by ranked
	// listings (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}
