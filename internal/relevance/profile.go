// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package relevance

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/arxiv-radar/pkg/types"
)

// ProfileFile is the on-disk representation of an interest profile. The
// researcher keeps the profile in a YAML file and points the CLI at it;
// the same file round-trips through WriteProfile for bootstrapping.
type ProfileFile struct {
	Keywords       []string `yaml:"keywords"`
	Categories     []string `yaml:"categories"`
	ContextPhrases []string `yaml:"context_phrases,omitempty"`
	MinScore       float64  `yaml:"min_score"`
}

// ReadProfile loads an interest profile from a YAML file and converts it to
// a ScoringConfig. Toggles are left at their zero values; callers set them
// from flags or config.
func ReadProfile(path string) (types.ScoringConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.ScoringConfig{}, fmt.Errorf("reading profile: %w", err)
	}
	var pf ProfileFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return types.ScoringConfig{}, fmt.Errorf("parsing profile %s: %w", path, err)
	}
	return types.ScoringConfig{
		Keywords:       pf.Keywords,
		Categories:     pf.Categories,
		ContextPhrases: pf.ContextPhrases,
		MinScore:       pf.MinScore,
	}, nil
}

// WriteProfile saves an interest profile to a YAML file.
func WriteProfile(path string, cfg types.ScoringConfig) error {
	pf := ProfileFile{
		Keywords:       cfg.Keywords,
		Categories:     cfg.Categories,
		ContextPhrases: cfg.ContextPhrases,
		MinScore:       cfg.MinScore,
	}
	data, err := yaml.Marshal(&pf)
	if err != nil {
		return fmt.Errorf("marshaling profile: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
