package relevance

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/pdiddy/arxiv-radar/pkg/types"
)

func TestReadProfile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.yaml")
	content := `keywords:
  - mechanistic interpretability
  - attention
categories:
  - cs.AI
  - cs.LG
context_phrases:
  - understanding how neural networks work internally
min_score: 0.3
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := ReadProfile(path)
	if err != nil {
		t.Fatalf("ReadProfile() error = %v", err)
	}
	want := types.ScoringConfig{
		Keywords:       []string{"mechanistic interpretability", "attention"},
		Categories:     []string{"cs.AI", "cs.LG"},
		ContextPhrases: []string{"understanding how neural networks work internally"},
		MinScore:       0.3,
	}
	if !reflect.DeepEqual(cfg, want) {
		t.Errorf("ReadProfile() = %+v, want %+v", cfg, want)
	}
}

func TestReadProfileErrors(t *testing.T) {
	if _, err := ReadProfile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("ReadProfile() on missing file succeeded, want error")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("keywords: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadProfile(path); err == nil {
		t.Error("ReadProfile() on malformed YAML succeeded, want error")
	}
}

func TestProfileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	cfg := types.ScoringConfig{
		Keywords:   []string{"sparse autoencoders"},
		Categories: []string{"cs.LG"},
		MinScore:   0.25,
	}
	if err := WriteProfile(path, cfg); err != nil {
		t.Fatalf("WriteProfile() error = %v", err)
	}
	got, err := ReadProfile(path)
	if err != nil {
		t.Fatalf("ReadProfile() error = %v", err)
	}
	if !reflect.DeepEqual(got, cfg) {
		t.Errorf("round trip = %+v, want %+v", got, cfg)
	}
}
