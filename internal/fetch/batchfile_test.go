package fetch

import (
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/pdiddy/arxiv-radar/pkg/types"
)

func TestBatchFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.yaml")

	query := BatchQuery{
		Keywords:   []string{"attention"},
		Categories: []string{"cs.LG"},
		MaxResults: 50,
	}
	papers := []types.Paper{
		{
			ID:         "2301.07041",
			Title:      "Attention Heads in Transformers",
			Summary:    "We study attention patterns across layers.",
			Authors:    []string{"Ada Lovelace"},
			Categories: []string{"cs.LG", "cs.AI"},
			Published:  time.Date(2023, 1, 17, 18, 59, 59, 0, time.UTC),
			Source:     "arxiv",
		},
	}

	if err := WriteBatchFile(path, query, papers); err != nil {
		t.Fatalf("WriteBatchFile() error = %v", err)
	}

	bf, err := ReadBatchFile(path)
	if err != nil {
		t.Fatalf("ReadBatchFile() error = %v", err)
	}
	if !reflect.DeepEqual(bf.Query, query) {
		t.Errorf("Query = %+v, want %+v", bf.Query, query)
	}
	if !reflect.DeepEqual(bf.Papers, papers) {
		t.Errorf("Papers = %+v, want %+v", bf.Papers, papers)
	}
	if bf.FetchedAt.IsZero() {
		t.Error("FetchedAt is zero, want a timestamp")
	}
}

func TestReadBatchFileErrors(t *testing.T) {
	if _, err := ReadBatchFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("ReadBatchFile() on missing file succeeded, want error")
	}
}
