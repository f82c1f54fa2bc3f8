package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/arxiv-radar/pkg/types"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(types.StoreConfig{DBPath: filepath.Join(t.TempDir(), "radar.db")})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func samplePaper(id string) types.Paper {
	return types.Paper{
		ID:         id,
		Title:      "Attention Heads in Transformers",
		Summary:    "We study attention patterns across layers.",
		Authors:    []string{"Ada Lovelace", "Alan Turing"},
		Categories: []string{"cs.LG", "cs.AI"},
		Published:  time.Date(2023, 1, 17, 18, 59, 59, 0, time.UTC),
		Source:     "arxiv",
	}
}

func TestSaveAndGet(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	p := samplePaper("2301.07041")
	b := types.ScoreBreakdown{Keyword: 0.6, Category: 1, Semantic: 0.8, Citation: 0.2, Final: 0.75}
	require.NoError(t, s.SavePaper(ctx, p, b))

	got, err := s.Get(ctx, "2301.07041")
	require.NoError(t, err)
	assert.Equal(t, p, got.Paper)
	assert.Equal(t, b, got.Breakdown)
	assert.False(t, got.ScoredAt.IsZero())
}

func TestGetMissing(t *testing.T) {
	s := testStore(t)

	_, err := s.Get(context.Background(), "9999.00000")
	require.Error(t, err)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestSavePaperOverwrites(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	p := samplePaper("2301.07041")
	require.NoError(t, s.SavePaper(ctx, p, types.ScoreBreakdown{Final: 0.2}))

	p.Title = "Attention Heads in Transformers (v2)"
	require.NoError(t, s.SavePaper(ctx, p, types.ScoreBreakdown{Final: 0.9}))

	got, err := s.Get(ctx, "2301.07041")
	require.NoError(t, err)
	assert.Equal(t, "Attention Heads in Transformers (v2)", got.Paper.Title)
	assert.Equal(t, 0.9, got.Breakdown.Final)

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestTop(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	finals := map[string]float64{
		"2301.00001": 0.9,
		"2301.00002": 0.4,
		"2301.00003": 0.7,
		"2301.00004": 0.1,
	}
	for id, final := range finals {
		require.NoError(t, s.SavePaper(ctx, samplePaper(id), types.ScoreBreakdown{Final: final}))
	}

	top, err := s.Top(ctx, 0.3, 0)
	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.Equal(t, "2301.00001", top[0].Paper.ID)
	assert.Equal(t, "2301.00003", top[1].Paper.ID)
	assert.Equal(t, "2301.00002", top[2].Paper.ID)

	limited, err := s.Top(ctx, 0, 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, "2301.00001", limited[0].Paper.ID)
}

func TestTopDefaultLimit(t *testing.T) {
	s, err := New(types.StoreConfig{
		DBPath:     filepath.Join(t.TempDir(), "radar.db"),
		MaxResults: 2,
	})
	require.NoError(t, err)
	defer s.Close()
	ctx := context.Background()

	for _, id := range []string{"2301.00001", "2301.00002", "2301.00003"} {
		require.NoError(t, s.SavePaper(ctx, samplePaper(id), types.ScoreBreakdown{Final: 0.5}))
	}

	top, err := s.Top(ctx, 0, 0)
	require.NoError(t, err)
	assert.Len(t, top, 2)
}

func TestCount(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	require.NoError(t, s.SavePaper(ctx, samplePaper("2301.00001"), types.ScoreBreakdown{}))
	require.NoError(t, s.SavePaper(ctx, samplePaper("2301.00002"), types.ScoreBreakdown{}))

	n, err = s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestStoreReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "radar.db")
	ctx := context.Background()

	s, err := New(types.StoreConfig{DBPath: dbPath})
	require.NoError(t, err)
	require.NoError(t, s.SavePaper(ctx, samplePaper("2301.00001"), types.ScoreBreakdown{Final: 0.5}))
	require.NoError(t, s.Close())

	s, err = New(types.StoreConfig{DBPath: dbPath})
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Get(ctx, "2301.00001")
	require.NoError(t, err)
	assert.Equal(t, 0.5, got.Breakdown.Final)
}
