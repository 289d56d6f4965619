package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestUpsertAndLoad(t *testing.T) {
	s := openTestStore(t)
	repo := s.LedgerRepo()
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, GlyphStats{Glyph: "水", Tested: 4, Correct: 3, Wrong: 1}))
	require.NoError(t, repo.Upsert(ctx, GlyphStats{Glyph: "火", Tested: 1, Correct: 0, Wrong: 1}))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, GlyphStats{Glyph: "水", Tested: 4, Correct: 3, Wrong: 1}, got[0])
	require.Equal(t, GlyphStats{Glyph: "火", Tested: 1, Correct: 0, Wrong: 1}, got[1])
}

func TestUpsertReplacesExistingGlyph(t *testing.T) {
	s := openTestStore(t)
	repo := s.LedgerRepo()
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, GlyphStats{Glyph: "水", Tested: 1, Correct: 1}))
	require.NoError(t, repo.Upsert(ctx, GlyphStats{Glyph: "水", Tested: 5, Correct: 2, Wrong: 3}))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, 5, got[0].Tested)
}

func TestUpsertKeepsInsertionOrder(t *testing.T) {
	s := openTestStore(t)
	repo := s.LedgerRepo()
	ctx := context.Background()

	for _, g := range []string{"木", "金", "土"} {
		require.NoError(t, repo.Upsert(ctx, GlyphStats{Glyph: g, Tested: 1, Wrong: 1}))
	}
	// Updating the first glyph must not move it to the end.
	require.NoError(t, repo.Upsert(ctx, GlyphStats{Glyph: "木", Tested: 2, Wrong: 2}))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, "木", got[0].Glyph)
	require.Equal(t, "土", got[2].Glyph)
}

func TestClear(t *testing.T) {
	s := openTestStore(t)
	repo := s.LedgerRepo()
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, GlyphStats{Glyph: "水", Tested: 1, Correct: 1}))
	require.NoError(t, repo.Clear(ctx))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestReopenPersists(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "persist.db")
	ctx := context.Background()

	s, err := Open(dbPath)
	require.NoError(t, err)
	require.NoError(t, s.LedgerRepo().Upsert(ctx, GlyphStats{Glyph: "马", Tested: 2, Correct: 2}))
	require.NoError(t, s.Close())

	s2, err := Open(dbPath)
	require.NoError(t, err)
	defer s2.Close()

	got, err := s2.LedgerRepo().Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "马", got[0].Glyph)
}
