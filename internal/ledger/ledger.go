// Package ledger tracks cumulative per-character accuracy across
// sessions. The service owns an injected repo and writes every mutation
// through to it, so committed history survives a crash.
package ledger

import (
	"context"
	"fmt"

	"github.com/junhao/radmaster/internal/store"
)

// Entry is the cumulative record for one glyph.
// Invariant: Tested == Correct + Wrong.
type Entry struct {
	Glyph   string
	Tested  int
	Correct int
	Wrong   int
}

// Accuracy returns the percentage of correct answers, 0 when untested.
func (e Entry) Accuracy() float64 {
	if e.Tested == 0 {
		return 0
	}
	return float64(e.Correct) / float64(e.Tested) * 100
}

// Service is the statistics ledger. Not safe for concurrent use; the
// app is single-threaded by construction.
type Service struct {
	repo    store.LedgerRepo
	order   []string
	entries map[string]Entry
}

// NewService loads the persisted ledger through repo. A load failure
// (missing or corrupt database content) yields an empty ledger rather
// than an error: history is best-effort, the quiz must always start.
func NewService(ctx context.Context, repo store.LedgerRepo) *Service {
	s := &Service{
		repo:    repo,
		entries: make(map[string]Entry),
	}
	records, err := repo.Load(ctx)
	if err != nil {
		return s
	}
	for _, gs := range records {
		if _, ok := s.entries[gs.Glyph]; ok {
			continue
		}
		s.order = append(s.order, gs.Glyph)
		s.entries[gs.Glyph] = Entry(gs)
	}
	return s
}

// Record notes the outcome of one resolved round for glyph, creating
// the entry on first sight. Call at most once per resolved round.
func (s *Service) Record(ctx context.Context, glyph string, correct bool) error {
	e, ok := s.entries[glyph]
	if !ok {
		e = Entry{Glyph: glyph}
	}
	e.Tested++
	if correct {
		e.Correct++
	} else {
		e.Wrong++
	}
	return s.put(ctx, e, ok)
}

// Get returns the entry for glyph, if any.
func (s *Service) Get(glyph string) (Entry, bool) {
	e, ok := s.entries[glyph]
	return e, ok
}

// Entries returns all entries in insertion order.
func (s *Service) Entries() []Entry {
	out := make([]Entry, 0, len(s.order))
	for _, g := range s.order {
		out = append(out, s.entries[g])
	}
	return out
}

// Len returns the number of tracked glyphs.
func (s *Service) Len() int {
	return len(s.order)
}

// Clear wipes the ledger. Irreversible; callers own the confirmation.
func (s *Service) Clear(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil {
		return fmt.Errorf("clear ledger: %w", err)
	}
	s.order = nil
	s.entries = make(map[string]Entry)
	return nil
}

// put stores e in memory and flushes it through the repo.
func (s *Service) put(ctx context.Context, e Entry, existed bool) error {
	if !existed {
		s.order = append(s.order, e.Glyph)
	}
	s.entries[e.Glyph] = e
	if err := s.repo.Upsert(ctx, store.GlyphStats(e)); err != nil {
		return fmt.Errorf("persist entry %q: %w", e.Glyph, err)
	}
	return nil
}
