package store

import "context"

// MemoryLedgerRepo is an in-memory LedgerRepo for tests.
type MemoryLedgerRepo struct {
	order   []string
	records map[string]GlyphStats
}

// NewMemoryLedgerRepo returns an empty in-memory repo.
func NewMemoryLedgerRepo() *MemoryLedgerRepo {
	return &MemoryLedgerRepo{records: make(map[string]GlyphStats)}
}

func (r *MemoryLedgerRepo) Load(ctx context.Context) ([]GlyphStats, error) {
	out := make([]GlyphStats, 0, len(r.order))
	for _, g := range r.order {
		out = append(out, r.records[g])
	}
	return out, nil
}

func (r *MemoryLedgerRepo) Upsert(ctx context.Context, gs GlyphStats) error {
	if _, ok := r.records[gs.Glyph]; !ok {
		r.order = append(r.order, gs.Glyph)
	}
	r.records[gs.Glyph] = gs
	return nil
}

func (r *MemoryLedgerRepo) Clear(ctx context.Context) error {
	r.order = nil
	r.records = make(map[string]GlyphStats)
	return nil
}
