package store

import (
	"context"
	"database/sql"
)

// GlyphStats is the persisted accuracy record for one character.
type GlyphStats struct {
	Glyph   string
	Tested  int
	Correct int
	Wrong   int
}

// LedgerRepo provides durable access to per-character statistics.
// Every mutation is flushed before the call returns, so a crash loses
// at most the in-flight round.
type LedgerRepo interface {
	// Load returns all records in insertion order.
	Load(ctx context.Context) ([]GlyphStats, error)

	// Upsert writes the record for its glyph, inserting or replacing.
	Upsert(ctx context.Context, gs GlyphStats) error

	// Clear deletes every record.
	Clear(ctx context.Context) error
}

type sqliteLedgerRepo struct {
	db *sql.DB
}

func (r *sqliteLedgerRepo) Load(ctx context.Context) ([]GlyphStats, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT glyph, tested, correct, wrong FROM char_stats ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []GlyphStats
	for rows.Next() {
		var gs GlyphStats
		if err := rows.Scan(&gs.Glyph, &gs.Tested, &gs.Correct, &gs.Wrong); err != nil {
			return nil, err
		}
		out = append(out, gs)
	}
	return out, rows.Err()
}

func (r *sqliteLedgerRepo) Upsert(ctx context.Context, gs GlyphStats) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO char_stats (glyph, tested, correct, wrong)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(glyph) DO UPDATE SET
			tested = excluded.tested,
			correct = excluded.correct,
			wrong = excluded.wrong`,
		gs.Glyph, gs.Tested, gs.Correct, gs.Wrong)
	return err
}

func (r *sqliteLedgerRepo) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM char_stats`)
	return err
}
