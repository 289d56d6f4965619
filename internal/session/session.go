package session

import (
	"context"
	"errors"
	"math/rand/v2"

	"github.com/junhao/radmaster/internal/catalog"
)

var (
	// ErrNoHanCharacters means the pasted text contained nothing in the
	// CJK range.
	ErrNoHanCharacters = errors.New("no Chinese characters found in text")

	// ErrNoMatches means CJK characters were found but none could be
	// resolved to a known or enriched entry.
	ErrNoMatches = errors.New("none of the characters could be matched")
)

// Enricher resolves unknown glyphs to full characters. A nil result
// means the lookup was unavailable and the glyphs stay unknown.
type Enricher interface {
	Characters(ctx context.Context, glyphs []string) []catalog.Character
}

// DrawFocus picks n distinct characters from the pool, uniformly at
// random. Pools smaller than n are returned whole in shuffled order.
func DrawFocus(pool []catalog.Character, n int) []catalog.Character {
	out := make([]catalog.Character, len(pool))
	copy(out, pool)
	rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// BuildCustomPool extracts the CJK characters from free text and turns
// them into a practice pool. Characters in the built-in catalog match
// locally; the rest go through the enricher in one batch. If the
// enricher is nil or fails, unmatched characters are dropped.
func BuildCustomPool(ctx context.Context, text string, enricher Enricher) ([]catalog.Character, error) {
	glyphs := catalog.ExtractHan(text)
	if len(glyphs) == 0 {
		return nil, ErrNoHanCharacters
	}

	pool := make([]catalog.Character, 0, len(glyphs))
	var missing []string
	for _, g := range glyphs {
		if c, ok := catalog.Find(g); ok {
			pool = append(pool, c)
		} else {
			missing = append(missing, g)
		}
	}

	if len(missing) > 0 && enricher != nil {
		enriched := enricher.Characters(ctx, missing)
		byGlyph := make(map[string]catalog.Character, len(enriched))
		for _, c := range enriched {
			byGlyph[c.Glyph] = c
		}
		// Reassemble in extraction order.
		merged := make([]catalog.Character, 0, len(glyphs))
		for _, g := range glyphs {
			if c, ok := catalog.Find(g); ok {
				merged = append(merged, c)
			} else if c, ok := byGlyph[g]; ok {
				merged = append(merged, c)
			}
		}
		pool = merged
	}

	if len(pool) == 0 {
		return nil, ErrNoMatches
	}
	return pool, nil
}
