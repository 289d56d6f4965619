// Package quiz generates and resolves multiple-choice rounds.
package quiz

import (
	"math/rand/v2"

	"github.com/junhao/radmaster/internal/catalog"
)

// Generate builds a round: one target drawn uniformly from active, plus
// three distractors drawn without replacement from distractors.
//
// Distractor candidates are deduplicated by glyph and filtered against
// the target up front, so the draw is bounded. Returns ErrEmptyPool for
// an empty active pool and *InsufficientPoolError when fewer than three
// candidate glyphs remain.
func Generate(active, distractors []catalog.Character) (*Round, error) {
	if len(active) == 0 {
		return nil, ErrEmptyPool
	}

	target := active[rand.IntN(len(active))]

	candidates := make([]catalog.Character, 0, len(distractors))
	seen := map[string]bool{target.Glyph: true}
	for _, c := range distractors {
		if seen[c.Glyph] {
			continue
		}
		seen[c.Glyph] = true
		candidates = append(candidates, c)
	}

	if len(candidates) < DistractorCount {
		return nil, &InsufficientPoolError{
			TargetGlyph: target.Glyph,
			Available:   len(candidates),
		}
	}

	rand.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	options := make([]catalog.Character, 0, OptionCount)
	options = append(options, target)
	options = append(options, candidates[:DistractorCount]...)
	rand.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return &Round{Target: target, Options: options}, nil
}
