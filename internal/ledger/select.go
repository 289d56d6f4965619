package ledger

import (
	"strings"

	"github.com/junhao/radmaster/internal/catalog"
)

// Filter narrows candidates by query: case-insensitive substring match
// on pinyin or meaning, or containment match on the glyph itself. An
// empty query matches everything.
func Filter(query string, candidates []catalog.Character) []catalog.Character {
	query = strings.TrimSpace(query)
	if query == "" {
		return candidates
	}
	lower := strings.ToLower(query)

	var out []catalog.Character
	for _, c := range candidates {
		if strings.Contains(strings.ToLower(c.Pinyin), lower) ||
			strings.Contains(strings.ToLower(c.Meaning), lower) ||
			strings.Contains(c.Glyph, query) {
			out = append(out, c)
		}
	}
	return out
}

// Selection is the set of glyphs picked in the stats browser. Pure set
// operations; the ledger itself is never touched.
type Selection map[string]bool

// Toggle flips glyph's membership.
func (s Selection) Toggle(glyph string) {
	if s[glyph] {
		delete(s, glyph)
	} else {
		s[glyph] = true
	}
}

// AddAll selects every character of the filtered view.
func (s Selection) AddAll(filtered []catalog.Character) {
	for _, c := range filtered {
		s[c.Glyph] = true
	}
}

// RemoveAll deselects every character of the filtered view.
func (s Selection) RemoveAll(filtered []catalog.Character) {
	for _, c := range filtered {
		delete(s, c.Glyph)
	}
}

// Characters returns the selected records from candidates, preserving
// candidate order.
func (s Selection) Characters(candidates []catalog.Character) []catalog.Character {
	var out []catalog.Character
	for _, c := range candidates {
		if s[c.Glyph] {
			out = append(out, c)
		}
	}
	return out
}
