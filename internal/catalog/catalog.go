// Package catalog holds the built-in character reference data: the
// radical set used for regular play, the numbers set, and the tutor
// avatars shown on the home screen. All data is immutable after init.
package catalog

// Character is a single quizzable character record. Glyph is the
// natural key; pools must never contain two records with the same glyph.
type Character struct {
	Glyph   string
	Pinyin  string
	Meaning string
}

// index maps glyph to its record across all built-in sets.
// Radicals win over numbers when a glyph appears in both.
var index map[string]Character

// all is the deduplicated union of radicals and numbers, in catalog order.
var all []Character

func init() {
	index = make(map[string]Character, len(radicals)+len(numbers))
	for _, c := range radicals {
		if _, ok := index[c.Glyph]; !ok {
			index[c.Glyph] = c
			all = append(all, c)
		}
	}
	for _, c := range numbers {
		if _, ok := index[c.Glyph]; !ok {
			index[c.Glyph] = c
			all = append(all, c)
		}
	}
}

// Radicals returns the built-in radical set.
func Radicals() []Character {
	return radicals
}

// Numbers returns the built-in numbers set.
func Numbers() []Character {
	return numbers
}

// All returns the deduplicated union of every built-in quizzable set.
func All() []Character {
	return all
}

// Find looks up a glyph in the built-in sets.
func Find(glyph string) (Character, bool) {
	c, ok := index[glyph]
	return c, ok
}
