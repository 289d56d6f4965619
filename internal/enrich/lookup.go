package enrich

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/junhao/radmaster/internal/catalog"
)

const lookupMaxTokens = 2048

// DefaultLookupTimeout bounds one enrichment batch end to end.
const DefaultLookupTimeout = 30 * time.Second

// Lookup resolves unknown glyphs to character records through a
// Provider. Its contract is deliberately loose: the response may be
// empty, partial, or unordered relative to the request.
type Lookup struct {
	provider Provider
	timeout  time.Duration
}

// NewLookup creates a Lookup over provider.
func NewLookup(provider Provider, timeout time.Duration) *Lookup {
	if timeout <= 0 {
		timeout = DefaultLookupTimeout
	}
	return &Lookup{provider: provider, timeout: timeout}
}

// Characters returns best-effort records for the given glyphs. Any
// provider, transport-, or schema failure degrades to an empty result;
// the caller treats that the same as "nothing found".
func (l *Lookup) Characters(ctx context.Context, glyphs []string) []catalog.Character {
	if len(glyphs) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	prompt := "Provide Pinyin and English meanings for the following Chinese characters: " +
		strings.Join(glyphs, ", ")

	resp, err := l.provider.Generate(ctx, Request{
		Prompt:    prompt,
		Schema:    characterInfoSchema,
		MaxTokens: lookupMaxTokens,
	})
	if err != nil {
		return nil
	}

	var records []struct {
		Char    string `json:"char"`
		Pinyin  string `json:"pinyin"`
		Meaning string `json:"meaning"`
	}
	if err := json.Unmarshal(resp.Content, &records); err != nil {
		return nil
	}

	// Boundary validation: keep only well-formed single-glyph records
	// that answer something we actually asked for.
	asked := make(map[string]bool, len(glyphs))
	for _, g := range glyphs {
		asked[g] = true
	}

	var out []catalog.Character
	seen := make(map[string]bool)
	for _, r := range records {
		char := strings.TrimSpace(r.Char)
		if char == "" || r.Pinyin == "" || r.Meaning == "" {
			continue
		}
		if !asked[char] || seen[char] {
			continue
		}
		seen[char] = true
		out = append(out, catalog.Character{
			Glyph:   char,
			Pinyin:  r.Pinyin,
			Meaning: r.Meaning,
		})
	}
	return out
}
