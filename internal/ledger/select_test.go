package ledger

import (
	"testing"

	"github.com/junhao/radmaster/internal/catalog"
)

var candidates = []catalog.Character{
	{Glyph: "水", Pinyin: "shuǐ", Meaning: "water"},
	{Glyph: "火", Pinyin: "huǒ", Meaning: "fire"},
	{Glyph: "马", Pinyin: "mǎ", Meaning: "horse"},
	{Glyph: "鸟", Pinyin: "niǎo", Meaning: "bird"},
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty matches all", "", []string{"水", "火", "马", "鸟"}},
		{"meaning substring", "ir", []string{"火", "鸟"}}, // fire, bird
		{"meaning case-insensitive", "WATER", []string{"水"}},
		{"pinyin substring", "uǒ", []string{"火"}},
		{"glyph match", "马", []string{"马"}},
		{"no match", "zzz", nil},
		{"whitespace trimmed", "  horse ", []string{"马"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(tt.query, candidates)
			if len(got) != len(tt.want) {
				t.Fatalf("Filter(%q) returned %d records, want %d", tt.query, len(got), len(tt.want))
			}
			for i := range got {
				if got[i].Glyph != tt.want[i] {
					t.Errorf("Filter(%q)[%d] = %q, want %q", tt.query, i, got[i].Glyph, tt.want[i])
				}
			}
		})
	}
}

func TestSelectionToggle(t *testing.T) {
	sel := Selection{}
	sel.Toggle("水")
	if !sel["水"] {
		t.Error("toggle did not select")
	}
	sel.Toggle("水")
	if sel["水"] {
		t.Error("toggle did not deselect")
	}
}

func TestSelectionBulkOps(t *testing.T) {
	sel := Selection{}
	filtered := Filter("ir", candidates) // 火, 鸟

	sel.AddAll(filtered)
	if len(sel) != 2 {
		t.Fatalf("AddAll selected %d, want 2", len(sel))
	}

	got := sel.Characters(candidates)
	if len(got) != 2 || got[0].Glyph != "火" || got[1].Glyph != "鸟" {
		t.Errorf("Characters = %v", got)
	}

	sel.RemoveAll(filtered)
	if len(sel) != 0 {
		t.Errorf("RemoveAll left %d selected", len(sel))
	}
}
