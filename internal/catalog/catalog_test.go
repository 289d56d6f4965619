package catalog

import "testing"

func TestAllHasNoDuplicateGlyphs(t *testing.T) {
	seen := make(map[string]bool)
	for _, c := range All() {
		if seen[c.Glyph] {
			t.Errorf("duplicate glyph %q in All()", c.Glyph)
		}
		seen[c.Glyph] = true
	}
}

func TestFind(t *testing.T) {
	c, ok := Find("水")
	if !ok {
		t.Fatal("Find(水) = not found")
	}
	if c.Pinyin != "shuǐ" || c.Meaning != "water" {
		t.Errorf("Find(水) = %+v", c)
	}

	if _, ok := Find("☂"); ok {
		t.Error("Find(☂) unexpectedly found")
	}
}

func TestRadicalsWinOverNumbers(t *testing.T) {
	// 一 appears in both sets; All must keep one copy.
	count := 0
	for _, c := range All() {
		if c.Glyph == "一" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("一 appears %d times in All()", count)
	}
}

func TestExtractHan(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"mixed text", "hello 水 and 火!", []string{"水", "火"}},
		{"duplicates collapsed", "水水火水", []string{"水", "火"}},
		{"no han", "abc 123 ..", nil},
		{"punctuated", "熊猫, 火, 水", []string{"熊", "猫", "火", "水"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractHan(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("ExtractHan(%q) = %v, want %v", tt.in, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ExtractHan(%q)[%d] = %q, want %q", tt.in, i, got[i], tt.want[i])
				}
			}
		})
	}
}
