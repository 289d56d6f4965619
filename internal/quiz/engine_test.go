package quiz

import (
	"errors"
	"testing"

	"github.com/junhao/radmaster/internal/catalog"
)

func pool(glyphs ...string) []catalog.Character {
	out := make([]catalog.Character, len(glyphs))
	for i, g := range glyphs {
		out[i] = catalog.Character{Glyph: g, Pinyin: "p" + g, Meaning: "m" + g}
	}
	return out
}

func TestGenerateInvariants(t *testing.T) {
	active := pool("水", "火", "木")
	distractors := pool("水", "火", "木", "金", "土", "山")

	for i := 0; i < 200; i++ {
		r, err := Generate(active, distractors)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if len(r.Options) != OptionCount {
			t.Fatalf("got %d options, want %d", len(r.Options), OptionCount)
		}

		seen := make(map[string]bool)
		targetHits := 0
		for _, o := range r.Options {
			if seen[o.Glyph] {
				t.Fatalf("duplicate option glyph %q", o.Glyph)
			}
			seen[o.Glyph] = true
			if o.Glyph == r.Target.Glyph {
				targetHits++
			}
		}
		if targetHits != 1 {
			t.Fatalf("target appears %d times in options", targetHits)
		}
	}
}

func TestGenerateEmptyActivePool(t *testing.T) {
	_, err := Generate(nil, pool("水", "火", "木", "金"))
	if !errors.Is(err, ErrEmptyPool) {
		t.Fatalf("err = %v, want ErrEmptyPool", err)
	}
}

func TestGenerateInsufficientDistractors(t *testing.T) {
	// Three distinct glyphs, one of which is always the target:
	// only two candidates remain.
	active := pool("水")
	distractors := pool("水", "火", "木")

	_, err := Generate(active, distractors)
	var ipe *InsufficientPoolError
	if !errors.As(err, &ipe) {
		t.Fatalf("err = %v, want *InsufficientPoolError", err)
	}
	if ipe.Available != 2 {
		t.Errorf("Available = %d, want 2", ipe.Available)
	}
}

func TestGenerateExactMinimumAlwaysTerminates(t *testing.T) {
	// Four distinct glyphs total is the minimum viable distractor pool.
	active := pool("水")
	distractors := pool("水", "火", "木", "金")

	for i := 0; i < 100; i++ {
		r, err := Generate(active, distractors)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if r.Target.Glyph != "水" {
			t.Fatalf("target = %q", r.Target.Glyph)
		}
	}
}

func TestGenerateDistractorsMayDifferFromActivePool(t *testing.T) {
	// Custom mode draws targets from the custom list but distractors
	// from the wider catalog union.
	active := pool("猫")
	distractors := pool("水", "火", "木", "金", "猫")

	r, err := Generate(active, distractors)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for _, o := range r.Options {
		if o.Glyph != "猫" && o.Pinyin == "" {
			t.Errorf("distractor %q lost its record", o.Glyph)
		}
	}
}

func TestResolveIdempotent(t *testing.T) {
	r := &Round{Target: catalog.Character{Glyph: "水"}}
	r.Options = pool("水", "火", "木", "金")

	v1 := r.Resolve(catalog.Character{Glyph: "火"})
	if v1.Correct {
		t.Fatal("wrong answer marked correct")
	}

	// A second submission, even with the right answer, must not change
	// the recorded verdict.
	v2 := r.Resolve(catalog.Character{Glyph: "水"})
	if v2.Correct {
		t.Fatal("second Resolve changed the verdict")
	}
	if r.Chosen().Glyph != "火" {
		t.Errorf("Chosen = %q, want 火", r.Chosen().Glyph)
	}
}

func TestResolveCorrect(t *testing.T) {
	r := &Round{Target: catalog.Character{Glyph: "水", Meaning: "water"}}
	v := r.Resolve(catalog.Character{Glyph: "水"})
	if !v.Correct {
		t.Fatal("correct answer marked wrong")
	}
	if v.Target.Meaning != "water" {
		t.Errorf("verdict target = %+v", v.Target)
	}
}
