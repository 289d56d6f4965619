package ledger

import (
	"context"
	"strings"
	"testing"

	"github.com/junhao/radmaster/internal/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(context.Background(), store.NewMemoryLedgerRepo())
}

func TestRecordCreatesAndUpdates(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	if err := s.Record(ctx, "水", true); err != nil {
		t.Fatal(err)
	}
	if err := s.Record(ctx, "水", false); err != nil {
		t.Fatal(err)
	}
	if err := s.Record(ctx, "水", true); err != nil {
		t.Fatal(err)
	}

	e, ok := s.Get("水")
	if !ok {
		t.Fatal("entry for 水 missing")
	}
	if e.Tested != 3 || e.Correct != 2 || e.Wrong != 1 {
		t.Errorf("entry = %+v", e)
	}
}

func TestTestedInvariant(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	answers := []struct {
		glyph   string
		correct bool
	}{
		{"水", true}, {"火", false}, {"水", false}, {"木", true},
		{"火", false}, {"水", true}, {"木", false},
	}
	for _, a := range answers {
		if err := s.Record(ctx, a.glyph, a.correct); err != nil {
			t.Fatal(err)
		}
	}

	for _, e := range s.Entries() {
		if e.Tested != e.Correct+e.Wrong {
			t.Errorf("%q: tested %d != correct %d + wrong %d", e.Glyph, e.Tested, e.Correct, e.Wrong)
		}
	}
}

func TestRecordFlushesThrough(t *testing.T) {
	repo := store.NewMemoryLedgerRepo()
	ctx := context.Background()

	s := NewService(ctx, repo)
	if err := s.Record(ctx, "马", true); err != nil {
		t.Fatal(err)
	}

	// A fresh service over the same repo sees the committed entry.
	s2 := NewService(ctx, repo)
	e, ok := s2.Get("马")
	if !ok || e.Tested != 1 || e.Correct != 1 {
		t.Errorf("reloaded entry = %+v, ok = %v", e, ok)
	}
}

func TestClear(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	_ = s.Record(ctx, "水", true)
	if err := s.Clear(ctx); err != nil {
		t.Fatal(err)
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d after Clear", s.Len())
	}
}

func TestExportFormat(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	// 水: 3 correct, 1 wrong -> 75.0%
	for _, correct := range []bool{true, true, true, false} {
		_ = s.Record(ctx, "水", correct)
	}

	var b strings.Builder
	if err := s.ExportCSV(&b); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("export has %d lines: %q", len(lines), b.String())
	}
	if lines[0] != "Character,Tested,Correct,Wrong,Accuracy" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "水,4,3,1,75.0%" {
		t.Errorf("row = %q", lines[1])
	}
}

func TestImportMerge(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	in := "Character,Tested,Correct,Wrong\n火,2,1,1\n"
	merged, err := s.ImportCSV(ctx, strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if merged != 1 {
		t.Errorf("merged = %d, want 1", merged)
	}
	e, ok := s.Get("火")
	if !ok {
		t.Fatal("火 not imported")
	}
	if e.Tested != 2 || e.Correct != 1 || e.Wrong != 1 {
		t.Errorf("entry = %+v", e)
	}
}

func TestImportOverwritesNotAdds(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	_ = s.Record(ctx, "火", true)
	_ = s.Record(ctx, "火", true)

	_, err := s.ImportCSV(ctx, strings.NewReader("Character,Tested,Correct,Wrong\n火,2,1,1\n"))
	if err != nil {
		t.Fatal(err)
	}

	e, _ := s.Get("火")
	if e.Tested != 2 || e.Correct != 1 || e.Wrong != 1 {
		t.Errorf("import added instead of replacing: %+v", e)
	}
}

func TestImportSkipsMalformedRows(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	in := strings.Join([]string{
		"Character,Tested,Correct,Wrong,Accuracy",
		"水,4,3,1,75.0%",
		"bogus,row",
		"火,x,1,1",
		"",
		"木,2,2,0,100.0%",
	}, "\n")

	merged, err := s.ImportCSV(ctx, strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if merged != 2 {
		t.Errorf("merged = %d, want 2", merged)
	}
	if _, ok := s.Get("火"); ok {
		t.Error("malformed 火 row was imported")
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	for i, g := range []string{"水", "火", "木", "金", "土"} {
		for j := 0; j <= i; j++ {
			_ = s.Record(ctx, g, j%2 == 0)
		}
	}

	var b strings.Builder
	if err := s.ExportCSV(&b); err != nil {
		t.Fatal(err)
	}

	fresh := newTestService(t)
	if _, err := fresh.ImportCSV(ctx, strings.NewReader(b.String())); err != nil {
		t.Fatal(err)
	}

	want := s.Entries()
	got := fresh.Entries()
	if len(got) != len(want) {
		t.Fatalf("round trip: %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}
