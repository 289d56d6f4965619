package statsbrowser

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/junhao/radmaster/internal/ledger"
	"github.com/junhao/radmaster/internal/router"
	"github.com/junhao/radmaster/internal/store"
)

func seededLedger(t *testing.T) *ledger.Service {
	t.Helper()
	ctx := context.Background()
	svc := ledger.NewService(ctx, store.NewMemoryLedgerRepo())
	svc.Record(ctx, "水", true)
	svc.Record(ctx, "水", false)
	svc.Record(ctx, "火", true)
	return svc
}

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestToggleAndPractice(t *testing.T) {
	s := New(seededLedger(t), nil)
	s.Init()

	s.Update(tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})
	if !s.selection["水"] {
		t.Fatal("space did not select the cursor row")
	}

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("practice produced no command")
	}
	nav, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("navigation = %T, want PushScreenMsg", cmd())
	}
	if nav.Screen == nil {
		t.Fatal("no practice screen")
	}
}

func TestPracticeWithoutSelection(t *testing.T) {
	s := New(seededLedger(t), nil)
	s.Init()

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("practice with nothing selected should stay put")
	}
	if s.status == "" {
		t.Error("expected a status hint")
	}
}

func TestFilterNarrowsRows(t *testing.T) {
	s := New(seededLedger(t), nil)
	s.Init()

	for _, r := range "water" {
		s.Update(key(r))
	}
	if len(s.filtered) != 1 || s.filtered[0].Glyph != "水" {
		t.Fatalf("filtered = %v, want just 水", s.filtered)
	}
}

func TestClearNeedsConfirmation(t *testing.T) {
	svc := seededLedger(t)
	s := New(svc, nil)
	s.Init()

	s.Update(tea.KeyPressMsg{Code: 'x', Mod: tea.ModCtrl})
	if !s.confirm {
		t.Fatal("ctrl+x did not ask for confirmation")
	}

	// Esc cancels without touching the ledger.
	if _, handled := s.HandleEsc(); !handled {
		t.Fatal("Esc during confirm not intercepted")
	}
	if svc.Len() != 2 {
		t.Errorf("cancel still cleared the ledger: %d entries", svc.Len())
	}

	s.Update(tea.KeyPressMsg{Code: 'x', Mod: tea.ModCtrl})
	s.Update(key('y'))
	if svc.Len() != 0 {
		t.Errorf("confirmed clear left %d entries", svc.Len())
	}
}
