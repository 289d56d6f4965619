// Package statsbrowser shows the accuracy ledger and lets the learner
// pick weak characters for a targeted practice run.
package statsbrowser

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/junhao/radmaster/internal/catalog"
	"github.com/junhao/radmaster/internal/ledger"
	"github.com/junhao/radmaster/internal/router"
	"github.com/junhao/radmaster/internal/screen"
	"github.com/junhao/radmaster/internal/screens/play"
	"github.com/junhao/radmaster/internal/session"
	"github.com/junhao/radmaster/internal/speech"
	"github.com/junhao/radmaster/internal/ui/components"
	"github.com/junhao/radmaster/internal/ui/layout"
	"github.com/junhao/radmaster/internal/ui/theme"
)

const exportFileName = "radmaster-stats.csv"

// StatsScreen browses the per-character ledger.
type StatsScreen struct {
	ledger  *ledger.Service
	speaker *speech.Speaker

	filter    components.TextInput
	selection ledger.Selection
	cursor    int
	filtered  []catalog.Character
	confirm   bool
	status    string
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)
var _ screen.EscHandler = (*StatsScreen)(nil)

// New creates the stats browser over the current ledger contents.
func New(ledgerSvc *ledger.Service, speaker *speech.Speaker) *StatsScreen {
	s := &StatsScreen{
		ledger:    ledgerSvc,
		speaker:   speaker,
		filter:    components.NewTextInput("Filter by pinyin, meaning, or character", 40),
		selection: ledger.Selection{},
	}
	s.refilter()
	return s
}

// candidates resolves every ledger glyph against the catalog. Glyphs
// that were enriched in a past session keep their stats but render
// without pinyin or meaning.
func (s *StatsScreen) candidates() []catalog.Character {
	var out []catalog.Character
	for _, e := range s.ledger.Entries() {
		if c, ok := catalog.Find(e.Glyph); ok {
			out = append(out, c)
		} else {
			out = append(out, catalog.Character{Glyph: e.Glyph})
		}
	}
	return out
}

func (s *StatsScreen) refilter() {
	s.filtered = ledger.Filter(s.filter.Value(), s.candidates())
	if s.cursor >= len(s.filtered) {
		s.cursor = len(s.filtered) - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

func (s *StatsScreen) Init() tea.Cmd {
	return s.filter.Init()
}

func (s *StatsScreen) Title() string {
	return "Stats"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	if s.confirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Wipe all stats"},
			{Key: "N", Description: "Keep them"},
		}
	}
	return []layout.KeyHint{
		{Key: "Space", Description: "Select"},
		{Key: "A/N", Description: "All/None"},
		{Key: "Enter", Description: "Practice"},
		{Key: "Ctrl+E", Description: "Export"},
		{Key: "Ctrl+X", Description: "Clear"},
		{Key: "Esc", Description: "Back"},
	}
}

// HandleEsc cancels a pending clear confirmation instead of leaving.
func (s *StatsScreen) HandleEsc() (tea.Cmd, bool) {
	if s.confirm {
		s.confirm = false
		return nil, true
	}
	return nil, false
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.confirm {
		switch kmsg.String() {
		case "y", "Y":
			s.confirm = false
			if err := s.ledger.Clear(context.Background()); err != nil {
				s.status = "clear failed: " + err.Error()
			} else {
				s.status = "all stats cleared"
			}
			s.selection = ledger.Selection{}
			s.refilter()
		case "n", "N", "esc":
			s.confirm = false
		}
		return s, nil
	}

	switch kmsg.String() {
	case "up", "ctrl+p":
		if s.cursor > 0 {
			s.cursor--
		}
		return s, nil
	case "down", "ctrl+n":
		if s.cursor < len(s.filtered)-1 {
			s.cursor++
		}
		return s, nil
	case "space":
		if s.cursor < len(s.filtered) {
			s.selection.Toggle(s.filtered[s.cursor].Glyph)
		}
		return s, nil
	case "ctrl+a":
		s.selection.AddAll(s.filtered)
		return s, nil
	case "ctrl+d":
		s.selection.RemoveAll(s.filtered)
		return s, nil
	case "ctrl+e":
		s.exportCSV()
		return s, nil
	case "ctrl+x":
		if s.ledger.Len() > 0 {
			s.confirm = true
		}
		return s, nil
	case "enter":
		return s, s.startPractice()
	}

	var cmd tea.Cmd
	s.filter, cmd = s.filter.Update(msg)
	s.refilter()
	return s, cmd
}

// startPractice launches a custom session over the selected glyphs.
// Glyphs without catalog data cannot form answer options and are left
// out.
func (s *StatsScreen) startPractice() tea.Cmd {
	picked := s.selection.Characters(s.filtered)
	var pool []catalog.Character
	for _, c := range picked {
		if c.Pinyin != "" {
			pool = append(pool, c)
		}
	}
	if len(pool) == 0 {
		s.status = "select at least one known character first"
		return nil
	}
	return func() tea.Msg {
		return router.PushScreenMsg{
			Screen: play.New(session.New(session.ModeCustom, pool), s.ledger, s.speaker),
		}
	}
}

func (s *StatsScreen) exportCSV() {
	path := filepath.Join(".", exportFileName)
	f, err := os.Create(path)
	if err != nil {
		s.status = "export failed: " + err.Error()
		return
	}
	defer f.Close()
	if err := s.ledger.ExportCSV(f); err != nil {
		s.status = "export failed: " + err.Error()
		return
	}
	s.status = "exported to " + path
}

func (s *StatsScreen) View(width, height int) string {
	if s.confirm {
		content := theme.Incorrect.Render("Wipe all recorded stats?") + "\n\n" +
			theme.Body.Render("This deletes every character's history. y/N")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
	}

	var b strings.Builder
	b.WriteString(s.filter.View() + "\n\n")

	header := fmt.Sprintf("    %-4s %-12s %-20s %7s %7s %7s %9s",
		"字", "Pinyin", "Meaning", "Tested", "Right", "Wrong", "Accuracy")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true).Render(header) + "\n")

	if len(s.filtered) == 0 {
		b.WriteString("\n" + theme.Hint.Render("No characters recorded yet. Play a round first!") + "\n")
	}

	visible := layout.ContentHeight(height+layout.HeaderHeight+layout.FooterHeight) - 6
	if visible < 4 {
		visible = 4
	}
	start := 0
	if s.cursor >= visible {
		start = s.cursor - visible + 1
	}

	for i := start; i < len(s.filtered) && i < start+visible; i++ {
		c := s.filtered[i]
		e, _ := s.ledger.Get(c.Glyph)

		mark := "[ ]"
		if s.selection[c.Glyph] {
			mark = "[x]"
		}
		pinyin, meaning := c.Pinyin, c.Meaning
		if pinyin == "" {
			pinyin, meaning = "—", "—"
		}
		row := fmt.Sprintf("%s %-4s %-12s %-20s %7d %7d %7d %8.1f%%",
			mark, c.Glyph, pinyin, truncate(meaning, 20),
			e.Tested, e.Correct, e.Wrong, e.Accuracy())

		switch {
		case i == s.cursor:
			b.WriteString(theme.Selected.Render("▸ "+row) + "\n")
		case s.selection[c.Glyph]:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Render("  "+row) + "\n")
		default:
			b.WriteString(theme.Body.Render("  "+row) + "\n")
		}
	}

	if s.status != "" {
		b.WriteString("\n" + theme.Hint.Render(s.status))
	}

	return lipgloss.NewStyle().Padding(1, 4).Render(b.String())
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
