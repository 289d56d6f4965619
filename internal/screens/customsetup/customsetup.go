// Package customsetup collects free text from the learner and builds a
// custom practice pool out of its Chinese characters.
package customsetup

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/junhao/radmaster/internal/catalog"
	"github.com/junhao/radmaster/internal/enrich"
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

// poolReadyMsg carries the result of a custom pool build.
type poolReadyMsg struct {
	Pool []catalog.Character
	Err  error
}

// SetupScreen is the custom-list entry form.
type SetupScreen struct {
	lookup  *enrich.Lookup
	ledger  *ledger.Service
	speaker *speech.Speaker

	input  components.TextInput
	busy   bool
	errMsg string
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates the setup screen. lookup may be nil; unknown characters
// are then dropped instead of enriched.
func New(lookup *enrich.Lookup, ledgerSvc *ledger.Service, speaker *speech.Speaker) *SetupScreen {
	return &SetupScreen{
		lookup:  lookup,
		ledger:  ledgerSvc,
		speaker: speaker,
		input:   components.NewTextInput("Paste any Chinese text here...", 500),
	}
}

func (s *SetupScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *SetupScreen) Title() string {
	return "Custom List"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	if s.busy {
		return []layout.KeyHint{{Key: "...", Description: "Looking up characters"}}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case poolReadyMsg:
		s.busy = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			s.input.Submit(false)
			return s, nil
		}
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{
				Screen: play.New(session.New(session.ModeCustom, msg.Pool), s.ledger, s.speaker),
			}
		}

	case tea.KeyMsg:
		if msg.String() == "enter" {
			// A build is already in flight; a second Enter must not
			// start another.
			if s.busy {
				return s, nil
			}
			text := strings.TrimSpace(s.input.Value())
			if text == "" {
				return s, nil
			}
			s.busy = true
			s.errMsg = ""
			return s, s.buildPool(text)
		}
		if s.busy {
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *SetupScreen) buildPool(text string) tea.Cmd {
	return func() tea.Msg {
		var enricher session.Enricher
		if s.lookup != nil {
			enricher = s.lookup
		}
		pool, err := session.BuildCustomPool(context.Background(), text, enricher)
		return poolReadyMsg{Pool: pool, Err: err}
	}
}

func (s *SetupScreen) View(width, height int) string {
	title := theme.Title.Render("Build a Custom List")
	help := theme.Subtitle.Render("Paste a sentence, a menu, a song — any Chinese text.")

	inputBox := theme.Card.Width(min(60, width-4)).Render(s.input.View())

	var status string
	switch {
	case s.busy:
		status = theme.Hint.Render("Looking up unknown characters...")
	case s.errMsg != "":
		status = theme.Incorrect.Render(s.errMsg)
	default:
		status = " "
	}

	content := strings.Join([]string{title, help, "", inputBox, "", status}, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
