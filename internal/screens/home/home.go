// Package home renders the mode-selection menu and the mascot
// greeting.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/junhao/radmaster/internal/catalog"
	"github.com/junhao/radmaster/internal/enrich"
	"github.com/junhao/radmaster/internal/ledger"
	"github.com/junhao/radmaster/internal/router"
	"github.com/junhao/radmaster/internal/screen"
	"github.com/junhao/radmaster/internal/screens/customsetup"
	"github.com/junhao/radmaster/internal/screens/play"
	"github.com/junhao/radmaster/internal/screens/statsbrowser"
	"github.com/junhao/radmaster/internal/session"
	"github.com/junhao/radmaster/internal/speech"
	"github.com/junhao/radmaster/internal/ui/components"
	"github.com/junhao/radmaster/internal/ui/theme"
)

// Deps are the services the home screen threads into the screens it
// launches.
type Deps struct {
	Ledger  *ledger.Service
	Lookup  *enrich.Lookup
	Speaker *speech.Speaker
}

// HomeScreen is the mode-selection screen.
type HomeScreen struct {
	deps   Deps
	avatar catalog.Avatar
	menu   components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen with a freshly drawn mascot.
func New(deps Deps) *HomeScreen {
	h := &HomeScreen{
		deps:   deps,
		avatar: catalog.RandomAvatar(),
	}

	items := []components.MenuItem{
		{Label: "ENDLESS JOURNEY", Hint: "all radicals", Action: func() tea.Cmd {
			return h.startQuiz(session.ModeEndless, catalog.Radicals())
		}},
		{Label: "FOCUS 5", Hint: "five at a time", Action: func() tea.Cmd {
			return h.startQuiz(session.ModeFocus, session.DrawFocus(catalog.Radicals(), session.FocusSize))
		}},
		{Label: "NUMBERS", Hint: "零 through 万", Action: func() tea.Cmd {
			return h.startQuiz(session.ModeNumbers, catalog.Numbers())
		}},
		{Label: "CUSTOM LIST", Hint: "paste your own text", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: customsetup.New(deps.Lookup, deps.Ledger, deps.Speaker),
				}
			}
		}},
		{Label: "STATS & MANAGE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: statsbrowser.New(deps.Ledger, deps.Speaker),
				}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) startQuiz(mode session.Mode, pool []catalog.Character) tea.Cmd {
	return func() tea.Msg {
		return router.PushScreenMsg{
			Screen: play.New(session.New(mode, pool), h.deps.Ledger, h.deps.Speaker),
		}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	title := theme.Title.Render("部首大师 · Radical Master")
	subtitle := theme.Subtitle.Render("Learn the building blocks of Chinese characters")

	greeting := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Align(lipgloss.Center).
		Render(fmt.Sprintf("%s  %s says: %s", h.avatar.Emoji, h.avatar.Name, h.avatar.Greeting))

	menu := theme.Card.Render(h.menu.View())

	content := strings.Join([]string{title, subtitle, "", greeting, "", menu}, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
