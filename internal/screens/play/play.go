// Package play runs the quiz loop: show a character, take an answer,
// reveal the verdict, advance.
package play

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/junhao/radmaster/internal/catalog"
	"github.com/junhao/radmaster/internal/ledger"
	"github.com/junhao/radmaster/internal/quiz"
	"github.com/junhao/radmaster/internal/screen"
	"github.com/junhao/radmaster/internal/session"
	"github.com/junhao/radmaster/internal/speech"
	"github.com/junhao/radmaster/internal/ui/components"
	"github.com/junhao/radmaster/internal/ui/layout"
	"github.com/junhao/radmaster/internal/ui/theme"
)

// PlayScreen implements screen.Screen for an active quiz session.
type PlayScreen struct {
	state   *session.State
	ledger  *ledger.Service
	speaker *speech.Speaker
	avatar  catalog.Avatar

	round    *quiz.Round
	choices  components.ChoiceList
	tutorMsg string
	roundSeq int
	errMsg   string
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)
var _ screen.ScoreProvider = (*PlayScreen)(nil)

// New creates a PlayScreen over an already-built session.
func New(state *session.State, ledgerSvc *ledger.Service, speaker *speech.Speaker) *PlayScreen {
	return &PlayScreen{
		state:   state,
		ledger:  ledgerSvc,
		speaker: speaker,
		avatar:  catalog.RandomAvatar(),
	}
}

func (p *PlayScreen) Init() tea.Cmd {
	p.tutorMsg = startMessage(p.state)
	p.nextRound()
	return nil
}

func startMessage(s *session.State) string {
	switch s.Mode {
	case session.ModeFocus:
		return fmt.Sprintf("I picked %d random radicals for you. Let's practice!", len(s.Pool))
	case session.ModeNumbers:
		return "Learning numbers. You got this!"
	case session.ModeCustom:
		return fmt.Sprintf("Custom list ready! %d characters loaded.", len(s.Pool))
	default:
		return "Endless mode! How many can you get?"
	}
}

func (p *PlayScreen) Title() string {
	return p.state.Mode.Title()
}

func (p *PlayScreen) HeaderScore() (int, int) {
	return p.state.Score, p.state.Streak
}

func (p *PlayScreen) KeyHints() []layout.KeyHint {
	if p.round != nil && p.round.Resolved() {
		return []layout.KeyHint{
			{Key: "1-4", Description: "Answer"},
			{Key: "Esc", Description: "End session"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "1-4", Description: "Answer"},
		{Key: "S", Description: "Skip"},
	}
	if p.state.Mode == session.ModeFocus || p.state.Mode == session.ModeCustom {
		hints = append(hints, layout.KeyHint{Key: "R", Description: "Reshuffle"})
	}
	hints = append(hints,
		layout.KeyHint{Key: "P", Description: "Pronounce"},
		layout.KeyHint{Key: "M", Description: "Mute"},
		layout.KeyHint{Key: "Esc", Description: "End session"},
	)
	return hints
}

// nextRound generates a fresh round and announces its character.
func (p *PlayScreen) nextRound() {
	round, err := quiz.Generate(p.state.Pool, p.state.DistractorPool())
	if err != nil {
		p.errMsg = err.Error()
		p.round = nil
		return
	}
	p.round = round
	p.roundSeq++

	opts := make([]components.ChoiceOption, len(round.Options))
	correct := 0
	for i, c := range round.Options {
		opts[i] = components.ChoiceOption{Pinyin: c.Pinyin, Meaning: c.Meaning}
		if c.Glyph == round.Target.Glyph {
			correct = i
		}
	}
	p.choices = components.NewChoiceList(opts, correct)

	if p.speaker != nil {
		p.speaker.Say(round.Target.Glyph, false)
	}
}

func (p *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case advanceMsg:
		// Ignore timers from rounds already skipped past.
		if msg.Seq != p.roundSeq || p.round == nil || !p.round.Resolved() {
			return p, nil
		}
		p.nextRound()
		return p, nil

	case tea.KeyMsg:
		if cmd, handled := p.handleKey(msg); handled {
			return p, cmd
		}
	}
	return p, nil
}

func (p *PlayScreen) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if p.round == nil {
		return nil, false
	}

	switch msg.String() {
	case "s":
		if !p.round.Resolved() {
			p.nextRound()
			return nil, true
		}
	case "r":
		if p.reshufflePool() {
			p.state.ResetStreak()
			p.nextRound()
			return nil, true
		}
	case "m":
		if p.speaker != nil {
			p.speaker.ToggleMute()
		}
		return nil, true
	case "p":
		if p.speaker != nil {
			p.speaker.Say(p.round.Target.Glyph, true)
		}
		return nil, true
	}

	if p.round.Resolved() {
		return nil, false
	}

	before := p.choices.Submitted
	var cmd tea.Cmd
	p.choices, cmd = p.choices.Update(msg)
	if !before && p.choices.Submitted {
		return p.resolve(), true
	}
	return cmd, true
}

// resolve settles the round, books it in the ledger, and starts the
// auto-advance timer.
func (p *PlayScreen) resolve() tea.Cmd {
	chosen := p.round.Options[p.choices.ChosenIndex]
	verdict := p.round.Resolve(chosen)

	p.state.ApplyVerdict(verdict.Correct)
	if verdict.Correct {
		p.tutorMsg = fmt.Sprintf("Correct! %q is %s.", verdict.Target.Glyph, verdict.Target.Meaning)
	} else {
		p.tutorMsg = fmt.Sprintf("Oops! %q means %s.", verdict.Target.Glyph, verdict.Target.Meaning)
	}
	if p.ledger != nil {
		_ = p.ledger.Record(context.Background(), p.round.Target.Glyph, verdict.Correct)
	}
	if p.speaker != nil {
		p.speaker.Say(p.round.Target.Glyph, false)
	}

	seq := p.roundSeq
	return tea.Tick(session.AdvanceDelay, func(time.Time) tea.Msg {
		return advanceMsg{Seq: seq}
	})
}

// reshufflePool redraws or reorders the pool for the modes that allow
// it. Returns false when the mode has nothing to reshuffle.
func (p *PlayScreen) reshufflePool() bool {
	switch p.state.Mode {
	case session.ModeFocus:
		p.state.Pool = session.DrawFocus(catalog.Radicals(), session.FocusSize)
		return true
	case session.ModeCustom:
		rand.Shuffle(len(p.state.Pool), func(i, j int) {
			p.state.Pool[i], p.state.Pool[j] = p.state.Pool[j], p.state.Pool[i]
		})
		return true
	}
	return false
}

func (p *PlayScreen) View(width, height int) string {
	if p.errMsg != "" {
		content := theme.Incorrect.Render("Cannot build a round") + "\n\n" +
			theme.Body.Render(p.errMsg) + "\n\n" +
			theme.Hint.Render("Press Esc to go back")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
	}
	if p.round == nil {
		return ""
	}

	tutor := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Align(lipgloss.Center).
		Render(fmt.Sprintf("%s  %s", p.avatar.Emoji, p.tutorMsg))

	glyph := theme.Glyph.Render(renderBigGlyph(p.round.Target.Glyph))
	question := theme.Subtitle.Render("Which reading matches this character?")

	var verdictLine string
	if p.round.Resolved() {
		if p.choices.IsCorrect() {
			verdictLine = theme.Correct.Render(fmt.Sprintf("✓ Correct!  +%d", session.RewardPoints))
		} else {
			verdictLine = theme.Incorrect.Render(fmt.Sprintf(
				"✗ It was %s · %s", p.round.Target.Pinyin, p.round.Target.Meaning))
		}
	} else {
		verdictLine = " "
	}

	barWidth := 40
	if barWidth > width-8 {
		barWidth = width - 8
	}
	level := components.NewProgressBar(
		fmt.Sprintf("Level %d", p.state.Level()),
		float64(p.state.LevelProgress())/float64(session.LevelStep),
		barWidth,
	)

	content := strings.Join([]string{
		tutor,
		"",
		glyph,
		"",
		question,
		"",
		p.choices.View(),
		verdictLine,
		"",
		level.View(),
	}, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderBigGlyph pads the character into a bordered tile so it reads
// as the centerpiece of the screen.
func renderBigGlyph(glyph string) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Padding(1, 4).
		Render(glyph)
}
