// Package session owns practice-session state: the active mode, its
// character pool, and the score/streak counters.
package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/junhao/radmaster/internal/catalog"
)

// Mode selects which pool a session practices.
type Mode string

const (
	ModeEndless Mode = "endless"
	ModeFocus   Mode = "focus"
	ModeNumbers Mode = "numbers"
	ModeCustom  Mode = "custom"
)

// Title returns the mode name shown in the header.
func (m Mode) Title() string {
	switch m {
	case ModeFocus:
		return "Focus 5"
	case ModeNumbers:
		return "Numbers"
	case ModeCustom:
		return "Custom List"
	default:
		return "Endless"
	}
}

const (
	// FocusSize is the size of the randomly drawn focus pool.
	FocusSize = 5

	// RewardPoints is the score reward per correct answer.
	RewardPoints = 10

	// AdvanceDelay is how long the verdict stays on screen before the
	// next round is generated.
	AdvanceDelay = 1800 * time.Millisecond

	// LevelStep is the score span of one level on the progress bar.
	LevelStep = 100
)

// State is one practice session. Counters start at zero and are mutated
// only by round resolution.
type State struct {
	ID            string
	Mode          Mode
	Pool          []catalog.Character
	Score         int
	Streak        int
	TotalAnswered int
}

// New starts a session of the given mode over pool, with all counters
// zeroed.
func New(mode Mode, pool []catalog.Character) *State {
	return &State{
		ID:   uuid.New().String(),
		Mode: mode,
		Pool: pool,
	}
}

// ApplyVerdict folds a resolved round into the counters: +10 score and
// a longer streak on a correct answer, streak back to zero on a wrong
// one.
func (s *State) ApplyVerdict(correct bool) {
	s.TotalAnswered++
	if correct {
		s.Score += RewardPoints
		s.Streak++
	} else {
		s.Streak = 0
	}
}

// ResetStreak zeroes the streak (reshuffling a pool forfeits it).
func (s *State) ResetStreak() {
	s.Streak = 0
}

// Level returns the 1-based level implied by the score.
func (s *State) Level() int {
	return s.Score/LevelStep + 1
}

// LevelProgress returns the score accumulated toward the next level.
func (s *State) LevelProgress() int {
	return s.Score % LevelStep
}

// DistractorPool returns the pool wrong options are drawn from. Custom
// lists borrow the full built-in catalog so newly learned characters
// get plausible neighbors; other modes stay within their own domain.
func (s *State) DistractorPool() []catalog.Character {
	switch s.Mode {
	case ModeNumbers:
		return catalog.Numbers()
	case ModeCustom:
		union := catalog.All()
		out := make([]catalog.Character, 0, len(union)+len(s.Pool))
		out = append(out, union...)
		out = append(out, s.Pool...)
		return out
	default:
		return catalog.Radicals()
	}
}
