package quiz

import (
	"errors"
	"fmt"
)

// ErrEmptyPool signals that the active pool has no characters to draw
// from. This is a benign outcome (e.g. an empty custom list), not a bug:
// callers show an empty-state message instead of a round.
var ErrEmptyPool = errors.New("no characters to quiz")

// InsufficientPoolError reports a distractor pool too small to supply
// three wrong options distinct from the target.
type InsufficientPoolError struct {
	TargetGlyph string
	Available   int
}

func (e *InsufficientPoolError) Error() string {
	return fmt.Sprintf("distractor pool has only %d glyphs other than %q, need %d",
		e.Available, e.TargetGlyph, DistractorCount)
}
