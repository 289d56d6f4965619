package quiz

import "github.com/junhao/radmaster/internal/catalog"

// OptionCount is the number of answer options shown per round.
const OptionCount = 4

// DistractorCount is the number of wrong options per round.
const DistractorCount = OptionCount - 1

// Round is one quiz question: a target character and four options in
// presentation order, exactly one of which is the target.
type Round struct {
	Target  catalog.Character
	Options []catalog.Character

	resolved bool
	chosen   catalog.Character
	verdict  Verdict
}

// Verdict is the outcome of answering a round.
type Verdict struct {
	Correct bool
	Target  catalog.Character
}

// Resolve evaluates the learner's choice. The first call decides the
// verdict; later calls return it unchanged so a double-submitted answer
// can never count twice.
func (r *Round) Resolve(chosen catalog.Character) Verdict {
	if r.resolved {
		return r.verdict
	}
	r.resolved = true
	r.chosen = chosen
	r.verdict = Verdict{
		Correct: chosen.Glyph == r.Target.Glyph,
		Target:  r.Target,
	}
	return r.verdict
}

// Resolved reports whether an answer has been recorded.
func (r *Round) Resolved() bool {
	return r.resolved
}

// Chosen returns the option the learner picked. Zero value until resolved.
func (r *Round) Chosen() catalog.Character {
	return r.chosen
}
