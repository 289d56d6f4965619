package play

// advanceMsg fires when the verdict display period ends. Seq ties it
// to the round that scheduled it so a stale timer from a skipped round
// cannot advance the next one early.
type advanceMsg struct {
	Seq int
}
