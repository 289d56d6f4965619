package catalog

import "math/rand/v2"

// Avatar is a tutor mascot. Avatars never appear in quiz pools.
type Avatar struct {
	Emoji    string
	Name     string
	Greeting string
}

var avatars = []Avatar{
	{Emoji: "🐼", Name: "Bao", Greeting: "Hi! I'm Bao. Pick a mode to start!"},
	{Emoji: "🐯", Name: "Hu", Greeting: "Hi! I'm Hu. Ready to pounce on some characters?"},
	{Emoji: "🐲", Name: "Long", Greeting: "Hi! I'm Long. Let's master some characters!"},
	{Emoji: "🐵", Name: "Sun", Greeting: "Hi! I'm Sun. No monkey business, just practice!"},
	{Emoji: "🦊", Name: "Huli", Greeting: "Hi! I'm Huli. Clever learners pick a mode below."},
	{Emoji: "🐰", Name: "Tu", Greeting: "Hi! I'm Tu. Hop in and pick a mode!"},
}

// Avatars returns every tutor mascot.
func Avatars() []Avatar {
	return avatars
}

// RandomAvatar picks the tutor for this process run.
func RandomAvatar() Avatar {
	return avatars[rand.IntN(len(avatars))]
}
