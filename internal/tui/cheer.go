package tui

import "math/rand"

var encouragements = []string{
	"Nice!",
	"Keep going!",
	"You're doing great!",
	"Don't stop now!",
	"Keep it up!",
	"Boo ya!!",
	"You're on fire!",
	"You're a typing wizard!",
	"You're a typing ninja!",
	"You're a typing machine!",
}

func pickEncouragement(rnd *rand.Rand) string {
	return encouragements[rnd.Intn(len(encouragements))]
}
