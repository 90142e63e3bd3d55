package game

import "errors"

var (
	// ErrInvalidCombat reports a pairing of combatants that the requested
	// combat model cannot resolve, such as hero combat between two unit stacks.
	ErrInvalidCombat = errors.New("invalid combat configuration")

	// ErrInvalidArgument reports malformed input: negative counts, zero trials
	// or unparsable combatant text.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Damage is the number of casualties (or health points) each side loses in
// one round.
type Damage struct {
	AttackerLoss int
	DefenderLoss int
}
