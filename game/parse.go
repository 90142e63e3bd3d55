package game

import (
	"fmt"
	"regexp"
	"strconv"
)

var combatantRe = regexp.MustCompile(`^(\d+)$|^(\d+), ?(\d+)$`)

// ParseCombatant reads "<count>" as a unit stack or "<attack>,<health>" (an
// optional space after the comma) as a hero.
func ParseCombatant(s string) (Combatant, error) {
	m := combatantRe.FindStringSubmatch(s)
	if m == nil {
		return nil, fmt.Errorf("%w: cannot parse combatant %q", ErrInvalidArgument, s)
	}

	// Units only fill the first group
	if m[1] != "" {
		count, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, fmt.Errorf("%w: unit count %q: %v", ErrInvalidArgument, m[1], err)
		}
		return Units{Count: count}, nil
	}

	attack, err := strconv.Atoi(m[2])
	if err != nil {
		return nil, fmt.Errorf("%w: hero attack %q: %v", ErrInvalidArgument, m[2], err)
	}
	health, err := strconv.Atoi(m[3])
	if err != nil {
		return nil, fmt.Errorf("%w: hero health %q: %v", ErrInvalidArgument, m[3], err)
	}
	return Hero{AttackValue: attack, HealthValue: health}, nil
}
