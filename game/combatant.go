package game

import "fmt"

// Combatant is either a Units stack or a Hero. The set of implementations is
// closed; resolvers switch on the concrete type.
type Combatant interface {
	// Health is the remaining number of hits the combatant can absorb.
	Health() int
	// Attack is the value added to a hero-combat roll.
	Attack() int
	// Damage returns a copy of the combatant with one less health.
	Damage() Combatant
	fmt.Stringer

	isCombatant()
}

// Units is a homogeneous stack whose attack and health both equal its size.
type Units struct {
	Count int
}

func (u Units) Health() int { return u.Count }
func (u Units) Attack() int { return u.Count }

func (u Units) Damage() Combatant {
	return Units{Count: u.Count - 1}
}

func (u Units) String() string {
	return fmt.Sprintf("%d units", u.Count)
}

func (Units) isCombatant() {}

// Hero is an individually statted fighter.
type Hero struct {
	AttackValue int
	HealthValue int
}

func (h Hero) Health() int { return h.HealthValue }
func (h Hero) Attack() int { return h.AttackValue }

func (h Hero) Damage() Combatant {
	return Hero{AttackValue: h.AttackValue, HealthValue: h.HealthValue - 1}
}

func (h Hero) String() string {
	return fmt.Sprintf("hero with %d attack and %d defense", h.AttackValue, h.HealthValue)
}

func (Hero) isCombatant() {}

// Validate rejects negative stats.
func Validate(c Combatant) error {
	switch c := c.(type) {
	case Units:
		if c.Count < 0 {
			return fmt.Errorf("%w: negative unit count %d", ErrInvalidArgument, c.Count)
		}
	case Hero:
		if c.AttackValue < 0 || c.HealthValue < 0 {
			return fmt.Errorf("%w: negative hero stats (%d, %d)", ErrInvalidArgument, c.AttackValue, c.HealthValue)
		}
	case nil:
		return fmt.Errorf("%w: missing combatant", ErrInvalidArgument)
	default:
		return fmt.Errorf("%w: unknown combatant %T", ErrInvalidArgument, c)
	}
	return nil
}
