package combat

import (
	"fmt"

	"oddcalc/dice"
	"oddcalc/game"
)

type Option func(c *Calculator)

// Calculator resolves single battles. Modifier flags are fixed for its
// lifetime; the optional log accumulates across every battle it resolves.
type Calculator struct {
	fort  bool
	ark   bool
	rules game.Rules
	src   dice.Source
	log   *Log
}

func WithFortification(fort bool) Option {
	return func(c *Calculator) {
		c.fort = fort
	}
}

func WithCounterFortification(ark bool) Option {
	return func(c *Calculator) {
		c.ark = ark
	}
}

func WithLogging(enabled bool) Option {
	return func(c *Calculator) {
		if enabled {
			c.log = NewLog()
		} else {
			c.log = nil
		}
	}
}

// WithRules replaces the standard rules. The fortification flags are then
// up to the given rules.
func WithRules(rules game.Rules) Option {
	return func(c *Calculator) {
		c.rules = rules
	}
}

func WithSource(src dice.Source) Option {
	return func(c *Calculator) {
		if src != nil {
			c.src = src
		}
	}
}

func NewCalculator(options ...Option) *Calculator {
	c := &Calculator{ // Default values
		src: dice.Default,
	}
	for _, option := range options {
		option(c)
	}
	if c.rules == nil {
		c.rules = game.NewStandardRules(c.fort, c.ark)
	}
	return c
}

// Log returns the event log, or nil when logging is disabled.
func (c *Calculator) Log() *Log {
	return c.log
}

// DoCombat resolves one battle and reports whether the attacker won. Two unit
// stacks fight a unit combat; any hero on either side makes it a hero combat.
func (c *Calculator) DoCombat(attacker, defender game.Combatant) (bool, error) {
	if err := game.Validate(attacker); err != nil {
		return false, fmt.Errorf("attacker: %w", err)
	}
	if err := game.Validate(defender); err != nil {
		return false, fmt.Errorf("defender: %w", err)
	}

	attackerUnits, ok1 := attacker.(game.Units)
	defenderUnits, ok2 := defender.(game.Units)
	if ok1 && ok2 {
		return c.UnitCombat(attackerUnits.Count, defenderUnits.Count), nil
	}
	return c.HeroCombat(attacker, defender)
}

// UnitCombat fights rounds of up to three attacker dice against up to two
// defender dice until one side is wiped out. A round that wipes out both
// sides counts as a defender win.
func (c *Calculator) UnitCombat(attackers, defenders int) bool {
	atk := attackers
	def := defenders
	for atk > 0 && def > 0 {
		damage := c.unitRound(atk, def)
		atk = max(atk-damage.AttackerLoss, 0)
		def = max(def-damage.DefenderLoss, 0)
	}

	won := atk > 0
	c.addLog(Victory{AttackerWon: won})
	return won
}

func (c *Calculator) unitRound(attackers, defenders int) game.Damage {
	attackerRolls := dice.Roll(c.src, min(attackers, c.rules.MaxAttackDice()), dice.D6)
	defenderRolls := dice.Roll(c.src, min(defenders, c.rules.MaxDefendDice()), dice.D6)
	c.addLog(AttackerRoll{Dice: clone(attackerRolls)})
	c.addLog(DefenderRoll{Dice: clone(defenderRolls)})

	c.rules.ApplyModifiers(attackerRolls, defenderRolls)
	damage := c.rules.DetermineAttackOutcome(attackerRolls, defenderRolls)

	c.addLog(DamageDealt{Damage: damage})
	return damage
}

// HeroCombat fights single d20 rolls plus attack until either side runs out of
// health. At least one side must be a hero.
func (c *Calculator) HeroCombat(attacker, defender game.Combatant) (bool, error) {
	_, ok1 := attacker.(game.Units)
	_, ok2 := defender.(game.Units)
	if ok1 && ok2 {
		return false, fmt.Errorf("%w: units cannot fight units in hero combat", game.ErrInvalidCombat)
	}
	if err := game.Validate(attacker); err != nil {
		return false, fmt.Errorf("attacker: %w", err)
	}
	if err := game.Validate(defender); err != nil {
		return false, fmt.Errorf("defender: %w", err)
	}
	if err := requireHealth(attacker); err != nil {
		return false, fmt.Errorf("attacker: %w", err)
	}
	if err := requireHealth(defender); err != nil {
		return false, fmt.Errorf("defender: %w", err)
	}

	c.addLog(CombatStart{Attacker: attacker, Defender: defender})

	for attacker.Health() > 0 && defender.Health() > 0 {
		attackerRoll := dice.Roll(c.src, 1, dice.D20)[0] + attacker.Attack()
		defenderRoll := dice.Roll(c.src, 1, dice.D20)[0] + defender.Attack() + c.rules.DefenseBonus()
		c.addLog(AttackerRoll{Dice: []int{attackerRoll}})
		c.addLog(DefenderRoll{Dice: []int{defenderRoll}})

		var damage game.Damage
		if defenderRoll >= attackerRoll {
			attacker = attacker.Damage()
			damage.AttackerLoss = 1
		} else {
			defender = defender.Damage()
			damage.DefenderLoss = 1
		}
		c.addLog(DamageDealt{Damage: damage})
	}

	won := attacker.Health() != 0
	c.addLog(Victory{AttackerWon: won})
	return won, nil
}

// requireHealth rejects a hero that enters combat already defeated.
func requireHealth(side game.Combatant) error {
	if hero, ok := side.(game.Hero); ok && hero.HealthValue == 0 {
		return fmt.Errorf("%w: hero starts with no health", game.ErrInvalidCombat)
	}
	return nil
}

func (c *Calculator) addLog(event Event) {
	if c.log != nil {
		c.log.Add(event)
	}
}

func clone(rolls []int) []int {
	out := make([]int, len(rolls))
	copy(out, rolls)
	return out
}
