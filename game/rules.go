package game

type Rules interface {
	MaxAttackDice() int
	MaxDefendDice() int
	// ApplyModifiers boosts the highest die of whichever side holds the
	// fortification advantage. Rolls must be sorted highest first.
	ApplyModifiers(attackerRolls, defenderRolls []int)
	DetermineAttackOutcome(attackerRolls, defenderRolls []int) Damage
	// DefenseBonus is added to the defender's roll in hero combat.
	DefenseBonus() int
}
