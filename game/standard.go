package game

type StandardRules struct {
	MaxAttack int
	MaxDefend int
	Fort      bool // Fortification: defender's best die +1
	Ark       bool // Counter-fortification: with Fort, the +1 goes to the attacker instead
}

func NewStandardRules(fort, ark bool) *StandardRules {
	return &StandardRules{
		MaxAttack: 3,
		MaxDefend: 2,
		Fort:      fort,
		Ark:       ark,
	}
}

func (sr *StandardRules) MaxAttackDice() int {
	return sr.MaxAttack
}

func (sr *StandardRules) MaxDefendDice() int {
	return sr.MaxDefend
}

func (sr *StandardRules) ApplyModifiers(attackerRolls, defenderRolls []int) {
	// Ark without fort does nothing
	if sr.Fort && sr.Ark {
		if len(attackerRolls) > 0 {
			attackerRolls[0]++
		}
	} else if sr.Fort {
		if len(defenderRolls) > 0 {
			defenderRolls[0]++
		}
	}
}

func (sr *StandardRules) DetermineAttackOutcome(attackerRolls, defenderRolls []int) Damage {
	// Ties go to the defender
	var damage Damage
	battles := min(len(attackerRolls), len(defenderRolls))
	for i := 0; i < battles; i++ {
		if defenderRolls[i] >= attackerRolls[i] {
			damage.AttackerLoss++
		} else {
			damage.DefenderLoss++
		}
	}
	return damage
}

func (sr *StandardRules) DefenseBonus() int {
	if sr.Fort {
		return 1
	}
	return 0
}
