package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStandardRulesOutcome(t *testing.T) {
	rules := NewStandardRules(false, false)

	t.Run("ties go to the defender", func(t *testing.T) {
		got := rules.DetermineAttackOutcome([]int{4, 2, 1}, []int{4, 2})
		require.Equal(t, Damage{AttackerLoss: 2}, got)
	})

	t.Run("higher attacker dice win", func(t *testing.T) {
		got := rules.DetermineAttackOutcome([]int{5, 3, 0}, []int{4, 2})
		require.Equal(t, Damage{DefenderLoss: 2}, got)
	})

	t.Run("pairs only up to the shorter side", func(t *testing.T) {
		got := rules.DetermineAttackOutcome([]int{5, 5, 5}, []int{0})
		require.Equal(t, Damage{DefenderLoss: 1}, got)
	})

	t.Run("split", func(t *testing.T) {
		got := rules.DetermineAttackOutcome([]int{5, 1}, []int{3, 3})
		require.Equal(t, Damage{AttackerLoss: 1, DefenderLoss: 1}, got)
	})
}

func TestStandardRulesModifiers(t *testing.T) {
	t.Run("no fortification", func(t *testing.T) {
		attacker, defender := []int{3, 1}, []int{3, 0}
		NewStandardRules(false, false).ApplyModifiers(attacker, defender)

		require.Equal(t, []int{3, 1}, attacker)
		require.Equal(t, []int{3, 0}, defender)
	})

	t.Run("fortification boosts the defender", func(t *testing.T) {
		attacker, defender := []int{3, 1}, []int{3, 0}
		NewStandardRules(true, false).ApplyModifiers(attacker, defender)

		require.Equal(t, []int{3, 1}, attacker)
		require.Equal(t, []int{4, 0}, defender)
	})

	t.Run("counter-fortification flips the boost", func(t *testing.T) {
		attacker, defender := []int{3, 1}, []int{3, 0}
		NewStandardRules(true, true).ApplyModifiers(attacker, defender)

		require.Equal(t, []int{4, 1}, attacker)
		require.Equal(t, []int{3, 0}, defender)
	})

	t.Run("counter-fortification alone does nothing", func(t *testing.T) {
		attacker, defender := []int{3, 1}, []int{3, 0}
		NewStandardRules(false, true).ApplyModifiers(attacker, defender)

		require.Equal(t, []int{3, 1}, attacker)
		require.Equal(t, []int{3, 0}, defender)
	})

	t.Run("empty rolls are left alone", func(t *testing.T) {
		require.NotPanics(t, func() {
			NewStandardRules(true, true).ApplyModifiers([]int{}, []int{})
			NewStandardRules(true, false).ApplyModifiers([]int{}, []int{})
		})
	})
}

func TestStandardRulesDefenseBonus(t *testing.T) {
	require.Equal(t, 0, NewStandardRules(false, false).DefenseBonus())
	require.Equal(t, 1, NewStandardRules(true, false).DefenseBonus())
	require.Equal(t, 1, NewStandardRules(true, true).DefenseBonus(), "Hero combat keeps the defender bonus even with ark")
}
