package combat

import (
	"sync"
	"testing"

	"oddcalc/game"

	"github.com/stretchr/testify/require"
)

func TestEventString(t *testing.T) {
	tests := []struct {
		event Event
		want  string
	}{
		{CombatStart{Attacker: game.Units{Count: 10}, Defender: game.Hero{AttackValue: 2, HealthValue: 5}},
			"Attacker: 10 units, Defender: hero with 2 attack and 5 defense"},
		{AttackerRoll{Dice: []int{5, 3, 1}}, "Attacker rolled: [5 3 1]"},
		{DefenderRoll{Dice: []int{4}}, "Defender rolled: [4]"},
		{DamageDealt{Damage: game.Damage{AttackerLoss: 2, DefenderLoss: 0}}, "Attacker dealt: 2 damage, Defender dealt: 0 damage"},
		{Victory{AttackerWon: true}, "Attacker wins."},
		{Victory{AttackerWon: false}, "Defender wins."},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, tt.event.String())
		})
	}
}

func TestLog(t *testing.T) {
	t.Run("renders in order", func(t *testing.T) {
		l := NewLog()
		l.Add(AttackerRoll{Dice: []int{2}})
		l.Add(Victory{AttackerWon: false})

		require.Equal(t, "Attacker rolled: [2]\nDefender wins.\n", l.String())
	})

	t.Run("empty log renders nothing", func(t *testing.T) {
		require.Equal(t, "", NewLog().String())
	})

	t.Run("events are a snapshot", func(t *testing.T) {
		l := NewLog()
		l.Add(Victory{AttackerWon: true})
		events := l.Events()
		l.Add(Victory{AttackerWon: false})

		require.Len(t, events, 1)
		require.Equal(t, 2, l.Len())
	})

	t.Run("concurrent adds are not lost", func(t *testing.T) {
		l := NewLog()
		var wg sync.WaitGroup
		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 50; j++ {
					l.Add(Victory{AttackerWon: true})
				}
			}()
		}
		wg.Wait()

		require.Equal(t, 800, l.Len())
	})
}
