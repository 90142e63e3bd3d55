package simulator

import (
	"testing"

	"oddcalc/game"

	"github.com/stretchr/testify/require"
)

func TestResultToPercent(t *testing.T) {
	tests := []struct {
		wins int
		want string
	}{
		{wins: 0, want: "0.00"},
		{wins: 50, want: "50.00"},
		{wins: 100, want: "100.00"},
		{wins: 33, want: "33.00"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			result, err := NewResult(tt.wins, 100)
			require.NoError(t, err)
			require.Equal(t, tt.want, result.ToPercent())
		})
	}
}

func TestResultPercent(t *testing.T) {
	result, err := NewResult(1, 3)
	require.NoError(t, err)

	require.InDelta(t, 33.3333, result.Percent(), 0.0001)
	require.Equal(t, "33.33", result.ToPercent())
	require.Equal(t, "attacker has 33.33% chance of winning", result.String())
}

func TestNewResultInvalid(t *testing.T) {
	tests := []struct {
		name  string
		wins  int
		total int
	}{
		{name: "zero trials", wins: 0, total: 0},
		{name: "negative trials", wins: 0, total: -5},
		{name: "negative wins", wins: -1, total: 10},
		{name: "more wins than trials", wins: 11, total: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewResult(tt.wins, tt.total)
			require.ErrorIs(t, err, game.ErrInvalidArgument)
		})
	}
}
