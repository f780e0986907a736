package settlement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakfield/trackside/internal/domain"
)

// Five horses A through E with ids 1 through 5. The race finishes
// C, A, E, B, D.
const (
	horseA int64 = 1
	horseB int64 = 2
	horseC int64 = 3
	horseD int64 = 4
	horseE int64 = 5
)

var finishOrder = []int64{horseC, horseA, horseE, horseB, horseD}

func TestResolveWager_TruthTable(t *testing.T) {
	tests := []struct {
		name      string
		betType   domain.BetType
		selection []int64
		want      domain.Resolution
	}{
		{"win on the winner", domain.BetTypeWin, []int64{horseC}, domain.ResolutionWon},
		{"win on second place", domain.BetTypeWin, []int64{horseA}, domain.ResolutionLost},
		{"win on last place", domain.BetTypeWin, []int64{horseD}, domain.ResolutionLost},

		{"place on first", domain.BetTypePlace, []int64{horseC}, domain.ResolutionWon},
		{"place on second", domain.BetTypePlace, []int64{horseA}, domain.ResolutionWon},
		{"place on third", domain.BetTypePlace, []int64{horseE}, domain.ResolutionLost},

		{"show on first", domain.BetTypeShow, []int64{horseC}, domain.ResolutionWon},
		{"show on second", domain.BetTypeShow, []int64{horseA}, domain.ResolutionWon},
		{"show on third", domain.BetTypeShow, []int64{horseE}, domain.ResolutionWon},
		{"show on fourth", domain.BetTypeShow, []int64{horseB}, domain.ResolutionLost},

		{"exacta exact order", domain.BetTypeExacta, []int64{horseC, horseA}, domain.ResolutionWon},
		{"exacta reversed", domain.BetTypeExacta, []int64{horseA, horseC}, domain.ResolutionLost},
		{"exacta wrong pair", domain.BetTypeExacta, []int64{horseC, horseE}, domain.ResolutionLost},

		{"quinella exact order", domain.BetTypeQuinella, []int64{horseC, horseA}, domain.ResolutionWon},
		{"quinella reversed", domain.BetTypeQuinella, []int64{horseA, horseC}, domain.ResolutionWon},
		{"quinella wrong pair", domain.BetTypeQuinella, []int64{horseC, horseE}, domain.ResolutionLost},

		{"trifecta exact order", domain.BetTypeTrifecta, []int64{horseC, horseA, horseE}, domain.ResolutionWon},
		{"trifecta shuffled", domain.BetTypeTrifecta, []int64{horseC, horseE, horseA}, domain.ResolutionLost},

		{"superfecta exact order", domain.BetTypeSuperfecta, []int64{horseC, horseA, horseE, horseB}, domain.ResolutionWon},
		{"superfecta wrong fourth", domain.BetTypeSuperfecta, []int64{horseC, horseA, horseE, horseD}, domain.ResolutionLost},

		{"daily double first leg wins", domain.BetTypeDailyDouble, []int64{horseC}, domain.ResolutionWon},
		{"daily double first leg loses", domain.BetTypeDailyDouble, []int64{horseA}, domain.ResolutionLost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wager := domain.Wager{
				BetType:   tt.betType,
				Selection: domain.EncodeSelection(tt.selection),
			}
			got, err := ResolveWager(wager, finishOrder)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveWager_SuperfectaTooFewFinishers(t *testing.T) {
	wager := domain.Wager{
		BetType:   domain.BetTypeSuperfecta,
		Selection: domain.EncodeSelection([]int64{horseC, horseA, horseE, horseB}),
	}

	got, err := ResolveWager(wager, []int64{horseC, horseA, horseE})
	require.NoError(t, err)
	assert.Equal(t, domain.ResolutionUnresolvable, got)
}

func TestResolveWager_ExoticsTooFewFinishers(t *testing.T) {
	twoHorseFinish := []int64{horseC, horseA}

	tests := []struct {
		name      string
		betType   domain.BetType
		selection []int64
		order     []int64
		want      domain.Resolution
	}{
		{"exacta resolvable with two finishers", domain.BetTypeExacta, []int64{horseC, horseA}, twoHorseFinish, domain.ResolutionWon},
		{"trifecta with two finishers", domain.BetTypeTrifecta, []int64{horseC, horseA, horseE}, twoHorseFinish, domain.ResolutionUnresolvable},
		{"exacta with one finisher", domain.BetTypeExacta, []int64{horseC, horseA}, []int64{horseC}, domain.ResolutionUnresolvable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wager := domain.Wager{BetType: tt.betType, Selection: domain.EncodeSelection(tt.selection)}
			got, err := ResolveWager(wager, tt.order)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveWager_MalformedSelection(t *testing.T) {
	tests := []struct {
		name      string
		betType   domain.BetType
		selection string
	}{
		{"empty selection", domain.BetTypeWin, ""},
		{"non numeric", domain.BetTypeWin, "fast-horse"},
		{"wrong arity", domain.BetTypeExacta, "3"},
		{"duplicate pick", domain.BetTypeQuinella, "3,3"},
		{"negative id", domain.BetTypeWin, "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wager := domain.Wager{BetType: tt.betType, Selection: tt.selection}
			got, err := ResolveWager(wager, finishOrder)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrMalformedSelection)
			assert.Equal(t, domain.ResolutionLost, got)
		})
	}
}

func TestResolveWager_UnknownBetType(t *testing.T) {
	wager := domain.Wager{BetType: domain.BetType("parlay"), Selection: "3"}

	_, err := ResolveWager(wager, finishOrder)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnresolvableBetType)
}
