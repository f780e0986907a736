package settlement

import (
	"github.com/oakfield/trackside/internal/domain"
)

// resolverFunc decides a single wager against the finishing order. The
// selection has already been parsed and arity-checked; finishingOrder lists
// horse IDs by position, index 0 is the winner.
type resolverFunc func(selection, finishingOrder []int64) domain.Resolution

var resolvers = map[domain.BetType]resolverFunc{
	domain.BetTypeWin:         resolveWin,
	domain.BetTypePlace:       resolvePlace,
	domain.BetTypeShow:        resolveShow,
	domain.BetTypeExacta:      resolveExacta,
	domain.BetTypeQuinella:    resolveQuinella,
	domain.BetTypeTrifecta:    resolveTrifecta,
	domain.BetTypeSuperfecta:  resolveSuperfecta,
	domain.BetTypeDailyDouble: resolveDailyDouble,
}

func won(ok bool) domain.Resolution {
	if ok {
		return domain.ResolutionWon
	}
	return domain.ResolutionLost
}

func resolveWin(selection, order []int64) domain.Resolution {
	return won(len(order) > 0 && selection[0] == order[0])
}

// resolvePlace pays when the horse finishes first or second
func resolvePlace(selection, order []int64) domain.Resolution {
	for i := 0; i < len(order) && i < 2; i++ {
		if order[i] == selection[0] {
			return domain.ResolutionWon
		}
	}
	return domain.ResolutionLost
}

// resolveShow pays when the horse finishes in the top three
func resolveShow(selection, order []int64) domain.Resolution {
	for i := 0; i < len(order) && i < 3; i++ {
		if order[i] == selection[0] {
			return domain.ResolutionWon
		}
	}
	return domain.ResolutionLost
}

// resolveExacta requires the first two finishers in exact order
func resolveExacta(selection, order []int64) domain.Resolution {
	if len(order) < 2 {
		return domain.ResolutionUnresolvable
	}
	return won(selection[0] == order[0] && selection[1] == order[1])
}

// resolveQuinella requires the first two finishers in either order
func resolveQuinella(selection, order []int64) domain.Resolution {
	if len(order) < 2 {
		return domain.ResolutionUnresolvable
	}
	return won((selection[0] == order[0] && selection[1] == order[1]) ||
		(selection[0] == order[1] && selection[1] == order[0]))
}

// resolveTrifecta requires the first three finishers in exact order
func resolveTrifecta(selection, order []int64) domain.Resolution {
	if len(order) < 3 {
		return domain.ResolutionUnresolvable
	}
	return won(selection[0] == order[0] && selection[1] == order[1] && selection[2] == order[2])
}

// resolveSuperfecta requires the first four finishers in exact order. A race
// with fewer than four finishers cannot decide it.
func resolveSuperfecta(selection, order []int64) domain.Resolution {
	if len(order) < 4 {
		return domain.ResolutionUnresolvable
	}
	return won(selection[0] == order[0] && selection[1] == order[1] &&
		selection[2] == order[2] && selection[3] == order[3])
}

// resolveDailyDouble evaluates the first leg only. The second leg belongs to
// a future race and is settled separately when that race completes.
func resolveDailyDouble(selection, order []int64) domain.Resolution {
	return resolveWin(selection, order)
}

// ResolveWager parses a wager's selection and decides it against the
// finishing order. A parse failure is returned to the caller, which settles
// the wager as lost and records an audit entry rather than aborting the
// batch.
func ResolveWager(wager domain.Wager, finishingOrder []int64) (domain.Resolution, error) {
	selection, err := domain.ParseSelection(wager.BetType, wager.Selection)
	if err != nil {
		return domain.ResolutionLost, err
	}

	resolve, ok := resolvers[wager.BetType]
	if !ok {
		return domain.ResolutionUnresolvable, nil
	}
	return resolve(selection, finishingOrder), nil
}
