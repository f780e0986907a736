package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// BetType identifies the wager kind and its settlement rule
type BetType string

const (
	BetTypeWin         BetType = "win"
	BetTypePlace       BetType = "place"
	BetTypeShow        BetType = "show"
	BetTypeExacta      BetType = "exacta"
	BetTypeQuinella    BetType = "quinella"
	BetTypeTrifecta    BetType = "trifecta"
	BetTypeSuperfecta  BetType = "superfecta"
	BetTypeDailyDouble BetType = "daily_double"
)

// SelectionArity is the number of horse IDs each bet type requires.
// Daily double takes a single selection: only the first leg is evaluated.
var SelectionArity = map[BetType]int{
	BetTypeWin:         1,
	BetTypePlace:       1,
	BetTypeShow:        1,
	BetTypeExacta:      2,
	BetTypeQuinella:    2,
	BetTypeTrifecta:    3,
	BetTypeSuperfecta:  4,
	BetTypeDailyDouble: 1,
}

// ValidBetType reports whether t is a known bet type
func ValidBetType(t BetType) bool {
	_, ok := SelectionArity[t]
	return ok
}

// WagerStatus is the settlement state of a wager
type WagerStatus string

const (
	WagerStatusPending WagerStatus = "pending"
	WagerStatusWon     WagerStatus = "won"
	WagerStatusLost    WagerStatus = "lost"
	WagerStatusVoided  WagerStatus = "voided"
)

// Resolution is the outcome a resolver assigns to a single wager
type Resolution int

const (
	ResolutionLost Resolution = iota
	ResolutionWon
	// ResolutionUnresolvable means the wager cannot be decided against this
	// result, e.g. a superfecta on a race with fewer than four finishers.
	// The wager stays pending and is flagged for manual review.
	ResolutionUnresolvable
)

func (r Resolution) String() string {
	switch r {
	case ResolutionWon:
		return "won"
	case ResolutionLost:
		return "lost"
	case ResolutionUnresolvable:
		return "unresolvable"
	default:
		return "unknown"
	}
}

// Wager is a user's bet on a race. Selection is stored as a comma separated
// list of horse IDs in the exact order the user picked them.
type Wager struct {
	ID              int64       `json:"id"`
	UserID          int64       `json:"user_id"`
	RaceID          int64       `json:"race_id"`
	BetType         BetType     `json:"bet_type"`
	Selection       string      `json:"selection"`
	Stake           int64       `json:"stake"` // minor currency units
	PotentialPayout int64       `json:"potential_payout"`
	Status          WagerStatus `json:"status"`
	Payout          int64       `json:"payout"`
	SettledAt       *time.Time  `json:"settled_at,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
}

// ParseSelection decodes a stored selection string into horse IDs and
// validates it against the bet type's arity. Duplicate picks are rejected.
func ParseSelection(betType BetType, selection string) ([]int64, error) {
	arity, ok := SelectionArity[betType]
	if !ok {
		return nil, fmt.Errorf("%w: unknown bet type %q", ErrUnresolvableBetType, betType)
	}

	parts := strings.Split(selection, ",")
	if len(parts) != arity {
		return nil, fmt.Errorf("%w: %s requires %d selection(s), got %d",
			ErrMalformedSelection, betType, arity, len(parts))
	}

	ids := make([]int64, 0, arity)
	seen := make(map[int64]struct{}, arity)
	for _, p := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("%w: invalid horse id %q", ErrMalformedSelection, p)
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("%w: duplicate horse id %d", ErrMalformedSelection, id)
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids, nil
}

// EncodeSelection is the inverse of ParseSelection
func EncodeSelection(horseIDs []int64) string {
	parts := make([]string, len(horseIDs))
	for i, id := range horseIDs {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}
