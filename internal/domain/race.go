package domain

import "time"

// RaceState represents the lifecycle state of a race
type RaceState string

const (
	RaceStateScheduled RaceState = "scheduled"
	RaceStateApproved  RaceState = "approved"
	RaceStateActive    RaceState = "active"
	RaceStateCompleted RaceState = "completed"
	RaceStateCancelled RaceState = "cancelled"
)

// Race represents a scheduled race event
type Race struct {
	ID             int64      `json:"id"`
	Name           string     `json:"name"`
	ScheduledStart time.Time  `json:"scheduled_start"`
	ScheduledEnd   time.Time  `json:"scheduled_end"`
	PrizePool      int64      `json:"prize_pool"` // minor currency units
	State          RaceState  `json:"state"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	Horses         []Horse    `json:"horses,omitempty"`
}

// CanTransitionTo reports whether a state transition is allowed.
// The lifecycle is scheduled -> approved -> active -> completed, with
// cancelled reachable from any non-terminal state.
func (s RaceState) CanTransitionTo(next RaceState) bool {
	switch s {
	case RaceStateScheduled:
		return next == RaceStateApproved || next == RaceStateCancelled
	case RaceStateApproved:
		return next == RaceStateActive || next == RaceStateCancelled
	case RaceStateActive:
		return next == RaceStateCompleted || next == RaceStateCancelled
	default:
		return false
	}
}

// IsTerminal reports whether the state admits no further transitions
func (s RaceState) IsTerminal() bool {
	return s == RaceStateCompleted || s == RaceStateCancelled
}

// Horse represents a race entrant. Horses are scoped to a single race and
// immutable once the race is active.
type Horse struct {
	ID           int64  `json:"id"`
	RaceID       int64  `json:"race_id"`
	Name         string `json:"name"`
	Jockey       string `json:"jockey"`
	OddsNumer    int64  `json:"odds_numer"` // payout multiplier as a fraction, e.g. 7/2
	OddsDenom    int64  `json:"odds_denom"`
	RecentWins   int    `json:"recent_wins"`   // informational only
	RecentStarts int    `json:"recent_starts"` // informational only
}

// PotentialPayout computes the payout locked in at placement time for a
// stake on this horse: stake plus stake times the odds multiplier, in
// integer minor units with floor division.
func (h Horse) PotentialPayout(stake int64) int64 {
	if h.OddsDenom <= 0 {
		return stake
	}
	return stake + stake*h.OddsNumer/h.OddsDenom
}

// RaceResult records the finish position of one horse in one race.
// Exactly one row exists per horse once the race settles; positions are a
// contiguous permutation of 1..N.
type RaceResult struct {
	RaceID     int64     `json:"race_id"`
	HorseID    int64     `json:"horse_id"`
	Position   int       `json:"position"` // 1-based
	RecordedAt time.Time `json:"recorded_at"`
}

// RaceResultSummary is the read-side view of a settled race
type RaceResultSummary struct {
	RaceID      int64        `json:"race_id"`
	Results     []RaceResult `json:"results"`
	CompletedAt time.Time    `json:"completed_at"`
}
