package domain

// RaceSettledPayloadV1 is the typed event payload for race.settled events
type RaceSettledPayloadV1 struct {
	RaceID        int64   `json:"race_id"`
	WagersSettled int     `json:"wagers_settled"`
	WagersWon     int     `json:"wagers_won"`
	WagersFlagged int     `json:"wagers_flagged"`
	TotalPaidOut  int64   `json:"total_paid_out"`
	WinningHorses []int64 `json:"winning_horses"` // finish order, first three
	Timestamp     int64   `json:"timestamp"`
}

// RaceStateChangedPayloadV1 is the typed event payload for race.state_changed events
type RaceStateChangedPayloadV1 struct {
	RaceID    int64  `json:"race_id"`
	FromState string `json:"from_state"`
	ToState   string `json:"to_state"`
	Timestamp int64  `json:"timestamp"`
}

// WagerPlacedPayloadV1 is the typed event payload for wager.placed events
type WagerPlacedPayloadV1 struct {
	WagerID         int64  `json:"wager_id"`
	UserID          int64  `json:"user_id"`
	RaceID          int64  `json:"race_id"`
	BetType         string `json:"bet_type"`
	Stake           int64  `json:"stake"`
	PotentialPayout int64  `json:"potential_payout"`
	Timestamp       int64  `json:"timestamp"`
}

// WagerFlaggedPayloadV1 is the typed event payload for wager.flagged events
type WagerFlaggedPayloadV1 struct {
	WagerID   int64  `json:"wager_id"`
	RaceID    int64  `json:"race_id"`
	Reason    string `json:"reason"`
	Timestamp int64  `json:"timestamp"`
}
