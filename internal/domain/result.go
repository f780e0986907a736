package domain

import "time"

// SettlementSummary reports the outcome of settling one race
type SettlementSummary struct {
	RaceID          int64     `json:"race_id"`
	WagersSettled   int       `json:"wagers_settled"`
	WagersWon       int       `json:"wagers_won"`
	WagersLost      int       `json:"wagers_lost"`
	WagersFlagged   int       `json:"wagers_flagged"`
	TotalPaidOut    int64     `json:"total_paid_out"`
	SettledAt       time.Time `json:"settled_at"`
}

// CancellationSummary reports the outcome of cancelling one race
type CancellationSummary struct {
	RaceID         int64     `json:"race_id"`
	WagersVoided   int       `json:"wagers_voided"`
	StakesRefunded int64     `json:"stakes_refunded"`
	CancelledAt    time.Time `json:"cancelled_at"`
}

// RaceOutcome is the per-user aggregate folded from one race's settled
// wagers and applied to that user's lifetime stats in the settlement
// transaction.
type RaceOutcome struct {
	UserID       int64
	WagersPlaced int
	WagersWon    int
	TotalWagered int64
	TotalWon     int64
	LargestWin   int64
}
