package repository

import (
	"context"
	"time"

	"github.com/oakfield/trackside/internal/domain"
)

// Settlement provides transactional access for race settlement
type Settlement interface {
	BeginSettlementTx(ctx context.Context) (SettlementTx, error)
}

// SettlementTx covers every write a race settlement performs. All of it
// commits or rolls back as one unit: results, wager outcomes, winner
// credits, stats updates and the race state transition.
type SettlementTx interface {
	Tx

	// GetRaceForUpdate locks the race row for the duration of the transaction
	GetRaceForUpdate(ctx context.Context, raceID int64) (*domain.Race, error)

	// GetHorseIDs returns the ids of all horses entered in the race
	GetHorseIDs(ctx context.Context, raceID int64) ([]int64, error)

	// InsertResults records the finishing positions for the race
	InsertResults(ctx context.Context, results []domain.RaceResult) error

	// ListPendingWagersForUpdate locks and returns all pending wagers on the race
	ListPendingWagersForUpdate(ctx context.Context, raceID int64) ([]domain.Wager, error)

	MarkWagerWon(ctx context.Context, wagerID int64, payout int64, settledAt time.Time) error
	MarkWagerLost(ctx context.Context, wagerID int64, settledAt time.Time) error

	// FlagWagerForReview leaves the wager pending and marks it for manual review
	FlagWagerForReview(ctx context.Context, wagerID int64, reason string) error

	// CreditWinner credits a payout to the user's account with an idempotent
	// correlation id. It returns false without error when the correlation id
	// was already applied.
	CreditWinner(ctx context.Context, userID, amount int64, reason, correlationID string) (bool, error)

	// VoidWager moves a pending wager to voided when its race is cancelled
	VoidWager(ctx context.Context, wagerID int64, voidedAt time.Time) error

	// RefundStake returns a voided wager's stake to the user's account with
	// an idempotent correlation id, mirroring CreditWinner.
	RefundStake(ctx context.Context, userID, amount int64, reason, correlationID string) (bool, error)

	// CompleteRaceIfActive transitions the race from active to completed and
	// returns rows affected. Zero rows means another settlement won.
	CompleteRaceIfActive(ctx context.Context, raceID int64, completedAt time.Time) (int64, error)

	// CancelRaceIfState transitions the race to cancelled only if it is still
	// in the observed state, returning rows affected.
	CancelRaceIfState(ctx context.Context, raceID int64, from domain.RaceState) (int64, error)

	// ApplyRaceOutcome folds one user's per-race aggregates into their
	// lifetime stats row.
	ApplyRaceOutcome(ctx context.Context, outcome domain.RaceOutcome) error

	// RecordAudit writes an audit entry in the settlement transaction
	RecordAudit(ctx context.Context, entry domain.AuditEntry) error
}
