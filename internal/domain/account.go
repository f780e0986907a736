package domain

import "time"

// TransactionType distinguishes ledger entry kinds
type TransactionType string

const (
	TransactionTypeWagerStake  TransactionType = "wager_stake"
	TransactionTypeWagerPayout TransactionType = "wager_payout"
	TransactionTypeWagerRefund TransactionType = "wager_refund"
	TransactionTypeAdjustment  TransactionType = "adjustment"
)

// Account is a user's currency balance in minor units
type Account struct {
	UserID    int64     `json:"user_id"`
	Balance   int64     `json:"balance"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Transaction is one immutable ledger entry. Amount is signed: credits are
// positive, debits negative. BalanceBefore and BalanceAfter snapshot the
// account around the entry so the ledger is auditable without replay.
// CorrelationID is unique per logical operation; a repeated correlation id
// is silently dropped, which makes credits idempotent.
type Transaction struct {
	ID            int64           `json:"id"`
	UserID        int64           `json:"user_id"`
	Type          TransactionType `json:"type"`
	Amount        int64           `json:"amount"`
	BalanceBefore int64           `json:"balance_before"`
	BalanceAfter  int64           `json:"balance_after"`
	Reason        string          `json:"reason"`
	CorrelationID string          `json:"correlation_id"`
	CreatedAt     time.Time       `json:"created_at"`
}
