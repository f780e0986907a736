package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/oakfield/trackside/internal/domain"
	"github.com/oakfield/trackside/internal/logger"
)

// SafeRollback rolls back a transaction and logs any error that isn't ErrTxClosed
func SafeRollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}

// applyTransaction inserts a ledger entry and moves the account balance, all
// inside the caller's transaction. The account row is locked for the duration.
// Inserting is idempotent on correlation_id: a duplicate returns (false, nil)
// and leaves the balance untouched.
func applyTransaction(ctx context.Context, tx pgx.Tx, txn *domain.Transaction) (bool, error) {
	var balance int64
	err := tx.QueryRow(ctx,
		`SELECT balance FROM accounts WHERE user_id = $1 FOR UPDATE`,
		txn.UserID).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		// Lazily create the account, then lock it
		if _, err = tx.Exec(ctx,
			`INSERT INTO accounts (user_id, balance) VALUES ($1, 0) ON CONFLICT (user_id) DO NOTHING`,
			txn.UserID); err != nil {
			return false, fmt.Errorf("%s: %w", ErrMsgFailedToCreateAccount, err)
		}
		err = tx.QueryRow(ctx,
			`SELECT balance FROM accounts WHERE user_id = $1 FOR UPDATE`,
			txn.UserID).Scan(&balance)
	}
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToLockAccount, err)
	}

	txn.BalanceBefore = balance
	txn.BalanceAfter = balance + txn.Amount
	if txn.BalanceAfter < 0 {
		return false, domain.ErrInsufficientFunds
	}

	tag, err := tx.Exec(ctx,
		`INSERT INTO account_transactions (user_id, type, amount, balance_before, balance_after, reason, correlation_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (correlation_id) DO NOTHING`,
		txn.UserID, txn.Type, txn.Amount, txn.BalanceBefore, txn.BalanceAfter, txn.Reason, txn.CorrelationID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToInsertTransaction, err)
	}
	if tag.RowsAffected() == 0 {
		// Correlation id already applied
		return false, nil
	}

	if _, err := tx.Exec(ctx,
		`UPDATE accounts SET balance = $1, updated_at = NOW() WHERE user_id = $2`,
		txn.BalanceAfter, txn.UserID); err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToUpdateBalance, err)
	}

	return true, nil
}
