package ledger

import (
	"context"
	"fmt"

	"github.com/oakfield/trackside/internal/domain"
	"github.com/oakfield/trackside/internal/logger"
	"github.com/oakfield/trackside/internal/repository"
)

// Service defines the interface for account and ledger operations
type Service interface {
	GetAccount(ctx context.Context, userID int64) (*domain.Account, error)
	CreateAccount(ctx context.Context, userID int64, openingBalance int64) error
	GetTransactions(ctx context.Context, userID int64, limit int) ([]domain.Transaction, error)

	// Credit adds amount to the user's balance. A repeated correlation id is
	// a no-op and returns false.
	Credit(ctx context.Context, userID, amount int64, txnType domain.TransactionType, reason, correlationID string) (bool, error)

	// Debit removes amount from the user's balance, failing with
	// domain.ErrInsufficientFunds if the balance would go negative.
	Debit(ctx context.Context, userID, amount int64, txnType domain.TransactionType, reason, correlationID string) (bool, error)
}

type service struct {
	repo repository.Ledger
}

// NewService creates a new ledger service
func NewService(repo repository.Ledger) Service {
	return &service{repo: repo}
}

func (s *service) GetAccount(ctx context.Context, userID int64) (*domain.Account, error) {
	account, err := s.repo.GetAccount(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetAccount, err)
	}
	return account, nil
}

func (s *service) CreateAccount(ctx context.Context, userID int64, openingBalance int64) error {
	if openingBalance < 0 {
		return fmt.Errorf("%w: opening balance %d", domain.ErrInvalidAmount, openingBalance)
	}
	if err := s.repo.CreateAccount(ctx, userID, openingBalance); err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgAccountCreated, "userID", userID, "openingBalance", openingBalance)
	return nil
}

func (s *service) GetTransactions(ctx context.Context, userID int64, limit int) ([]domain.Transaction, error) {
	if limit <= 0 {
		limit = DefaultTransactionLimit
	}
	txns, err := s.repo.ListTransactions(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToListTxns, err)
	}
	return txns, nil
}

func (s *service) Credit(ctx context.Context, userID, amount int64, txnType domain.TransactionType, reason, correlationID string) (bool, error) {
	if amount <= 0 {
		return false, fmt.Errorf("%w: credit amount %d", domain.ErrInvalidAmount, amount)
	}
	applied, err := s.apply(ctx, &domain.Transaction{
		UserID:        userID,
		Type:          txnType,
		Amount:        amount,
		Reason:        reason,
		CorrelationID: correlationID,
	})
	if err != nil {
		return false, err
	}
	if applied {
		logger.FromContext(ctx).Info(LogMsgAccountCredited,
			"userID", userID, "amount", amount, "correlationID", correlationID)
	}
	return applied, nil
}

func (s *service) Debit(ctx context.Context, userID, amount int64, txnType domain.TransactionType, reason, correlationID string) (bool, error) {
	if amount <= 0 {
		return false, fmt.Errorf("%w: debit amount %d", domain.ErrInvalidAmount, amount)
	}
	applied, err := s.apply(ctx, &domain.Transaction{
		UserID:        userID,
		Type:          txnType,
		Amount:        -amount,
		Reason:        reason,
		CorrelationID: correlationID,
	})
	if err != nil {
		return false, err
	}
	if applied {
		logger.FromContext(ctx).Info(LogMsgAccountDebited,
			"userID", userID, "amount", amount, "correlationID", correlationID)
	}
	return applied, nil
}

func (s *service) apply(ctx context.Context, txn *domain.Transaction) (bool, error) {
	tx, err := s.repo.BeginLedgerTx(ctx)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrContextFailedToBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	applied, err := tx.ApplyTransaction(ctx, txn)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrContextFailedToApplyTxn, err)
	}
	if !applied {
		logger.FromContext(ctx).Warn(LogMsgDuplicateIgnored,
			"userID", txn.UserID, "correlationID", txn.CorrelationID)
		return false, nil
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("%s: %w", ErrContextFailedToCommit, err)
	}
	return true, nil
}
