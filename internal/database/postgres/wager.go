package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oakfield/trackside/internal/domain"
	"github.com/oakfield/trackside/internal/repository"
)

const wagerColumns = `id, user_id, race_id, bet_type, selection, stake, potential_payout, status, payout, settled_at, created_at`

type wagerRepository struct {
	db *pgxpool.Pool
}

// NewWagerRepository creates a new PostgreSQL wager repository
func NewWagerRepository(db *pgxpool.Pool) repository.Wager {
	return &wagerRepository{db: db}
}

func (r *wagerRepository) GetWager(ctx context.Context, wagerID int64) (*domain.Wager, error) {
	query := `SELECT ` + wagerColumns + ` FROM wagers WHERE id = $1`

	var w domain.Wager
	err := r.db.QueryRow(ctx, query, wagerID).Scan(
		&w.ID, &w.UserID, &w.RaceID, &w.BetType, &w.Selection, &w.Stake,
		&w.PotentialPayout, &w.Status, &w.Payout, &w.SettledAt, &w.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrWagerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetWager, err)
	}
	return &w, nil
}

func (r *wagerRepository) ListWagersByRace(ctx context.Context, raceID int64) ([]domain.Wager, error) {
	query := `SELECT ` + wagerColumns + ` FROM wagers WHERE race_id = $1 ORDER BY id`

	rows, err := r.db.Query(ctx, query, raceID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryWagers, err)
	}
	defer rows.Close()
	return scanWagers(rows)
}

func (r *wagerRepository) ListWagersByUser(ctx context.Context, userID int64, limit int) ([]domain.Wager, error) {
	query := `SELECT ` + wagerColumns + ` FROM wagers WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`

	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryWagers, err)
	}
	defer rows.Close()
	return scanWagers(rows)
}

// ListSettledWagersByUser returns settled wagers oldest first so callers can
// replay them in settlement order.
func (r *wagerRepository) ListSettledWagersByUser(ctx context.Context, userID int64) ([]domain.Wager, error) {
	query := `SELECT ` + wagerColumns + `
		FROM wagers
		WHERE user_id = $1 AND status IN ('won', 'lost')
		ORDER BY settled_at, id`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryWagers, err)
	}
	defer rows.Close()
	return scanWagers(rows)
}

func (r *wagerRepository) BeginWagerTx(ctx context.Context) (repository.WagerTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &wagerTx{tx: tx}, nil
}

func scanWagers(rows pgx.Rows) ([]domain.Wager, error) {
	var wagers []domain.Wager
	for rows.Next() {
		var w domain.Wager
		if err := rows.Scan(
			&w.ID, &w.UserID, &w.RaceID, &w.BetType, &w.Selection, &w.Stake,
			&w.PotentialPayout, &w.Status, &w.Payout, &w.SettledAt, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryWagers, err)
		}
		wagers = append(wagers, w)
	}
	return wagers, rows.Err()
}

// wagerTx implements repository.WagerTx on a pgx transaction
type wagerTx struct {
	tx pgx.Tx
}

func (t *wagerTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *wagerTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

func (t *wagerTx) GetAccountForUpdate(ctx context.Context, userID int64) (*domain.Account, error) {
	query := `SELECT user_id, balance, updated_at FROM accounts WHERE user_id = $1 FOR UPDATE`

	var account domain.Account
	err := t.tx.QueryRow(ctx, query, userID).Scan(&account.UserID, &account.Balance, &account.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLockAccount, err)
	}
	return &account, nil
}

func (t *wagerTx) InsertWager(ctx context.Context, wager *domain.Wager) (int64, error) {
	query := `
		INSERT INTO wagers (user_id, race_id, bet_type, selection, stake, potential_payout, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := t.tx.QueryRow(ctx, query,
		wager.UserID, wager.RaceID, wager.BetType, wager.Selection,
		wager.Stake, wager.PotentialPayout, wager.Status,
	).Scan(&wager.ID, &wager.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToInsertWager, err)
	}
	return wager.ID, nil
}

func (t *wagerTx) ApplyTransaction(ctx context.Context, txn *domain.Transaction) (bool, error) {
	return applyTransaction(ctx, t.tx, txn)
}
