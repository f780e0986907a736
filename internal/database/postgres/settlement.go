package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oakfield/trackside/internal/domain"
	"github.com/oakfield/trackside/internal/repository"
)

type settlementRepository struct {
	db *pgxpool.Pool
}

// NewSettlementRepository creates a new PostgreSQL settlement repository
func NewSettlementRepository(db *pgxpool.Pool) repository.Settlement {
	return &settlementRepository{db: db}
}

func (r *settlementRepository) BeginSettlementTx(ctx context.Context) (repository.SettlementTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &settlementTx{tx: tx}, nil
}

// settlementTx implements repository.SettlementTx on a pgx transaction
type settlementTx struct {
	tx pgx.Tx
}

func (t *settlementTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *settlementTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

func (t *settlementTx) GetRaceForUpdate(ctx context.Context, raceID int64) (*domain.Race, error) {
	query := `
		SELECT id, name, scheduled_start, scheduled_end, prize_pool, state, completed_at, created_at
		FROM races
		WHERE id = $1
		FOR UPDATE
	`

	var race domain.Race
	err := t.tx.QueryRow(ctx, query, raceID).Scan(
		&race.ID, &race.Name, &race.ScheduledStart, &race.ScheduledEnd,
		&race.PrizePool, &race.State, &race.CompletedAt, &race.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrRaceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetRace, err)
	}
	return &race, nil
}

func (t *settlementTx) GetHorseIDs(ctx context.Context, raceID int64) ([]int64, error) {
	query := `SELECT id FROM horses WHERE race_id = $1 ORDER BY id`

	rows, err := t.tx.Query(ctx, query, raceID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryHorses, err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryHorses, err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (t *settlementTx) InsertResults(ctx context.Context, results []domain.RaceResult) error {
	query := `
		INSERT INTO race_results (race_id, horse_id, position, recorded_at)
		VALUES ($1, $2, $3, $4)
	`

	for _, result := range results {
		if _, err := t.tx.Exec(ctx, query,
			result.RaceID, result.HorseID, result.Position, result.RecordedAt); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToInsertResult, err)
		}
	}
	return nil
}

// ListPendingWagersForUpdate locks all pending wagers on the race so a
// concurrent settlement cannot touch them. Ordered by id for deterministic
// lock acquisition.
func (t *settlementTx) ListPendingWagersForUpdate(ctx context.Context, raceID int64) ([]domain.Wager, error) {
	query := `SELECT ` + wagerColumns + `
		FROM wagers
		WHERE race_id = $1 AND status = 'pending'
		ORDER BY id
		FOR UPDATE`

	rows, err := t.tx.Query(ctx, query, raceID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryWagers, err)
	}
	defer rows.Close()
	return scanWagers(rows)
}

func (t *settlementTx) MarkWagerWon(ctx context.Context, wagerID int64, payout int64, settledAt time.Time) error {
	query := `
		UPDATE wagers
		SET status = 'won', payout = $1, settled_at = $2
		WHERE id = $3 AND status = 'pending'
	`

	result, err := t.tx.Exec(ctx, query, payout, settledAt, wagerID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateWager, err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrWagerNotFound
	}
	return nil
}

func (t *settlementTx) MarkWagerLost(ctx context.Context, wagerID int64, settledAt time.Time) error {
	query := `
		UPDATE wagers
		SET status = 'lost', settled_at = $1
		WHERE id = $2 AND status = 'pending'
	`

	result, err := t.tx.Exec(ctx, query, settledAt, wagerID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateWager, err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrWagerNotFound
	}
	return nil
}

// FlagWagerForReview leaves the wager pending and marks it for manual review
func (t *settlementTx) FlagWagerForReview(ctx context.Context, wagerID int64, reason string) error {
	query := `
		UPDATE wagers
		SET flagged = TRUE, flag_reason = $1
		WHERE id = $2
	`

	if _, err := t.tx.Exec(ctx, query, reason, wagerID); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToFlagWager, err)
	}
	return nil
}

func (t *settlementTx) VoidWager(ctx context.Context, wagerID int64, voidedAt time.Time) error {
	query := `
		UPDATE wagers
		SET status = 'voided', settled_at = $1
		WHERE id = $2 AND status = 'pending'
	`

	result, err := t.tx.Exec(ctx, query, voidedAt, wagerID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateWager, err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrWagerNotFound
	}
	return nil
}

func (t *settlementTx) RefundStake(ctx context.Context, userID, amount int64, reason, correlationID string) (bool, error) {
	txn := &domain.Transaction{
		UserID:        userID,
		Type:          domain.TransactionTypeWagerRefund,
		Amount:        amount,
		Reason:        reason,
		CorrelationID: correlationID,
	}
	return applyTransaction(ctx, t.tx, txn)
}

func (t *settlementTx) CreditWinner(ctx context.Context, userID, amount int64, reason, correlationID string) (bool, error) {
	txn := &domain.Transaction{
		UserID:        userID,
		Type:          domain.TransactionTypeWagerPayout,
		Amount:        amount,
		Reason:        reason,
		CorrelationID: correlationID,
	}
	return applyTransaction(ctx, t.tx, txn)
}

// CompleteRaceIfActive performs the compare-and-set that makes settlement
// exactly-once. Zero rows affected means a concurrent settlement already won.
func (t *settlementTx) CompleteRaceIfActive(ctx context.Context, raceID int64, completedAt time.Time) (int64, error) {
	query := `
		UPDATE races
		SET state = 'completed', completed_at = $1
		WHERE id = $2 AND state = 'active'
	`

	result, err := t.tx.Exec(ctx, query, completedAt, raceID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCompleteRace, err)
	}
	return result.RowsAffected(), nil
}

// CancelRaceIfState is the cancellation counterpart of CompleteRaceIfActive
func (t *settlementTx) CancelRaceIfState(ctx context.Context, raceID int64, from domain.RaceState) (int64, error) {
	query := `
		UPDATE races
		SET state = 'cancelled'
		WHERE id = $1 AND state = $2
	`

	result, err := t.tx.Exec(ctx, query, raceID, from)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCancelRace, err)
	}
	return result.RowsAffected(), nil
}

// ApplyRaceOutcome folds one user's per-race aggregates into their stats row.
// The streak treats a race as winning when at least one wager on it won.
func (t *settlementTx) ApplyRaceOutcome(ctx context.Context, outcome domain.RaceOutcome) error {
	query := `
		INSERT INTO user_racing_stats AS s
			(user_id, total_wagers, wagers_won, total_wagered, total_won, biggest_win, win_rate, races_participated, current_streak, best_streak)
		VALUES ($1, $2, $3, $4, $5, $6,
			CASE WHEN $2 > 0 THEN $3::double precision / $2 ELSE 0 END,
			1,
			CASE WHEN $3 > 0 THEN 1 ELSE 0 END,
			CASE WHEN $3 > 0 THEN 1 ELSE 0 END)
		ON CONFLICT (user_id) DO UPDATE SET
			total_wagers   = s.total_wagers + EXCLUDED.total_wagers,
			wagers_won     = s.wagers_won + EXCLUDED.wagers_won,
			total_wagered  = s.total_wagered + EXCLUDED.total_wagered,
			total_won      = s.total_won + EXCLUDED.total_won,
			biggest_win    = GREATEST(s.biggest_win, EXCLUDED.biggest_win),
			win_rate       = CASE WHEN s.total_wagers + EXCLUDED.total_wagers > 0
				THEN (s.wagers_won + EXCLUDED.wagers_won)::double precision / (s.total_wagers + EXCLUDED.total_wagers)
				ELSE 0 END,
			races_participated = s.races_participated + 1,
			current_streak = CASE WHEN EXCLUDED.wagers_won > 0 THEN s.current_streak + 1 ELSE 0 END,
			best_streak    = GREATEST(s.best_streak,
				CASE WHEN EXCLUDED.wagers_won > 0 THEN s.current_streak + 1 ELSE s.best_streak END),
			updated_at     = NOW()
	`

	if _, err := t.tx.Exec(ctx, query,
		outcome.UserID, outcome.WagersPlaced, outcome.WagersWon,
		outcome.TotalWagered, outcome.TotalWon, outcome.LargestWin); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertUserStats, err)
	}
	return nil
}

func (t *settlementTx) RecordAudit(ctx context.Context, entry domain.AuditEntry) error {
	query := `
		INSERT INTO settlement_audit (race_id, wager_id, action, detail)
		VALUES ($1, $2, $3, $4)
	`

	if _, err := t.tx.Exec(ctx, query, entry.RaceID, entry.WagerID, entry.Action, entry.Detail); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertAudit, err)
	}
	return nil
}
