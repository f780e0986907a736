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

const statsColumns = `user_id, total_wagers, wagers_won, total_wagered, total_won, biggest_win, win_rate, races_participated, current_streak, best_streak, updated_at`

type statsRepository struct {
	db *pgxpool.Pool
}

// NewStatsRepository creates a new PostgreSQL stats repository
func NewStatsRepository(db *pgxpool.Pool) repository.Stats {
	return &statsRepository{db: db}
}

func (r *statsRepository) GetUserStats(ctx context.Context, userID int64) (*domain.UserRacingStats, error) {
	query := `SELECT ` + statsColumns + ` FROM user_racing_stats WHERE user_id = $1`

	var stats domain.UserRacingStats
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&stats.UserID, &stats.TotalWagers, &stats.WagersWon, &stats.TotalWagered,
		&stats.TotalWon, &stats.BiggestWin, &stats.WinRate, &stats.RacesParticipated,
		&stats.CurrentStreak, &stats.BestStreak, &stats.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		// No settled wagers yet: empty stats, not an error
		return &domain.UserRacingStats{UserID: userID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetUserStats, err)
	}
	return &stats, nil
}

func (r *statsRepository) GetLeaderboard(ctx context.Context, limit int) ([]domain.UserRacingStats, error) {
	query := `SELECT ` + statsColumns + `
		FROM user_racing_stats
		ORDER BY total_won - total_wagered DESC, total_won DESC
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryLeaderboard, err)
	}
	defer rows.Close()

	var leaderboard []domain.UserRacingStats
	for rows.Next() {
		var stats domain.UserRacingStats
		if err := rows.Scan(
			&stats.UserID, &stats.TotalWagers, &stats.WagersWon, &stats.TotalWagered,
			&stats.TotalWon, &stats.BiggestWin, &stats.WinRate, &stats.RacesParticipated,
			&stats.CurrentStreak, &stats.BestStreak, &stats.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryLeaderboard, err)
		}
		leaderboard = append(leaderboard, stats)
	}
	return leaderboard, rows.Err()
}

// ReplaceUserStats overwrites the row wholesale, used by the rebuild repair path
func (r *statsRepository) ReplaceUserStats(ctx context.Context, stats *domain.UserRacingStats) error {
	query := `
		INSERT INTO user_racing_stats
			(user_id, total_wagers, wagers_won, total_wagered, total_won, biggest_win, win_rate, races_participated, current_streak, best_streak, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			total_wagers   = EXCLUDED.total_wagers,
			wagers_won     = EXCLUDED.wagers_won,
			total_wagered  = EXCLUDED.total_wagered,
			total_won      = EXCLUDED.total_won,
			biggest_win    = EXCLUDED.biggest_win,
			win_rate       = EXCLUDED.win_rate,
			races_participated = EXCLUDED.races_participated,
			current_streak = EXCLUDED.current_streak,
			best_streak    = EXCLUDED.best_streak,
			updated_at     = NOW()
	`

	if _, err := r.db.Exec(ctx, query,
		stats.UserID, stats.TotalWagers, stats.WagersWon, stats.TotalWagered,
		stats.TotalWon, stats.BiggestWin, stats.WinRate, stats.RacesParticipated,
		stats.CurrentStreak, stats.BestStreak); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertUserStats, err)
	}
	return nil
}
