package repository

import (
	"context"

	"github.com/oakfield/trackside/internal/domain"
)

// Stats defines the interface for user racing stats persistence
type Stats interface {
	GetUserStats(ctx context.Context, userID int64) (*domain.UserRacingStats, error)
	GetLeaderboard(ctx context.Context, limit int) ([]domain.UserRacingStats, error)

	// ReplaceUserStats overwrites a user's stats row, used when rebuilding
	// from wager history.
	ReplaceUserStats(ctx context.Context, stats *domain.UserRacingStats) error
}
