package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/oakfield/trackside/internal/domain"
	"github.com/oakfield/trackside/internal/logger"
	"github.com/oakfield/trackside/internal/repository"
)

// Service defines the interface for racing stats operations
type Service interface {
	GetUserStats(ctx context.Context, userID int64) (*domain.UserRacingStats, error)
	GetLeaderboard(ctx context.Context, limit int) ([]domain.UserRacingStats, error)

	// RebuildUserStats recomputes a user's stats row from their settled
	// wager history. Used to repair drift after manual interventions.
	RebuildUserStats(ctx context.Context, userID int64) (*domain.UserRacingStats, error)
}

type service struct {
	repo      repository.Stats
	wagerRepo repository.Wager
}

// NewService creates a new stats service
func NewService(repo repository.Stats, wagerRepo repository.Wager) Service {
	return &service{
		repo:      repo,
		wagerRepo: wagerRepo,
	}
}

func (s *service) GetUserStats(ctx context.Context, userID int64) (*domain.UserRacingStats, error) {
	stats, err := s.repo.GetUserStats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetStats, err)
	}
	return stats, nil
}

func (s *service) GetLeaderboard(ctx context.Context, limit int) ([]domain.UserRacingStats, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}
	if limit > MaxLeaderboardLimit {
		limit = MaxLeaderboardLimit
	}

	entries, err := s.repo.GetLeaderboard(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetLeaderboard, err)
	}
	return entries, nil
}

func (s *service) RebuildUserStats(ctx context.Context, userID int64) (*domain.UserRacingStats, error) {
	wagers, err := s.wagerRepo.ListSettledWagersByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToListWagers, err)
	}

	rebuilt := FoldWagerHistory(userID, wagers)
	rebuilt.UpdatedAt = time.Now().UTC()

	if err := s.repo.ReplaceUserStats(ctx, rebuilt); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToReplaceStats, err)
	}

	logger.FromContext(ctx).Info(LogMsgStatsRebuilt,
		"userID", userID,
		"totalWagers", rebuilt.TotalWagers,
		"wagersWon", rebuilt.WagersWon)

	return rebuilt, nil
}

// FoldWagerHistory replays a user's settled wagers, oldest first, into a
// fresh stats row. Streaks count races, not wagers: a race extends the
// streak when the user won at least one wager on it and resets it otherwise.
func FoldWagerHistory(userID int64, wagers []domain.Wager) *domain.UserRacingStats {
	stats := &domain.UserRacingStats{UserID: userID}

	// Wagers arrive ordered by settlement time, so contiguous runs of the
	// same race id form one race outcome.
	var currentRace int64
	raceWon := false
	raceOpen := false

	closeRace := func() {
		if !raceOpen {
			return
		}
		stats.RacesParticipated++
		if raceWon {
			stats.CurrentStreak++
			if stats.CurrentStreak > stats.BestStreak {
				stats.BestStreak = stats.CurrentStreak
			}
		} else {
			stats.CurrentStreak = 0
		}
	}

	for _, w := range wagers {
		if !raceOpen || w.RaceID != currentRace {
			closeRace()
			currentRace = w.RaceID
			raceWon = false
			raceOpen = true
		}

		stats.TotalWagers++
		stats.TotalWagered += w.Stake
		if w.Status == domain.WagerStatusWon {
			stats.WagersWon++
			stats.TotalWon += w.Payout
			raceWon = true
			if w.Payout > stats.BiggestWin {
				stats.BiggestWin = w.Payout
			}
		}
	}
	closeRace()

	if stats.TotalWagers > 0 {
		stats.WinRate = float64(stats.WagersWon) / float64(stats.TotalWagers)
	}
	return stats
}
