package stats

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/oakfield/trackside/internal/domain"
	"github.com/oakfield/trackside/internal/repository"
)

// MockStatsRepo
type MockStatsRepo struct {
	mock.Mock
}

func (m *MockStatsRepo) GetUserStats(ctx context.Context, userID int64) (*domain.UserRacingStats, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserRacingStats), args.Error(1)
}

func (m *MockStatsRepo) GetLeaderboard(ctx context.Context, limit int) ([]domain.UserRacingStats, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserRacingStats), args.Error(1)
}

func (m *MockStatsRepo) ReplaceUserStats(ctx context.Context, stats *domain.UserRacingStats) error {
	args := m.Called(ctx, stats)
	return args.Error(0)
}

// MockWagerRepo
type MockWagerRepo struct {
	mock.Mock
}

func (m *MockWagerRepo) GetWager(ctx context.Context, wagerID int64) (*domain.Wager, error) {
	args := m.Called(ctx, wagerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wager), args.Error(1)
}

func (m *MockWagerRepo) ListWagersByRace(ctx context.Context, raceID int64) ([]domain.Wager, error) {
	args := m.Called(ctx, raceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Wager), args.Error(1)
}

func (m *MockWagerRepo) ListWagersByUser(ctx context.Context, userID int64, limit int) ([]domain.Wager, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Wager), args.Error(1)
}

func (m *MockWagerRepo) ListSettledWagersByUser(ctx context.Context, userID int64) ([]domain.Wager, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Wager), args.Error(1)
}

func (m *MockWagerRepo) BeginWagerTx(ctx context.Context) (repository.WagerTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.WagerTx), args.Error(1)
}
