package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/oakfield/trackside/internal/domain"
)

// MockRaceService is a testify mock for race.Service
type MockRaceService struct {
	mock.Mock
}

func (m *MockRaceService) CreateRace(ctx context.Context, r *domain.Race) (int64, error) {
	args := m.Called(ctx, r)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRaceService) GetRace(ctx context.Context, raceID int64) (*domain.Race, error) {
	args := m.Called(ctx, raceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Race), args.Error(1)
}

func (m *MockRaceService) GetRaceWithHorses(ctx context.Context, raceID int64) (*domain.Race, error) {
	args := m.Called(ctx, raceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Race), args.Error(1)
}

func (m *MockRaceService) ListRacesByState(ctx context.Context, state domain.RaceState, limit int) ([]domain.Race, error) {
	args := m.Called(ctx, state, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Race), args.Error(1)
}

func (m *MockRaceService) AddHorse(ctx context.Context, h *domain.Horse) (int64, error) {
	args := m.Called(ctx, h)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRaceService) TransitionState(ctx context.Context, raceID int64, to domain.RaceState) error {
	args := m.Called(ctx, raceID, to)
	return args.Error(0)
}

func (m *MockRaceService) GetRaceResults(ctx context.Context, raceID int64) (*domain.RaceResultSummary, error) {
	args := m.Called(ctx, raceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RaceResultSummary), args.Error(1)
}

// MockWagerService is a testify mock for wager.Service
type MockWagerService struct {
	mock.Mock
}

func (m *MockWagerService) PlaceWager(ctx context.Context, userID, raceID int64, betType domain.BetType, horseIDs []int64, stake int64) (*domain.Wager, error) {
	args := m.Called(ctx, userID, raceID, betType, horseIDs, stake)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wager), args.Error(1)
}

func (m *MockWagerService) GetWager(ctx context.Context, wagerID int64) (*domain.Wager, error) {
	args := m.Called(ctx, wagerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wager), args.Error(1)
}

func (m *MockWagerService) ListWagersByUser(ctx context.Context, userID int64, limit int) ([]domain.Wager, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Wager), args.Error(1)
}

func (m *MockWagerService) ListWagersByRace(ctx context.Context, raceID int64) ([]domain.Wager, error) {
	args := m.Called(ctx, raceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Wager), args.Error(1)
}

// MockSettlementService is a testify mock for settlement.Service
type MockSettlementService struct {
	mock.Mock
}

func (m *MockSettlementService) SettleRace(ctx context.Context, raceID int64, finishingOrder []int64) (*domain.SettlementSummary, error) {
	args := m.Called(ctx, raceID, finishingOrder)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SettlementSummary), args.Error(1)
}

func (m *MockSettlementService) CancelRace(ctx context.Context, raceID int64) (*domain.CancellationSummary, error) {
	args := m.Called(ctx, raceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CancellationSummary), args.Error(1)
}

// MockStatsService is a testify mock for stats.Service
type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) GetUserStats(ctx context.Context, userID int64) (*domain.UserRacingStats, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserRacingStats), args.Error(1)
}

func (m *MockStatsService) GetLeaderboard(ctx context.Context, limit int) ([]domain.UserRacingStats, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserRacingStats), args.Error(1)
}

func (m *MockStatsService) RebuildUserStats(ctx context.Context, userID int64) (*domain.UserRacingStats, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserRacingStats), args.Error(1)
}

// MockLedgerService is a testify mock for ledger.Service
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) GetAccount(ctx context.Context, userID int64) (*domain.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockLedgerService) CreateAccount(ctx context.Context, userID int64, openingBalance int64) error {
	args := m.Called(ctx, userID, openingBalance)
	return args.Error(0)
}

func (m *MockLedgerService) GetTransactions(ctx context.Context, userID int64, limit int) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockLedgerService) Credit(ctx context.Context, userID, amount int64, txnType domain.TransactionType, reason, correlationID string) (bool, error) {
	args := m.Called(ctx, userID, amount, txnType, reason, correlationID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLedgerService) Debit(ctx context.Context, userID, amount int64, txnType domain.TransactionType, reason, correlationID string) (bool, error) {
	args := m.Called(ctx, userID, amount, txnType, reason, correlationID)
	return args.Bool(0), args.Error(1)
}
