package wager

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/oakfield/trackside/internal/domain"
	"github.com/oakfield/trackside/internal/repository"
)

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

// MockWagerTx
type MockWagerTx struct {
	mock.Mock
}

func (m *MockWagerTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockWagerTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockWagerTx) GetAccountForUpdate(ctx context.Context, userID int64) (*domain.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockWagerTx) InsertWager(ctx context.Context, wager *domain.Wager) (int64, error) {
	args := m.Called(ctx, wager)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWagerTx) ApplyTransaction(ctx context.Context, txn *domain.Transaction) (bool, error) {
	args := m.Called(ctx, txn)
	return args.Bool(0), args.Error(1)
}

// MockRaceRepo
type MockRaceRepo struct {
	mock.Mock
}

func (m *MockRaceRepo) CreateRace(ctx context.Context, race *domain.Race) (int64, error) {
	args := m.Called(ctx, race)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRaceRepo) GetRace(ctx context.Context, raceID int64) (*domain.Race, error) {
	args := m.Called(ctx, raceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Race), args.Error(1)
}

func (m *MockRaceRepo) GetRaceWithHorses(ctx context.Context, raceID int64) (*domain.Race, error) {
	args := m.Called(ctx, raceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Race), args.Error(1)
}

func (m *MockRaceRepo) ListRacesByState(ctx context.Context, state domain.RaceState, limit int) ([]domain.Race, error) {
	args := m.Called(ctx, state, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Race), args.Error(1)
}

func (m *MockRaceRepo) UpdateRaceStateIfMatches(ctx context.Context, raceID int64, expectedState, newState domain.RaceState) (int64, error) {
	args := m.Called(ctx, raceID, expectedState, newState)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRaceRepo) AddHorse(ctx context.Context, horse *domain.Horse) (int64, error) {
	args := m.Called(ctx, horse)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRaceRepo) GetHorse(ctx context.Context, horseID int64) (*domain.Horse, error) {
	args := m.Called(ctx, horseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Horse), args.Error(1)
}

func (m *MockRaceRepo) GetHorsesByRace(ctx context.Context, raceID int64) ([]domain.Horse, error) {
	args := m.Called(ctx, raceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Horse), args.Error(1)
}

func (m *MockRaceRepo) GetRaceResults(ctx context.Context, raceID int64) ([]domain.RaceResult, error) {
	args := m.Called(ctx, raceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RaceResult), args.Error(1)
}
