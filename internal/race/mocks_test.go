package race

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/oakfield/trackside/internal/domain"
)

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
