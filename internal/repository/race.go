package repository

import (
	"context"

	"github.com/oakfield/trackside/internal/domain"
)

// Race defines the interface for race and horse persistence
type Race interface {
	CreateRace(ctx context.Context, race *domain.Race) (int64, error)
	GetRace(ctx context.Context, raceID int64) (*domain.Race, error)
	GetRaceWithHorses(ctx context.Context, raceID int64) (*domain.Race, error)
	ListRacesByState(ctx context.Context, state domain.RaceState, limit int) ([]domain.Race, error)

	// UpdateRaceStateIfMatches performs a compare-and-set on race state and
	// returns the number of rows affected. Zero rows means the race was not
	// in the expected state.
	UpdateRaceStateIfMatches(ctx context.Context, raceID int64, expectedState, newState domain.RaceState) (int64, error)

	AddHorse(ctx context.Context, horse *domain.Horse) (int64, error)
	GetHorse(ctx context.Context, horseID int64) (*domain.Horse, error)
	GetHorsesByRace(ctx context.Context, raceID int64) ([]domain.Horse, error)

	GetRaceResults(ctx context.Context, raceID int64) ([]domain.RaceResult, error)
}
