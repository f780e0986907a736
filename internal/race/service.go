package race

import (
	"context"
	"fmt"
	"strings"

	"github.com/oakfield/trackside/internal/domain"
	"github.com/oakfield/trackside/internal/event"
	"github.com/oakfield/trackside/internal/logger"
	"github.com/oakfield/trackside/internal/repository"
)

// Service defines the interface for race lifecycle operations
type Service interface {
	CreateRace(ctx context.Context, race *domain.Race) (int64, error)
	GetRace(ctx context.Context, raceID int64) (*domain.Race, error)
	GetRaceWithHorses(ctx context.Context, raceID int64) (*domain.Race, error)
	ListRacesByState(ctx context.Context, state domain.RaceState, limit int) ([]domain.Race, error)

	AddHorse(ctx context.Context, horse *domain.Horse) (int64, error)

	// TransitionState moves a race along its lifecycle with a
	// compare-and-set, so concurrent transitions cannot double-apply.
	TransitionState(ctx context.Context, raceID int64, to domain.RaceState) error

	// GetRaceResults returns the finishing order of a settled race.
	// Results are immutable and served from cache after first read.
	GetRaceResults(ctx context.Context, raceID int64) (*domain.RaceResultSummary, error)
}

type service struct {
	repo      repository.Race
	publisher *event.ResilientPublisher
	results   *resultCache
}

// NewService creates a new race service
func NewService(repo repository.Race, publisher *event.ResilientPublisher) Service {
	return &service{
		repo:      repo,
		publisher: publisher,
		results:   newResultCache(ResultCacheSize, ResultCacheTTL),
	}
}

func (s *service) CreateRace(ctx context.Context, race *domain.Race) (int64, error) {
	name := strings.TrimSpace(race.Name)
	if name == "" || len(name) > MaxRaceNameLen {
		return 0, fmt.Errorf("%w: race name must be 1-%d characters", domain.ErrInvalidRaceState, MaxRaceNameLen)
	}
	race.Name = name

	if !race.ScheduledEnd.After(race.ScheduledStart) {
		return 0, fmt.Errorf("%w: scheduled end must be after start", domain.ErrInvalidRaceState)
	}

	race.State = domain.RaceStateScheduled
	id, err := s.repo.CreateRace(ctx, race)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrContextFailedToCreateRace, err)
	}

	logger.FromContext(ctx).Info(LogMsgRaceCreated, "raceID", id, "name", race.Name)
	return id, nil
}

func (s *service) GetRace(ctx context.Context, raceID int64) (*domain.Race, error) {
	race, err := s.repo.GetRace(ctx, raceID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetRace, err)
	}
	return race, nil
}

func (s *service) GetRaceWithHorses(ctx context.Context, raceID int64) (*domain.Race, error) {
	race, err := s.repo.GetRaceWithHorses(ctx, raceID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetRace, err)
	}
	return race, nil
}

func (s *service) ListRacesByState(ctx context.Context, state domain.RaceState, limit int) ([]domain.Race, error) {
	races, err := s.repo.ListRacesByState(ctx, state, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToListRaces, err)
	}
	return races, nil
}

// AddHorse registers an entrant. The field is only open while the race is
// still scheduled.
func (s *service) AddHorse(ctx context.Context, horse *domain.Horse) (int64, error) {
	if horse.OddsNumer <= 0 || horse.OddsDenom <= 0 {
		return 0, fmt.Errorf("%w: odds must be a positive fraction, got %d/%d",
			domain.ErrInvalidAmount, horse.OddsNumer, horse.OddsDenom)
	}
	if strings.TrimSpace(horse.Name) == "" {
		return 0, fmt.Errorf("%w: horse name required", domain.ErrHorseNotFound)
	}

	race, err := s.repo.GetRace(ctx, horse.RaceID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrContextFailedToGetRace, err)
	}
	if race.State != domain.RaceStateScheduled {
		return 0, fmt.Errorf("%w: race %d is %s, horses can only be added while scheduled",
			domain.ErrInvalidRaceState, race.ID, race.State)
	}

	horses, err := s.repo.GetHorsesByRace(ctx, horse.RaceID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrContextFailedToAddHorse, err)
	}
	if len(horses) >= MaxHorsesPerRace {
		return 0, fmt.Errorf("%w: race %d already has %d horses",
			domain.ErrInvalidRaceState, race.ID, len(horses))
	}

	id, err := s.repo.AddHorse(ctx, horse)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrContextFailedToAddHorse, err)
	}

	logger.FromContext(ctx).Info(LogMsgHorseAdded, "raceID", horse.RaceID, "horseID", id, "name", horse.Name)
	return id, nil
}

func (s *service) TransitionState(ctx context.Context, raceID int64, to domain.RaceState) error {
	race, err := s.repo.GetRace(ctx, raceID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToGetRace, err)
	}

	from := race.State
	if !from.CanTransitionTo(to) {
		return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidStateChange, from, to)
	}

	// Approval requires a viable field
	if to == domain.RaceStateApproved {
		horses, err := s.repo.GetHorsesByRace(ctx, raceID)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrContextFailedToUpdateState, err)
		}
		if len(horses) < MinHorsesPerRace {
			return fmt.Errorf("%w: race %d needs at least %d horses to be approved",
				domain.ErrInvalidStateChange, raceID, MinHorsesPerRace)
		}
	}

	rows, err := s.repo.UpdateRaceStateIfMatches(ctx, raceID, from, to)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToUpdateState, err)
	}
	if rows == 0 {
		logger.FromContext(ctx).Warn(LogMsgStateChangeLost, "raceID", raceID, "from", from, "to", to)
		return fmt.Errorf("%w: race %d left state %s concurrently", domain.ErrInvalidStateChange, raceID, from)
	}

	logger.FromContext(ctx).Info(LogMsgRaceStateChanged, "raceID", raceID, "from", from, "to", to)

	if s.publisher != nil {
		s.publisher.PublishWithRetry(ctx, event.NewRaceStateChangedEvent(raceID, from, to))
	}
	return nil
}

func (s *service) GetRaceResults(ctx context.Context, raceID int64) (*domain.RaceResultSummary, error) {
	if summary, ok := s.results.Get(raceID); ok {
		return summary, nil
	}

	race, err := s.repo.GetRace(ctx, raceID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetRace, err)
	}

	results, err := s.repo.GetRaceResults(ctx, raceID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetResults, err)
	}

	summary := &domain.RaceResultSummary{RaceID: raceID, Results: results}
	if race.CompletedAt != nil {
		summary.CompletedAt = *race.CompletedAt
	}

	// Only completed races are cached; an in-flight settlement could still
	// roll back.
	if race.State == domain.RaceStateCompleted {
		s.results.Set(raceID, summary)
	}
	return summary, nil
}
