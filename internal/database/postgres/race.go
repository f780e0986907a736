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

type raceRepository struct {
	db *pgxpool.Pool
}

// NewRaceRepository creates a new PostgreSQL race repository
func NewRaceRepository(db *pgxpool.Pool) repository.Race {
	return &raceRepository{db: db}
}

func (r *raceRepository) CreateRace(ctx context.Context, race *domain.Race) (int64, error) {
	query := `
		INSERT INTO races (name, scheduled_start, scheduled_end, prize_pool, state)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		race.Name, race.ScheduledStart, race.ScheduledEnd, race.PrizePool, race.State,
	).Scan(&race.ID, &race.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToInsertRace, err)
	}
	return race.ID, nil
}

func (r *raceRepository) GetRace(ctx context.Context, raceID int64) (*domain.Race, error) {
	query := `
		SELECT id, name, scheduled_start, scheduled_end, prize_pool, state, completed_at, created_at
		FROM races
		WHERE id = $1
	`

	var race domain.Race
	err := r.db.QueryRow(ctx, query, raceID).Scan(
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

func (r *raceRepository) GetRaceWithHorses(ctx context.Context, raceID int64) (*domain.Race, error) {
	race, err := r.GetRace(ctx, raceID)
	if err != nil {
		return nil, err
	}

	horses, err := r.GetHorsesByRace(ctx, raceID)
	if err != nil {
		return nil, err
	}
	race.Horses = horses
	return race, nil
}

func (r *raceRepository) ListRacesByState(ctx context.Context, state domain.RaceState, limit int) ([]domain.Race, error) {
	query := `
		SELECT id, name, scheduled_start, scheduled_end, prize_pool, state, completed_at, created_at
		FROM races
		WHERE state = $1
		ORDER BY scheduled_start
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, state, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryRaces, err)
	}
	defer rows.Close()

	var races []domain.Race
	for rows.Next() {
		var race domain.Race
		if err := rows.Scan(
			&race.ID, &race.Name, &race.ScheduledStart, &race.ScheduledEnd,
			&race.PrizePool, &race.State, &race.CompletedAt, &race.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryRaces, err)
		}
		races = append(races, race)
	}
	return races, rows.Err()
}

// UpdateRaceStateIfMatches performs a compare-and-swap operation on race state.
// Returns rows affected: 0 means the race was not in the expected state, which
// callers treat as a state conflict.
func (r *raceRepository) UpdateRaceStateIfMatches(ctx context.Context, raceID int64, expectedState, newState domain.RaceState) (int64, error) {
	query := `
		UPDATE races
		SET state = $1
		WHERE id = $2 AND state = $3
	`

	result, err := r.db.Exec(ctx, query, newState, raceID, expectedState)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToUpdateRaceState, err)
	}
	return result.RowsAffected(), nil
}

func (r *raceRepository) AddHorse(ctx context.Context, horse *domain.Horse) (int64, error) {
	query := `
		INSERT INTO horses (race_id, name, jockey, odds_numer, odds_denom, recent_wins, recent_starts)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		horse.RaceID, horse.Name, horse.Jockey, horse.OddsNumer, horse.OddsDenom,
		horse.RecentWins, horse.RecentStarts,
	).Scan(&horse.ID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToInsertHorse, err)
	}
	return horse.ID, nil
}

func (r *raceRepository) GetHorse(ctx context.Context, horseID int64) (*domain.Horse, error) {
	query := `
		SELECT id, race_id, name, jockey, odds_numer, odds_denom, recent_wins, recent_starts
		FROM horses
		WHERE id = $1
	`

	var horse domain.Horse
	err := r.db.QueryRow(ctx, query, horseID).Scan(
		&horse.ID, &horse.RaceID, &horse.Name, &horse.Jockey,
		&horse.OddsNumer, &horse.OddsDenom, &horse.RecentWins, &horse.RecentStarts)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrHorseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetHorse, err)
	}
	return &horse, nil
}

func (r *raceRepository) GetHorsesByRace(ctx context.Context, raceID int64) ([]domain.Horse, error) {
	query := `
		SELECT id, race_id, name, jockey, odds_numer, odds_denom, recent_wins, recent_starts
		FROM horses
		WHERE race_id = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, raceID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryHorses, err)
	}
	defer rows.Close()

	var horses []domain.Horse
	for rows.Next() {
		var horse domain.Horse
		if err := rows.Scan(
			&horse.ID, &horse.RaceID, &horse.Name, &horse.Jockey,
			&horse.OddsNumer, &horse.OddsDenom, &horse.RecentWins, &horse.RecentStarts); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryHorses, err)
		}
		horses = append(horses, horse)
	}
	return horses, rows.Err()
}

func (r *raceRepository) GetRaceResults(ctx context.Context, raceID int64) ([]domain.RaceResult, error) {
	query := `
		SELECT race_id, horse_id, position, recorded_at
		FROM race_results
		WHERE race_id = $1
		ORDER BY position
	`

	rows, err := r.db.Query(ctx, query, raceID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryResults, err)
	}
	defer rows.Close()

	var results []domain.RaceResult
	for rows.Next() {
		var result domain.RaceResult
		if err := rows.Scan(&result.RaceID, &result.HorseID, &result.Position, &result.RecordedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryResults, err)
		}
		results = append(results, result)
	}
	return results, rows.Err()
}
