package wager

import (
	"context"
	"fmt"
	"time"

	"github.com/oakfield/trackside/internal/domain"
	"github.com/oakfield/trackside/internal/event"
	"github.com/oakfield/trackside/internal/logger"
	"github.com/oakfield/trackside/internal/repository"
)

// Service defines the interface for wager intake
type Service interface {
	// PlaceWager validates the selection against the race, debits the stake
	// and persists the wager pending, all in one transaction.
	PlaceWager(ctx context.Context, userID, raceID int64, betType domain.BetType, horseIDs []int64, stake int64) (*domain.Wager, error)

	GetWager(ctx context.Context, wagerID int64) (*domain.Wager, error)
	ListWagersByUser(ctx context.Context, userID int64, limit int) ([]domain.Wager, error)
	ListWagersByRace(ctx context.Context, raceID int64) ([]domain.Wager, error)
}

type service struct {
	repo      repository.Wager
	raceRepo  repository.Race
	publisher *event.ResilientPublisher
	minStake  int64
	maxStake  int64
}

// NewService creates a new wager service. Non-positive stake bounds fall
// back to the package defaults.
func NewService(repo repository.Wager, raceRepo repository.Race, publisher *event.ResilientPublisher, minStake, maxStake int64) Service {
	if minStake <= 0 {
		minStake = MinStake
	}
	if maxStake <= 0 {
		maxStake = MaxStake
	}
	return &service{
		repo:      repo,
		raceRepo:  raceRepo,
		publisher: publisher,
		minStake:  minStake,
		maxStake:  maxStake,
	}
}

func (s *service) PlaceWager(ctx context.Context, userID, raceID int64, betType domain.BetType, horseIDs []int64, stake int64) (*domain.Wager, error) {
	log := logger.FromContext(ctx)

	if !domain.ValidBetType(betType) {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnresolvableBetType, betType)
	}
	if stake < s.minStake || stake > s.maxStake {
		return nil, fmt.Errorf("%w: stake %d outside [%d, %d]",
			domain.ErrInvalidStake, stake, s.minStake, s.maxStake)
	}

	selection := domain.EncodeSelection(horseIDs)
	if _, err := domain.ParseSelection(betType, selection); err != nil {
		return nil, err
	}

	race, err := s.raceRepo.GetRaceWithHorses(ctx, raceID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetRace, err)
	}
	if race.State != domain.RaceStateActive {
		return nil, fmt.Errorf("%w: race %d is %s", domain.ErrWageringClosed, raceID, race.State)
	}

	entered := make(map[int64]domain.Horse, len(race.Horses))
	for _, h := range race.Horses {
		entered[h.ID] = h
	}
	for _, id := range horseIDs {
		if _, ok := entered[id]; !ok {
			return nil, fmt.Errorf("%w: horse %d is not entered in race %d", domain.ErrHorseNotFound, id, raceID)
		}
	}

	// The payout is locked in at placement from the first pick's odds
	first := entered[horseIDs[0]]
	wager := &domain.Wager{
		UserID:          userID,
		RaceID:          raceID,
		BetType:         betType,
		Selection:       selection,
		Stake:           stake,
		PotentialPayout: first.PotentialPayout(stake),
		Status:          domain.WagerStatusPending,
		CreatedAt:       time.Now().UTC(),
	}

	tx, err := s.repo.BeginWagerTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	wagerID, err := tx.InsertWager(ctx, wager)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToInsertWager, err)
	}
	wager.ID = wagerID

	applied, err := tx.ApplyTransaction(ctx, &domain.Transaction{
		UserID:        userID,
		Type:          domain.TransactionTypeWagerStake,
		Amount:        -stake,
		Reason:        fmt.Sprintf("stake for %s wager on race %d", betType, raceID),
		CorrelationID: fmt.Sprintf("wager-stake:%d", wagerID),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToDebitStake, err)
	}
	if !applied {
		return nil, fmt.Errorf("%w: stake for wager %d already debited", domain.ErrDuplicateTransaction, wagerID)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCommit, err)
	}

	if s.publisher != nil {
		s.publisher.PublishWithRetry(ctx, event.NewWagerPlacedEvent(*wager))
	}

	log.Info(LogMsgWagerPlaced,
		"wagerID", wagerID,
		"userID", userID,
		"raceID", raceID,
		"betType", betType,
		"stake", stake,
		"potentialPayout", wager.PotentialPayout)

	return wager, nil
}

func (s *service) GetWager(ctx context.Context, wagerID int64) (*domain.Wager, error) {
	wager, err := s.repo.GetWager(ctx, wagerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetWager, err)
	}
	return wager, nil
}

func (s *service) ListWagersByUser(ctx context.Context, userID int64, limit int) ([]domain.Wager, error) {
	if limit <= 0 {
		limit = DefaultWagerListLimit
	}
	wagers, err := s.repo.ListWagersByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToListWagers, err)
	}
	return wagers, nil
}

func (s *service) ListWagersByRace(ctx context.Context, raceID int64) ([]domain.Wager, error) {
	wagers, err := s.repo.ListWagersByRace(ctx, raceID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToListWagers, err)
	}
	return wagers, nil
}
