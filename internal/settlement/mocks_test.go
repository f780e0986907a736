package settlement

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/oakfield/trackside/internal/domain"
	"github.com/oakfield/trackside/internal/repository"
)

// MockSettlementRepo
type MockSettlementRepo struct {
	mock.Mock
}

func (m *MockSettlementRepo) BeginSettlementTx(ctx context.Context) (repository.SettlementTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.SettlementTx), args.Error(1)
}

// MockSettlementTx
type MockSettlementTx struct {
	mock.Mock
}

func (m *MockSettlementTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSettlementTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSettlementTx) GetRaceForUpdate(ctx context.Context, raceID int64) (*domain.Race, error) {
	args := m.Called(ctx, raceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Race), args.Error(1)
}

func (m *MockSettlementTx) GetHorseIDs(ctx context.Context, raceID int64) ([]int64, error) {
	args := m.Called(ctx, raceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockSettlementTx) InsertResults(ctx context.Context, results []domain.RaceResult) error {
	args := m.Called(ctx, results)
	return args.Error(0)
}

func (m *MockSettlementTx) ListPendingWagersForUpdate(ctx context.Context, raceID int64) ([]domain.Wager, error) {
	args := m.Called(ctx, raceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Wager), args.Error(1)
}

func (m *MockSettlementTx) MarkWagerWon(ctx context.Context, wagerID int64, payout int64, settledAt time.Time) error {
	args := m.Called(ctx, wagerID, payout, settledAt)
	return args.Error(0)
}

func (m *MockSettlementTx) MarkWagerLost(ctx context.Context, wagerID int64, settledAt time.Time) error {
	args := m.Called(ctx, wagerID, settledAt)
	return args.Error(0)
}

func (m *MockSettlementTx) FlagWagerForReview(ctx context.Context, wagerID int64, reason string) error {
	args := m.Called(ctx, wagerID, reason)
	return args.Error(0)
}

func (m *MockSettlementTx) CreditWinner(ctx context.Context, userID, amount int64, reason, correlationID string) (bool, error) {
	args := m.Called(ctx, userID, amount, reason, correlationID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSettlementTx) VoidWager(ctx context.Context, wagerID int64, voidedAt time.Time) error {
	args := m.Called(ctx, wagerID, voidedAt)
	return args.Error(0)
}

func (m *MockSettlementTx) RefundStake(ctx context.Context, userID, amount int64, reason, correlationID string) (bool, error) {
	args := m.Called(ctx, userID, amount, reason, correlationID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSettlementTx) CompleteRaceIfActive(ctx context.Context, raceID int64, completedAt time.Time) (int64, error) {
	args := m.Called(ctx, raceID, completedAt)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSettlementTx) CancelRaceIfState(ctx context.Context, raceID int64, from domain.RaceState) (int64, error) {
	args := m.Called(ctx, raceID, from)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSettlementTx) ApplyRaceOutcome(ctx context.Context, outcome domain.RaceOutcome) error {
	args := m.Called(ctx, outcome)
	return args.Error(0)
}

func (m *MockSettlementTx) RecordAudit(ctx context.Context, entry domain.AuditEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
