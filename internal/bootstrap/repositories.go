package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oakfield/trackside/internal/database/postgres"
	"github.com/oakfield/trackside/internal/eventlog"
	"github.com/oakfield/trackside/internal/repository"
)

// Repositories holds all repository implementations used by the application.
// This provides a centralized location for repository initialization and
// makes dependency injection clearer.
type Repositories struct {
	Race       repository.Race
	Wager      repository.Wager
	Settlement repository.Settlement
	Ledger     repository.Ledger
	Stats      repository.Stats
	EventLog   eventlog.Repository
}

// InitializeRepositories creates all repository implementations.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Race:       postgres.NewRaceRepository(dbPool),
		Wager:      postgres.NewWagerRepository(dbPool),
		Settlement: postgres.NewSettlementRepository(dbPool),
		Ledger:     postgres.NewLedgerRepository(dbPool),
		Stats:      postgres.NewStatsRepository(dbPool),
		EventLog:   postgres.NewEventLogRepository(dbPool),
	}
}
