package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - Race Operations
const (
	ErrMsgFailedToInsertRace      = "failed to insert race"
	ErrMsgFailedToGetRace         = "failed to get race"
	ErrMsgFailedToQueryRaces      = "failed to query races"
	ErrMsgFailedToUpdateRaceState = "failed to update race state"
	ErrMsgFailedToInsertHorse     = "failed to insert horse"
	ErrMsgFailedToGetHorse        = "failed to get horse"
	ErrMsgFailedToQueryHorses     = "failed to query horses"
	ErrMsgFailedToInsertResult    = "failed to insert race result"
	ErrMsgFailedToQueryResults    = "failed to query race results"
	ErrMsgFailedToCompleteRace    = "failed to complete race"
	ErrMsgFailedToCancelRace      = "failed to cancel race"
)

// Error Messages - Wager Operations
const (
	ErrMsgFailedToInsertWager = "failed to insert wager"
	ErrMsgFailedToGetWager    = "failed to get wager"
	ErrMsgFailedToQueryWagers = "failed to query wagers"
	ErrMsgFailedToUpdateWager = "failed to update wager"
	ErrMsgFailedToFlagWager   = "failed to flag wager"
)

// Error Messages - Ledger Operations
const (
	ErrMsgFailedToGetAccount         = "failed to get account"
	ErrMsgFailedToCreateAccount      = "failed to create account"
	ErrMsgFailedToLockAccount        = "failed to lock account"
	ErrMsgFailedToUpdateBalance      = "failed to update balance"
	ErrMsgFailedToInsertTransaction  = "failed to insert transaction"
	ErrMsgFailedToQueryTransactions  = "failed to query transactions"
	ErrMsgFailedToGetTransaction     = "failed to get transaction"
)

// Error Messages - Stats Operations
const (
	ErrMsgFailedToGetUserStats     = "failed to get user stats"
	ErrMsgFailedToUpsertUserStats  = "failed to upsert user stats"
	ErrMsgFailedToQueryLeaderboard = "failed to query leaderboard"
)

// Error Messages - Audit Operations
const (
	ErrMsgFailedToInsertAudit = "failed to insert audit entry"
)
