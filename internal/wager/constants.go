package wager

// Error message constants
const (
	ErrContextFailedToBeginTx     = "failed to begin wager transaction"
	ErrContextFailedToGetRace     = "failed to get race"
	ErrContextFailedToInsertWager = "failed to insert wager"
	ErrContextFailedToDebitStake  = "failed to debit stake"
	ErrContextFailedToCommit      = "failed to commit wager placement"
	ErrContextFailedToListWagers  = "failed to list wagers"
	ErrContextFailedToGetWager    = "failed to get wager"
)

// Log message constants
const (
	LogMsgWagerPlaced = "Wager placed"
)

// Stake limits in minor currency units
const (
	MinStake = 100
	MaxStake = 1_000_000
)

// DefaultWagerListLimit caps user wager history queries
const DefaultWagerListLimit = 50
