package domain

import "errors"

// Error message constants for consistent error handling
const (
	ErrMsgRaceNotFound         = "race not found"
	ErrMsgHorseNotFound        = "horse not found"
	ErrMsgWagerNotFound        = "wager not found"
	ErrMsgUserNotFound         = "user not found"
	ErrMsgInvalidRaceState     = "race is not in a settleable state"
	ErrMsgIncompleteOrder      = "finishing order is incomplete or malformed"
	ErrMsgMalformedSelection   = "wager selection is malformed"
	ErrMsgUnresolvableBetType  = "bet type cannot be resolved"
	ErrMsgLedgerFailure        = "ledger operation failed"
	ErrMsgSettlementConflict   = "race was settled concurrently"
	ErrMsgInvalidStateChange   = "invalid race state transition"
	ErrMsgInsufficientFunds    = "insufficient funds"
	ErrMsgInvalidStake         = "stake must be positive"
	ErrMsgWageringClosed       = "wagering is closed for this race"
	ErrMsgDuplicateTransaction = "transaction already applied"
	ErrMsgInvalidAmount        = "amount must be positive"
	ErrMsgTxClosed             = "tx is closed"
)

var (
	ErrRaceNotFound  = errors.New(ErrMsgRaceNotFound)
	ErrHorseNotFound = errors.New(ErrMsgHorseNotFound)
	ErrWagerNotFound = errors.New(ErrMsgWagerNotFound)
	ErrUserNotFound  = errors.New(ErrMsgUserNotFound)

	// ErrInvalidRaceState is returned when settlement is requested for a
	// race that is not active. Settling an already completed race returns
	// this error too, which makes repeated settlement calls harmless.
	ErrInvalidRaceState = errors.New(ErrMsgInvalidRaceState)

	// ErrIncompleteOrder is returned when the submitted finishing order is
	// not a permutation of the race's entrants.
	ErrIncompleteOrder = errors.New(ErrMsgIncompleteOrder)

	// ErrMalformedSelection marks a wager whose stored selection cannot be
	// parsed or has the wrong arity. During settlement such wagers are
	// marked lost and audited rather than aborting the batch.
	ErrMalformedSelection = errors.New(ErrMsgMalformedSelection)

	// ErrUnresolvableBetType is returned for bet types the resolver table
	// does not know.
	ErrUnresolvableBetType = errors.New(ErrMsgUnresolvableBetType)

	// ErrLedgerFailure wraps any failure while crediting winnings. It
	// aborts the settlement transaction so no partial payout survives.
	ErrLedgerFailure = errors.New(ErrMsgLedgerFailure)

	// ErrSettlementConflict is returned when the compare-and-set on race
	// state finds another settlement already won the race.
	ErrSettlementConflict = errors.New(ErrMsgSettlementConflict)

	ErrInvalidStateChange   = errors.New(ErrMsgInvalidStateChange)
	ErrInsufficientFunds    = errors.New(ErrMsgInsufficientFunds)
	ErrInvalidStake         = errors.New(ErrMsgInvalidStake)
	ErrWageringClosed       = errors.New(ErrMsgWageringClosed)
	ErrDuplicateTransaction = errors.New(ErrMsgDuplicateTransaction)
	ErrInvalidAmount        = errors.New(ErrMsgInvalidAmount)
)
