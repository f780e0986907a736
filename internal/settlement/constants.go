package settlement

// Error message constants
const (
	ErrContextFailedToBeginTx       = "failed to begin settlement transaction"
	ErrContextFailedToLockRace      = "failed to lock race"
	ErrContextFailedToLoadHorses    = "failed to load race horses"
	ErrContextFailedToInsertResults = "failed to record race results"
	ErrContextFailedToLoadWagers    = "failed to load pending wagers"
	ErrContextFailedToSettleWager   = "failed to settle wager"
	ErrContextFailedToCreditWinner  = "failed to credit winner"
	ErrContextFailedToApplyStats    = "failed to apply race outcome"
	ErrContextFailedToCommit        = "failed to commit settlement"
	ErrContextFailedToVoidWager     = "failed to void wager"
	ErrContextFailedToRefundStake   = "failed to refund stake"
	ErrContextFailedToCancelRace    = "failed to cancel race"
)

// Log message constants
const (
	LogMsgSettlementStarted   = "Race settlement started"
	LogMsgSettlementCompleted = "Race settlement completed"
	LogMsgSettlementConflict  = "Race settlement lost the completion race"
	LogMsgMalformedSelection  = "Wager selection malformed, settling as lost"
	LogMsgWagerFlagged        = "Wager unresolvable, flagged for review"
	LogMsgDuplicatePayout     = "Payout already credited, skipping"
	LogMsgDuplicateRefund     = "Refund already applied, skipping"
	LogMsgRaceCancelled       = "Race cancelled, stakes refunded"
	LogMsgEventPublishFailed  = "Failed to publish settlement event"
)

// Audit detail formats
const (
	AuditDetailMalformedSelection = "selection %q invalid for bet type %s: %v"
	AuditDetailFlagged            = "bet type %s unresolvable: %s"
	AuditDetailRaceSettled        = "settled %d wagers, %d won, %d flagged, paid out %d"
	AuditDetailRaceCancelled      = "voided %d wagers, refunded %d"
)
