package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam  = "Missing %s query parameter"
	ErrMsgInvalidIDParam     = "Invalid %s parameter"
	ErrMsgInvalidLimit       = "Invalid limit parameter"
	ErrMsgInvalidUserIDParam = "Invalid user_id parameter"

	// Race operation error messages
	ErrMsgCreateRaceFailed = "Failed to create race"
	ErrMsgGetRaceFailed    = "Failed to get race"
	ErrMsgListRacesFailed  = "Failed to list races"
	ErrMsgAddHorseFailed   = "Failed to add horse"
	ErrMsgGetResultsFailed = "Failed to get race results"
	ErrMsgTransitionFailed = "Failed to change race state"

	// Settlement operation error messages
	ErrMsgSettleRaceFailed = "Failed to settle race"
	ErrMsgCancelRaceFailed = "Failed to cancel race"

	// Wager operation error messages
	ErrMsgPlaceWagerFailed = "Failed to place wager"
	ErrMsgListWagersFailed = "Failed to list wagers"

	// Stats operation error messages
	ErrMsgGetStatsFailed       = "Failed to get stats"
	ErrMsgGetLeaderboardFailed = "Failed to retrieve leaderboard"
	ErrMsgRebuildStatsFailed   = "Failed to rebuild stats"

	// Ledger operation error messages
	ErrMsgGetAccountFailed     = "Failed to get account"
	ErrMsgCreateAccountFailed  = "Failed to create account"
	ErrMsgListTransactionsFail = "Failed to list transactions"
)

// Success messages for API responses
const (
	MsgRaceCreatedSuccess    = "Race created successfully"
	MsgHorseAddedSuccess     = "Horse added successfully"
	MsgStateChangedSuccess   = "Race state changed successfully"
	MsgAccountCreatedSuccess = "Account created successfully"
	MsgStatsRebuiltSuccess   = "Stats rebuilt successfully"
)
