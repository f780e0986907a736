package ledger

// Error message constants
const (
	ErrContextFailedToBeginTx     = "failed to begin ledger transaction"
	ErrContextFailedToGetAccount  = "failed to get account"
	ErrContextFailedToApplyTxn    = "failed to apply transaction"
	ErrContextFailedToCommit      = "failed to commit ledger transaction"
	ErrContextFailedToListTxns    = "failed to list transactions"
)

// Log message constants
const (
	LogMsgAccountCredited   = "Account credited"
	LogMsgAccountDebited    = "Account debited"
	LogMsgDuplicateIgnored  = "Duplicate transaction ignored"
	LogMsgAccountCreated    = "Account created"
)

// DefaultTransactionLimit caps transaction history queries when the caller
// passes zero or a negative limit
const DefaultTransactionLimit = 50
