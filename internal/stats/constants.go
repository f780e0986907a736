package stats

// Error message constants
const (
	ErrContextFailedToGetStats        = "failed to get user stats"
	ErrContextFailedToGetLeaderboard  = "failed to get leaderboard"
	ErrContextFailedToListWagers      = "failed to list settled wagers"
	ErrContextFailedToReplaceStats    = "failed to replace user stats"
)

// Log message constants
const (
	LogMsgStatsRebuilt = "User stats rebuilt from wager history"
)

// DefaultLeaderboardLimit caps leaderboard queries when the caller passes
// zero or a negative limit
const DefaultLeaderboardLimit = 10

// MaxLeaderboardLimit is the hard cap on leaderboard size
const MaxLeaderboardLimit = 100
