package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "race.settled")
const (
	// EventTypeRaceSettled is published after a race's settlement transaction commits
	EventTypeRaceSettled = "race.settled"

	// EventTypeRaceStateChanged is published on race lifecycle transitions
	EventTypeRaceStateChanged = "race.state_changed"

	// EventTypeWagerPlaced is published when a wager is accepted
	EventTypeWagerPlaced = "wager.placed"

	// EventTypeWagerFlagged is published when a wager is left pending for manual review
	EventTypeWagerFlagged = "wager.flagged"
)
