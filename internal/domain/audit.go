package domain

import "time"

// AuditAction identifies why an audit entry was written
type AuditAction string

const (
	AuditActionMalformedSelection = AuditAction("wager.malformed_selection")
	AuditActionWagerFlagged       = AuditAction("wager.flagged_for_review")
	AuditActionRaceSettled        = AuditAction("race.settled")
	AuditActionRaceCancelled      = AuditAction("race.cancelled")
)

// AuditEntry is an immutable record written during settlement for anything an
// operator may need to inspect later.
type AuditEntry struct {
	ID        int64       `json:"id"`
	RaceID    int64       `json:"race_id"`
	WagerID   *int64      `json:"wager_id,omitempty"`
	Action    AuditAction `json:"action"`
	Detail    string      `json:"detail"`
	CreatedAt time.Time   `json:"created_at"`
}
