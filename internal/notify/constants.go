package notify

// Error message constants
const (
	ErrContextFailedToCreateSession = "failed to create discord session"
	ErrContextFailedToOpenSession   = "failed to open discord session"
)

// Log message constants
const (
	LogMsgAnnouncerDisabled    = "Discord announcer disabled, token or channel not configured"
	LogMsgAnnouncementSent     = "Announcement sent"
	LogMsgAnnouncementFailed   = "Failed to send announcement"
	LogMsgPayloadDecodeFailed  = "Failed to decode announcement payload"
)
