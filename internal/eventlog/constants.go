package eventlog

// JSON payload field keys
const (
	PayloadKeyUserID = "user_id"
)

// Log messages - service events
const (
	LogMsgPayloadNotSerializable = "Event payload is not serializable, skipping log"
	LogMsgFailedToLogEvent       = "Failed to log event to database"
	LogMsgEventLogged            = "Event logged to database"
)

// Log field keys - structured logging fields
const (
	LogFieldType   = "type"
	LogFieldUserID = "user_id"
	LogFieldError  = "error"
)
