package race

import "time"

// Error message constants
const (
	ErrContextFailedToCreateRace  = "failed to create race"
	ErrContextFailedToGetRace     = "failed to get race"
	ErrContextFailedToListRaces   = "failed to list races"
	ErrContextFailedToAddHorse    = "failed to add horse"
	ErrContextFailedToGetResults  = "failed to get race results"
	ErrContextFailedToUpdateState = "failed to update race state"
)

// Log message constants
const (
	LogMsgRaceCreated      = "Race created"
	LogMsgHorseAdded       = "Horse added to race"
	LogMsgRaceStateChanged = "Race state changed"
	LogMsgStateChangeLost  = "Race state change lost to concurrent update"
)

// Result cache sizing. Settled results are immutable, so a generous TTL is
// safe; the cache only absorbs repeat reads of recently settled races.
const (
	ResultCacheSize = 256
	ResultCacheTTL  = 10 * time.Minute
)

// Validation limits
const (
	MinHorsesPerRace = 2
	MaxHorsesPerRace = 20
	MaxRaceNameLen   = 200
)

// DefaultRaceListLimit bounds list queries when the caller does not
// specify a limit.
const DefaultRaceListLimit = 20
