package handler

import (
	"net/http"
	"time"

	"github.com/oakfield/trackside/internal/domain"
	"github.com/oakfield/trackside/internal/logger"
	"github.com/oakfield/trackside/internal/race"
)

// CreateRaceRequest represents a request to schedule a new race
type CreateRaceRequest struct {
	Name           string    `json:"name" validate:"required,max=200,excludesall=\x00\n\r\t"`
	ScheduledStart time.Time `json:"scheduled_start" validate:"required"`
	ScheduledEnd   time.Time `json:"scheduled_end" validate:"required"`
	PrizePool      int64     `json:"prize_pool" validate:"min=0"`
}

// CreateRaceResponse returns the identifier of the newly scheduled race
type CreateRaceResponse struct {
	Message string `json:"message"`
	RaceID  int64  `json:"race_id"`
}

// AddHorseRequest represents a request to enter a horse into a race
type AddHorseRequest struct {
	Name         string `json:"name" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Jockey       string `json:"jockey" validate:"max=100,excludesall=\x00\n\r\t"`
	OddsNumer    int64  `json:"odds_numer" validate:"required,min=1"`
	OddsDenom    int64  `json:"odds_denom" validate:"required,min=1"`
	RecentWins   int    `json:"recent_wins" validate:"min=0"`
	RecentStarts int    `json:"recent_starts" validate:"min=0"`
}

// AddHorseResponse returns the identifier of the newly entered horse
type AddHorseResponse struct {
	Message string `json:"message"`
	HorseID int64  `json:"horse_id"`
}

// HandleCreateRace handles POST requests to schedule a race
// @Summary Create race
// @Description Schedule a new race with an empty field
// @Tags races
// @Accept json
// @Produce json
// @Param request body CreateRaceRequest true "Race details"
// @Success 201 {object} CreateRaceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /races [post]
func HandleCreateRace(svc race.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req CreateRaceRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create race"); err != nil {
			return
		}

		LogRequestFields(log, "name", req.Name, "scheduled_start", req.ScheduledStart)

		raceID, err := svc.CreateRace(r.Context(), &domain.Race{
			Name:           req.Name,
			ScheduledStart: req.ScheduledStart,
			ScheduledEnd:   req.ScheduledEnd,
			PrizePool:      req.PrizePool,
		})
		if err != nil {
			respondServiceError(w, r, ErrMsgCreateRaceFailed, err)
			return
		}

		log.Info("Race created", "race_id", raceID, "name", req.Name)

		respondJSON(w, http.StatusCreated, CreateRaceResponse{
			Message: MsgRaceCreatedSuccess,
			RaceID:  raceID,
		})
	}
}

// HandleGetRace handles GET requests for a single race with its field
// @Summary Get race
// @Description Get a race and its entered horses
// @Tags races
// @Produce json
// @Param raceID path int true "Race ID"
// @Success 200 {object} domain.Race
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /races/{raceID} [get]
func HandleGetRace(svc race.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raceID, ok := GetInt64URLParam(r, w, "raceID")
		if !ok {
			return
		}

		found, err := svc.GetRaceWithHorses(r.Context(), raceID)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetRaceFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, found)
	}
}

// HandleListRaces handles GET requests for races filtered by state
// @Summary List races
// @Description List races in a given lifecycle state
// @Tags races
// @Produce json
// @Param state query string true "Race state (scheduled, approved, active, completed, cancelled)"
// @Param limit query int false "Maximum races to return"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /races [get]
func HandleListRaces(svc race.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, ok := GetQueryParam(r, w, "state")
		if !ok {
			return
		}
		limit, ok := GetOptionalLimitParam(r, w, race.DefaultRaceListLimit)
		if !ok {
			return
		}

		races, err := svc.ListRacesByState(r.Context(), domain.RaceState(state), limit)
		if err != nil {
			respondServiceError(w, r, ErrMsgListRacesFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: races})
	}
}

// HandleAddHorse handles POST requests to enter a horse into a race
// @Summary Add horse
// @Description Enter a horse into a scheduled race
// @Tags races
// @Accept json
// @Produce json
// @Param raceID path int true "Race ID"
// @Param request body AddHorseRequest true "Horse details"
// @Success 201 {object} AddHorseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /races/{raceID}/horses [post]
func HandleAddHorse(svc race.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		raceID, ok := GetInt64URLParam(r, w, "raceID")
		if !ok {
			return
		}

		var req AddHorseRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Add horse"); err != nil {
			return
		}

		horseID, err := svc.AddHorse(r.Context(), &domain.Horse{
			RaceID:       raceID,
			Name:         req.Name,
			Jockey:       req.Jockey,
			OddsNumer:    req.OddsNumer,
			OddsDenom:    req.OddsDenom,
			RecentWins:   req.RecentWins,
			RecentStarts: req.RecentStarts,
		})
		if err != nil {
			respondServiceError(w, r, ErrMsgAddHorseFailed, err)
			return
		}

		log.Info("Horse added", "race_id", raceID, "horse_id", horseID, "name", req.Name)

		respondJSON(w, http.StatusCreated, AddHorseResponse{
			Message: MsgHorseAddedSuccess,
			HorseID: horseID,
		})
	}
}

// handleTransition is shared by the explicit lifecycle endpoints
func handleTransition(svc race.Service, to domain.RaceState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		raceID, ok := GetInt64URLParam(r, w, "raceID")
		if !ok {
			return
		}

		if err := svc.TransitionState(r.Context(), raceID, to); err != nil {
			respondServiceError(w, r, ErrMsgTransitionFailed, err)
			return
		}

		log.Info("Race state changed", "race_id", raceID, "state", to)

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgStateChangedSuccess})
	}
}

// HandleApproveRace handles POST requests to approve a scheduled race
// @Summary Approve race
// @Description Approve a scheduled race, locking its field for wagering
// @Tags races
// @Produce json
// @Param raceID path int true "Race ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /races/{raceID}/approve [post]
func HandleApproveRace(svc race.Service) http.HandlerFunc {
	return handleTransition(svc, domain.RaceStateApproved)
}

// HandleActivateRace handles POST requests to open a race for wagering
// @Summary Activate race
// @Description Open an approved race for wagering
// @Tags races
// @Produce json
// @Param raceID path int true "Race ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /races/{raceID}/activate [post]
func HandleActivateRace(svc race.Service) http.HandlerFunc {
	return handleTransition(svc, domain.RaceStateActive)
}

// HandleGetRaceResults handles GET requests for a race's finishing order
// @Summary Get race results
// @Description Get the recorded finishing order of a settled race
// @Tags races
// @Produce json
// @Param raceID path int true "Race ID"
// @Success 200 {object} domain.RaceResultSummary
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /races/{raceID}/results [get]
func HandleGetRaceResults(svc race.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raceID, ok := GetInt64URLParam(r, w, "raceID")
		if !ok {
			return
		}

		summary, err := svc.GetRaceResults(r.Context(), raceID)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetResultsFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, summary)
	}
}
