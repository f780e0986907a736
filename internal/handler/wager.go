package handler

import (
	"net/http"
	"strconv"

	"github.com/oakfield/trackside/internal/domain"
	"github.com/oakfield/trackside/internal/logger"
	"github.com/oakfield/trackside/internal/wager"
)

// PlaceWagerRequest represents a request to place a wager on a race
type PlaceWagerRequest struct {
	UserID   int64   `json:"user_id" validate:"required,min=1"`
	RaceID   int64   `json:"race_id" validate:"required,min=1"`
	BetType  string  `json:"bet_type" validate:"required,bet_type"`
	HorseIDs []int64 `json:"horse_ids" validate:"required,min=1,max=4,dive,min=1"`
	Stake    int64   `json:"stake" validate:"required,min=1"`
}

// PlaceWagerResponse returns the accepted wager
type PlaceWagerResponse struct {
	Message string        `json:"message"`
	Wager   *domain.Wager `json:"wager"`
}

// HandlePlaceWager handles POST requests to place a wager
// @Summary Place wager
// @Description Place a wager on an active race, debiting the stake
// @Tags wagers
// @Accept json
// @Produce json
// @Param request body PlaceWagerRequest true "Wager details"
// @Success 201 {object} PlaceWagerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /wagers [post]
func HandlePlaceWager(svc wager.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req PlaceWagerRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Place wager"); err != nil {
			return
		}

		LogRequestFields(log, "user_id", req.UserID, "race_id", req.RaceID, "bet_type", req.BetType, "stake", req.Stake)

		placed, err := svc.PlaceWager(r.Context(), req.UserID, req.RaceID, domain.BetType(req.BetType), req.HorseIDs, req.Stake)
		if err != nil {
			respondServiceError(w, r, ErrMsgPlaceWagerFailed, err)
			return
		}

		log.Info("Wager placed", "wager_id", placed.ID, "user_id", req.UserID, "race_id", req.RaceID)

		respondJSON(w, http.StatusCreated, PlaceWagerResponse{
			Message: "Wager placed successfully",
			Wager:   placed,
		})
	}
}

// HandleGetWager handles GET requests for a single wager
// @Summary Get wager
// @Description Get a wager by ID
// @Tags wagers
// @Produce json
// @Param wagerID path int true "Wager ID"
// @Success 200 {object} domain.Wager
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /wagers/{wagerID} [get]
func HandleGetWager(svc wager.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		wagerID, ok := GetInt64URLParam(r, w, "wagerID")
		if !ok {
			return
		}

		found, err := svc.GetWager(r.Context(), wagerID)
		if err != nil {
			respondServiceError(w, r, ErrMsgListWagersFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, found)
	}
}

// HandleListUserWagers handles GET requests for a user's wager history
// @Summary List user wagers
// @Description List a user's wagers, newest first
// @Tags wagers
// @Produce json
// @Param user_id query int true "User ID"
// @Param limit query int false "Maximum wagers to return"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /wagers [get]
func HandleListUserWagers(svc wager.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}
		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			http.Error(w, ErrMsgInvalidUserIDParam, http.StatusBadRequest)
			return
		}
		limit, ok := GetOptionalLimitParam(r, w, wager.DefaultWagerListLimit)
		if !ok {
			return
		}

		wagers, err := svc.ListWagersByUser(r.Context(), userID, limit)
		if err != nil {
			respondServiceError(w, r, ErrMsgListWagersFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: wagers})
	}
}

// HandleListRaceWagers handles GET requests for a race's wagers
// @Summary List race wagers
// @Description List every wager placed on a race
// @Tags wagers
// @Produce json
// @Param raceID path int true "Race ID"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /races/{raceID}/wagers [get]
func HandleListRaceWagers(svc wager.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raceID, ok := GetInt64URLParam(r, w, "raceID")
		if !ok {
			return
		}

		wagers, err := svc.ListWagersByRace(r.Context(), raceID)
		if err != nil {
			respondServiceError(w, r, ErrMsgListWagersFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: wagers})
	}
}
