package handler

import (
	"net/http"

	"github.com/oakfield/trackside/internal/logger"
	"github.com/oakfield/trackside/internal/settlement"
)

// SettleRaceRequest represents a request to settle a race with its
// finishing order, winner first.
type SettleRaceRequest struct {
	RaceID         int64   `json:"race_id" validate:"required,min=1"`
	FinishingOrder []int64 `json:"finishing_order" validate:"required,min=1,dive,min=1"`
}

// HandleSettleRace handles POST requests to settle a race
// @Summary Settle race
// @Description Record the finishing order and settle every pending wager atomically
// @Tags settlement
// @Accept json
// @Produce json
// @Param request body SettleRaceRequest true "Finishing order"
// @Success 200 {object} domain.SettlementSummary
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /settlement/settle [post]
func HandleSettleRace(svc settlement.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req SettleRaceRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Settle race"); err != nil {
			return
		}

		LogRequestFields(log, "race_id", req.RaceID, "finishers", len(req.FinishingOrder))

		summary, err := svc.SettleRace(r.Context(), req.RaceID, req.FinishingOrder)
		if err != nil {
			respondServiceError(w, r, ErrMsgSettleRaceFailed, err)
			return
		}

		log.Info("Race settled",
			"race_id", summary.RaceID,
			"wagers_settled", summary.WagersSettled,
			"wagers_flagged", summary.WagersFlagged,
			"total_paid_out", summary.TotalPaidOut)

		respondJSON(w, http.StatusOK, summary)
	}
}

// HandleCancelRace handles POST requests to cancel a race
// @Summary Cancel race
// @Description Cancel a race, voiding pending wagers and refunding their stakes
// @Tags settlement
// @Produce json
// @Param raceID path int true "Race ID"
// @Success 200 {object} domain.CancellationSummary
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /races/{raceID}/cancel [post]
func HandleCancelRace(svc settlement.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		raceID, ok := GetInt64URLParam(r, w, "raceID")
		if !ok {
			return
		}

		summary, err := svc.CancelRace(r.Context(), raceID)
		if err != nil {
			respondServiceError(w, r, ErrMsgCancelRaceFailed, err)
			return
		}

		log.Info("Race cancelled",
			"race_id", summary.RaceID,
			"wagers_voided", summary.WagersVoided,
			"stakes_refunded", summary.StakesRefunded)

		respondJSON(w, http.StatusOK, summary)
	}
}
