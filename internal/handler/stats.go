package handler

import (
	"net/http"
	"strconv"

	"github.com/oakfield/trackside/internal/logger"
	"github.com/oakfield/trackside/internal/stats"
)

// HandleGetUserStats handles GET requests for a user's racing statistics
// @Summary Get user stats
// @Description Get lifetime wagering statistics for a user
// @Tags stats
// @Produce json
// @Param user_id query int true "User ID"
// @Success 200 {object} domain.UserRacingStats
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /stats/user [get]
func HandleGetUserStats(svc stats.Service) http.HandlerFunc {
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

		userStats, err := svc.GetUserStats(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetStatsFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, userStats)
	}
}

// HandleGetLeaderboard handles GET requests for the winnings leaderboard
// @Summary Get leaderboard
// @Description Get the top users ranked by total winnings
// @Tags stats
// @Produce json
// @Param limit query int false "Maximum entries to return"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /stats/leaderboard [get]
func HandleGetLeaderboard(svc stats.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, ok := GetOptionalLimitParam(r, w, stats.DefaultLeaderboardLimit)
		if !ok {
			return
		}

		entries, err := svc.GetLeaderboard(r.Context(), limit)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetLeaderboardFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: entries})
	}
}

// RebuildStatsRequest represents a request to rebuild a user's stats row
type RebuildStatsRequest struct {
	UserID int64 `json:"user_id" validate:"required,min=1"`
}

// HandleRebuildUserStats handles POST requests to recompute a user's stats
// from their settled wager history
// @Summary Rebuild user stats
// @Description Recompute a user's statistics from their settled wagers
// @Tags stats
// @Accept json
// @Produce json
// @Param request body RebuildStatsRequest true "User to rebuild"
// @Success 200 {object} domain.UserRacingStats
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /stats/rebuild [post]
func HandleRebuildUserStats(svc stats.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req RebuildStatsRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Rebuild stats"); err != nil {
			return
		}

		rebuilt, err := svc.RebuildUserStats(r.Context(), req.UserID)
		if err != nil {
			respondServiceError(w, r, ErrMsgRebuildStatsFailed, err)
			return
		}

		log.Info("User stats rebuilt", "user_id", req.UserID)

		respondJSON(w, http.StatusOK, rebuilt)
	}
}
