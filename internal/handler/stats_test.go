package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/oakfield/trackside/internal/domain"
	"github.com/oakfield/trackside/internal/stats"
)

func TestHandleGetUserStats(t *testing.T) {
	t.Run("Missing user_id", func(t *testing.T) {
		mockSvc := new(MockStatsService)

		req := httptest.NewRequest(http.MethodGet, "/stats/user", nil)
		rec := httptest.NewRecorder()

		HandleGetUserStats(mockSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockSvc.AssertNotCalled(t, "GetUserStats")
	})

	t.Run("Success", func(t *testing.T) {
		mockSvc := new(MockStatsService)
		mockSvc.On("GetUserStats", mock.Anything, int64(10)).
			Return(&domain.UserRacingStats{
				UserID:      10,
				TotalWagers: 12,
				WagersWon:   5,
				TotalWon:    4200,
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/stats/user?user_id=10", nil)
		rec := httptest.NewRecorder()

		HandleGetUserStats(mockSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"total_won":4200`)
	})
}

func TestHandleGetLeaderboard(t *testing.T) {
	t.Run("Default limit", func(t *testing.T) {
		mockSvc := new(MockStatsService)
		mockSvc.On("GetLeaderboard", mock.Anything, stats.DefaultLeaderboardLimit).
			Return([]domain.UserRacingStats{{UserID: 10, TotalWon: 4200}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/stats/leaderboard", nil)
		rec := httptest.NewRecorder()

		HandleGetLeaderboard(mockSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Invalid limit", func(t *testing.T) {
		mockSvc := new(MockStatsService)

		req := httptest.NewRequest(http.MethodGet, "/stats/leaderboard?limit=abc", nil)
		rec := httptest.NewRecorder()

		HandleGetLeaderboard(mockSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockSvc.AssertNotCalled(t, "GetLeaderboard")
	})
}

func TestHandleRebuildUserStats(t *testing.T) {
	InitValidator()

	t.Run("Success", func(t *testing.T) {
		mockSvc := new(MockStatsService)
		mockSvc.On("RebuildUserStats", mock.Anything, int64(10)).
			Return(&domain.UserRacingStats{UserID: 10, TotalWagers: 12}, nil)

		body, _ := json.Marshal(RebuildStatsRequest{UserID: 10})
		req := httptest.NewRequest(http.MethodPost, "/stats/rebuild", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		HandleRebuildUserStats(mockSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"total_wagers":12`)
	})

	t.Run("Missing user ID", func(t *testing.T) {
		mockSvc := new(MockStatsService)

		body, _ := json.Marshal(RebuildStatsRequest{})
		req := httptest.NewRequest(http.MethodPost, "/stats/rebuild", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		HandleRebuildUserStats(mockSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockSvc.AssertNotCalled(t, "RebuildUserStats")
	})
}
