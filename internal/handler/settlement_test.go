package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/oakfield/trackside/internal/domain"
)

func TestHandleSettleRace(t *testing.T) {
	InitValidator()

	tests := []struct {
		name           string
		reqBody        interface{}
		setupMocks     func(*MockSettlementService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Invalid JSON",
			reqBody:        "invalid json",
			setupMocks:     func(ms *MockSettlementService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequest,
		},
		{
			name: "Missing finishing order",
			reqBody: SettleRaceRequest{
				RaceID: 7,
			},
			setupMocks:     func(ms *MockSettlementService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequestSummary,
		},
		{
			name: "Race not active",
			reqBody: SettleRaceRequest{
				RaceID:         7,
				FinishingOrder: []int64{3, 1, 5, 2, 4},
			},
			setupMocks: func(ms *MockSettlementService) {
				ms.On("SettleRace", mock.Anything, int64(7), []int64{3, 1, 5, 2, 4}).
					Return(nil, domain.ErrInvalidRaceState)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   ErrMsgRaceNotSettleableError,
		},
		{
			name: "Concurrent settlement loses",
			reqBody: SettleRaceRequest{
				RaceID:         7,
				FinishingOrder: []int64{3, 1, 5, 2, 4},
			},
			setupMocks: func(ms *MockSettlementService) {
				ms.On("SettleRace", mock.Anything, int64(7), []int64{3, 1, 5, 2, 4}).
					Return(nil, domain.ErrSettlementConflict)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   ErrMsgRaceAlreadySettledError,
		},
		{
			name: "Incomplete order",
			reqBody: SettleRaceRequest{
				RaceID:         7,
				FinishingOrder: []int64{3, 1},
			},
			setupMocks: func(ms *MockSettlementService) {
				ms.On("SettleRace", mock.Anything, int64(7), []int64{3, 1}).
					Return(nil, domain.ErrIncompleteOrder)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgIncompleteOrderError,
		},
		{
			name: "Ledger failure",
			reqBody: SettleRaceRequest{
				RaceID:         7,
				FinishingOrder: []int64{3, 1, 5, 2, 4},
			},
			setupMocks: func(ms *MockSettlementService) {
				ms.On("SettleRace", mock.Anything, int64(7), []int64{3, 1, 5, 2, 4}).
					Return(nil, domain.ErrLedgerFailure)
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   ErrMsgLedgerFailureError,
		},
		{
			name: "Success",
			reqBody: SettleRaceRequest{
				RaceID:         7,
				FinishingOrder: []int64{3, 1, 5, 2, 4},
			},
			setupMocks: func(ms *MockSettlementService) {
				ms.On("SettleRace", mock.Anything, int64(7), []int64{3, 1, 5, 2, 4}).
					Return(&domain.SettlementSummary{
						RaceID:        7,
						WagersSettled: 4,
						WagersWon:     2,
						WagersLost:    2,
						TotalPaidOut:  1350,
						SettledAt:     time.Date(2026, 3, 1, 15, 0, 0, 0, time.UTC),
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"total_paid_out":1350`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockSettlementService)
			tt.setupMocks(mockSvc)

			var body bytes.Buffer
			if s, ok := tt.reqBody.(string); ok {
				body.WriteString(s)
			} else {
				_ = json.NewEncoder(&body).Encode(tt.reqBody)
			}

			req := httptest.NewRequest(http.MethodPost, "/settlement/settle", &body)
			rec := httptest.NewRecorder()

			HandleSettleRace(mockSvc).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestHandleCancelRace(t *testing.T) {
	newRouter := func(svc *MockSettlementService) chi.Router {
		r := chi.NewRouter()
		r.Post("/races/{raceID}/cancel", HandleCancelRace(svc))
		return r
	}

	t.Run("Success", func(t *testing.T) {
		mockSvc := new(MockSettlementService)
		mockSvc.On("CancelRace", mock.Anything, int64(7)).
			Return(&domain.CancellationSummary{
				RaceID:         7,
				WagersVoided:   3,
				StakesRefunded: 600,
				CancelledAt:    time.Date(2026, 3, 1, 15, 0, 0, 0, time.UTC),
			}, nil)

		req := httptest.NewRequest(http.MethodPost, "/races/7/cancel", nil)
		rec := httptest.NewRecorder()

		newRouter(mockSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"stakes_refunded":600`)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Completed race cannot be cancelled", func(t *testing.T) {
		mockSvc := new(MockSettlementService)
		mockSvc.On("CancelRace", mock.Anything, int64(7)).
			Return(nil, domain.ErrInvalidStateChange)

		req := httptest.NewRequest(http.MethodPost, "/races/7/cancel", nil)
		rec := httptest.NewRecorder()

		newRouter(mockSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), ErrMsgInvalidStateChangeError)
	})
}
