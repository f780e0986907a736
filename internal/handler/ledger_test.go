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
	"github.com/oakfield/trackside/internal/ledger"
)

func TestHandleGetAccount(t *testing.T) {
	t.Run("Account not found", func(t *testing.T) {
		mockSvc := new(MockLedgerService)
		mockSvc.On("GetAccount", mock.Anything, int64(99)).
			Return(nil, domain.ErrUserNotFound)

		req := httptest.NewRequest(http.MethodGet, "/ledger/account?user_id=99", nil)
		rec := httptest.NewRecorder()

		HandleGetAccount(mockSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), ErrMsgUserNotFoundError)
	})

	t.Run("Success", func(t *testing.T) {
		mockSvc := new(MockLedgerService)
		mockSvc.On("GetAccount", mock.Anything, int64(10)).
			Return(&domain.Account{UserID: 10, Balance: 5000}, nil)

		req := httptest.NewRequest(http.MethodGet, "/ledger/account?user_id=10", nil)
		rec := httptest.NewRecorder()

		HandleGetAccount(mockSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"balance":5000`)
	})
}

func TestHandleCreateAccount(t *testing.T) {
	InitValidator()

	t.Run("Success", func(t *testing.T) {
		mockSvc := new(MockLedgerService)
		mockSvc.On("CreateAccount", mock.Anything, int64(10), int64(1000)).Return(nil)

		body, _ := json.Marshal(CreateAccountRequest{UserID: 10, OpeningBalance: 1000})
		req := httptest.NewRequest(http.MethodPost, "/ledger/account", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		HandleCreateAccount(mockSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), MsgAccountCreatedSuccess)
	})

	t.Run("Missing user ID", func(t *testing.T) {
		mockSvc := new(MockLedgerService)

		body, _ := json.Marshal(CreateAccountRequest{OpeningBalance: 1000})
		req := httptest.NewRequest(http.MethodPost, "/ledger/account", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		HandleCreateAccount(mockSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockSvc.AssertNotCalled(t, "CreateAccount")
	})
}

func TestHandleListTransactions(t *testing.T) {
	t.Run("Default limit", func(t *testing.T) {
		mockSvc := new(MockLedgerService)
		mockSvc.On("GetTransactions", mock.Anything, int64(10), ledger.DefaultTransactionLimit).
			Return([]domain.Transaction{
				{ID: 1, UserID: 10, Amount: 900, CorrelationID: "wager:42"},
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/ledger/transactions?user_id=10", nil)
		rec := httptest.NewRecorder()

		HandleListTransactions(mockSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"wager:42"`)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Missing user_id", func(t *testing.T) {
		mockSvc := new(MockLedgerService)

		req := httptest.NewRequest(http.MethodGet, "/ledger/transactions", nil)
		rec := httptest.NewRecorder()

		HandleListTransactions(mockSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockSvc.AssertNotCalled(t, "GetTransactions")
	})
}
