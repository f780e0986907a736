package handler

import (
	"net/http"
	"strconv"

	"github.com/oakfield/trackside/internal/ledger"
	"github.com/oakfield/trackside/internal/logger"
)

// CreateAccountRequest represents a request to open a wagering account
type CreateAccountRequest struct {
	UserID         int64 `json:"user_id" validate:"required,min=1"`
	OpeningBalance int64 `json:"opening_balance" validate:"min=0"`
}

// HandleGetAccount handles GET requests for an account balance
// @Summary Get account
// @Description Get a user's account and current balance
// @Tags ledger
// @Produce json
// @Param user_id query int true "User ID"
// @Success 200 {object} domain.Account
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /ledger/account [get]
func HandleGetAccount(svc ledger.Service) http.HandlerFunc {
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

		account, err := svc.GetAccount(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetAccountFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, account)
	}
}

// HandleCreateAccount handles POST requests to open an account
// @Summary Create account
// @Description Open a wagering account with an optional opening balance
// @Tags ledger
// @Accept json
// @Produce json
// @Param request body CreateAccountRequest true "Account details"
// @Success 201 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /ledger/account [post]
func HandleCreateAccount(svc ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req CreateAccountRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create account"); err != nil {
			return
		}

		if err := svc.CreateAccount(r.Context(), req.UserID, req.OpeningBalance); err != nil {
			respondServiceError(w, r, ErrMsgCreateAccountFailed, err)
			return
		}

		log.Info("Account created", "user_id", req.UserID, "opening_balance", req.OpeningBalance)

		respondJSON(w, http.StatusCreated, SuccessResponse{Message: MsgAccountCreatedSuccess})
	}
}

// HandleListTransactions handles GET requests for a user's ledger history
// @Summary List transactions
// @Description List a user's ledger transactions, newest first
// @Tags ledger
// @Produce json
// @Param user_id query int true "User ID"
// @Param limit query int false "Maximum transactions to return"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /ledger/transactions [get]
func HandleListTransactions(svc ledger.Service) http.HandlerFunc {
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
		limit, ok := GetOptionalLimitParam(r, w, ledger.DefaultTransactionLimit)
		if !ok {
			return
		}

		transactions, err := svc.GetTransactions(r.Context(), userID, limit)
		if err != nil {
			respondServiceError(w, r, ErrMsgListTransactionsFail, err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: transactions})
	}
}
