package transactions

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/bankapi/internal/dto"
	"github.com/GlebRadaev/bankapi/pkg/utils"
	"github.com/GlebRadaev/bankapi/pkg/validate"
)

type Service interface {
	ListTransactions(ctx context.Context, accountID int64) ([]dto.TransactionResponseDTO, error)
	CreateTransaction(ctx context.Context, accountID int64, req dto.TransactionRequestDTO) (*dto.TransactionResponseDTO, error)
	GetTransaction(ctx context.Context, id int64) (*dto.TransactionResponseDTO, error)
}

type TransactionHandler struct {
	transactionService Service
}

func New(transactionService Service) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// ListTransactions godoc
//
//	@Summary		List account transactions
//	@Description	Retrieve the history of an account owned by the current user, oldest first
//	@Tags			Transactions
//	@Produce		json
//	@Param			accountId	path		int	true	"Account ID"
//	@Success		200			{array}		dto.TransactionResponseDTO
//	@Failure		400			{object}	utils.ValidationResponse	"Malformed account id"
//	@Failure		404			{object}	utils.Response				"Account not found"
//	@Failure		500			{object}	utils.Response				"Internal server error"
//	@Router			/api/v1/accounts/{accountId}/transactions [get]
func (h *TransactionHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	accountID, err := utils.PathID(r, "accountId")
	if err != nil {
		utils.RespondWithValidationError(w, map[string]string{"accountId": err.Error()})
		return
	}

	transactions, err := h.transactionService.ListTransactions(r.Context(), accountID)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, transactions)
}

// CreateTransaction godoc
//
//	@Summary		Create transaction
//	@Description	Credit or debit an account owned by the current user. Debits may not exceed the balance.
//	@Tags			Transactions
//	@Accept			json
//	@Produce		json
//	@Param			accountId	path		int							true	"Account ID"
//	@Param			request		body		dto.TransactionRequestDTO	true	"Transaction"
//	@Success		200			{object}	dto.TransactionResponseDTO
//	@Failure		400			{object}	utils.ValidationResponse	"Invalid request or insufficient balance"
//	@Failure		404			{object}	utils.Response				"Account not found"
//	@Failure		500			{object}	utils.Response				"Internal server error"
//	@Router			/api/v1/accounts/{accountId}/transactions [post]
func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	accountID, err := utils.PathID(r, "accountId")
	if err != nil {
		utils.RespondWithValidationError(w, map[string]string{"accountId": err.Error()})
		return
	}

	var req dto.TransactionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := validate.Struct(req); errs != nil {
		utils.RespondWithValidationError(w, errs)
		return
	}

	transaction, err := h.transactionService.CreateTransaction(r.Context(), accountID, req)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, transaction)
}

// GetTransaction godoc
//
//	@Summary		Get transaction
//	@Description	Retrieve one transaction on an account owned by the current user
//	@Tags			Transactions
//	@Produce		json
//	@Param			id	path		int	true	"Transaction ID"
//	@Success		200	{object}	dto.TransactionResponseDTO
//	@Failure		400	{object}	utils.ValidationResponse	"Malformed transaction id"
//	@Failure		404	{object}	utils.Response				"Transaction not found"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/v1/transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := utils.PathID(r, "id")
	if err != nil {
		utils.RespondWithValidationError(w, map[string]string{"id": err.Error()})
		return
	}

	transaction, err := h.transactionService.GetTransaction(r.Context(), id)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, transaction)
}
