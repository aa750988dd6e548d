package accounts

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/bankapi/internal/dto"
	"github.com/GlebRadaev/bankapi/pkg/utils"
)

type Service interface {
	ListAccounts(ctx context.Context) ([]dto.AccountResponseDTO, error)
	GetAccount(ctx context.Context, id int64) (*dto.AccountResponseDTO, error)
}

type AccountHandler struct {
	accountService Service
}

func New(accountService Service) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
	}
}

// ListAccounts godoc
//
//	@Summary		List accounts
//	@Description	Retrieve every account owned by the current user
//	@Tags			Accounts
//	@Produce		json
//	@Success		200	{array}		dto.AccountResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/accounts [get]
func (h *AccountHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.accountService.ListAccounts(r.Context())
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, accounts)
}

// GetAccount godoc
//
//	@Summary		Get account
//	@Description	Retrieve one account of the current user
//	@Tags			Accounts
//	@Produce		json
//	@Param			accountId	path		int	true	"Account ID"
//	@Success		200			{object}	dto.AccountResponseDTO
//	@Failure		400			{object}	utils.ValidationResponse	"Malformed account id"
//	@Failure		404			{object}	utils.Response				"Account not found"
//	@Failure		500			{object}	utils.Response				"Internal server error"
//	@Router			/api/v1/accounts/{accountId} [get]
func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	id, err := utils.PathID(r, "accountId")
	if err != nil {
		utils.RespondWithValidationError(w, map[string]string{"accountId": err.Error()})
		return
	}

	account, err := h.accountService.GetAccount(r.Context(), id)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, account)
}
