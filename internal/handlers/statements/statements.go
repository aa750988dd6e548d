package statements

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/bankapi/internal/domain"
	"github.com/GlebRadaev/bankapi/internal/dto"
	"github.com/GlebRadaev/bankapi/pkg/utils"
	"github.com/GlebRadaev/bankapi/pkg/validate"
	"go.uber.org/zap"
)

type Service interface {
	GetStatement(ctx context.Context, accountID int64, year, month int) (*domain.Statement, error)
}

type StatementHandler struct {
	statementService Service
}

func New(statementService Service) *StatementHandler {
	return &StatementHandler{
		statementService: statementService,
	}
}

// DownloadStatement godoc
//
//	@Summary		Download monthly statement
//	@Description	Download the statement of an account owned by the current user for one calendar month
//	@Tags			Statements
//	@Produce		plain
//	@Param			accountId	path		int	true	"Account ID"
//	@Param			year		path		int	true	"Year, 2000 to 2100"
//	@Param			month		path		int	true	"Month, 1 to 12"
//	@Success		200			{file}		file
//	@Failure		400			{object}	utils.ValidationResponse	"Invalid account id or period"
//	@Failure		404			{object}	utils.Response				"Account not found"
//	@Failure		500			{object}	utils.Response				"Internal server error"
//	@Router			/api/v1/accounts/{accountId}/statements/{year}/{month} [get]
func (h *StatementHandler) DownloadStatement(w http.ResponseWriter, r *http.Request) {
	errs := map[string]string{}
	accountID, err := utils.PathID(r, "accountId")
	if err != nil {
		errs["accountId"] = err.Error()
	}
	year, err := utils.PathInt(r, "year")
	if err != nil {
		errs["year"] = err.Error()
	}
	month, err := utils.PathInt(r, "month")
	if err != nil {
		errs["month"] = err.Error()
	}
	if len(errs) > 0 {
		utils.RespondWithValidationError(w, errs)
		return
	}
	if errs := validate.Struct(dto.StatementRequestDTO{Year: year, Month: month}); errs != nil {
		utils.RespondWithValidationError(w, errs)
		return
	}

	statement, err := h.statementService.GetStatement(r.Context(), accountID, year, month)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", statement.ContentType)
	w.Header().Set("Content-Disposition", "attachment; filename="+statement.FileName)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(statement.Content); err != nil {
		zap.L().Error("can't write statement", zap.String("reference", statement.Reference), zap.Error(err))
	}
}
