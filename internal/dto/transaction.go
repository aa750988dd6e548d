package dto

import (
	"time"

	"github.com/GlebRadaev/bankapi/internal/domain"
	"github.com/shopspring/decimal"
)

type TransactionRequestDTO struct {
	TransactionType domain.TransactionType `json:"transactionType" validate:"required,oneof=CREDIT DEBIT" example:"CREDIT"`
	Amount          *decimal.Decimal       `json:"amount" validate:"required,positive,cents" swaggertype:"number" example:"1000.00"`
	Description     string                 `json:"description" validate:"notblank" example:"Salary"`
}

type TransactionResponseDTO struct {
	ID              int64                  `json:"id" example:"6"`
	TransactionType domain.TransactionType `json:"transactionType" example:"CREDIT"`
	Amount          decimal.Decimal        `json:"amount" swaggertype:"number" example:"1000.00"`
	Description     string                 `json:"description" example:"Salary"`
	TransactionDate time.Time              `json:"transactionDate" example:"2024-01-15T10:30:00Z"`
	AccountID       int64                  `json:"accountId" example:"1"`
}

func NewTransactionResponse(t *domain.Transaction) TransactionResponseDTO {
	return TransactionResponseDTO{
		ID:              t.ID,
		TransactionType: t.TransactionType,
		Amount:          t.Amount,
		Description:     t.Description,
		TransactionDate: t.TransactionDate,
		AccountID:       t.AccountID,
	}
}
