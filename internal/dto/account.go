package dto

import (
	"github.com/GlebRadaev/bankapi/internal/domain"
	"github.com/shopspring/decimal"
)

type AccountResponseDTO struct {
	ID            int64              `json:"id" example:"1"`
	AccountNumber string             `json:"accountNumber" example:"SAV-17012345678905"`
	Balance       decimal.Decimal    `json:"balance" swaggertype:"number" example:"5000.00"`
	AccountType   domain.AccountType `json:"accountType" example:"SAVINGS"`
}

func NewAccountResponse(a *domain.Account) AccountResponseDTO {
	return AccountResponseDTO{
		ID:            a.ID,
		AccountNumber: a.AccountNumber,
		Balance:       a.Balance,
		AccountType:   a.AccountType,
	}
}
