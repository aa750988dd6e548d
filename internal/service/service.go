package service

import (
	"github.com/GlebRadaev/bankapi/internal/handlers/accounts"
	"github.com/GlebRadaev/bankapi/internal/handlers/statements"
	"github.com/GlebRadaev/bankapi/internal/handlers/transactions"

	"github.com/GlebRadaev/bankapi/internal/repo"
	accountservice "github.com/GlebRadaev/bankapi/internal/service/accountservice"
	statementservice "github.com/GlebRadaev/bankapi/internal/service/statementservice"
	transactionservice "github.com/GlebRadaev/bankapi/internal/service/transactionservice"
)

type Services struct {
	AccountService     accounts.Service
	TransactionService transactions.Service
	StatementService   statements.Service
}

func New(repo *repo.Repositories) *Services {
	accountService := accountservice.New(repo.UserRepo, repo.AccountRepo)
	transactionService := transactionservice.New(repo.UserRepo, repo.AccountRepo, repo.TransactionRepo)
	statementService := statementservice.New(repo.UserRepo, repo.AccountRepo, statementservice.PlaceholderGenerator{})

	return &Services{
		AccountService:     accountService,
		TransactionService: transactionService,
		StatementService:   statementService,
	}
}
