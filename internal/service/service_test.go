package service

import (
	"testing"

	"github.com/GlebRadaev/bankapi/internal/memstore"
	"github.com/GlebRadaev/bankapi/internal/repo"
	"github.com/GlebRadaev/bankapi/internal/service/accountservice"
	"github.com/GlebRadaev/bankapi/internal/service/statementservice"
	"github.com/GlebRadaev/bankapi/internal/service/transactionservice"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	repos := repo.NewInMemory(memstore.New())

	services := New(repos)

	assert.NotNil(t, services.AccountService)
	assert.NotNil(t, services.TransactionService)
	assert.NotNil(t, services.StatementService)

	assert.IsType(t, &accountservice.Service{}, services.AccountService)
	assert.IsType(t, &transactionservice.Service{}, services.TransactionService)
	assert.IsType(t, &statementservice.Service{}, services.StatementService)
}
