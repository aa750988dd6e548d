package repo

import (
	"context"

	"github.com/GlebRadaev/bankapi/internal/domain"
	"github.com/GlebRadaev/bankapi/internal/memstore"
	"github.com/GlebRadaev/bankapi/internal/pg"
	accountrepo "github.com/GlebRadaev/bankapi/internal/repo/account-repo"
	transactionrepo "github.com/GlebRadaev/bankapi/internal/repo/transaction-repo"
	userrepo "github.com/GlebRadaev/bankapi/internal/repo/user-repo"
	"github.com/GlebRadaev/bankapi/internal/seed"
)

type UserRepo interface {
	GetUserByID(ctx context.Context, id int64) (*domain.User, error)
	GetCurrentUser(ctx context.Context) (*domain.User, error)
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
}

type AccountRepo interface {
	GetAccountByID(ctx context.Context, id int64) (*domain.Account, error)
	GetAccountsByUserID(ctx context.Context, userID int64) ([]domain.Account, error)
	CreateAccount(ctx context.Context, account *domain.Account) (*domain.Account, error)
}

type TransactionRepo interface {
	GetTransactionByID(ctx context.Context, id int64) (*domain.Transaction, error)
	GetTransactionsByAccountID(ctx context.Context, accountID int64) ([]domain.Transaction, error)
	CreateTransaction(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error)
}

type Repositories struct {
	UserRepo        UserRepo
	AccountRepo     AccountRepo
	TransactionRepo TransactionRepo

	txManager pg.TXManager
}

// New builds the postgres backend.
func New(conn pg.Database, txManager pg.TXManager, currentUserID int64) *Repositories {
	return &Repositories{
		UserRepo:        userrepo.New(conn, currentUserID),
		AccountRepo:     accountrepo.New(conn),
		TransactionRepo: transactionrepo.New(conn, txManager),
		txManager:       txManager,
	}
}

// NewInMemory serves every repository from one store.
func NewInMemory(store *memstore.Store) *Repositories {
	return &Repositories{
		UserRepo:        store,
		AccountRepo:     store,
		TransactionRepo: store,
	}
}

type seedTarget struct {
	UserRepo
	AccountRepo
	TransactionRepo
}

type txSeedTarget struct {
	seedTarget
	txManager pg.TXManager
}

func (t txSeedTarget) InTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return t.txManager.Begin(ctx, fn)
}

// SeedTarget exposes the provisioning operations of the backend to the seed loader.
// The postgres target also runs the load in a single transaction.
func (r *Repositories) SeedTarget() seed.Target {
	target := seedTarget{
		UserRepo:        r.UserRepo,
		AccountRepo:     r.AccountRepo,
		TransactionRepo: r.TransactionRepo,
	}
	if r.txManager == nil {
		return target
	}
	return txSeedTarget{seedTarget: target, txManager: r.txManager}
}
