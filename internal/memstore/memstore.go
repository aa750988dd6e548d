// Package memstore keeps users, accounts and transactions in process memory.
//
// Map access is guarded by one RWMutex. Balance updates additionally hold a mutex
// owned by the account, so concurrent transactions on one account serialize while
// other accounts proceed in parallel.
package memstore

import (
	"context"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/GlebRadaev/bankapi/internal/domain"
	"github.com/GlebRadaev/bankapi/pkg/auth"
	"go.uber.org/zap"
)

type Store struct {
	mu                  sync.RWMutex
	users               map[int64]*domain.User
	accounts            map[int64]*domain.Account
	transactions        map[int64]*domain.Transaction
	userAccounts        map[int64][]int64
	accountTransactions map[int64][]int64

	accountLocks sync.Map

	userSeq        atomic.Int64
	accountSeq     atomic.Int64
	transactionSeq atomic.Int64

	currentUserID int64
	now           func() time.Time
}

type Option func(*Store)

// WithClock replaces time.Now for audit timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithCurrentUser sets the user returned when the request carries no identity.
func WithCurrentUser(userID int64) Option {
	return func(s *Store) {
		s.currentUserID = userID
	}
}

func New(opts ...Option) *Store {
	s := &Store{
		users:               make(map[int64]*domain.User),
		accounts:            make(map[int64]*domain.Account),
		transactions:        make(map[int64]*domain.Transaction),
		userAccounts:        make(map[int64][]int64),
		accountTransactions: make(map[int64][]int64),
		currentUserID:       1,
		now:                 time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) CreateUser(_ context.Context, user *domain.User) (*domain.User, error) {
	now := s.now()
	stored := *user
	stored.ID = s.userSeq.Add(1)
	stored.Roles = slices.Clone(user.Roles)
	stored.CreatedAt = now
	stored.UpdatedAt = now

	s.mu.Lock()
	s.users[stored.ID] = &stored
	s.mu.Unlock()

	return copyUser(&stored), nil
}

func (s *Store) GetUserByID(_ context.Context, id int64) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return copyUser(user), nil
}

// GetCurrentUser resolves the user from the request context, falling back to the
// configured one. A missing user means seed data was never loaded.
func (s *Store) GetCurrentUser(ctx context.Context) (*domain.User, error) {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		userID = s.currentUserID
	}
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		zap.L().Error("current user is not provisioned", zap.Int64("userID", userID))
		return nil, domain.ErrCurrentUserMissing
	}
	return user, nil
}

func (s *Store) CreateAccount(_ context.Context, account *domain.Account) (*domain.Account, error) {
	now := s.now()
	stored := *account
	stored.ID = s.accountSeq.Add(1)
	stored.CreatedAt = now
	stored.UpdatedAt = now

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[stored.UserID]; !ok {
		return nil, domain.ErrUserNotFound
	}
	s.accounts[stored.ID] = &stored
	s.userAccounts[stored.UserID] = append(s.userAccounts[stored.UserID], stored.ID)

	copied := stored
	return &copied, nil
}

func (s *Store) GetAccountByID(_ context.Context, id int64) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.accounts[id]
	if !ok {
		return nil, nil
	}
	copied := *account
	return &copied, nil
}

func (s *Store) GetAccountsByUserID(_ context.Context, userID int64) ([]domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.userAccounts[userID]
	accounts := make([]domain.Account, 0, len(ids))
	for _, id := range ids {
		accounts = append(accounts, *s.accounts[id])
	}
	return accounts, nil
}

func (s *Store) GetTransactionByID(_ context.Context, id int64) (*domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	transaction, ok := s.transactions[id]
	if !ok {
		return nil, nil
	}
	copied := *transaction
	return &copied, nil
}

// GetTransactionsByAccountID returns the account history in insertion order.
func (s *Store) GetTransactionsByAccountID(_ context.Context, accountID int64) ([]domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.accountTransactions[accountID]
	transactions := make([]domain.Transaction, 0, len(ids))
	for _, id := range ids {
		transactions = append(transactions, *s.transactions[id])
	}
	return transactions, nil
}

// CreateTransaction assigns an id, records the transaction and applies it to the
// account balance. Readers observe both effects or neither.
func (s *Store) CreateTransaction(_ context.Context, transaction *domain.Transaction) (*domain.Transaction, error) {
	lock := s.accountLock(transaction.AccountID)
	lock.Lock()
	defer lock.Unlock()

	s.mu.RLock()
	account, ok := s.accounts[transaction.AccountID]
	s.mu.RUnlock()
	if !ok {
		return nil, domain.ErrAccountNotFound
	}

	// account is only replaced under the lock held above, so the snapshot is current.
	newBalance, err := domain.ApplyTransaction(account.Balance, transaction.TransactionType, transaction.Amount)
	if err != nil {
		return nil, err
	}

	now := s.now()
	stored := *transaction
	stored.ID = s.transactionSeq.Add(1)
	stored.CreatedAt = now
	stored.UpdatedAt = now

	s.mu.Lock()
	s.transactions[stored.ID] = &stored
	s.accountTransactions[stored.AccountID] = append(s.accountTransactions[stored.AccountID], stored.ID)
	updated := *account
	updated.Balance = newBalance
	updated.UpdatedAt = now
	s.accounts[updated.ID] = &updated
	s.mu.Unlock()

	copied := stored
	return &copied, nil
}

func (s *Store) accountLock(accountID int64) *sync.Mutex {
	lock, _ := s.accountLocks.LoadOrStore(accountID, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

func copyUser(user *domain.User) *domain.User {
	copied := *user
	copied.Roles = slices.Clone(user.Roles)
	return &copied
}
