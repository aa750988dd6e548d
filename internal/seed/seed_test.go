package seed

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/GlebRadaev/bankapi/internal/domain"
	"github.com/GlebRadaev/bankapi/internal/memstore"
	"github.com/GlebRadaev/bankapi/pkg/auth"
	"github.com/GlebRadaev/bankapi/pkg/validate"
)

var fixedNow = time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

func NewMock(t *testing.T) (*Loader, *memstore.Store) {
	t.Helper()
	store := memstore.New()
	loader := NewLoader(store, &auth.HashService{Cost: bcrypt.MinCost})
	loader.now = func() time.Time { return fixedNow }
	return loader, store
}

func TestLoader_LoadDefault(t *testing.T) {
	loader, store := NewMock(t)
	ctx := context.Background()
	require.NoError(t, loader.Load(ctx, Default()))

	john, err := store.GetUserByID(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, john)
	assert.Equal(t, "john.doe", john.Username)
	assert.Equal(t, []string{"USER"}, john.Roles)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(john.PasswordHash), []byte("password")))

	jane, err := store.GetUserByID(ctx, 2)
	require.NoError(t, err)
	require.NotNil(t, jane)
	assert.Equal(t, "jane.smith", jane.Username)

	tests := []struct {
		name     string
		userID   int64
		expected map[domain.AccountType]string
	}{
		{
			name:   "john.doe accounts",
			userID: 1,
			expected: map[domain.AccountType]string{
				domain.AccountTypeSavings:  "5000.00",
				domain.AccountTypeChecking: "2500.50",
				domain.AccountTypeCredit:   "1000.00",
			},
		},
		{
			name:   "jane.smith accounts",
			userID: 2,
			expected: map[domain.AccountType]string{
				domain.AccountTypeSavings: "3000.00",
			},
		},
	}

	prefixes := map[domain.AccountType]string{
		domain.AccountTypeSavings:  "SAV-",
		domain.AccountTypeChecking: "CHK-",
		domain.AccountTypeCredit:   "CRE-",
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accounts, err := store.GetAccountsByUserID(ctx, tt.userID)
			require.NoError(t, err)
			require.Len(t, accounts, len(tt.expected))

			for _, account := range accounts {
				want, ok := tt.expected[account.AccountType]
				require.True(t, ok, "unexpected account type %s", account.AccountType)
				assert.Equal(t, want, account.Balance.StringFixed(2))
				assert.Equal(t, tt.userID, account.UserID)

				prefix := prefixes[account.AccountType]
				assert.True(t, strings.HasPrefix(account.AccountNumber, prefix), account.AccountNumber)
				assert.True(t, validate.IsLuna(strings.TrimPrefix(account.AccountNumber, prefix)), account.AccountNumber)

				history, err := store.GetTransactionsByAccountID(ctx, account.ID)
				require.NoError(t, err)
				require.NotEmpty(t, history)
				sum := decimal.Zero
				for _, tx := range history {
					assert.False(t, tx.TransactionDate.After(fixedNow))
					if tx.TransactionType == domain.TransactionTypeCredit {
						sum = sum.Add(tx.Amount)
					} else {
						sum = sum.Sub(tx.Amount)
					}
				}
				assert.True(t, sum.Equal(account.Balance), "history %s, balance %s", sum, account.Balance)
			}
		})
	}
}

func TestLoader_LoadTwice(t *testing.T) {
	loader, store := NewMock(t)
	ctx := context.Background()

	require.NoError(t, loader.Load(ctx, Default()))
	require.NoError(t, loader.Load(ctx, Default()))

	u, err := store.GetUserByID(ctx, 3)
	assert.NoError(t, err)
	assert.Nil(t, u)

	accounts, err := store.GetAccountsByUserID(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, accounts, 3)
}

type failingHasher struct{}

func (failingHasher) HashPassword(string) (string, error)   { return "", errors.New("hash failed") }
func (failingHasher) ComparePassword(string, string) bool { return false }

func TestLoader_LoadErrors(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		loader func() *Loader
		users  []User
	}{
		{
			name: "hasher fails",
			loader: func() *Loader {
				return NewLoader(memstore.New(), failingHasher{})
			},
			users: Default(),
		},
		{
			name: "opening debit exceeds balance",
			loader: func() *Loader {
				return NewLoader(memstore.New(), &auth.HashService{Cost: bcrypt.MinCost})
			},
			users: []User{{
				Username: "broke",
				Password: "password",
				Accounts: []Account{{
					Prefix:      "SAV",
					AccountType: domain.AccountTypeSavings,
					Transactions: []Transaction{
						{Type: domain.TransactionTypeDebit, Amount: "1.00", Description: "overdraw"},
					},
				}},
			}},
		},
		{
			name: "malformed amount",
			loader: func() *Loader {
				return NewLoader(memstore.New(), &auth.HashService{Cost: bcrypt.MinCost})
			},
			users: []User{{
				Username: "typo",
				Password: "password",
				Accounts: []Account{{
					Prefix:       "SAV",
					AccountType:  domain.AccountTypeSavings,
					Transactions: []Transaction{{Type: domain.TransactionTypeCredit, Amount: "ten", Description: "typo"}},
				}},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.loader().Load(ctx, tt.users))
		})
	}
}

type ctxKey struct{}

// atomicStore runs the load with a marked context and records which calls saw it.
type atomicStore struct {
	*memstore.Store
	calls    int
	unmarked int
	err      error
}

func (s *atomicStore) InTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	s.calls++
	if s.err != nil {
		return s.err
	}
	return fn(context.WithValue(ctx, ctxKey{}, true))
}

func (s *atomicStore) check(ctx context.Context) {
	if ctx.Value(ctxKey{}) == nil {
		s.unmarked++
	}
}

func (s *atomicStore) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	s.check(ctx)
	return s.Store.GetUserByID(ctx, id)
}

func (s *atomicStore) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	s.check(ctx)
	return s.Store.CreateUser(ctx, user)
}

func (s *atomicStore) CreateAccount(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	s.check(ctx)
	return s.Store.CreateAccount(ctx, account)
}

func (s *atomicStore) CreateTransaction(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error) {
	s.check(ctx)
	return s.Store.CreateTransaction(ctx, transaction)
}

func TestLoader_LoadInTransaction(t *testing.T) {
	ctx := context.Background()
	errBegin := errors.New("begin failed")

	tests := []struct {
		name        string
		beginErr    error
		expectUsers bool
	}{
		{
			name:        "Every write runs inside the transaction",
			expectUsers: true,
		},
		{
			name:     "Transaction error is returned untouched",
			beginErr: errBegin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := &atomicStore{Store: memstore.New(), err: tt.beginErr}
			loader := NewLoader(target, &auth.HashService{Cost: bcrypt.MinCost})

			err := loader.Load(ctx, Default())
			if tt.beginErr != nil {
				assert.ErrorIs(t, err, tt.beginErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, 1, target.calls)
			assert.Zero(t, target.unmarked)

			u, err := target.Store.GetUserByID(ctx, 1)
			require.NoError(t, err)
			assert.Equal(t, tt.expectUsers, u != nil)
		})
	}
}
