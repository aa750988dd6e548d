package seed

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/GlebRadaev/bankapi/internal/domain"
	"github.com/GlebRadaev/bankapi/pkg/auth"
	"github.com/GlebRadaev/bankapi/pkg/validate"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Target is a storage backend that can be provisioned with users, accounts and history.
type Target interface {
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	CreateAccount(ctx context.Context, account *domain.Account) (*domain.Account, error)
	CreateTransaction(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error)
	GetUserByID(ctx context.Context, id int64) (*domain.User, error)
}

// Transactor is implemented by targets that can apply the whole dataset as one unit,
// so a failed load leaves nothing behind for the next start to trip over.
type Transactor interface {
	InTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type User struct {
	Username string
	Password string
	Roles    []string
	Accounts []Account
}

type Account struct {
	Prefix       string
	AccountType  domain.AccountType
	Transactions []Transaction
}

type Transaction struct {
	Type        domain.TransactionType
	Amount      string
	Description string
	DaysAgo     int
}

const openingBalance = "Opening balance"

// Default is the demo dataset: john.doe with savings 5000.00, checking 2500.50 and credit
// 1000.00, jane.smith with savings 3000.00. Each account opens with a credit so that its
// balance equals the sum of its history.
func Default() []User {
	return []User{
		{
			Username: "john.doe",
			Password: "password",
			Roles:    []string{"USER"},
			Accounts: []Account{
				{
					Prefix:      "SAV",
					AccountType: domain.AccountTypeSavings,
					Transactions: []Transaction{
						{Type: domain.TransactionTypeCredit, Amount: "4300.00", Description: openingBalance, DaysAgo: 30},
						{Type: domain.TransactionTypeCredit, Amount: "1000.00", Description: "Salary payment", DaysAgo: 5},
						{Type: domain.TransactionTypeDebit, Amount: "500.00", Description: "Shopping expense", DaysAgo: 3},
						{Type: domain.TransactionTypeCredit, Amount: "200.00", Description: "Refund", DaysAgo: 1},
					},
				},
				{
					Prefix:      "CHK",
					AccountType: domain.AccountTypeChecking,
					Transactions: []Transaction{
						{Type: domain.TransactionTypeCredit, Amount: "2950.50", Description: openingBalance, DaysAgo: 30},
						{Type: domain.TransactionTypeDebit, Amount: "300.00", Description: "Restaurant bill", DaysAgo: 4},
						{Type: domain.TransactionTypeDebit, Amount: "150.00", Description: "Movie tickets", DaysAgo: 2},
					},
				},
				{
					Prefix:      "CRE",
					AccountType: domain.AccountTypeCredit,
					Transactions: []Transaction{
						{Type: domain.TransactionTypeCredit, Amount: "1000.00", Description: openingBalance, DaysAgo: 30},
					},
				},
			},
		},
		{
			Username: "jane.smith",
			Password: "password",
			Roles:    []string{"USER"},
			Accounts: []Account{
				{
					Prefix:      "SAV",
					AccountType: domain.AccountTypeSavings,
					Transactions: []Transaction{
						{Type: domain.TransactionTypeCredit, Amount: "3000.00", Description: openingBalance, DaysAgo: 30},
					},
				},
			},
		},
	}
}

type Loader struct {
	target Target
	hasher auth.HashServiceInterface
	now    func() time.Time
}

func NewLoader(target Target, hasher auth.HashServiceInterface) *Loader {
	return &Loader{
		target: target,
		hasher: hasher,
		now:    time.Now,
	}
}

// Load provisions users in order; history is replayed through CreateTransaction so
// balances follow from it. A target that already holds user 1 is left untouched.
func (l *Loader) Load(ctx context.Context, users []User) error {
	if tx, ok := l.target.(Transactor); ok {
		return tx.InTransaction(ctx, func(ctx context.Context) error {
			return l.load(ctx, users)
		})
	}
	return l.load(ctx, users)
}

func (l *Loader) load(ctx context.Context, users []User) error {
	existing, err := l.target.GetUserByID(ctx, 1)
	if err != nil {
		return fmt.Errorf("probe seeded user: %w", err)
	}
	if existing != nil {
		zap.L().Info("seed data already present, skipping", zap.String("username", existing.Username))
		return nil
	}

	now := l.now()
	for i, u := range users {
		hash, err := l.hasher.HashPassword(u.Password)
		if err != nil {
			return fmt.Errorf("hash password of %s: %w", u.Username, err)
		}
		user, err := l.target.CreateUser(ctx, &domain.User{
			Username:     u.Username,
			PasswordHash: hash,
			Roles:        u.Roles,
		})
		if err != nil {
			return fmt.Errorf("create user %s: %w", u.Username, err)
		}

		for j, a := range u.Accounts {
			number, err := accountNumber(a.Prefix, now, i, j)
			if err != nil {
				return err
			}
			account, err := l.target.CreateAccount(ctx, &domain.Account{
				AccountNumber: number,
				Balance:       decimal.Zero,
				AccountType:   a.AccountType,
				UserID:        user.ID,
			})
			if err != nil {
				return fmt.Errorf("create account %s: %w", number, err)
			}

			for _, t := range a.Transactions {
				amount, err := decimal.NewFromString(t.Amount)
				if err != nil {
					return fmt.Errorf("parse amount %q: %w", t.Amount, err)
				}
				_, err = l.target.CreateTransaction(ctx, &domain.Transaction{
					TransactionType: t.Type,
					Amount:          amount,
					Description:     t.Description,
					TransactionDate: now.AddDate(0, 0, -t.DaysAgo),
					AccountID:       account.ID,
				})
				if err != nil {
					return fmt.Errorf("create transaction %q on %s: %w", t.Description, number, err)
				}
			}
		}
		zap.L().Debug("seeded user", zap.String("username", user.Username), zap.Int("accounts", len(u.Accounts)))
	}
	return nil
}

// accountNumber is prefix-<unix millis><user><account><luhn digit>.
func accountNumber(prefix string, now time.Time, userIdx, accountIdx int) (string, error) {
	base := strconv.FormatInt(now.UnixMilli(), 10) + strconv.Itoa(userIdx) + strconv.Itoa(accountIdx)
	digits, err := validate.WithLunaDigit(base)
	if err != nil {
		return "", fmt.Errorf("account number for %s: %w", prefix, err)
	}
	return prefix + "-" + digits, nil
}
