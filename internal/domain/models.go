package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type AccountType string

const (
	AccountTypeSavings  AccountType = "SAVINGS"
	AccountTypeChecking AccountType = "CHECKING"
	AccountTypeCredit   AccountType = "CREDIT"
)

func (t AccountType) IsValid() bool {
	switch t {
	case AccountTypeSavings, AccountTypeChecking, AccountTypeCredit:
		return true
	}
	return false
}

type TransactionType string

const (
	TransactionTypeCredit TransactionType = "CREDIT"
	TransactionTypeDebit  TransactionType = "DEBIT"
)

func (t TransactionType) IsValid() bool {
	return t == TransactionTypeCredit || t == TransactionTypeDebit
}

type User struct {
	ID           int64     `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	Roles        []string  `db:"roles"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

type Account struct {
	ID            int64           `db:"id"`
	AccountNumber string          `db:"account_number"`
	Balance       decimal.Decimal `db:"balance"`
	AccountType   AccountType     `db:"account_type"`
	UserID        int64           `db:"user_id"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}

// OwnedBy reports whether the account belongs to the given user.
func (a *Account) OwnedBy(userID int64) bool {
	return a != nil && a.UserID == userID
}

type Transaction struct {
	ID              int64           `db:"id"`
	TransactionType TransactionType `db:"transaction_type"`
	Amount          decimal.Decimal `db:"amount"`
	Description     string          `db:"description"`
	TransactionDate time.Time       `db:"transaction_date"`
	AccountID       int64           `db:"account_id"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at"`
}

// Statement is a rendered, downloadable account statement.
type Statement struct {
	Reference   string
	AccountID   int64
	Year        int
	Month       int
	FileName    string
	ContentType string
	Content     []byte
}
