package accountrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/GlebRadaev/bankapi/internal/domain"
	"github.com/GlebRadaev/bankapi/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const foreignKeyViolation = "23503"

const accountColumns = "id, account_number, balance::text, account_type, user_id, created_at, updated_at"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetAccountByID(ctx context.Context, id int64) (*domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE id = $1
	`
	account, err := scanAccount(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find account", zap.Int64("accountID", id), zap.Error(err))
		return nil, err
	}
	return account, nil
}

func (r *Repository) GetAccountsByUserID(ctx context.Context, userID int64) ([]domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE user_id = $1
		ORDER BY id
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get accounts", zap.Int64("userID", userID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			zap.L().Error("can't scan account row", zap.Error(err))
			return nil, err
		}
		accounts = append(accounts, *account)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate account rows", zap.Error(err))
		return nil, err
	}
	return accounts, nil
}

func (r *Repository) CreateAccount(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	query := `
		INSERT INTO accounts (account_number, balance, account_type, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`
	created := *account
	err := r.db.QueryRow(ctx, query, account.AccountNumber, account.Balance.String(), string(account.AccountType), account.UserID).
		Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return nil, domain.ErrUserNotFound
		}
		zap.L().Error("can't save account", zap.String("accountNumber", account.AccountNumber), zap.Error(err))
		return nil, err
	}
	return &created, nil
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var (
		account     domain.Account
		balance     string
		accountType string
	)
	err := row.Scan(&account.ID, &account.AccountNumber, &balance, &accountType, &account.UserID, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		return nil, err
	}
	account.Balance, err = decimal.NewFromString(balance)
	if err != nil {
		return nil, fmt.Errorf("parse balance %q: %w", balance, err)
	}
	account.AccountType = domain.AccountType(accountType)
	return &account, nil
}
