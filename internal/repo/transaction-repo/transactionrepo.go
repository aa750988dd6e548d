package transactionrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/GlebRadaev/bankapi/internal/domain"
	"github.com/GlebRadaev/bankapi/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const transactionColumns = "id, transaction_type, amount::text, description, transaction_date, account_id, created_at, updated_at"

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) GetTransactionByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE id = $1
	`
	transaction, err := scanTransaction(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find transaction", zap.Int64("transactionID", id), zap.Error(err))
		return nil, err
	}
	return transaction, nil
}

// GetTransactionsByAccountID returns the account history in insertion order.
func (r *Repository) GetTransactionsByAccountID(ctx context.Context, accountID int64) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE account_id = $1
		ORDER BY id
	`
	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		zap.L().Error("can't get transactions", zap.Int64("accountID", accountID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	transactions := []domain.Transaction{}
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			zap.L().Error("can't scan transaction row", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, *transaction)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate transaction rows", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}

// CreateTransaction locks the account row, applies the transaction to its balance and
// records it, all in one database transaction.
func (r *Repository) CreateTransaction(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error) {
	lockAccount := `
		SELECT balance::text
		FROM accounts
		WHERE id = $1
		FOR UPDATE
	`
	insert := `
		INSERT INTO transactions (transaction_type, amount, description, transaction_date, account_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	updateBalance := `
		UPDATE accounts
		SET balance = $1, updated_at = NOW()
		WHERE id = $2
	`

	created := *transaction
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		var current string
		err := r.db.QueryRow(ctx, lockAccount, transaction.AccountID).Scan(&current)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrAccountNotFound
			}
			zap.L().Error("can't lock account", zap.Int64("accountID", transaction.AccountID), zap.Error(err))
			return err
		}
		balance, err := decimal.NewFromString(current)
		if err != nil {
			return fmt.Errorf("parse balance %q: %w", current, err)
		}

		newBalance, err := domain.ApplyTransaction(balance, transaction.TransactionType, transaction.Amount)
		if err != nil {
			return err
		}

		err = r.db.QueryRow(ctx, insert,
			string(transaction.TransactionType),
			transaction.Amount.String(),
			transaction.Description,
			transaction.TransactionDate,
			transaction.AccountID,
		).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
		if err != nil {
			zap.L().Error("can't save transaction", zap.Int64("accountID", transaction.AccountID), zap.Error(err))
			return err
		}

		if _, err := r.db.Exec(ctx, updateBalance, newBalance.String(), transaction.AccountID); err != nil {
			zap.L().Error("can't update account balance", zap.Int64("accountID", transaction.AccountID), zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var (
		transaction domain.Transaction
		txType      string
		amount      string
	)
	err := row.Scan(&transaction.ID, &txType, &amount, &transaction.Description, &transaction.TransactionDate,
		&transaction.AccountID, &transaction.CreatedAt, &transaction.UpdatedAt)
	if err != nil {
		return nil, err
	}
	transaction.Amount, err = decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("parse amount %q: %w", amount, err)
	}
	transaction.TransactionType = domain.TransactionType(txType)
	return &transaction, nil
}
