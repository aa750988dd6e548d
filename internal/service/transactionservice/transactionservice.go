package transactionservice

import (
	"context"
	"strings"
	"time"

	"github.com/GlebRadaev/bankapi/internal/domain"
	"github.com/GlebRadaev/bankapi/internal/dto"
	"go.uber.org/zap"
)

type UserRepo interface {
	GetCurrentUser(ctx context.Context) (*domain.User, error)
}

type AccountRepo interface {
	GetAccountByID(ctx context.Context, id int64) (*domain.Account, error)
}

type TransactionRepo interface {
	GetTransactionByID(ctx context.Context, id int64) (*domain.Transaction, error)
	GetTransactionsByAccountID(ctx context.Context, accountID int64) ([]domain.Transaction, error)
	// CreateTransaction stores the transaction and applies it to the account balance atomically.
	CreateTransaction(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error)
}

type Service struct {
	userRepo        UserRepo
	accountRepo     AccountRepo
	transactionRepo TransactionRepo
	now             func() time.Time
}

func New(userRepo UserRepo, accountRepo AccountRepo, transactionRepo TransactionRepo) *Service {
	return &Service{
		userRepo:        userRepo,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		now:             time.Now,
	}
}

func (s *Service) ListTransactions(ctx context.Context, accountID int64) ([]dto.TransactionResponseDTO, error) {
	if _, err := s.ownedAccount(ctx, accountID); err != nil {
		return nil, err
	}

	transactions, err := s.transactionRepo.GetTransactionsByAccountID(ctx, accountID)
	if err != nil {
		zap.L().Error("failed to list transactions", zap.Int64("accountID", accountID), zap.Error(err))
		return nil, err
	}

	response := make([]dto.TransactionResponseDTO, 0, len(transactions))
	for i := range transactions {
		response = append(response, dto.NewTransactionResponse(&transactions[i]))
	}
	return response, nil
}

func (s *Service) CreateTransaction(ctx context.Context, accountID int64, req dto.TransactionRequestDTO) (*dto.TransactionResponseDTO, error) {
	account, err := s.ownedAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if req.Amount == nil || !req.Amount.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}
	if !domain.HasMoneyScale(*req.Amount) {
		return nil, domain.ErrInvalidAmountScale
	}
	if !req.TransactionType.IsValid() {
		return nil, domain.ErrInvalidTransactionType
	}
	if req.TransactionType == domain.TransactionTypeDebit && account.Balance.LessThan(*req.Amount) {
		zap.L().Info("debit rejected",
			zap.Int64("accountID", accountID),
			zap.String("balance", account.Balance.String()),
			zap.String("amount", req.Amount.String()),
		)
		return nil, domain.ErrInsufficientBalance
	}

	transaction := &domain.Transaction{
		TransactionType: req.TransactionType,
		Amount:          *req.Amount,
		Description:     strings.TrimSpace(req.Description),
		TransactionDate: s.now(),
		AccountID:       accountID,
	}

	created, err := s.transactionRepo.CreateTransaction(ctx, transaction)
	if err != nil {
		zap.L().Error("failed to create transaction", zap.Int64("accountID", accountID), zap.Error(err))
		return nil, err
	}

	zap.L().Info("transaction created",
		zap.Int64("transactionID", created.ID),
		zap.Int64("accountID", accountID),
		zap.String("type", string(created.TransactionType)),
		zap.String("amount", created.Amount.String()),
	)
	response := dto.NewTransactionResponse(created)
	return &response, nil
}

// GetTransaction hides transactions whose account is missing or owned by someone else.
func (s *Service) GetTransaction(ctx context.Context, id int64) (*dto.TransactionResponseDTO, error) {
	user, err := s.userRepo.GetCurrentUser(ctx)
	if err != nil {
		zap.L().Error("failed to resolve current user", zap.Error(err))
		return nil, err
	}

	transaction, err := s.transactionRepo.GetTransactionByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get transaction", zap.Int64("transactionID", id), zap.Error(err))
		return nil, err
	}
	if transaction == nil {
		return nil, domain.ErrTransactionNotFound
	}

	account, err := s.accountRepo.GetAccountByID(ctx, transaction.AccountID)
	if err != nil {
		zap.L().Error("failed to get account", zap.Int64("accountID", transaction.AccountID), zap.Error(err))
		return nil, err
	}
	if !account.OwnedBy(user.ID) {
		return nil, domain.ErrTransactionNotFound
	}

	response := dto.NewTransactionResponse(transaction)
	return &response, nil
}

func (s *Service) ownedAccount(ctx context.Context, accountID int64) (*domain.Account, error) {
	user, err := s.userRepo.GetCurrentUser(ctx)
	if err != nil {
		zap.L().Error("failed to resolve current user", zap.Error(err))
		return nil, err
	}

	account, err := s.accountRepo.GetAccountByID(ctx, accountID)
	if err != nil {
		zap.L().Error("failed to get account", zap.Int64("accountID", accountID), zap.Error(err))
		return nil, err
	}
	if !account.OwnedBy(user.ID) {
		return nil, domain.ErrAccountNotFound
	}
	return account, nil
}
