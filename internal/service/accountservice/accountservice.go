package accountservice

import (
	"context"

	"github.com/GlebRadaev/bankapi/internal/domain"
	"github.com/GlebRadaev/bankapi/internal/dto"
	"go.uber.org/zap"
)

type UserRepo interface {
	GetCurrentUser(ctx context.Context) (*domain.User, error)
}

type AccountRepo interface {
	GetAccountByID(ctx context.Context, id int64) (*domain.Account, error)
	GetAccountsByUserID(ctx context.Context, userID int64) ([]domain.Account, error)
}

type Service struct {
	userRepo    UserRepo
	accountRepo AccountRepo
}

func New(userRepo UserRepo, accountRepo AccountRepo) *Service {
	return &Service{
		userRepo:    userRepo,
		accountRepo: accountRepo,
	}
}

func (s *Service) ListAccounts(ctx context.Context) ([]dto.AccountResponseDTO, error) {
	user, err := s.userRepo.GetCurrentUser(ctx)
	if err != nil {
		zap.L().Error("failed to resolve current user", zap.Error(err))
		return nil, err
	}

	accounts, err := s.accountRepo.GetAccountsByUserID(ctx, user.ID)
	if err != nil {
		zap.L().Error("failed to list accounts", zap.Int64("userID", user.ID), zap.Error(err))
		return nil, err
	}

	response := make([]dto.AccountResponseDTO, 0, len(accounts))
	for i := range accounts {
		response = append(response, dto.NewAccountResponse(&accounts[i]))
	}
	return response, nil
}

// GetAccount answers ErrAccountNotFound both for unknown ids and for accounts of other users.
func (s *Service) GetAccount(ctx context.Context, id int64) (*dto.AccountResponseDTO, error) {
	user, err := s.userRepo.GetCurrentUser(ctx)
	if err != nil {
		zap.L().Error("failed to resolve current user", zap.Error(err))
		return nil, err
	}

	account, err := s.accountRepo.GetAccountByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get account", zap.Int64("accountID", id), zap.Error(err))
		return nil, err
	}
	if !account.OwnedBy(user.ID) {
		return nil, domain.ErrAccountNotFound
	}

	response := dto.NewAccountResponse(account)
	return &response, nil
}
