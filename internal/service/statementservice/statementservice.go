package statementservice

import (
	"context"

	"github.com/GlebRadaev/bankapi/internal/domain"
	"go.uber.org/zap"
)

type UserRepo interface {
	GetCurrentUser(ctx context.Context) (*domain.User, error)
}

type AccountRepo interface {
	GetAccountByID(ctx context.Context, id int64) (*domain.Account, error)
}

// Generator renders a statement document for one account and calendar month.
type Generator interface {
	Generate(ctx context.Context, account *domain.Account, year, month int) (*domain.Statement, error)
}

type Service struct {
	userRepo    UserRepo
	accountRepo AccountRepo
	generator   Generator
}

func New(userRepo UserRepo, accountRepo AccountRepo, generator Generator) *Service {
	return &Service{
		userRepo:    userRepo,
		accountRepo: accountRepo,
		generator:   generator,
	}
}

func (s *Service) GetStatement(ctx context.Context, accountID int64, year, month int) (*domain.Statement, error) {
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

	statement, err := s.generator.Generate(ctx, account, year, month)
	if err != nil {
		zap.L().Error("failed to generate statement",
			zap.Int64("accountID", accountID),
			zap.Int("year", year),
			zap.Int("month", month),
			zap.Error(err),
		)
		return nil, err
	}
	return statement, nil
}
