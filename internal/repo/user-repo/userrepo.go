package userrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/bankapi/internal/domain"
	"github.com/GlebRadaev/bankapi/internal/pg"
	"github.com/GlebRadaev/bankapi/pkg/auth"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db            pg.Database
	currentUserID int64
}

func New(db pg.Database, currentUserID int64) *Repository {
	return &Repository{
		db:            db,
		currentUserID: currentUserID,
	}
}

func (repo *Repository) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `
		SELECT id, username, password_hash, roles, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	var user domain.User
	err := repo.db.QueryRow(ctx, query, id).
		Scan(&user.ID, &user.Username, &user.PasswordHash, &user.Roles, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Int64("userID", id), zap.Error(err))
		return nil, err
	}
	return &user, nil
}

// GetCurrentUser resolves the request identity, falling back to the configured user.
func (repo *Repository) GetCurrentUser(ctx context.Context) (*domain.User, error) {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		userID = repo.currentUserID
	}
	user, err := repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		zap.L().Error("current user is not provisioned", zap.Int64("userID", userID))
		return nil, domain.ErrCurrentUserMissing
	}
	return user, nil
}

func (repo *Repository) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (username, password_hash, roles)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`
	roles := user.Roles
	if roles == nil {
		roles = []string{}
	}
	created := *user
	created.Roles = roles
	err := repo.db.QueryRow(ctx, query, user.Username, user.PasswordHash, roles).
		Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save user", zap.String("username", user.Username), zap.Error(err))
		return nil, err
	}
	return &created, nil
}
