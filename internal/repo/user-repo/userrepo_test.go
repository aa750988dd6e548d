package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/bankapi/internal/domain"
	"github.com/GlebRadaev/bankapi/pkg/auth"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

const selectUser = "SELECT id, username, password_hash, roles, created_at, updated_at FROM users WHERE id = $1"

var userColumns = []string{"id", "username", "password_hash", "roles", "created_at", "updated_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, 1)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

func TestRepository_GetUserByID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		id        int64
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name: "User found",
			id:   1,
			mockSetup: func() {
				rows := pgxmock.NewRows(userColumns).
					AddRow(int64(1), "john.doe", "hashed_password", []string{"USER"}, now, now)
				mock.ExpectQuery(regexp.QuoteMeta(selectUser)).
					WithArgs(int64(1)).
					WillReturnRows(rows)
			},
			result: &domain.User{
				ID:           1,
				Username:     "john.doe",
				PasswordHash: "hashed_password",
				Roles:        []string{"USER"},
				CreatedAt:    now,
				UpdatedAt:    now,
			},
		},
		{
			name: "User not found",
			id:   42,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(selectUser)).
					WithArgs(int64(42)).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			id:   1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(selectUser)).
					WithArgs(int64(1)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetUserByID(context.Background(), tt.id)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetCurrentUser(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		ctx       context.Context
		mockSetup func()
		expectErr error
		wantID    int64
	}{
		{
			name: "Configured user",
			ctx:  context.Background(),
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(selectUser)).
					WithArgs(int64(1)).
					WillReturnRows(pgxmock.NewRows(userColumns).
						AddRow(int64(1), "john.doe", "hash", []string{"USER"}, now, now))
			},
			wantID: 1,
		},
		{
			name: "Identity from context",
			ctx:  auth.WithUserID(context.Background(), 2),
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(selectUser)).
					WithArgs(int64(2)).
					WillReturnRows(pgxmock.NewRows(userColumns).
						AddRow(int64(2), "jane.smith", "hash", []string{"USER"}, now, now))
			},
			wantID: 2,
		},
		{
			name: "User missing",
			ctx:  context.Background(),
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(selectUser)).
					WithArgs(int64(1)).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: domain.ErrCurrentUserMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			user, err := repo.GetCurrentUser(tt.ctx)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, user.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_CreateUser(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	insert := "INSERT INTO users (username, password_hash, roles) VALUES ($1, $2, $3) RETURNING id, created_at, updated_at"

	tests := []struct {
		name      string
		user      *domain.User
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name: "Create user successfully",
			user: &domain.User{Username: "john.doe", PasswordHash: "hash", Roles: []string{"USER"}},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(insert)).
					WithArgs("john.doe", "hash", []string{"USER"}).
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(1), now, now))
			},
			result: &domain.User{ID: 1, Username: "john.doe", PasswordHash: "hash", Roles: []string{"USER"}, CreatedAt: now, UpdatedAt: now},
		},
		{
			name: "Nil roles stored as empty",
			user: &domain.User{Username: "jane.smith", PasswordHash: "hash"},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(insert)).
					WithArgs("jane.smith", "hash", []string{}).
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(2), now, now))
			},
			result: &domain.User{ID: 2, Username: "jane.smith", PasswordHash: "hash", Roles: []string{}, CreatedAt: now, UpdatedAt: now},
		},
		{
			name: "Database error",
			user: &domain.User{Username: "john.doe", PasswordHash: "hash", Roles: []string{"USER"}},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(insert)).
					WithArgs("john.doe", "hash", []string{"USER"}).
					WillReturnError(errors.New("duplicate key"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.CreateUser(context.Background(), tt.user)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
