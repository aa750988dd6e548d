package accounts

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GlebRadaev/bankapi/internal/domain"
	"github.com/GlebRadaev/bankapi/internal/dto"
	"github.com/GlebRadaev/bankapi/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*chi.Mux, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)

	router := chi.NewRouter()
	router.Get("/api/v1/accounts", handler.ListAccounts)
	router.Get("/api/v1/accounts/{accountId}", handler.GetAccount)
	return router, service
}

func TestListAccountsHandler(t *testing.T) {
	router, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "Accounts listed",
			prepareMock: func() {
				service.EXPECT().ListAccounts(gomock.Any()).Return([]dto.AccountResponseDTO{
					{ID: 1, AccountNumber: "SAV-1", Balance: decimal.RequireFromString("5000.00"), AccountType: domain.AccountTypeSavings},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `[{"id":1,"accountNumber":"SAV-1","balance":5000,"accountType":"SAVINGS"}]`,
		},
		{
			name: "No accounts",
			prepareMock: func() {
				service.EXPECT().ListAccounts(gomock.Any()).Return([]dto.AccountResponseDTO{}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `[]`,
		},
		{
			name: "Unexpected failure",
			prepareMock: func() {
				service.EXPECT().ListAccounts(gomock.Any()).Return(nil, errors.New("connection reset"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts", nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rec.Body.String())
			} else {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, "Internal server error", resp.Message)
			}
		})
	}
}

func TestGetAccountHandler(t *testing.T) {
	router, service := NewMock(t)

	tests := []struct {
		name            string
		url             string
		prepareMock     func()
		expectedCode    int
		expectedMessage string
	}{
		{
			name: "Account found",
			url:  "/api/v1/accounts/1",
			prepareMock: func() {
				service.EXPECT().GetAccount(gomock.Any(), int64(1)).Return(&dto.AccountResponseDTO{
					ID: 1, AccountNumber: "SAV-1", Balance: decimal.RequireFromString("2500.50"), AccountType: domain.AccountTypeSavings,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Account not visible",
			url:  "/api/v1/accounts/4",
			prepareMock: func() {
				service.EXPECT().GetAccount(gomock.Any(), int64(4)).Return(nil, domain.ErrAccountNotFound)
			},
			expectedCode:    http.StatusNotFound,
			expectedMessage: "Account not found",
		},
		{
			name:            "Malformed id",
			url:             "/api/v1/accounts/abc",
			prepareMock:     func() {},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Validation failed",
		},
		{
			name:            "Zero id",
			url:             "/api/v1/accounts/0",
			prepareMock:     func() {},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Validation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedMessage != "" {
				var resp utils.ValidationResponse
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tt.expectedMessage, resp.Message)
				assert.Equal(t, tt.expectedCode, resp.Status)
				return
			}
			var account dto.AccountResponseDTO
			assert.NoError(t, json.NewDecoder(rec.Body).Decode(&account))
			assert.Equal(t, "2500.5", account.Balance.String())
		})
	}
}
