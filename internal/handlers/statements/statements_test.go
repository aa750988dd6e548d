package statements

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GlebRadaev/bankapi/internal/domain"
	"github.com/GlebRadaev/bankapi/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*chi.Mux, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)

	router := chi.NewRouter()
	router.Get("/api/v1/accounts/{accountId}/statements/{year}/{month}", handler.DownloadStatement)
	return router, service
}

func TestDownloadStatementHandler(t *testing.T) {
	router, service := NewMock(t)

	tests := []struct {
		name            string
		url             string
		prepareMock     func()
		expectedCode    int
		expectedMessage string
		expectedErrors  map[string]string
	}{
		{
			name: "Statement downloaded",
			url:  "/api/v1/accounts/1/statements/2024/1",
			prepareMock: func() {
				service.EXPECT().GetStatement(gomock.Any(), int64(1), 2024, 1).Return(&domain.Statement{
					Reference:   "ref",
					AccountID:   1,
					Year:        2024,
					Month:       1,
					FileName:    "statement-1-2024-1.txt",
					ContentType: "text/plain; charset=utf-8",
					Content:     []byte("Account statement"),
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Account not visible",
			url:  "/api/v1/accounts/4/statements/2024/1",
			prepareMock: func() {
				service.EXPECT().GetStatement(gomock.Any(), int64(4), 2024, 1).Return(nil, domain.ErrAccountNotFound)
			},
			expectedCode:    http.StatusNotFound,
			expectedMessage: "Account not found",
		},
		{
			name:            "Month out of range",
			url:             "/api/v1/accounts/1/statements/2024/13",
			prepareMock:     func() {},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Validation failed",
			expectedErrors:  map[string]string{"month": "Month must be between 1 and 12"},
		},
		{
			name:            "Year too early",
			url:             "/api/v1/accounts/1/statements/1999/12",
			prepareMock:     func() {},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Validation failed",
			expectedErrors:  map[string]string{"year": "Year must be greater than or equal to 2000"},
		},
		{
			name:            "Year too late",
			url:             "/api/v1/accounts/1/statements/2101/1",
			prepareMock:     func() {},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Validation failed",
			expectedErrors:  map[string]string{"year": "Year must be less than or equal to 2100"},
		},
		{
			name:            "Non numeric segments",
			url:             "/api/v1/accounts/abc/statements/20x4/jan",
			prepareMock:     func() {},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Validation failed",
			expectedErrors: map[string]string{
				"accountId": "must be a positive integer",
				"year":      "must be an integer",
				"month":     "must be an integer",
			},
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
				if tt.expectedErrors != nil {
					assert.Equal(t, tt.expectedErrors, resp.Errors)
				}
				return
			}
			assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
			assert.Equal(t, "attachment; filename=statement-1-2024-1.txt", rec.Header().Get("Content-Disposition"))
			assert.Equal(t, "Account statement", rec.Body.String())
		})
	}
}
