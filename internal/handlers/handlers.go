package handlers

import (
	"net/http"

	_ "github.com/GlebRadaev/bankapi/docs"
	accounthandlers "github.com/GlebRadaev/bankapi/internal/handlers/accounts"
	statementhandlers "github.com/GlebRadaev/bankapi/internal/handlers/statements"
	transactionhandlers "github.com/GlebRadaev/bankapi/internal/handlers/transactions"
	"github.com/GlebRadaev/bankapi/internal/service"
	"github.com/GlebRadaev/bankapi/pkg/auth"
	"github.com/GlebRadaev/bankapi/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AccountHandler interface {
	ListAccounts(w http.ResponseWriter, r *http.Request)
	GetAccount(w http.ResponseWriter, r *http.Request)
}

type TransactionHandler interface {
	ListTransactions(w http.ResponseWriter, r *http.Request)
	CreateTransaction(w http.ResponseWriter, r *http.Request)
	GetTransaction(w http.ResponseWriter, r *http.Request)
}

type StatementHandler interface {
	DownloadStatement(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AccountHandler     AccountHandler
	TransactionHandler TransactionHandler
	StatementHandler   StatementHandler

	CurrentUserID  int64
	AllowedOrigins []string
}

func New(s *service.Services, currentUserID int64, allowedOrigins []string) *Handlers {
	return &Handlers{
		AccountHandler:     accounthandlers.New(s.AccountService),
		TransactionHandler: transactionhandlers.New(s.TransactionService),
		StatementHandler:   statementhandlers.New(s.StatementService),
		CurrentUserID:      currentUserID,
		AllowedOrigins:     allowedOrigins,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		cors.Handler(cors.Options{
			AllowedOrigins: h.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
			ExposedHeaders: []string{"Content-Disposition"},
			MaxAge:         300,
		}),
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "UP"})
	})
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(auth.CurrentUserMiddleware(h.CurrentUserID))

		r.Route("/accounts", func(r chi.Router) {
			r.Get("/", h.AccountHandler.ListAccounts)
			r.Route("/{accountId}", func(r chi.Router) {
				r.Get("/", h.AccountHandler.GetAccount)
				r.Get("/transactions", h.TransactionHandler.ListTransactions)
				r.Post("/transactions", h.TransactionHandler.CreateTransaction)
				r.Get("/statements/{year}/{month}", h.StatementHandler.DownloadStatement)
			})
		})
		r.Get("/transactions/{id}", h.TransactionHandler.GetTransaction)
	})

	return r
}
