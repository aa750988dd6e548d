package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/GlebRadaev/bankapi/internal/config"
	"github.com/GlebRadaev/bankapi/internal/handlers"
	"github.com/GlebRadaev/bankapi/internal/memstore"
	"github.com/GlebRadaev/bankapi/internal/pg"
	"github.com/GlebRadaev/bankapi/internal/repo"
	"github.com/GlebRadaev/bankapi/internal/seed"
	"github.com/GlebRadaev/bankapi/internal/service"
	"github.com/GlebRadaev/bankapi/pkg/auth"
	"github.com/GlebRadaev/bankapi/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg  *config.Config
	api  *handlers.Handlers
	srv  *service.Services
	repo *repo.Repositories
	pool *pgxpool.Pool

	hasher auth.HashServiceInterface

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh:  make(chan error),
		hasher: &auth.HashService{},
	}
}

// Start reads the configuration unless one was injected, then brings up storage,
// seed data and the HTTP server.
func (a *Application) Start(ctx context.Context) error {
	if a.cfg == nil {
		a.cfg = config.New()
	}

	err := logger.InitLogger(a.cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	a.repo, err = a.buildRepositories(ctx)
	if err != nil {
		return fmt.Errorf("can't build storage: %w", err)
	}

	if err := seed.NewLoader(a.repo.SeedTarget(), a.hasher).Load(ctx, seed.Default()); err != nil {
		zap.L().Error("seeding failed: ", zap.Error(err))
		return fmt.Errorf("can't load seed data: %w", err)
	}
	user, err := a.repo.UserRepo.GetCurrentUser(ctx)
	if err != nil {
		return fmt.Errorf("can't resolve current user %d: %w", a.cfg.CurrentUserID, err)
	}
	zap.L().Info("requests act as user", zap.Int64("userID", user.ID), zap.String("username", user.Username))

	a.srv = service.New(a.repo)
	a.api = handlers.New(a.srv, a.cfg.CurrentUserID, a.cfg.AllowedOrigins)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.ready = true
	zap.L().Info("all systems started successfully", zap.String("storage", a.cfg.Storage))
	return nil
}

func (a *Application) buildRepositories(ctx context.Context) (*repo.Repositories, error) {
	switch a.cfg.Storage {
	case config.StorageMemory:
		store := memstore.New(memstore.WithCurrentUser(a.cfg.CurrentUserID))
		return repo.NewInMemory(store), nil
	case config.StoragePostgres:
		pool, err := getPgxpool(ctx, a.cfg)
		if err != nil {
			zap.L().Error("build pgx pool failed: ", zap.Error(err))
			return nil, fmt.Errorf("can't build pgx pool: %w", err)
		}
		if err := pg.RunMigrations(ctx, pool); err != nil {
			pool.Close()
			zap.L().Error("migrations failed: ", zap.Error(err))
			return nil, fmt.Errorf("can't run migrations: %w", err)
		}
		a.pool = pool
		return repo.New(pg.New(pool), pg.NewTXManager(pool), a.cfg.CurrentUserID), nil
	default:
		return nil, fmt.Errorf("unknown storage %q", a.cfg.Storage)
	}
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("http server shutdown failed", zap.Error(err))
		}
		if a.pool != nil {
			a.pool.Close()
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
