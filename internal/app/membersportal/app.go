package membersportal

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/members-portal/internal/config"
	"github.com/magabrotheeeer/members-portal/internal/lib/cookie"
	"github.com/magabrotheeeer/members-portal/internal/migrations"
	services "github.com/magabrotheeeer/members-portal/internal/services/auth"
	"github.com/magabrotheeeer/members-portal/internal/session"
	"github.com/magabrotheeeer/members-portal/internal/storage/repository"
	"github.com/magabrotheeeer/members-portal/internal/web"
)

type App struct {
	server   *http.Server
	logger   *slog.Logger
	db       *repository.Storage
	sessions *session.Store
}

// New собирает приложение: хранилища, сервисы, маршруты, HTTP-сервер.
// Любая ошибка подключения здесь фатальна — сервер не начнет принимать
// трафик, пока база и хранилище сессий не доступны.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, "./migrations"); err != nil {
		return nil, err
	}

	sessions, err := session.NewStore(ctx, cfg.RedisConnection, cfg.StoreSecret, cfg.SessionTTL)
	if err != nil {
		return nil, err
	}

	rend, err := web.NewRenderer(logger)
	if err != nil {
		return nil, err
	}

	maker := cookie.NewMaker(cfg.CookieSecret, cfg.SessionTTL)
	authService := services.NewAuthService(db, sessions)

	router := chi.NewRouter()

	RegisterRoutes(router, logger, rend, db, sessions, maker, authService, cfg.SessionTTL)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server:   srv,
		logger:   logger,
		db:       db,
		sessions: sessions,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		_ = a.db.DB.Close()
		return err
	}
}
