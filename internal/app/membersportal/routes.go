// Package membersportal предоставляет сборку и маршруты основного приложения.
package membersportal

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/magabrotheeeer/members-portal/internal/http/handlers/admin/demote"
	"github.com/magabrotheeeer/members-portal/internal/http/handlers/admin/list"
	"github.com/magabrotheeeer/members-portal/internal/http/handlers/admin/promote"
	"github.com/magabrotheeeer/members-portal/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/members-portal/internal/http/handlers/auth/logout"
	"github.com/magabrotheeeer/members-portal/internal/http/handlers/auth/signup"
	"github.com/magabrotheeeer/members-portal/internal/http/handlers/health"
	"github.com/magabrotheeeer/members-portal/internal/http/handlers/pages/home"
	"github.com/magabrotheeeer/members-portal/internal/http/handlers/pages/members"
	"github.com/magabrotheeeer/members-portal/internal/http/middlewarectx"
	"github.com/magabrotheeeer/members-portal/internal/lib/cookie"
	services "github.com/magabrotheeeer/members-portal/internal/services/auth"
	"github.com/magabrotheeeer/members-portal/internal/session"
	"github.com/magabrotheeeer/members-portal/internal/storage/repository"
	"github.com/magabrotheeeer/members-portal/internal/web"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, rend *web.Renderer,
	db *repository.Storage, sessions *session.Store, maker cookie.Maker,
	authService *services.AuthService, sessionTTL time.Duration) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)
	r.Use(middlewarectx.ResolveSession(maker, sessions, sessionTTL, logger))

	// Открытые конечные точки
	r.Get("/", home.New(logger, rend).ServeHTTP)

	signupHandler := signup.New(logger, rend, authService, maker, sessionTTL)
	r.Get("/signup", signupHandler.Form)
	r.Post("/signup", signupHandler.Submit)

	loginHandler := login.New(logger, rend, authService, maker, sessionTTL)
	r.Get("/login", loginHandler.Form)
	r.Post("/login", loginHandler.Submit)

	r.Get("/logout", logout.New(logger, rend, authService).ServeHTTP)

	// Зона для вошедших пользователей
	r.Group(func(r chi.Router) {
		r.Use(middlewarectx.RequireLoggedIn(logger, rend))
		r.Get("/members", members.New(logger, rend).ServeHTTP)
	})

	// Зона администратора, включая смену ролей
	r.Group(func(r chi.Router) {
		r.Use(middlewarectx.RequireAdmin(logger, rend, db))
		r.Get("/admin", list.New(logger, rend, db).ServeHTTP)
		r.Get("/promote/{userID}", promote.New(logger, rend, db).ServeHTTP)
		r.Get("/demote/{userID}", demote.New(logger, rend, db).ServeHTTP)
	})

	r.Get("/healthz", health.New(logger, db).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		rend.NotFound(w, r.URL.Path)
	})
}
