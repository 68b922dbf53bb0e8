package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/magabrotheeeer/members-portal/internal/lib/sl"
	"github.com/magabrotheeeer/members-portal/internal/models"
	"github.com/magabrotheeeer/members-portal/internal/web"
)

// UserGetter описывает доступ к пользователям, нужный guard'у администратора.
type UserGetter interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// RequireLoggedIn пропускает запрос дальше только при разрешённой
// аутентифицированной сессии, иначе отвечает 403.
func RequireLoggedIn(log *slog.Logger, rend *web.Renderer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			data, ok := SessionFromContext(r.Context())
			if !ok || !data.LoggedIn {
				rend.Fail(w, http.StatusForbidden,
					"You must be logged in to access this page.",
					"/", "Go back to home page")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin пропускает запрос только от администратора.
//
// Признак администратора каждый раз перечитывается из хранилища по email
// сессии, а не берется из её кэша: разжалованный пользователь теряет
// доступ уже на следующем запросе, без перевыпуска сессии.
func RequireAdmin(log *slog.Logger, rend *web.Renderer, users UserGetter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.RequireAdmin"

			data, ok := SessionFromContext(r.Context())
			if !ok || !data.LoggedIn {
				rend.Fail(w, http.StatusForbidden,
					"You must be logged in to access this page.",
					"/", "Go back to home page")
				return
			}

			user, err := users.GetUserByEmail(r.Context(), data.Email)
			if err != nil || !user.IsAdmin {
				if err != nil {
					log.Error("failed to resolve session user", slog.String("op", op), sl.Err(err))
				}
				rend.Fail(w, http.StatusForbidden,
					"You must be an admin to access this page.",
					"/", "Go back to home page")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
