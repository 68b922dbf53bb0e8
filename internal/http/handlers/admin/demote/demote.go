// Package demote реализует HTTP-обработчик снятия с пользователя
// прав администратора. Доступ ограничивается guard'ом RequireAdmin;
// разжалованный теряет доступ уже на следующем своем запросе.
package demote

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/members-portal/internal/lib/sl"
	"github.com/magabrotheeeer/members-portal/internal/storage/repository"
	"github.com/magabrotheeeer/members-portal/internal/web"
)

// Service описывает операцию смены признака администратора.
type Service interface {
	SetAdmin(ctx context.Context, uid string, value bool) error
}

type Handler struct {
	log   *slog.Logger
	rend  *web.Renderer
	users Service
}

func New(log *slog.Logger, rend *web.Renderer, users Service) *Handler {
	return &Handler{
		log:   log,
		rend:  rend,
		users: users,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.demote"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userID := chi.URLParam(r, "userID")
	err := h.users.SetAdmin(r.Context(), userID, false)
	if errors.Is(err, repository.ErrUserNotFound) {
		log.Error("demote target not found", slog.String("user_id", userID))
		h.rend.Fail(w, http.StatusNotFound, "User not found.",
			"/admin", "Go back to admin page")
		return
	}
	if err != nil {
		log.Error("failed to demote user", sl.Err(err))
		h.rend.Fail(w, http.StatusInternalServerError, "Error demoting user.",
			"/admin", "Go back to admin page")
		return
	}

	log.Info("user demoted", slog.String("user_id", userID))
	http.Redirect(w, r, "/admin", http.StatusFound)
}
