// Package list реализует HTTP-обработчик страницы управления пользователями.
// Доступ ограничивается guard'ом RequireAdmin на уровне маршрутов.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/members-portal/internal/lib/sl"
	"github.com/magabrotheeeer/members-portal/internal/models"
	"github.com/magabrotheeeer/members-portal/internal/web"
)

// Service описывает доступ к списку пользователей.
type Service interface {
	ListUsers(ctx context.Context) ([]*models.User, error)
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
	const op = "handlers.admin.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	users, err := h.users.ListUsers(r.Context())
	if err != nil {
		log.Error("failed to list users", sl.Err(err))
		h.rend.Fail(w, http.StatusInternalServerError, "Error loading users.",
			"/", "Go back to home page")
		return
	}

	h.rend.Page(w, http.StatusOK, "admin.html", web.PageData{
		CurrentURL: "/admin",
		LoggedIn:   true,
		Users:      users,
	})
}
