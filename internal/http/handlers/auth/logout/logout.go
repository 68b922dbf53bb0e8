// Package logout реализует HTTP-обработчик выхода из системы.
// Запись сессии удаляется из хранилища, cookie очищается у клиента.
// Повторный выход без активной сессии не является ошибкой.
package logout

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/members-portal/internal/http/middlewarectx"
	"github.com/magabrotheeeer/members-portal/internal/lib/cookie"
	"github.com/magabrotheeeer/members-portal/internal/lib/sl"
	"github.com/magabrotheeeer/members-portal/internal/web"
)

// Service описывает интерфейс бизнес-логики выхода.
type Service interface {
	Logout(ctx context.Context, sessionID string) error
}

type Handler struct {
	log  *slog.Logger
	rend *web.Renderer
	auth Service
}

func New(log *slog.Logger, rend *web.Renderer, auth Service) *Handler {
	return &Handler{
		log:  log,
		rend: rend,
		auth: auth,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.logout"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	if sessionID, ok := middlewarectx.SessionIDFromContext(r.Context()); ok {
		if err := h.auth.Logout(r.Context(), sessionID); err != nil {
			log.Error("failed to destroy session", sl.Err(err))
			h.rend.Fail(w, http.StatusInternalServerError, "Error logging out.",
				"/", "Go back to home page")
			return
		}
	}

	cookie.Clear(w)
	http.Redirect(w, r, "/", http.StatusFound)
}
