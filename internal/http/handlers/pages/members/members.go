// Package members реализует HTTP-обработчик закрытой страницы участников.
// Доступ ограничивается guard'ом RequireLoggedIn на уровне маршрутов.
package members

import (
	"log/slog"
	"net/http"

	"github.com/magabrotheeeer/members-portal/internal/http/middlewarectx"
	"github.com/magabrotheeeer/members-portal/internal/web"
)

type Handler struct {
	log  *slog.Logger
	rend *web.Renderer
}

func New(log *slog.Logger, rend *web.Renderer) *Handler {
	return &Handler{
		log:  log,
		rend: rend,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	data := web.PageData{CurrentURL: "/members"}
	if sess, ok := middlewarectx.SessionFromContext(r.Context()); ok {
		data.LoggedIn = sess.LoggedIn
		data.Username = sess.Username
	}
	h.rend.Page(w, http.StatusOK, "members.html", data)
}
