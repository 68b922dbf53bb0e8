// Package home реализует HTTP-обработчик главной страницы.
// Страница отражает состояние сессии: приветствие для вошедшего
// пользователя либо ссылки на регистрацию и вход.
package home

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
	data := web.PageData{CurrentURL: "/"}
	if sess, ok := middlewarectx.SessionFromContext(r.Context()); ok && sess.LoggedIn {
		data.LoggedIn = true
		data.Username = sess.Username
	}
	h.rend.Page(w, http.StatusOK, "home.html", data)
}
