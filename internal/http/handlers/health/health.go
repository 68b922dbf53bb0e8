// Package health реализует служебную конечную точку готовности приложения.
package health

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/members-portal/internal/http/response"
	"github.com/magabrotheeeer/members-portal/internal/lib/sl"
)

// ReadinessChecker описывает проверку готовности зависимого хранилища.
type ReadinessChecker interface {
	CheckReady(ctx context.Context) error
}

type Handler struct {
	log *slog.Logger
	db  ReadinessChecker
}

func New(log *slog.Logger, db ReadinessChecker) *Handler {
	return &Handler{
		log: log,
		db:  db,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.health"

	if err := h.db.CheckReady(r.Context()); err != nil {
		h.log.Error("readiness check failed", slog.String("op", op), sl.Err(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		render.JSON(w, r, response.Response{Status: "unavailable"})
		return
	}

	w.WriteHeader(http.StatusOK)
	render.JSON(w, r, response.OKWithData(map[string]any{
		"status": "ok",
	}))
}
