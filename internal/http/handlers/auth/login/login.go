// Package login реализует HTTP-обработчики формы и запроса входа.
//
// Проверка и валидация полей формы выполняются до обращения к бизнес-логике.
// Неверный email и неверный пароль отдаются одним и тем же сообщением,
// чтобы не раскрывать, какой из факторов был ошибочным.
package login

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/members-portal/internal/http/response"
	"github.com/magabrotheeeer/members-portal/internal/lib/cookie"
	"github.com/magabrotheeeer/members-portal/internal/lib/sl"
	services "github.com/magabrotheeeer/members-portal/internal/services/auth"
	"github.com/magabrotheeeer/members-portal/internal/web"
)

// Request — входные данные формы входа
type Request struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6,max=50"`
}

// Service описывает интерфейс бизнес-логики аутентификации.
type Service interface {
	Login(ctx context.Context, email, password string) (string, error)
}

type Handler struct {
	log      *slog.Logger
	rend     *web.Renderer
	auth     Service
	maker    cookie.Maker
	ttl      time.Duration
	validate *validator.Validate
}

func New(log *slog.Logger, rend *web.Renderer, auth Service, maker cookie.Maker, ttl time.Duration) *Handler {
	return &Handler{
		log:      log,
		rend:     rend,
		auth:     auth,
		maker:    maker,
		ttl:      ttl,
		validate: validator.New(),
	}
}

// Form рендерит страницу с формой входа.
func (h *Handler) Form(w http.ResponseWriter, r *http.Request) {
	h.rend.Page(w, http.StatusOK, "login.html", web.PageData{CurrentURL: "/login"})
}

// Submit обрабатывает отправку формы входа.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	if err := r.ParseForm(); err != nil {
		log.Error("failed to parse form", sl.Err(err))
		h.rend.Fail(w, http.StatusBadRequest, "Invalid form data.",
			"/login", "Go back to log in")
		return
	}

	req := Request{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}
	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		h.rend.Fail(w, http.StatusBadRequest,
			response.ValidationMessage(err.(validator.ValidationErrors)),
			"/login", "Go back to log in")
		return
	}

	sessionID, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		log.Error("invalid credentials")
		h.rend.Fail(w, http.StatusUnauthorized, "Incorrect email or password.",
			"/login", "Go back to log in")
		return
	}
	if err != nil {
		log.Error("login failed", sl.Err(err))
		h.rend.Fail(w, http.StatusInternalServerError, "Error logging in.",
			"/login", "Go back to log in")
		return
	}

	signed, err := h.maker.Sign(sessionID)
	if err != nil {
		log.Error("failed to sign session cookie", sl.Err(err))
		h.rend.Fail(w, http.StatusInternalServerError, "Error logging in.",
			"/login", "Go back to log in")
		return
	}

	log.Info("login success", slog.String("email", req.Email))
	cookie.Set(w, signed, h.ttl)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
