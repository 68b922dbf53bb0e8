// Package signup реализует HTTP-обработчики формы и запроса регистрации.
//
// Входные данные формы проверяются валидатором, наружу уходит первое
// нарушение. Успешная регистрация сразу аутентифицирует клиента:
// выпускается сессия, подписанный идентификатор уходит в cookie,
// клиент перенаправляется в закрытую зону.
package signup

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
	"github.com/magabrotheeeer/members-portal/internal/storage/repository"
	"github.com/magabrotheeeer/members-portal/internal/web"
)

// Request — входные данные формы регистрации
type Request struct {
	Name     string `validate:"required,max=50"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6,max=50"`
}

// Service описывает интерфейс бизнес-логики регистрации.
type Service interface {
	Signup(ctx context.Context, name, email, password string) (string, error)
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

// Form рендерит страницу с формой регистрации.
func (h *Handler) Form(w http.ResponseWriter, r *http.Request) {
	h.rend.Page(w, http.StatusOK, "signup.html", web.PageData{CurrentURL: "/signup"})
}

// Submit обрабатывает отправку формы регистрации.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.signup"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	if err := r.ParseForm(); err != nil {
		log.Error("failed to parse form", sl.Err(err))
		h.rend.Fail(w, http.StatusBadRequest, "Invalid form data.",
			"/signup", "Go back to sign up")
		return
	}

	req := Request{
		Name:     r.PostFormValue("name"),
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}
	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		h.rend.Fail(w, http.StatusBadRequest,
			response.ValidationMessage(err.(validator.ValidationErrors)),
			"/signup", "Go back to sign up")
		return
	}

	sessionID, err := h.auth.Signup(r.Context(), req.Name, req.Email, req.Password)
	if errors.Is(err, repository.ErrEmailTaken) {
		log.Error("email already registered", slog.String("email", req.Email))
		h.rend.Fail(w, http.StatusConflict, "That email is already registered.",
			"/signup", "Go back to sign up")
		return
	}
	if err != nil {
		log.Error("signup failed", sl.Err(err))
		h.rend.Fail(w, http.StatusInternalServerError, "Error signing up.",
			"/signup", "Go back to sign up")
		return
	}

	signed, err := h.maker.Sign(sessionID)
	if err != nil {
		log.Error("failed to sign session cookie", sl.Err(err))
		h.rend.Fail(w, http.StatusInternalServerError, "Error signing up.",
			"/signup", "Go back to sign up")
		return
	}

	log.Info("user signed up", slog.String("email", req.Email))
	cookie.Set(w, signed, h.ttl)
	http.Redirect(w, r, "/members", http.StatusSeeOther)
}
