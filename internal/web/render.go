// Package web отвечает за серверный рендеринг HTML-страниц.
// Шаблоны встраиваются в бинарник, каждой странице передается общий
// набор навигационных ссылок и состояние сессии.
package web

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/magabrotheeeer/members-portal/internal/lib/sl"
	"github.com/magabrotheeeer/members-portal/internal/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

// NavLink элемент навигационного меню.
type NavLink struct {
	Name string
	Link string
}

var navLinks = []NavLink{
	{Name: "Home", Link: "/"},
	{Name: "Members", Link: "/members"},
	{Name: "Admin", Link: "/admin"},
}

// PageData данные, доступные шаблону страницы.
type PageData struct {
	NavLinks   []NavLink
	CurrentURL string
	LoggedIn   bool
	Username   string
	Users      []*models.User
	Message    string
	BackLink   string
	BackLabel  string
}

// Renderer выполняет шаблоны страниц и страниц ошибок.
type Renderer struct {
	tmpl *template.Template
	log  *slog.Logger
}

// NewRenderer разбирает встроенные шаблоны.
func NewRenderer(log *slog.Logger) (*Renderer, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{tmpl: tmpl, log: log}, nil
}

// Page рендерит именованный шаблон с переданными данными.
func (r *Renderer) Page(w http.ResponseWriter, status int, name string, data PageData) {
	data.NavLinks = navLinks
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := r.tmpl.ExecuteTemplate(w, name, data); err != nil {
		r.log.Error("failed to render template", slog.String("template", name), sl.Err(err))
	}
}

// Fail рендерит короткую страницу ошибки с сообщением и ссылкой назад.
// Сообщение не должно раскрывать внутренние детали сбоя.
func (r *Renderer) Fail(w http.ResponseWriter, status int, message, backLink, backLabel string) {
	r.Page(w, status, "error.html", PageData{
		Message:   message,
		BackLink:  backLink,
		BackLabel: backLabel,
	})
}

// NotFound рендерит страницу 404 для несуществующего маршрута.
func (r *Renderer) NotFound(w http.ResponseWriter, currentURL string) {
	r.Page(w, http.StatusNotFound, "notfound.html", PageData{CurrentURL: currentURL})
}
