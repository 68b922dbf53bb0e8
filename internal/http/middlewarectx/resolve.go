// Package middlewarectx содержит HTTP middleware для работы с сессией запроса.
//
// ResolveSession разбирает сессионную cookie, достает атрибуты сессии из
// хранилища и кладет их в контекст запроса. Любой сбой на этом пути —
// отсутствие cookie, неверная подпись, истекшая или отсутствующая сессия —
// оставляет запрос анонимным, а не прерывает его: доступ ограничивают guard'ы.
package middlewarectx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/magabrotheeeer/members-portal/internal/lib/cookie"
	"github.com/magabrotheeeer/members-portal/internal/lib/sl"
	"github.com/magabrotheeeer/members-portal/internal/session"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

const (
	// SessionID — ключ идентификатора сессии в контексте
	SessionID Key = "session_id"
	// SessionData — ключ атрибутов сессии в контексте
	SessionData Key = "session_data"
)

// SessionResolver описывает интерфейс хранилища сессий, нужный middleware.
type SessionResolver interface {
	Get(ctx context.Context, id string) (*session.Data, error)
	Update(ctx context.Context, id string, data session.Data) error
}

// ResolveSession возвращает middleware, которое разрешает сессию запроса.
//
// Успешно разрешённая сессия продлевается и в хранилище, и в cookie клиента:
// время жизни отсчитывается от последнего продления.
func ResolveSession(maker cookie.Maker, sessions SessionResolver, ttl time.Duration, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.ResolveSession"

			c, err := r.Cookie(cookie.Name)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			sessionID, err := maker.Parse(c.Value)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			data, err := sessions.Get(r.Context(), sessionID)
			if err != nil {
				if !errors.Is(err, session.ErrNotFound) {
					log.Error("failed to load session", slog.String("op", op), sl.Err(err))
				}
				next.ServeHTTP(w, r)
				return
			}

			if err := sessions.Update(r.Context(), sessionID, *data); err != nil {
				log.Error("failed to renew session", slog.String("op", op), sl.Err(err))
			} else if signed, err := maker.Sign(sessionID); err == nil {
				cookie.Set(w, signed, ttl)
			}

			ctx := context.WithValue(r.Context(), SessionID, sessionID)
			ctx = context.WithValue(ctx, SessionData, data)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFromContext возвращает атрибуты сессии запроса, если они разрешены.
func SessionFromContext(ctx context.Context) (*session.Data, bool) {
	data, ok := ctx.Value(SessionData).(*session.Data)
	return data, ok
}

// SessionIDFromContext возвращает идентификатор сессии запроса.
func SessionIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(SessionID).(string)
	return id, ok
}
