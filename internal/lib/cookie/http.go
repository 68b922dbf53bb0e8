package cookie

import (
	"net/http"
	"time"
)

// Name имя сессионной cookie.
const Name = "session"

// Set записывает подписанное значение в сессионную cookie клиента.
// Время жизни cookie совпадает со временем жизни сессии.
func Set(w http.ResponseWriter, value string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     Name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear немедленно удаляет сессионную cookie у клиента.
func Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
