// Package cookie реализует подпись и проверку значения сессионной cookie.
//
// В cookie клиенту передаётся не сам идентификатор сессии, а JWT,
// подписанный секретным ключом, с идентификатором в claims и сроком
// действия, равным времени жизни сессии. Поддельная или просроченная
// cookie отбрасывается при разборе.
package cookie

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims описывает данные, хранящиеся в подписанном значении cookie.
type SessionClaims struct {
	SessionID            string `json:"sid"` // Идентификатор сессии в хранилище
	jwt.RegisteredClaims        // Встроенные стандартные claims JWT (ExpiresAt, IssuedAt и пр.)
}

// Maker описывает интерфейс для подписи и разбора сессионной cookie.
type Maker interface {
	// Sign упаковывает идентификатор сессии в подписанное значение cookie.
	Sign(sessionID string) (string, error)
	// Parse проверяет подпись и срок действия, возвращает идентификатор сессии.
	Parse(value string) (string, error)
}

// MakerImpl реализует интерфейс Maker с использованием секретного ключа
// и времени жизни сессии (TTL).
type MakerImpl struct {
	secretKey string        // Секретный ключ для подписи cookie.
	ttl       time.Duration // Время жизни сессии.
}

// NewMaker создаёт новый экземпляр MakerImpl на основе секретного ключа и TTL.
func NewMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		ttl:       ttl,
	}
}

// Sign создает подписанное значение cookie с заданным идентификатором сессии.
//
// Время жизни значения определяется полем ttl.
func (m *MakerImpl) Sign(sessionID string) (string, error) {
	claims := SessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.secretKey))
}

// Parse разбирает значение cookie, проверяет подпись и срок действия,
// возвращает идентификатор сессии, если значение корректно.
func (m *MakerImpl) Parse(value string) (string, error) {
	const op = "cookie.Parse"
	token, err := jwt.ParseWithClaims(value, &SessionClaims{}, func(_ *jwt.Token) (any, error) {
		return []byte(m.secretKey), nil
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("%s: invalid cookie value", op)
	}
	return claims.SessionID, nil
}
