// Package session реализует долговременное хранилище пользовательских сессий
// поверх Redis. Содержимое сессии сериализуется в JSON и шифруется AES-GCM
// перед записью, время жизни записи задаётся TTL ключа. Перезапуск веб-процесса
// не инвалидирует активные сессии до истечения их срока.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/magabrotheeeer/members-portal/internal/config"
)

// ErrNotFound возвращается, когда сессия отсутствует или уже истекла.
var ErrNotFound = errors.New("session not found")

// Data описывает атрибуты сессии, сохраняемые в хранилище.
type Data struct {
	LoggedIn bool   `json:"logged_in"` // Признак аутентифицированного клиента
	Username string `json:"username"`  // Отображаемое имя, зафиксированное при входе
	Email    string `json:"email"`     // Ключ авторизации, email пользователя
}

// Store инкапсулирует подключение к Redis и параметры шифрования.
type Store struct {
	db  *redis.Client
	key []byte
	ttl time.Duration
}

// NewStore подключается к Redis и возвращает готовое хранилище сессий.
// Ключ шифрования выводится из storeSecret, ttl задает фиксированное
// время жизни сессии от выпуска либо последнего продления.
func NewStore(ctx context.Context, cfg config.RedisConnection, storeSecret string, ttl time.Duration) (*Store, error) {
	const op = "session.NewStore"
	db := redis.NewClient(&redis.Options{
		Addr:         cfg.AddressRedis,
		Password:     cfg.Password,
		DB:           cfg.DB,
		Username:     cfg.User,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.TimeoutRedis,
		WriteTimeout: cfg.TimeoutRedis,
	})

	if err := db.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Store{db: db, key: deriveKey(storeSecret), ttl: ttl}, nil
}

// TTL возвращает настроенное время жизни сессии.
func (s *Store) TTL() time.Duration {
	return s.ttl
}

// Issue создает новую сессию с переданными атрибутами и возвращает её
// идентификатор. Идентификатор непрозрачен для клиента.
func (s *Store) Issue(ctx context.Context, data Data) (string, error) {
	const op = "session.Issue"
	id := uuid.New().String()
	if err := s.write(ctx, id, data); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

// Get возвращает атрибуты сессии по идентификатору.
// Отсутствующая и истекшая сессии неразличимы: обе дают ErrNotFound.
func (s *Store) Get(ctx context.Context, id string) (*Data, error) {
	const op = "session.Get"
	val, err := s.db.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	var data Data
	if err := open(val, s.key, &data); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &data, nil
}

// Update перезаписывает атрибуты сессии и продлевает её TTL.
func (s *Store) Update(ctx context.Context, id string, data Data) error {
	const op = "session.Update"
	if err := s.write(ctx, id, data); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Destroy удаляет сессию. Удаление отсутствующей сессии не является ошибкой.
func (s *Store) Destroy(ctx context.Context, id string) error {
	const op = "session.Destroy"
	if err := s.db.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *Store) write(ctx context.Context, id string, data Data) error {
	payload, err := seal(data, s.key)
	if err != nil {
		return err
	}
	return s.db.Set(ctx, sessionKey(id), payload, s.ttl).Err()
}

func sessionKey(id string) string {
	return "session:" + id
}
