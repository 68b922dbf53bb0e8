// Package services содержит логику бизнес-уровня для регистрации,
// входа и выхода пользователей.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/members-portal/internal/lib/password"
	"github.com/magabrotheeeer/members-portal/internal/models"
	"github.com/magabrotheeeer/members-portal/internal/session"
	"github.com/magabrotheeeer/members-portal/internal/storage/repository"
)

// ErrInvalidCredentials возвращается при неверной паре email/пароль.
// Несуществующий email и неверный пароль неразличимы для вызывающего.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя и возвращает его UID.
	CreateUser(ctx context.Context, name, email, passwordHash string) (string, error)

	// GetUserByEmail возвращает пользователя по email или ошибку, если не найден.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// SessionStore описывает контракт хранилища сессий, используемый сервисом.
type SessionStore interface {
	Issue(ctx context.Context, data session.Data) (string, error)
	Destroy(ctx context.Context, id string) error
}

// AuthService отвечает за регистрацию, вход и выход пользователей.
type AuthService struct {
	users    UserRepository
	sessions SessionStore
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, sessions SessionStore) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
	}
}

// Signup создает нового пользователя с хэшированием пароля и сразу
// выпускает аутентифицированную сессию. Повторный email отдается
// как repository.ErrEmailTaken без изменения.
func (s *AuthService) Signup(ctx context.Context, name, email, rawPassword string) (string, error) {
	const op = "services.auth.Signup"

	hashed, err := password.Hash(rawPassword)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if _, err := s.users.CreateUser(ctx, name, email, hashed); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return "", repository.ErrEmailTaken
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}

	sessionID, err := s.sessions.Issue(ctx, session.Data{
		LoggedIn: true,
		Username: name,
		Email:    email,
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return sessionID, nil
}

// Login проверяет пароль пользователя и выпускает новую сессию.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (string, error) {
	const op = "services.auth.Login"

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if err := password.Compare(user.PasswordHash, rawPassword); err != nil {
		return "", ErrInvalidCredentials
	}

	sessionID, err := s.sessions.Issue(ctx, session.Data{
		LoggedIn: true,
		Username: user.Name,
		Email:    user.Email,
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return sessionID, nil
}

// Logout уничтожает сессию. Выход из уже отсутствующей сессии не ошибка.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	const op = "services.auth.Logout"

	if err := s.sessions.Destroy(ctx, sessionID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
