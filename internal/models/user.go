// Package models содержит доменную модель пользователя системы,
// включающую учётные данные, хэш пароля и признак администратора.
// Структура используется в бизнес‑логике и при работе с хранилищем.
package models

import "time"

// User представляет зарегистрированного пользователя системы.
type User struct {
	UID          string    // Уникальный идентификатор пользователя
	Name         string    // Отображаемое имя, до 50 символов
	Email        string    // Электронная почта, ключ для входа (уникальная)
	PasswordHash string    // Хэш пароля пользователя
	IsAdmin      bool      // Признак администратора
	CreatedAt    time.Time // Дата создания записи
}
