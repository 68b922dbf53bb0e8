// Package response содержит вспомогательные функции для формирования
// пользовательских сообщений об ошибках валидации. Наружу уходит только
// первое нарушение в человеко‑читаемом виде.
package response

import (
	"fmt"

	"github.com/go-playground/validator"
)

// Response описывает структуру JSON‑ответа служебных конечных точек.
type Response struct {
	Status string `json:"status"`
	Data   any    `json:"data,omitempty"`
}

// StatusOK — значение статуса для успешного ответа.
const StatusOK = "OK"

// OKWithData возвращает успешный Response с переданными данными.
func OKWithData(data any) Response {
	return Response{
		Status: StatusOK,
		Data:   data,
	}
}

// ValidationMessage формирует текст по первому нарушению валидации.
func ValidationMessage(errs validator.ValidationErrors) string {
	if len(errs) == 0 {
		return "invalid input"
	}
	err := errs[0]
	switch err.ActualTag() {
	case "required":
		return fmt.Sprintf("field %s is a required field", err.Field())
	case "email":
		return fmt.Sprintf("field %s must be a valid email address", err.Field())
	case "min":
		return fmt.Sprintf("field %s must be at least %s characters", err.Field(), err.Param())
	case "max":
		return fmt.Sprintf("field %s must be at most %s characters", err.Field(), err.Param())
	default:
		return fmt.Sprintf("field %s is not a valid", err.Field())
	}
}
