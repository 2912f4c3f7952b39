package common

import (
	"errors"
	"strings"

	"github.com/Freeeeeet/docspot/internal/model"
)

// Ошибки уровня бота
var (
	ErrNotLoggedIn   = errors.New("not logged in")
	ErrWrongRole     = errors.New("command not available for role")
	ErrInvalidFormat = errors.New("invalid callback format")
	ErrNoMessage     = errors.New("no message in callback")
)

// ErrorMessage возвращает пользовательское сообщение для ошибки
func ErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrNotLoggedIn):
		return "🔒 Please log in first: /login <patient|doctor|admin> <name>"
	case errors.Is(err, ErrWrongRole):
		return "⛔ This action is not available for your role"
	case errors.Is(err, ErrInvalidFormat):
		return "❌ Invalid data format"
	case errors.Is(err, ErrNoMessage):
		return "❌ Failed to process the message"
	case errors.Is(err, model.ErrValidation):
		return "⚠️ " + validationText(err)
	case errors.Is(err, model.ErrNotFound):
		return "❌ Not found"
	case errors.Is(err, model.ErrInvalidTransition):
		return "⚠️ This request has already been processed"
	case errors.Is(err, model.ErrUnauthorized):
		return "⛔ You are not allowed to do this"
	default:
		return "❌ Something went wrong, please try again later"
	}
}

// validationText отдаёт текст ошибки валидации без префикса сентинела
func validationText(err error) string {
	if text, ok := strings.CutPrefix(err.Error(), model.ErrValidation.Error()+": "); ok && text != "" {
		return text
	}
	return "Please fill in all required fields"
}
