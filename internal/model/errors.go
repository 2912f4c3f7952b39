package model

import "errors"

// Ошибки ядра. Конкретные ошибки оборачивают их через fmt.Errorf("%w: ...")
var (
	ErrValidation        = errors.New("validation error")
	ErrNotFound          = errors.New("not found")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrUnauthorized      = errors.New("unauthorized")
)
