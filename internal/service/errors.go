package service

import "errors"

// Сентинельные ошибки сервисного слоя. Хэндлеры сопоставляют их с HTTP-кодами
// через errors.Is; репозитории оборачивают ErrNotFound, добавляя контекст.
var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("operation not permitted for role")
	ErrValidation         = errors.New("validation failed")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAlreadyCheckedIn   = errors.New("already checked in for this date")
	ErrNotCheckedIn       = errors.New("no open attendance record")
)
