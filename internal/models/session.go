package models

import (
	"time"

	"github.com/google/uuid"
)

// Session - запись об аутентифицированном вызывающем. Передаётся явно в каждый
// защищённый метод сервиса вместо глобального состояния.
type Session struct {
	Token     string    `json:"token"`
	UserID    uuid.UUID `json:"user_id"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
