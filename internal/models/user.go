package models

import (
	"time"

	"github.com/google/uuid"
)

// Role - роль пользователя в системе
type Role string

const (
	RoleWorker         Role = "worker"
	RoleTeamLeader     Role = "team_leader"
	RoleSSMResponsible Role = "ssm_responsible"
	RoleAdmin          Role = "admin"
)

var roleLabels = map[Role]string{
	RoleWorker:         "Worker",
	RoleTeamLeader:     "Team leader",
	RoleSSMResponsible: "SSM responsible",
	RoleAdmin:          "Administrator",
}

// Label возвращает отображаемое название роли
func (r Role) Label() string {
	if label, ok := roleLabels[r]; ok {
		return label
	}
	return string(r)
}

// Valid проверяет, что роль входит в перечисление
func (r Role) Valid() bool {
	_, ok := roleLabels[r]
	return ok
}

// RegisterInput - данные для регистрации нового пользователя
type RegisterInput struct {
	Email        string
	Password     string
	FirstName    string
	LastName     string
	EmployeeCode string
	PhoneNumber  string
}

// CreateUserInput - данные для создания пользователя администратором
type CreateUserInput struct {
	Email        string
	Password     string
	FirstName    string
	LastName     string
	Role         Role
	EmployeeCode string
	PhoneNumber  string
}

// UpdateUserInput - данные для обновления пользователя администратором
type UpdateUserInput struct {
	FirstName    string
	LastName     string
	Role         Role
	EmployeeCode string
	PhoneNumber  string
}

type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Role         Role      `json:"role"`
	EmployeeCode string    `json:"employee_code,omitempty"`
	PhoneNumber  string    `json:"phone_number,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
