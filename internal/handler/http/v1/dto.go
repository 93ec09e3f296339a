package v1

import (
	"time"

	"github.com/google/uuid"
)

// RegisterRequest DTO для самостоятельной регистрации
// @Description DTO для самостоятельной регистрации
type RegisterRequest struct {
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=8"`
	FirstName    string `json:"first_name" validate:"required,min=1,max=100"`
	LastName     string `json:"last_name" validate:"required,min=1,max=100"`
	EmployeeCode string `json:"employee_code,omitempty"`
	PhoneNumber  string `json:"phone_number,omitempty"`
}

// LoginRequest DTO для входа
// @Description DTO для входа
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse DTO для ответа на вход
// @Description DTO для ответа на вход
type LoginResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

// UserResponse DTO для ответа с информацией о пользователе
// @Description DTO для ответа с информацией о пользователе
type UserResponse struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Role         string    `json:"role"`
	RoleLabel    string    `json:"role_label"`
	EmployeeCode string    `json:"employee_code,omitempty"`
	PhoneNumber  string    `json:"phone_number,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UpdateProfileRequest DTO для обновления собственного профиля
// @Description DTO для обновления собственного профиля
type UpdateProfileRequest struct {
	FirstName   string `json:"first_name" validate:"required,min=1,max=100"`
	LastName    string `json:"last_name" validate:"required,min=1,max=100"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

// CreateUserRequest DTO для создания пользователя администратором
// @Description DTO для создания пользователя администратором
type CreateUserRequest struct {
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=8"`
	FirstName    string `json:"first_name" validate:"required,min=1,max=100"`
	LastName     string `json:"last_name" validate:"required,min=1,max=100"`
	Role         string `json:"role" validate:"required,oneof=worker team_leader ssm_responsible admin"`
	EmployeeCode string `json:"employee_code,omitempty"`
	PhoneNumber  string `json:"phone_number,omitempty"`
}

// UpdateUserRequest DTO для обновления пользователя администратором
// @Description DTO для обновления пользователя администратором
type UpdateUserRequest struct {
	FirstName    string `json:"first_name" validate:"required,min=1,max=100"`
	LastName     string `json:"last_name" validate:"required,min=1,max=100"`
	Role         string `json:"role" validate:"required,oneof=worker team_leader ssm_responsible admin"`
	EmployeeCode string `json:"employee_code,omitempty"`
	PhoneNumber  string `json:"phone_number,omitempty"`
}

// ReportIncidentRequest DTO для создания инцидента
// @Description DTO для создания инцидента
type ReportIncidentRequest struct {
	ProjectID   uuid.UUID `json:"project_id" validate:"required"`
	Type        string    `json:"type" validate:"required,oneof=near_miss minor_injury major_injury property_damage environmental other"`
	Description string    `json:"description" validate:"required,min=1"`
	Latitude    float64   `json:"latitude" validate:"latitude"`
	Longitude   float64   `json:"longitude" validate:"longitude"`
	Address     string    `json:"address,omitempty"`
}

// UpdateIncidentStatusRequest DTO для смены статуса инцидента
// @Description DTO для смены статуса инцидента
type UpdateIncidentStatusRequest struct {
	Status             string `json:"status" validate:"required,oneof=reported investigating resolved closed"`
	ActionsTaken       string `json:"actions_taken,omitempty"`
	PreventiveMeasures string `json:"preventive_measures,omitempty"`
}

// AssignIncidentRequest DTO для назначения ответственного
// @Description DTO для назначения ответственного
type AssignIncidentRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID                 uuid.UUID  `json:"id"`
	ReporterID         uuid.UUID  `json:"reporter_id"`
	ProjectID          uuid.UUID  `json:"project_id"`
	Type               string     `json:"type"`
	TypeLabel          string     `json:"type_label"`
	Description        string     `json:"description"`
	Latitude           float64    `json:"latitude"`
	Longitude          float64    `json:"longitude"`
	Address            string     `json:"address,omitempty"`
	Photos             []string   `json:"photos"`
	Status             string     `json:"status"`
	StatusLabel        string     `json:"status_label"`
	AssignedTo         *uuid.UUID `json:"assigned_to,omitempty"`
	ActionsTaken       string     `json:"actions_taken,omitempty"`
	PreventiveMeasures string     `json:"preventive_measures,omitempty"`
	ReportedAt         time.Time  `json:"reported_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
	ResolvedAt         *time.Time `json:"resolved_at,omitempty"`
}

// PhotoUploadResponse DTO для ответа на загрузку фотографии
// @Description DTO для ответа на загрузку фотографии
type PhotoUploadResponse struct {
	Locator string `json:"locator"`
}

// ProjectRequest DTO для создания/обновления объекта
// @Description DTO для создания/обновления объекта
type ProjectRequest struct {
	Name        string     `json:"name" validate:"required,min=2,max=255"`
	Description string     `json:"description,omitempty"`
	Latitude    float64    `json:"latitude,omitempty"`
	Longitude   float64    `json:"longitude,omitempty"`
	Address     string     `json:"address" validate:"required"`
	Status      string     `json:"status" validate:"omitempty,oneof=active completed paused"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
}

// ProjectResponse DTO для ответа с информацией об объекте
// @Description DTO для ответа с информацией об объекте
type ProjectResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Latitude    float64    `json:"latitude"`
	Longitude   float64    `json:"longitude"`
	Address     string     `json:"address,omitempty"`
	Status      string     `json:"status"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TrainingRequest DTO для создания/обновления инструктажа
// @Description DTO для создания/обновления инструктажа
type TrainingRequest struct {
	Title        string `json:"title" validate:"required,min=2,max=255"`
	Description  string `json:"description,omitempty"`
	MaterialURL  string `json:"material_url" validate:"omitempty,url"`
	MaterialType string `json:"material_type" validate:"required,oneof=pdf video other"`
	ValidityDays int    `json:"validity_days" validate:"required,gt=0"`
}

// TrainingResponse DTO для ответа с информацией об инструктаже
// @Description DTO для ответа с информацией об инструктаже
type TrainingResponse struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	MaterialURL  string    `json:"material_url,omitempty"`
	MaterialType string    `json:"material_type"`
	ValidityDays int       `json:"validity_days"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RecordTrainingResultRequest DTO для записи результата инструктажа
// @Description DTO для записи результата инструктажа
type RecordTrainingResultRequest struct {
	Score int `json:"score" validate:"min=0,max=100"`
}

// TrainingResultResponse DTO для ответа с результатом инструктажа
// @Description DTO для ответа с результатом инструктажа
type TrainingResultResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	TrainingID  uuid.UUID `json:"training_id"`
	Score       int       `json:"score"`
	Passed      bool      `json:"passed"`
	CompletedAt time.Time `json:"completed_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// RiskItemRequest DTO для пункта чек-листа оценки рисков
// @Description DTO для пункта чек-листа оценки рисков
type RiskItemRequest struct {
	Question    string `json:"question" validate:"required"`
	Answer      bool   `json:"answer"`
	Risk        string `json:"risk" validate:"required,oneof=low medium high"`
	Observation string `json:"observation,omitempty"`
}

// CreateRiskAssessmentRequest DTO для создания оценки рисков
// @Description DTO для создания оценки рисков
type CreateRiskAssessmentRequest struct {
	ProjectID uuid.UUID         `json:"project_id" validate:"required"`
	Items     []RiskItemRequest `json:"items" validate:"required,min=1,dive"`
	Signature string            `json:"signature,omitempty"`
}

// RiskAssessmentResponse DTO для ответа с оценкой рисков
// @Description DTO для ответа с оценкой рисков
type RiskAssessmentResponse struct {
	ID        uuid.UUID         `json:"id"`
	UserID    uuid.UUID         `json:"user_id"`
	ProjectID uuid.UUID         `json:"project_id"`
	Score     int               `json:"score"`
	Items     []RiskItemRequest `json:"items"`
	Signature string            `json:"signature,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// CheckInRequest DTO для регистрации прихода
// @Description DTO для регистрации прихода
type CheckInRequest struct {
	ProjectID uuid.UUID `json:"project_id" validate:"required"`
	Latitude  float64   `json:"latitude" validate:"latitude"`
	Longitude float64   `json:"longitude" validate:"longitude"`
}

// CheckOutRequest DTO для регистрации ухода
// @Description DTO для регистрации ухода
type CheckOutRequest struct {
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
}

// AttendanceResponse DTO для ответа с записью посещаемости
// @Description DTO для ответа с записью посещаемости
type AttendanceResponse struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	ProjectID   uuid.UUID  `json:"project_id"`
	Date        string     `json:"date"`
	CheckInAt   time.Time  `json:"check_in_at"`
	CheckOutAt  *time.Time `json:"check_out_at,omitempty"`
	HoursWorked *float64   `json:"hours_worked,omitempty"`
}

// NotificationResponse DTO для ответа с уведомлением
// @Description DTO для ответа с уведомлением
type NotificationResponse struct {
	ID        uuid.UUID  `json:"id"`
	Type      string     `json:"type"`
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	Read      bool       `json:"read"`
	RelatedID *uuid.UUID `json:"related_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
