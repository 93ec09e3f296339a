package models

import (
	"time"

	"github.com/google/uuid"
)

// MaterialType - тип учебного материала
type MaterialType string

const (
	MaterialPDF   MaterialType = "pdf"
	MaterialVideo MaterialType = "video"
	MaterialOther MaterialType = "other"
)

// Valid проверяет, что тип материала входит в перечисление
func (m MaterialType) Valid() bool {
	switch m {
	case MaterialPDF, MaterialVideo, MaterialOther:
		return true
	}
	return false
}

type Training struct {
	ID           uuid.UUID    `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	MaterialURL  string       `json:"material_url"`
	MaterialType MaterialType `json:"material_type"`
	ValidityDays int          `json:"validity_days"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// TrainingResult - результат прохождения инструктажа пользователем
type TrainingResult struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	TrainingID  uuid.UUID `json:"training_id"`
	Score       int       `json:"score"`
	Passed      bool      `json:"passed"`
	CompletedAt time.Time `json:"completed_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}
