package models

import (
	"time"

	"github.com/google/uuid"
)

// RiskLevel - уровень риска пункта чек-листа
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Valid проверяет, что уровень входит в перечисление
func (r RiskLevel) Valid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh:
		return true
	}
	return false
}

// RiskAssessmentItem - один пункт чек-листа оценки рисков
type RiskAssessmentItem struct {
	Question    string    `json:"question"`
	Answer      bool      `json:"answer"`
	Risk        RiskLevel `json:"risk"`
	Observation string    `json:"observation,omitempty"`
}

type RiskAssessment struct {
	ID        uuid.UUID            `json:"id"`
	UserID    uuid.UUID            `json:"user_id"`
	ProjectID uuid.UUID            `json:"project_id"`
	Score     int                  `json:"score"`
	Items     []RiskAssessmentItem `json:"items"`
	Signature string               `json:"signature"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

// RiskAssessmentFilter - параметры выборки оценок рисков
type RiskAssessmentFilter struct {
	UserID    *uuid.UUID
	ProjectID *uuid.UUID
}
