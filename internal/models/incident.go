package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// IncidentType - классификация инцидента
type IncidentType string

const (
	IncidentNearMiss       IncidentType = "near_miss"
	IncidentMinorInjury    IncidentType = "minor_injury"
	IncidentMajorInjury    IncidentType = "major_injury"
	IncidentPropertyDamage IncidentType = "property_damage"
	IncidentEnvironmental  IncidentType = "environmental"
	IncidentOther          IncidentType = "other"
)

// IncidentStatus - статус инцидента в жизненном цикле
type IncidentStatus string

const (
	StatusReported      IncidentStatus = "reported"
	StatusInvestigating IncidentStatus = "investigating"
	StatusResolved      IncidentStatus = "resolved"
	StatusClosed        IncidentStatus = "closed"
)

// Location - географическая точка с необязательным адресом
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
}

type Incident struct {
	ID                 uuid.UUID      `json:"id"`
	ReporterID         uuid.UUID      `json:"reporter_id"`
	ProjectID          uuid.UUID      `json:"project_id"`
	Type               IncidentType   `json:"type"`
	Description        string         `json:"description"`
	Location           Location       `json:"location"`
	Photos             []string       `json:"photos,omitempty"`
	Status             IncidentStatus `json:"status"`
	AssignedTo         *uuid.UUID     `json:"assigned_to,omitempty"`
	ActionsTaken       string         `json:"actions_taken,omitempty"`
	PreventiveMeasures string         `json:"preventive_measures,omitempty"`
	ReportedAt         time.Time      `json:"reported_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	ResolvedAt         *time.Time     `json:"resolved_at,omitempty"`
}

// IncidentListFilter - параметры выборки инцидентов из хранилища
type IncidentListFilter struct {
	ReporterID *uuid.UUID
	ProjectID  *uuid.UUID
	Limit      int
}

// Единые таблицы отображаемых названий, чтобы клиенты не дублировали их у себя
var incidentTypeLabels = map[IncidentType]string{
	IncidentNearMiss:       "Near miss",
	IncidentMinorInjury:    "Minor injury",
	IncidentMajorInjury:    "Major injury",
	IncidentPropertyDamage: "Property damage",
	IncidentEnvironmental:  "Environmental",
	IncidentOther:          "Other",
}

var incidentStatusLabels = map[IncidentStatus]string{
	StatusReported:      "Reported",
	StatusInvestigating: "Investigating",
	StatusResolved:      "Resolved",
	StatusClosed:        "Closed",
}

// Label возвращает отображаемое название типа инцидента
func (t IncidentType) Label() string {
	if label, ok := incidentTypeLabels[t]; ok {
		return label
	}
	return string(t)
}

// Valid проверяет, что тип входит в перечисление
func (t IncidentType) Valid() bool {
	_, ok := incidentTypeLabels[t]
	return ok
}

// Label возвращает отображаемое название статуса
func (s IncidentStatus) Label() string {
	if label, ok := incidentStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

// Valid проверяет, что статус входит в перечисление
func (s IncidentStatus) Valid() bool {
	_, ok := incidentStatusLabels[s]
	return ok
}

// NextStatus возвращает единственный допустимый следующий статус.
// Жизненный цикл строго линейный: reported -> investigating -> resolved -> closed.
func NextStatus(current IncidentStatus) (IncidentStatus, bool) {
	switch current {
	case StatusReported:
		return StatusInvestigating, true
	case StatusInvestigating:
		return StatusResolved, true
	case StatusResolved:
		return StatusClosed, true
	}
	return "", false
}

// CanTransition проверяет допустимость перехода: разрешены только повторное
// применение текущего статуса и единственный следующий шаг.
func CanTransition(current, target IncidentStatus) bool {
	if !target.Valid() {
		return false
	}
	if target == current {
		return true
	}
	next, ok := NextStatus(current)
	return ok && target == next
}

// FilterIncidents возвращает подмножество инцидентов, удовлетворяющее поисковой
// строке и фильтру по типу. Поиск - регистронезависимое вхождение в описание или
// в отображаемое название типа; пустые query и typeFilter означают "все".
// Порядок входного списка сохраняется, сам список не изменяется.
func FilterIncidents(incidents []*Incident, query string, typeFilter IncidentType) []*Incident {
	query = strings.ToLower(strings.TrimSpace(query))

	result := make([]*Incident, 0, len(incidents))
	for _, incident := range incidents {
		if typeFilter != "" && incident.Type != typeFilter {
			continue
		}
		if query != "" {
			matches := strings.Contains(strings.ToLower(incident.Description), query) ||
				strings.Contains(strings.ToLower(incident.Type.Label()), query)
			if !matches {
				continue
			}
		}
		result = append(result, incident)
	}
	return result
}
