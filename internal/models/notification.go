package models

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType - тип уведомления
type NotificationType string

const (
	NotifyIncidentReported      NotificationType = "incident_reported"
	NotifyIncidentStatusChanged NotificationType = "incident_status_changed"
	NotifyTrainingReminder      NotificationType = "training_reminder"
	NotifyTrainingExpired       NotificationType = "training_expired"
	NotifyDocumentExpired       NotificationType = "document_expired"
	NotifyTaskAssigned          NotificationType = "task_assigned"
)

type Notification struct {
	ID        uuid.UUID        `json:"id"`
	UserID    uuid.UUID        `json:"user_id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Read      bool             `json:"read"`
	RelatedID *uuid.UUID       `json:"related_id,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}
