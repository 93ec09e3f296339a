package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/ssmapp/safety_management_system/internal/config"
	"github.com/ssmapp/safety_management_system/internal/models"
	"github.com/ssmapp/safety_management_system/internal/notify"
)

// IncidentRepository определяет контракт для работы с бд инцидентов
type IncidentRepository interface {
	Create(ctx context.Context, incident *models.Incident) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	List(ctx context.Context, filter models.IncidentListFilter) ([]*models.Incident, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.IncidentStatus, actionsTaken, preventiveMeasures string, resolvedAt *time.Time) error
	Assign(ctx context.Context, id, userID uuid.UUID) error
	AppendPhoto(ctx context.Context, id uuid.UUID, contentType string, data []byte, locator func(seq int) string) (int, error)
	GetPhoto(ctx context.Context, id uuid.UUID, seq int) (string, []byte, error)
	GetIncidentFromCache(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	SetIncidentCache(ctx context.Context, incident *models.Incident) error
	InvalidateIncidentCache(ctx context.Context, id uuid.UUID) error
}

// IncidentService определяет контракт бизнес-логики управления инцидентами
type IncidentService interface {
	ReportIncident(ctx context.Context, session *models.Session, incident *models.Incident) error
	GetIncident(ctx context.Context, session *models.Session, id uuid.UUID) (*models.Incident, error)
	ListIncidents(ctx context.Context, session *models.Session, filter models.IncidentListFilter, query string, typeFilter models.IncidentType) ([]*models.Incident, error)
	UpdateIncidentStatus(ctx context.Context, session *models.Session, id uuid.UUID, target models.IncidentStatus, actionsTaken, preventiveMeasures string) (*models.Incident, error)
	AssignIncident(ctx context.Context, session *models.Session, id, userID uuid.UUID) error
	UploadIncidentPhoto(ctx context.Context, session *models.Session, id uuid.UUID, contentType string, data []byte) (string, error)
	GetIncidentPhoto(ctx context.Context, session *models.Session, id uuid.UUID, seq int) (string, []byte, error)
}

type incidentService struct {
	repo      IncidentRepository
	logger    *logrus.Logger
	cfg       *config.Config
	publisher notify.EventPublisher
}

func NewIncidentService(repo IncidentRepository, logger *logrus.Logger, cfg *config.Config, publisher notify.EventPublisher) IncidentService {
	return &incidentService{
		repo:      repo,
		logger:    logger,
		cfg:       cfg,
		publisher: publisher,
	}
}

// ReportIncident создает новый инцидент со статусом reported
func (s *incidentService) ReportIncident(ctx context.Context, session *models.Session, incident *models.Incident) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "ReportIncident",
		"user_id": session.UserID,
	})
	log.Info("Attempting to report a new incident")

	if !session.Role.Can(models.OpIncidentReport) {
		return fmt.Errorf("service: report incident: %w", ErrForbidden)
	}
	if strings.TrimSpace(incident.Description) == "" {
		return fmt.Errorf("service: description is required: %w", ErrValidation)
	}
	if !incident.Type.Valid() {
		return fmt.Errorf("service: unknown incident type %q: %w", incident.Type, ErrValidation)
	}

	// Кто сообщил и начальный статус назначаются сервером, не клиентом
	incident.ReporterID = session.UserID
	incident.Status = models.StatusReported
	incident.ResolvedAt = nil

	if err := s.repo.Create(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		return fmt.Errorf("service: could not create incident: %w", err)
	}

	s.publishEvent(ctx, log, notify.Event{
		Type:         models.NotifyIncidentReported,
		IncidentID:   incident.ID,
		IncidentType: incident.Type,
		ActorID:      session.UserID,
		ReporterID:   incident.ReporterID,
		OccurredAt:   time.Now().UTC(),
	})

	log.WithField("incident_id", incident.ID).Info("Incident reported successfully")
	return nil
}

// GetIncident получает инцидент по ID, сначала из кеша, затем из бд
func (s *incidentService) GetIncident(ctx context.Context, session *models.Session, id uuid.UUID) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetIncident",
		"incident_id": id,
	})
	log.Info("Fetching incident by ID")

	cached, err := s.repo.GetIncidentFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read incident cache, falling back to DB")
	}
	if cached != nil {
		return cached, nil
	}

	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident in repository")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}

	if err := s.repo.SetIncidentCache(ctx, incident); err != nil {
		log.WithError(err).Warn("Failed to cache incident")
	}

	log.Info("Incident fetched successfully")
	return incident, nil
}

// ListIncidents возвращает список инцидентов, отсортированный по дате сообщения
// (новые первыми). Поисковая строка и фильтр по типу применяются in-memory
// поверх выборки, порядок сохраняется.
func (s *incidentService) ListIncidents(ctx context.Context, session *models.Session, filter models.IncidentListFilter, query string, typeFilter models.IncidentType) ([]*models.Incident, error) {
	if filter.Limit < 0 || filter.Limit > 100 {
		filter.Limit = 100
	}

	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "ListIncidents",
		"query":   query,
		"type":    typeFilter,
	})
	log.Info("Listing incidents")

	if typeFilter != "" && !typeFilter.Valid() {
		return nil, fmt.Errorf("service: unknown incident type %q: %w", typeFilter, ErrValidation)
	}

	incidents, err := s.repo.List(ctx, filter)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}

	incidents = models.FilterIncidents(incidents, query, typeFilter)
	log.WithField("count", len(incidents)).Info("Incidents listed successfully")
	return incidents, nil
}

// UpdateIncidentStatus переводит инцидент в целевой статус. Допустимы только
// повторное применение текущего статуса и единственный следующий шаг линейного
// жизненного цикла; resolved_at выставляется при первом входе в resolved.
func (s *incidentService) UpdateIncidentStatus(ctx context.Context, session *models.Session, id uuid.UUID, target models.IncidentStatus, actionsTaken, preventiveMeasures string) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "UpdateIncidentStatus",
		"incident_id": id,
		"target":      target,
	})
	log.Info("Attempting to update incident status")

	if !session.Role.Can(models.OpIncidentUpdateStatus) {
		return nil, fmt.Errorf("service: update status: %w", ErrForbidden)
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to update status of a non-existent incident")
		return nil, fmt.Errorf("service: incident %s not found for status update: %w", id, err)
	}

	if !models.CanTransition(current.Status, target) {
		log.Warn("Rejected out-of-order status transition")
		return nil, fmt.Errorf("service: cannot go from %s to %s: %w", current.Status, target, ErrInvalidTransition)
	}

	// resolved_at выставляется ровно один раз, при первом входе в resolved
	var resolvedAt *time.Time
	if target == models.StatusResolved && current.ResolvedAt == nil {
		now := time.Now().UTC()
		resolvedAt = &now
	}

	if err := s.repo.UpdateStatus(ctx, id, target, actionsTaken, preventiveMeasures, resolvedAt); err != nil {
		log.WithError(err).Error("Failed to update incident status in repository")
		return nil, fmt.Errorf("service: could not update incident status: %w", err)
	}

	if err := s.repo.InvalidateIncidentCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}

	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not reload incident after update: %w", err)
	}

	if target != current.Status {
		s.publishEvent(ctx, log, notify.Event{
			Type:         models.NotifyIncidentStatusChanged,
			IncidentID:   id,
			IncidentType: updated.Type,
			Status:       updated.Status,
			ActorID:      session.UserID,
			ReporterID:   updated.ReporterID,
			OccurredAt:   time.Now().UTC(),
		})
	}

	log.Info("Incident status updated successfully")
	return updated, nil
}

// AssignIncident назначает пользователя ответственным за инцидент
func (s *incidentService) AssignIncident(ctx context.Context, session *models.Session, id, userID uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "AssignIncident",
		"incident_id": id,
		"assignee_id": userID,
	})
	log.Info("Attempting to assign incident")

	if !session.Role.Can(models.OpIncidentAssign) {
		return fmt.Errorf("service: assign incident: %w", ErrForbidden)
	}

	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to assign a non-existent incident")
		return fmt.Errorf("service: incident %s not found for assignment: %w", id, err)
	}

	if err := s.repo.Assign(ctx, id, userID); err != nil {
		log.WithError(err).Error("Failed to assign incident in repository")
		return fmt.Errorf("service: could not assign incident: %w", err)
	}

	if err := s.repo.InvalidateIncidentCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}

	s.publishEvent(ctx, log, notify.Event{
		Type:         models.NotifyTaskAssigned,
		IncidentID:   id,
		IncidentType: incident.Type,
		ActorID:      session.UserID,
		ReporterID:   incident.ReporterID,
		AssigneeID:   &userID,
		OccurredAt:   time.Now().UTC(),
	})

	log.Info("Incident assigned successfully")
	return nil
}

// UploadIncidentPhoto сохраняет фотографию и добавляет её локатор к инциденту.
// Возвращает локатор, по которому фотографию можно скачать.
func (s *incidentService) UploadIncidentPhoto(ctx context.Context, session *models.Session, id uuid.UUID, contentType string, data []byte) (string, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "UploadIncidentPhoto",
		"incident_id": id,
		"size":        len(data),
	})
	log.Info("Attempting to upload incident photo")

	if len(data) == 0 {
		return "", fmt.Errorf("service: empty photo payload: %w", ErrValidation)
	}
	if int64(len(data)) > s.cfg.PhotoMaxBytes {
		return "", fmt.Errorf("service: photo exceeds %d bytes: %w", s.cfg.PhotoMaxBytes, ErrValidation)
	}

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		log.WithError(err).Warn("Attempted to upload photo for a non-existent incident")
		return "", fmt.Errorf("service: incident %s not found for photo upload: %w", id, err)
	}

	locator := func(seq int) string {
		return fmt.Sprintf("/api/v1/incidents/%s/photos/%d", id, seq)
	}
	seq, err := s.repo.AppendPhoto(ctx, id, contentType, data, locator)
	if err != nil {
		log.WithError(err).Error("Failed to store incident photo")
		return "", fmt.Errorf("service: could not store incident photo: %w", err)
	}

	if err := s.repo.InvalidateIncidentCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}

	log.WithField("seq", seq).Info("Incident photo stored successfully")
	return locator(seq), nil
}

// GetIncidentPhoto возвращает содержимое фотографии по инциденту и индексу
func (s *incidentService) GetIncidentPhoto(ctx context.Context, session *models.Session, id uuid.UUID, seq int) (string, []byte, error) {
	contentType, data, err := s.repo.GetPhoto(ctx, id, seq)
	if err != nil {
		return "", nil, fmt.Errorf("service: could not get incident photo: %w", err)
	}
	return contentType, data, nil
}

// publishEvent отправляет событие в очередь уведомлений. Сбой публикации не
// должен проваливать исходную операцию, поэтому только логируется.
func (s *incidentService) publishEvent(ctx context.Context, log *logrus.Entry, event notify.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Error("Failed to publish notification event")
	}
}
